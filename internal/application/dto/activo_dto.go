package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateActivoRequest entrada para crear un activo. Solo nombre y código son
// obligatorios; el resto tiene defaults de dominio.
type CreateActivoRequest struct {
	CodigoActivo      string          `json:"codigo_activo" validate:"required,max=50"`
	NombreActivo      string          `json:"nombre_activo" validate:"required,max=255"`
	Descripcion       string          `json:"descripcion"`
	Marca             string          `json:"marca"`
	Modelo            string          `json:"modelo"`
	NumeroSerie       *string         `json:"numero_serie"`
	Status            string          `json:"status" validate:"omitempty"`
	FechaAdquisicion  string          `json:"fecha_adquisicion"` // YYYY-MM-DD; hoy si falta
	CostoAdquisicion  decimal.Decimal `json:"costo_adquisicion"`
	VidaUtilMeses     int             `json:"vida_util_meses"`
	ValorResidual     decimal.Decimal `json:"valor_residual"`
	UbicacionID       *string         `json:"ubicacion_id"`
	UsuarioAsignadoID *string         `json:"usuario_asignado_id"`
	CompraID          *string         `json:"compra_id"`
}

// UpdateActivoRequest entrada de mutación parcial. Los campos rastreados
// (status, ubicación, asignado) generan historial al cambiar.
type UpdateActivoRequest struct {
	NombreActivo      *string          `json:"nombre_activo"`
	Descripcion       *string          `json:"descripcion"`
	Marca             *string          `json:"marca"`
	Modelo            *string          `json:"modelo"`
	NumeroSerie       *string          `json:"numero_serie"`
	Status            *string          `json:"status"`
	CostoAdquisicion  *decimal.Decimal `json:"costo_adquisicion"`
	VidaUtilMeses     *int             `json:"vida_util_meses"`
	ValorResidual     *decimal.Decimal `json:"valor_residual"`
	UbicacionID       *string          `json:"ubicacion_id"`
	UsuarioAsignadoID *string          `json:"usuario_asignado_id"`
	CompraID          *string          `json:"compra_id"`
	Nota              string           `json:"nota"` // se copia a las filas de historial
}

// ActivoResponse salida de un activo.
type ActivoResponse struct {
	ID                   string          `json:"id"`
	CodigoActivo         string          `json:"codigo_activo"`
	NombreActivo         string          `json:"nombre_activo"`
	Descripcion          string          `json:"descripcion"`
	Marca                string          `json:"marca"`
	Modelo               string          `json:"modelo"`
	NumeroSerie          *string         `json:"numero_serie"`
	Status               string          `json:"status"`
	FechaAdquisicion     string          `json:"fecha_adquisicion"`
	CostoAdquisicion     decimal.Decimal `json:"costo_adquisicion"`
	VidaUtilMeses        int             `json:"vida_util_meses"`
	ValorResidual        decimal.Decimal `json:"valor_residual"`
	UbicacionID          *string         `json:"ubicacion_id"`
	UsuarioAsignadoID    *string         `json:"usuario_asignado_id"`
	CompraID             *string         `json:"compra_id"`
	UltimaAuditoriaFecha *time.Time      `json:"ultima_auditoria_fecha"`
	UltimaAuditoriaPorID *string         `json:"ultima_auditoria_por_id"`
	CreatedAt            time.Time       `json:"created_at"`
}

// HistorialResponse una entrada del rastro de cambios.
type HistorialResponse struct {
	ID              string    `json:"id"`
	ActivoID        string    `json:"activo_id"`
	UsuarioID       string    `json:"usuario_id"`
	FechaCambio     time.Time `json:"fecha_cambio"`
	CampoModificado string    `json:"campo_modificado"`
	ValorAnterior   string    `json:"valor_anterior"`
	ValorNuevo      string    `json:"valor_nuevo"`
	Nota            string    `json:"nota"`
}

// LegacyProductRequest entrada del endpoint legacy /api/products con los
// nombres de campo de la tabla products original.
type LegacyProductRequest struct {
	ProductName     string  `json:"product_name"`
	InventoryNumber string  `json:"inventory_number"`
	SerialNumber    *string `json:"serial_number"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	EquipmentType   string  `json:"equipment_type"`
}

// LegacyProductResponse salida del endpoint legacy /api/products.
type LegacyProductResponse struct {
	ProductName     string  `json:"product_name"`
	InventoryNumber string  `json:"inventory_number"`
	SerialNumber    *string `json:"serial_number"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	EquipmentType   string  `json:"equipment_type"`
}
