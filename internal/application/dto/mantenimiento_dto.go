package dto

import "github.com/shopspring/decimal"

// CreateMantenimientoRequest entrada para registrar un mantenimiento sobre un activo.
type CreateMantenimientoRequest struct {
	FechaMantenimiento string          `json:"fecha_mantenimiento"` // YYYY-MM-DD; hoy si falta
	TipoMantenimiento  string          `json:"tipo_mantenimiento" validate:"required,oneof=Preventivo Correctivo Mejora Diagnóstico"`
	Descripcion        string          `json:"descripcion" validate:"required"`
	Costo              decimal.Decimal `json:"costo"`
}

// MantenimientoResponse salida de un mantenimiento.
type MantenimientoResponse struct {
	ID                 string          `json:"id"`
	ActivoID           string          `json:"activo_id"`
	FechaMantenimiento string          `json:"fecha_mantenimiento"`
	TipoMantenimiento  string          `json:"tipo_mantenimiento"`
	Descripcion        string          `json:"descripcion"`
	Costo              decimal.Decimal `json:"costo"`
	RealizadoPorID     string          `json:"realizado_por_id"`
}
