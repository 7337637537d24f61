package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status válidos para Activo.
const (
	StatusEnBodega     = "En Bodega"
	StatusActivo       = "Activo"
	StatusEnReparacion = "En Reparación"
	StatusEnPrestamo   = "En Préstamo"
	StatusDadoDeBaja   = "Dado de Baja"
)

// StatusActivos lista los status válidos de un activo.
var StatusActivos = []string{StatusEnBodega, StatusActivo, StatusEnReparacion, StatusEnPrestamo, StatusDadoDeBaja}

// StatusActivoValido reporta si status pertenece al conjunto cerrado.
func StatusActivoValido(status string) bool {
	for _, s := range StatusActivos {
		if s == status {
			return true
		}
	}
	return false
}

// VidaUtilMesesDefault vida útil por defecto de un activo (3 años).
const VidaUtilMesesDefault = 36

// Activo representa un bien físico inventariado con sus datos de adquisición,
// depreciación, ubicación y asignación.
type Activo struct {
	ID            string
	CodigoActivo  string // código de inventario, único
	NombreActivo  string
	Descripcion   string
	Marca         string
	Modelo        string
	NumeroSerie   *string // único cuando existe; nil si no aplica
	Status        string  // En Bodega, Activo, En Reparación, En Préstamo, Dado de Baja

	FechaAdquisicion time.Time
	CostoAdquisicion decimal.Decimal
	VidaUtilMeses    int
	ValorResidual    decimal.Decimal

	UbicacionID       *string
	UsuarioAsignadoID *string
	CompraID          *string

	UltimaAuditoriaFecha *time.Time
	UltimaAuditoriaPorID *string

	CreatedAt time.Time
}
