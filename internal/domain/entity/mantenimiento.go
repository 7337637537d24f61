package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos válidos de mantenimiento.
const (
	MantenimientoPreventivo  = "Preventivo"
	MantenimientoCorrectivo  = "Correctivo"
	MantenimientoMejora      = "Mejora"
	MantenimientoDiagnostico = "Diagnóstico"
)

// TiposMantenimiento lista los tipos válidos.
var TiposMantenimiento = []string{MantenimientoPreventivo, MantenimientoCorrectivo, MantenimientoMejora, MantenimientoDiagnostico}

// TipoMantenimientoValido reporta si tipo pertenece al conjunto cerrado.
func TipoMantenimientoValido(tipo string) bool {
	for _, t := range TiposMantenimiento {
		if t == tipo {
			return true
		}
	}
	return false
}

// Mantenimiento registra una intervención sobre un activo. Descripcion es obligatoria.
type Mantenimiento struct {
	ID                 string
	ActivoID           string
	FechaMantenimiento time.Time
	TipoMantenimiento  string
	Descripcion        string
	Costo              decimal.Decimal
	RealizadoPorID     string
}
