package entity

import "time"

// Campos rastreados del historial. Cada mutación de uno de estos campos de
// Activo produce una fila nueva; las filas nunca se modifican.
const (
	CampoStatus          = "status"
	CampoUbicacion       = "ubicacion_id"
	CampoUsuarioAsignado = "usuario_asignado_id"
)

// HistorialMovimiento es una entrada append-only del rastro de cambios de un activo.
type HistorialMovimiento struct {
	ID              string
	ActivoID        string
	UsuarioID       string // quién hizo el cambio
	FechaCambio     time.Time
	CampoModificado string
	ValorAnterior   string
	ValorNuevo      string
	Nota            string
}
