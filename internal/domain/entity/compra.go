package entity

import "time"

// Compra representa una orden de compra de la que provienen uno o más activos.
type Compra struct {
	ID              string
	NumeroFactura   string
	Proveedor       string
	FechaCompra     time.Time
	SolicitadoPorID *string
	CreatedAt       time.Time
}
