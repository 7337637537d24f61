package dto

import "time"

// CreateCompraRequest entrada para registrar una compra.
type CreateCompraRequest struct {
	NumeroFactura   string  `json:"numero_factura"`
	Proveedor       string  `json:"proveedor"`
	FechaCompra     string  `json:"fecha_compra" validate:"required"` // YYYY-MM-DD
	SolicitadoPorID *string `json:"solicitado_por_id"`
}

// CompraResponse salida de una compra.
type CompraResponse struct {
	ID              string    `json:"id"`
	NumeroFactura   string    `json:"numero_factura"`
	Proveedor       string    `json:"proveedor"`
	FechaCompra     string    `json:"fecha_compra"`
	SolicitadoPorID *string   `json:"solicitado_por_id"`
	CreatedAt       time.Time `json:"created_at"`
}
