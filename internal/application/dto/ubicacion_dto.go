package dto

// CreateUbicacionRequest entrada para crear una ubicación.
type CreateUbicacionRequest struct {
	Nombre            string  `json:"nombre" validate:"required,max=255"`
	Descripcion       string  `json:"descripcion"`
	ParentUbicacionID *string `json:"parent_ubicacion_id"`
}

// UpdateUbicacionRequest entrada de mutación parcial de una ubicación.
// Reparentar valida que no se formen ciclos.
type UpdateUbicacionRequest struct {
	Nombre            *string `json:"nombre"`
	Descripcion       *string `json:"descripcion"`
	ParentUbicacionID *string `json:"parent_ubicacion_id"`
}

// UbicacionResponse salida de una ubicación.
type UbicacionResponse struct {
	ID                string  `json:"id"`
	Nombre            string  `json:"nombre"`
	Descripcion       string  `json:"descripcion"`
	ParentUbicacionID *string `json:"parent_ubicacion_id"`
}
