package dto

// RegisterRequest entrada para registro: nombre, email, password y rol opcional.
type RegisterRequest struct {
	NombreCompleto string `json:"nombre_completo" validate:"required,min=1,max=255"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Rol            string `json:"rol" validate:"omitempty,oneof=Admin Técnico Contador Auditor Empleado"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UsuarioResponse resumen público de un usuario (nunca incluye el hash).
type UsuarioResponse struct {
	ID             string `json:"id"`
	NombreCompleto string `json:"nombre_completo"`
	Email          string `json:"email"`
	Rol            string `json:"rol"`
}

// StatusSesionResponse salida de GET /api/auth/status; siempre 200.
type StatusSesionResponse struct {
	LoggedIn bool             `json:"logged_in"`
	User     *UsuarioResponse `json:"user,omitempty"`
}
