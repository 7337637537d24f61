package entity

import "time"

// Roles válidos para Usuario (conjunto cerrado, se valida en cada borde de escritura).
const (
	RolAdmin    = "Admin"
	RolTecnico  = "Técnico"
	RolContador = "Contador"
	RolAuditor  = "Auditor"
	RolEmpleado = "Empleado"
)

// Roles lista los roles válidos, útil en mensajes de validación.
var Roles = []string{RolAdmin, RolTecnico, RolContador, RolAuditor, RolEmpleado}

// RolValido reporta si rol pertenece al conjunto cerrado.
func RolValido(rol string) bool {
	for _, r := range Roles {
		if r == rol {
			return true
		}
	}
	return false
}

// Usuario representa un usuario del sistema.
type Usuario struct {
	ID             string
	NombreCompleto string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano después de persistir
	Rol            string // Admin, Técnico, Contador, Auditor, Empleado
	CreatedAt      time.Time
}
