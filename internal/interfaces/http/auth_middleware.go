package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/auth"
	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/pkg/sesiones"
)

// Locals keys para el usuario autenticado en Fiber.
const (
	LocalUsuario  = "usuario"
	LocalSesionID = "sesion_id"
)

// SesionDeps dependencias del middleware de sesión.
type SesionDeps struct {
	AuthUC     *auth.AuthUseCase
	Secret     string
	CookieName string
}

// CargarSesion resuelve la cookie de sesión si existe y deja el usuario en
// c.Locals. Nunca corta la petición: /api/auth/status y las páginas públicas
// necesitan correr sin sesión.
func CargarSesion(deps SesionDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(deps.CookieName)
		if token == "" {
			return c.Next()
		}
		sesionID, err := sesiones.Validar(deps.Secret, token)
		if err != nil {
			// cookie corrupta o expirada: se ignora, no es un error de la petición
			return c.Next()
		}
		usuario, ok := deps.AuthUC.UsuarioActual(sesionID)
		if !ok {
			return c.Next()
		}
		c.Locals(LocalUsuario, usuario)
		c.Locals(LocalSesionID, sesionID)
		return c.Next()
	}
}

// RequiereSesionAPI corta con 401 JSON si no hay sesión vigente.
func RequiereSesionAPI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUsuario(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "se requiere una sesión activa",
			})
		}
		return c.Next()
	}
}

// RequiereSesionPagina redirige a la página de login si no hay sesión vigente.
func RequiereSesionPagina() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUsuario(c) == nil {
			return c.Redirect("/auth/login")
		}
		return c.Next()
	}
}

// GetUsuario devuelve el usuario autenticado del contexto; nil si no hay sesión.
func GetUsuario(c *fiber.Ctx) *entity.Usuario {
	v := c.Locals(LocalUsuario)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.Usuario)
	return u
}

// GetSesionID devuelve el ID de sesión del contexto; "" si no hay sesión.
func GetSesionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSesionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
