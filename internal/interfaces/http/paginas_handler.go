package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/usecase"
)

// PaginasHandler sirve las páginas HTML de la aplicación.
type PaginasHandler struct {
	activos        *usecase.ActivoUseCase
	historial      *usecase.HistorialUseCase
	mantenimientos *usecase.MantenimientoUseCase
	dashboard      *usecase.DashboardUseCase
	appName        string
}

// NewPaginasHandler construye el handler de páginas.
func NewPaginasHandler(
	activos *usecase.ActivoUseCase,
	historial *usecase.HistorialUseCase,
	mantenimientos *usecase.MantenimientoUseCase,
	dashboard *usecase.DashboardUseCase,
	appName string,
) *PaginasHandler {
	return &PaginasHandler{
		activos:        activos,
		historial:      historial,
		mantenimientos: mantenimientos,
		dashboard:      dashboard,
		appName:        appName,
	}
}

// Dashboard renderiza la página principal con el resumen del inventario.
func (h *PaginasHandler) Dashboard(c *fiber.Ctx) error {
	resumen, err := h.dashboard.Resumen()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
			"AppName": h.appName, "Mensaje": err.Error(),
		})
	}
	return c.Render("dashboard", fiber.Map{
		"AppName": h.appName,
		"Usuario": GetUsuario(c),
		"Resumen": resumen,
	})
}

// Login renderiza el formulario de login.
func (h *PaginasHandler) Login(c *fiber.Ctx) error {
	if GetUsuario(c) != nil {
		return c.Redirect("/dashboard")
	}
	return c.Render("auth/login", fiber.Map{"AppName": h.appName})
}

// Register renderiza el formulario de registro.
func (h *PaginasHandler) Register(c *fiber.Ctx) error {
	if GetUsuario(c) != nil {
		return c.Redirect("/dashboard")
	}
	return c.Render("auth/register", fiber.Map{"AppName": h.appName})
}

// DetalleActivo renderiza la hoja de vida de un activo. Es la página a la que
// apunta el QR de la etiqueta, por eso es pública.
func (h *PaginasHandler) DetalleActivo(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	activo, err := h.activos.GetByCodigo(codigo)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
			"AppName": h.appName, "Mensaje": err.Error(),
		})
	}
	if activo == nil {
		return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{
			"AppName": h.appName, "Codigo": codigo,
		})
	}
	movimientos, err := h.historial.ListByActivo(codigo)
	if err != nil {
		movimientos = nil
	}
	mantenimientos, err := h.mantenimientos.ListByActivo(codigo)
	if err != nil {
		mantenimientos = nil
	}
	return c.Render("activo_detalle", fiber.Map{
		"AppName":        h.appName,
		"Usuario":        GetUsuario(c),
		"Activo":         activo,
		"Historial":      movimientos,
		"Mantenimientos": mantenimientos,
	})
}
