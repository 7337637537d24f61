package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/usecase"
	"github.com/jhoicas/activos-api/internal/domain"
)

// MantenimientoHandler expone la hoja de mantenimientos de un activo.
type MantenimientoHandler struct {
	uc *usecase.MantenimientoUseCase
}

// NewMantenimientoHandler construye el handler de mantenimientos.
func NewMantenimientoHandler(uc *usecase.MantenimientoUseCase) *MantenimientoHandler {
	return &MantenimientoHandler{uc: uc}
}

// ListByActivo godoc
// @Summary      Mantenimientos de un activo
// @Tags         mantenimientos
// @Produce      json
// @Param        codigo  path  string  true  "Código de inventario"
// @Success      200  {array}  dto.MantenimientoResponse
// @Router       /api/activos/{codigo}/mantenimientos [get]
func (h *MantenimientoHandler) ListByActivo(c *fiber.Ctx) error {
	items, err := h.uc.ListByActivo(c.Params("codigo"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Registrar godoc
// @Summary      Registrar mantenimiento
// @Tags         mantenimientos
// @Accept       json
// @Produce      json
// @Param        codigo  path  string  true  "Código de inventario"
// @Param        body    body  dto.CreateMantenimientoRequest  true  "tipo, descripcion, costo, fecha"
// @Success      201  {object}  dto.MantenimientoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activos/{codigo}/mantenimientos [post]
func (h *MantenimientoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.CreateMantenimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	usuario := GetUsuario(c)
	if usuario == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "se requiere una sesión activa"})
	}
	item, err := h.uc.Registrar(c.Params("codigo"), usuario.ID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}
