package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/usecase"
	"github.com/jhoicas/activos-api/internal/domain"
)

// HistorialHandler expone el rastro de movimientos de un activo.
type HistorialHandler struct {
	uc *usecase.HistorialUseCase
}

// NewHistorialHandler construye el handler de historial.
func NewHistorialHandler(uc *usecase.HistorialUseCase) *HistorialHandler {
	return &HistorialHandler{uc: uc}
}

// ListByActivo godoc
// @Summary      Historial de movimientos de un activo
// @Tags         historial
// @Produce      json
// @Param        codigo  path  string  true  "Código de inventario"
// @Success      200  {array}  dto.HistorialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activos/{codigo}/historial [get]
func (h *HistorialHandler) ListByActivo(c *fiber.Ctx) error {
	items, err := h.uc.ListByActivo(c.Params("codigo"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}
