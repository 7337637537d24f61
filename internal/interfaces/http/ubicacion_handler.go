package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/usecase"
	"github.com/jhoicas/activos-api/internal/domain"
)

// UbicacionHandler expone el árbol de ubicaciones por HTTP.
type UbicacionHandler struct {
	uc *usecase.UbicacionUseCase
}

// NewUbicacionHandler construye el handler de ubicaciones.
func NewUbicacionHandler(uc *usecase.UbicacionUseCase) *UbicacionHandler {
	return &UbicacionHandler{uc: uc}
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         ubicaciones
// @Produce      json
// @Success      200  {array}  dto.UbicacionResponse
// @Router       /api/ubicaciones [get]
func (h *UbicacionHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Crear ubicación
// @Tags         ubicaciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUbicacionRequest  true  "nombre, descripcion, parent_id"
// @Success      201   {object}  dto.UbicacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ubicaciones [post]
func (h *UbicacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUbicacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ubicacion, err := h.uc.Create(in)
	if err != nil {
		return mapUbicacionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ubicacion)
}

// GetByID godoc
// @Summary      Obtener ubicación
// @Tags         ubicaciones
// @Produce      json
// @Param        id  path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.UbicacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ubicaciones/{id} [get]
func (h *UbicacionHandler) GetByID(c *fiber.Ctx) error {
	ubicacion, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if ubicacion == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ubicación no encontrada"})
	}
	return c.JSON(ubicacion)
}

// Update godoc
// @Summary      Actualizar ubicación
// @Description  Cambiar el padre valida que no se formen ciclos en el árbol.
// @Tags         ubicaciones
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la ubicación"
// @Param        body  body  dto.UpdateUbicacionRequest  true  "Campos a cambiar"
// @Success      200  {object}  dto.UbicacionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ubicaciones/{id} [put]
func (h *UbicacionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUbicacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ubicacion, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapUbicacionError(c, err)
	}
	return c.JSON(ubicacion)
}

// Delete godoc
// @Summary      Eliminar ubicación
// @Tags         ubicaciones
// @Produce      json
// @Param        id  path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/ubicaciones/{id} [delete]
func (h *UbicacionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StatusResponse{Status: "success", Message: "ubicación eliminada"})
}

func mapUbicacionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCicloUbicacion):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CICLO", Message: "el cambio de padre formaría un ciclo"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ubicación no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
