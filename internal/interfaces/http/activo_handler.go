package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/usecase"
	"github.com/jhoicas/activos-api/internal/domain"
)

// ActivoHandler expone el registro de activos por HTTP.
type ActivoHandler struct {
	uc *usecase.ActivoUseCase
}

// NewActivoHandler construye el handler de activos.
func NewActivoHandler(uc *usecase.ActivoUseCase) *ActivoHandler {
	return &ActivoHandler{uc: uc}
}

// List godoc
// @Summary      Listar activos
// @Tags         activos
// @Produce      json
// @Param        buscar  query  string  false  "Filtro por nombre, código, marca o modelo (ignora tildes y mayúsculas)"
// @Success      200  {array}  dto.ActivoResponse
// @Router       /api/activos [get]
func (h *ActivoHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Query("buscar"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Registrar un activo
// @Tags         activos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateActivoRequest  true  "Datos del activo"
// @Success      201   {object}  dto.ActivoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/activos [post]
func (h *ActivoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActivoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	activo, err := h.uc.Create(in)
	if err != nil {
		return mapActivoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(activo)
}

// GetByCodigo godoc
// @Summary      Obtener un activo por código
// @Tags         activos
// @Produce      json
// @Param        codigo  path  string  true  "Código de inventario"
// @Success      200  {object}  dto.ActivoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activos/{codigo} [get]
func (h *ActivoHandler) GetByCodigo(c *fiber.Ctx) error {
	activo, err := h.uc.GetByCodigo(c.Params("codigo"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if activo == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
	}
	return c.JSON(activo)
}

// Update godoc
// @Summary      Actualizar un activo
// @Description  Mutación parcial. Los cambios de status, ubicación o usuario asignado quedan en el historial.
// @Tags         activos
// @Accept       json
// @Produce      json
// @Param        codigo  path  string  true  "Código de inventario"
// @Param        body    body  dto.UpdateActivoRequest  true  "Campos a cambiar"
// @Success      200  {object}  dto.ActivoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activos/{codigo} [put]
func (h *ActivoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateActivoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	usuario := GetUsuario(c)
	if usuario == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "se requiere una sesión activa"})
	}
	activo, err := h.uc.Update(c.UserContext(), c.Params("codigo"), usuario.ID, in)
	if err != nil {
		return mapActivoError(c, err)
	}
	return c.JSON(activo)
}

// Delete godoc
// @Summary      Eliminar un activo
// @Description  Idempotente: borrar un código inexistente también devuelve 200.
// @Tags         activos
// @Produce      json
// @Param        codigo  path  string  true  "Código de inventario"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/activos/{codigo} [delete]
func (h *ActivoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("codigo")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StatusResponse{Status: "success", Message: "activo eliminado"})
}

func mapActivoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un activo con ese código o número de serie"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
