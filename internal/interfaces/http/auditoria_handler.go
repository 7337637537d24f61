package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/usecase"
	"github.com/jhoicas/activos-api/internal/domain"
)

// AuditoriaHandler expone el ciclo de vida de las auditorías físicas.
type AuditoriaHandler struct {
	uc *usecase.AuditoriaUseCase
}

// NewAuditoriaHandler construye el handler de auditorías.
func NewAuditoriaHandler(uc *usecase.AuditoriaUseCase) *AuditoriaHandler {
	return &AuditoriaHandler{uc: uc}
}

// List godoc
// @Summary      Listar auditorías
// @Tags         auditorias
// @Produce      json
// @Success      200  {array}  dto.AuditoriaResponse
// @Router       /api/auditorias [get]
func (h *AuditoriaHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Iniciar godoc
// @Summary      Iniciar auditoría
// @Tags         auditorias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IniciarAuditoriaRequest  true  "ubicacion_id"
// @Success      201   {object}  dto.AuditoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auditorias [post]
func (h *AuditoriaHandler) Iniciar(c *fiber.Ctx) error {
	var in dto.IniciarAuditoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	usuario := GetUsuario(c)
	if usuario == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "se requiere una sesión activa"})
	}
	auditoria, err := h.uc.Iniciar(usuario.ID, in)
	if err != nil {
		return mapAuditoriaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(auditoria)
}

// Get godoc
// @Summary      Obtener auditoría con detalles
// @Tags         auditorias
// @Produce      json
// @Param        id  path  string  true  "ID de la auditoría"
// @Success      200  {object}  dto.AuditoriaConDetallesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auditorias/{id} [get]
func (h *AuditoriaHandler) Get(c *fiber.Ctx) error {
	auditoria, err := h.uc.GetConDetalles(c.Params("id"))
	if err != nil {
		return mapAuditoriaError(c, err)
	}
	if auditoria == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "auditoría no encontrada"})
	}
	return c.JSON(auditoria)
}

// Escanear godoc
// @Summary      Registrar escaneo en una auditoría
// @Description  Solo sobre auditorías En Progreso. Un escaneo OK o de ubicación incorrecta actualiza la marca de última auditoría del activo en la misma transacción.
// @Tags         auditorias
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la auditoría"
// @Param        body  body  dto.EscanearActivoRequest  true  "codigo_activo, resultado, nota"
// @Success      201  {object}  dto.AuditoriaDetalleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/auditorias/{id}/escanear [post]
func (h *AuditoriaHandler) Escanear(c *fiber.Ctx) error {
	var in dto.EscanearActivoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	detalle, err := h.uc.Escanear(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return mapAuditoriaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(detalle)
}

// Finalizar godoc
// @Summary      Finalizar auditoría
// @Tags         auditorias
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la auditoría"
// @Param        body  body  dto.FinalizarAuditoriaRequest  false  "resumen"
// @Success      200  {object}  dto.AuditoriaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/auditorias/{id}/finalizar [post]
func (h *AuditoriaHandler) Finalizar(c *fiber.Ctx) error {
	var in dto.FinalizarAuditoriaRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	auditoria, err := h.uc.Finalizar(c.Params("id"), in)
	if err != nil {
		return mapAuditoriaError(c, err)
	}
	return c.JSON(auditoria)
}

// Cancelar godoc
// @Summary      Cancelar auditoría
// @Tags         auditorias
// @Produce      json
// @Param        id  path  string  true  "ID de la auditoría"
// @Success      200  {object}  dto.AuditoriaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/auditorias/{id}/cancelar [post]
func (h *AuditoriaHandler) Cancelar(c *fiber.Ctx) error {
	auditoria, err := h.uc.Cancelar(c.Params("id"))
	if err != nil {
		return mapAuditoriaError(c, err)
	}
	return c.JSON(auditoria)
}

// Delete godoc
// @Summary      Eliminar auditoría
// @Tags         auditorias
// @Produce      json
// @Param        id  path  string  true  "ID de la auditoría"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/auditorias/{id} [delete]
func (h *AuditoriaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StatusResponse{Status: "success", Message: "auditoría eliminada"})
}

func mapAuditoriaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrAuditoriaCerrada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "AUDITORIA_CERRADA", Message: "la auditoría ya no está en progreso"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
