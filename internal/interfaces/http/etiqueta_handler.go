package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/usecase"
	"github.com/jhoicas/activos-api/internal/domain"
)

// EtiquetaHandler sirve el QR y la etiqueta PDF de los activos.
type EtiquetaHandler struct {
	uc *usecase.EtiquetaUseCase
}

// NewEtiquetaHandler construye el handler de etiquetas.
func NewEtiquetaHandler(uc *usecase.EtiquetaUseCase) *EtiquetaHandler {
	return &EtiquetaHandler{uc: uc}
}

// QR godoc
// @Summary      QR de un activo
// @Tags         etiquetas
// @Produce      png
// @Param        codigo  path  string  true  "Código de inventario"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/qr/{codigo} [get]
func (h *EtiquetaHandler) QR(c *fiber.Ctx) error {
	img, err := h.uc.QRPNG(c.Params("codigo"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(img)
}

// Etiqueta godoc
// @Summary      Etiqueta imprimible de un activo
// @Tags         etiquetas
// @Produce      application/pdf
// @Param        codigo  path  string  true  "Código de inventario"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activos/{codigo}/etiqueta.pdf [get]
func (h *EtiquetaHandler) Etiqueta(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	doc, err := h.uc.EtiquetaPDF(codigo)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "etiqueta_"+codigo+".pdf"))
	return c.Send(doc)
}
