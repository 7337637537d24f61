package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/usecase"
)

// prefijo con el que se guarda el tipo de equipo dentro de la descripción
const prefijoTipoEquipo = "Tipo de equipo: "

// LegacyHandler mantiene vivo el contrato /api/products de la aplicación
// anterior, mapeado sobre el registro de activos.
type LegacyHandler struct {
	uc *usecase.ActivoUseCase
}

// NewLegacyHandler construye el handler legacy.
func NewLegacyHandler(uc *usecase.ActivoUseCase) *LegacyHandler {
	return &LegacyHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos (contrato legacy)
// @Tags         legacy
// @Produce      json
// @Success      200  {array}  dto.LegacyProductResponse
// @Router       /api/products [get]
func (h *LegacyHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List("")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.LegacyProductResponse, 0, len(items))
	for i := range items {
		out = append(out, toLegacyResponse(&items[i]))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar producto (contrato legacy)
// @Tags         legacy
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LegacyProductRequest  true  "Producto"
// @Success      201   {object}  dto.LegacyProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *LegacyHandler) Create(c *fiber.Ctx) error {
	var in dto.LegacyProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	req := dto.CreateActivoRequest{
		CodigoActivo: in.InventoryNumber,
		NombreActivo: in.ProductName,
		Marca:        in.Brand,
		Modelo:       in.Model,
		NumeroSerie:  in.SerialNumber,
	}
	if in.EquipmentType != "" {
		req.Descripcion = prefijoTipoEquipo + in.EquipmentType
	}
	activo, err := h.uc.Create(req)
	if err != nil {
		// mismos códigos de error que el endpoint nuevo
		return mapActivoError(c, err)
	}
	resp := toLegacyResponse(activo)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Delete godoc
// @Summary      Eliminar producto (contrato legacy)
// @Tags         legacy
// @Produce      json
// @Param        codigo  path  string  true  "Número de inventario"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/products/{codigo} [delete]
func (h *LegacyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("codigo")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StatusResponse{Status: "success", Message: "producto eliminado"})
}

func toLegacyResponse(a *dto.ActivoResponse) dto.LegacyProductResponse {
	out := dto.LegacyProductResponse{
		ProductName:     a.NombreActivo,
		InventoryNumber: a.CodigoActivo,
		SerialNumber:    a.NumeroSerie,
		Brand:           a.Marca,
		Model:           a.Modelo,
	}
	if strings.HasPrefix(a.Descripcion, prefijoTipoEquipo) {
		out.EquipmentType = strings.TrimPrefix(a.Descripcion, prefijoTipoEquipo)
	}
	return out
}
