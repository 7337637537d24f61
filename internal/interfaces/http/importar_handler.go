package http

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/importacion"
)

// ImportarHandler recibe archivos CSV o XLSX con activos para carga masiva.
type ImportarHandler struct {
	uc *importacion.UseCase
}

// NewImportarHandler construye el handler de importación.
func NewImportarHandler(uc *importacion.UseCase) *ImportarHandler {
	return &ImportarHandler{uc: uc}
}

// Importar godoc
// @Summary      Importar activos desde archivo
// @Description  Acepta CSV (separado por ';') o XLSX en el campo multipart "archivo". Las filas inválidas se omiten y se reportan; el resto se importa.
// @Tags         importacion
// @Accept       multipart/form-data
// @Produce      json
// @Param        archivo  formData  file  true  "Archivo CSV o XLSX"
// @Success      200  {object}  importacion.Reporte
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/importar [post]
func (h *ImportarHandler) Importar(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se requiere el archivo en el campo 'archivo'"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	var filas []importacion.Fila
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv":
		filas, err = importacion.LeerCSV(f)
	case ".xlsx":
		filas, err = importacion.LeerXLSX(f)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato no soportado, use .csv o .xlsx"})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	reporte, err := h.uc.Importar(filas)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(reporte)
}
