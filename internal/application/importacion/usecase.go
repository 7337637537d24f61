package importacion

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// ErrorFila describe por qué se omitió una fila del lote.
type ErrorFila struct {
	Linea   int    `json:"linea"`
	Codigo  string `json:"codigo_activo,omitempty"`
	Mensaje string `json:"mensaje"`
}

// Reporte resume el resultado de la importación.
type Reporte struct {
	Importados int         `json:"importados"`
	Omitidos   int         `json:"omitidos"`
	Errores    []ErrorFila `json:"errores"`
}

// UseCase importa filas ya leídas como activos nuevos.
type UseCase struct {
	activoRepo repository.ActivoRepository
}

// NewUseCase construye el caso de uso de importación.
func NewUseCase(activoRepo repository.ActivoRepository) *UseCase {
	return &UseCase{activoRepo: activoRepo}
}

// Importar inserta cada fila válida como activo. Las filas malas (campos
// requeridos vacíos, código o serie duplicados) se omiten y quedan en el
// reporte; una fila mala nunca aborta el resto del lote.
func (uc *UseCase) Importar(filas []Fila) (*Reporte, error) {
	reporte := &Reporte{}
	for _, fila := range filas {
		if err := uc.importarFila(fila); err != nil {
			reporte.Omitidos++
			reporte.Errores = append(reporte.Errores, ErrorFila{
				Linea:   fila.Linea,
				Codigo:  fila.CodigoActivo,
				Mensaje: mensajeDe(err),
			})
			continue
		}
		reporte.Importados++
	}
	return reporte, nil
}

func (uc *UseCase) importarFila(fila Fila) error {
	if fila.CodigoActivo == "" || fila.Nombre == "" {
		return fmt.Errorf("%w: ActivoFijo y Equipo son requeridos", domain.ErrInvalidInput)
	}
	var serie *string
	if fila.NumeroSerie != "" {
		serie = &fila.NumeroSerie
	}
	descripcion := ""
	if fila.TipoEquipo != "" {
		descripcion = "Tipo de equipo: " + fila.TipoEquipo
	}
	activo := &entity.Activo{
		ID:               uuid.New().String(),
		CodigoActivo:     fila.CodigoActivo,
		NombreActivo:     fila.Nombre,
		Descripcion:      descripcion,
		Marca:            fila.Marca,
		Modelo:           fila.Modelo,
		NumeroSerie:      serie,
		Status:           entity.StatusEnBodega,
		FechaAdquisicion: time.Now(),
		VidaUtilMeses:    entity.VidaUtilMesesDefault,
		CreatedAt:        time.Now(),
	}
	return uc.activoRepo.Create(activo)
}

func mensajeDe(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return "código de activo o número de serie ya existe"
	case errors.Is(err, domain.ErrInvalidInput):
		return err.Error()
	default:
		return "error al insertar: " + err.Error()
	}
}
