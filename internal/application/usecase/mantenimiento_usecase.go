package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// MantenimientoUseCase casos de uso de mantenimientos de activos.
type MantenimientoUseCase struct {
	repo       repository.MantenimientoRepository
	activoRepo repository.ActivoRepository
}

// NewMantenimientoUseCase construye el caso de uso.
func NewMantenimientoUseCase(repo repository.MantenimientoRepository, activoRepo repository.ActivoRepository) *MantenimientoUseCase {
	return &MantenimientoUseCase{repo: repo, activoRepo: activoRepo}
}

// Registrar registra un mantenimiento sobre un activo identificado por código.
// usuarioID es quien lo realizó (sale de la sesión).
func (uc *MantenimientoUseCase) Registrar(codigoActivo, usuarioID string, in dto.CreateMantenimientoRequest) (*dto.MantenimientoResponse, error) {
	if in.Descripcion == "" {
		return nil, fmt.Errorf("%w: descripcion es requerida", domain.ErrInvalidInput)
	}
	if !entity.TipoMantenimientoValido(in.TipoMantenimiento) {
		return nil, fmt.Errorf("%w: tipo_mantenimiento %q inválido", domain.ErrInvalidInput, in.TipoMantenimiento)
	}
	activo, err := uc.activoRepo.GetByCodigo(codigoActivo)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, domain.ErrNotFound
	}
	fecha, err := parseFecha(in.FechaMantenimiento)
	if err != nil {
		return nil, err
	}
	m := &entity.Mantenimiento{
		ID:                 uuid.New().String(),
		ActivoID:           activo.ID,
		FechaMantenimiento: fecha,
		TipoMantenimiento:  in.TipoMantenimiento,
		Descripcion:        in.Descripcion,
		Costo:              in.Costo,
		RealizadoPorID:     usuarioID,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMantenimientoResponse(m), nil
}

// ListByActivo lista los mantenimientos de un activo por código.
func (uc *MantenimientoUseCase) ListByActivo(codigoActivo string) ([]dto.MantenimientoResponse, error) {
	activo, err := uc.activoRepo.GetByCodigo(codigoActivo)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByActivo(activo.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MantenimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMantenimientoResponse(m))
	}
	return items, nil
}

func toMantenimientoResponse(m *entity.Mantenimiento) *dto.MantenimientoResponse {
	if m == nil {
		return nil
	}
	return &dto.MantenimientoResponse{
		ID:                 m.ID,
		ActivoID:           m.ActivoID,
		FechaMantenimiento: m.FechaMantenimiento.Format(formatoFecha),
		TipoMantenimiento:  m.TipoMantenimiento,
		Descripcion:        m.Descripcion,
		Costo:              m.Costo,
		RealizadoPorID:     m.RealizadoPorID,
	}
}
