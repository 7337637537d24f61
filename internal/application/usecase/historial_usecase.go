package usecase

import (
	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// HistorialUseCase lectura del rastro de cambios de un activo.
type HistorialUseCase struct {
	repo       repository.HistorialRepository
	activoRepo repository.ActivoRepository
}

// NewHistorialUseCase construye el caso de uso.
func NewHistorialUseCase(repo repository.HistorialRepository, activoRepo repository.ActivoRepository) *HistorialUseCase {
	return &HistorialUseCase{repo: repo, activoRepo: activoRepo}
}

// ListByActivo lista el historial de un activo por código.
func (uc *HistorialUseCase) ListByActivo(codigoActivo string) ([]dto.HistorialResponse, error) {
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
	items := make([]dto.HistorialResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHistorialResponse(h))
	}
	return items, nil
}

func toHistorialResponse(h *entity.HistorialMovimiento) *dto.HistorialResponse {
	if h == nil {
		return nil
	}
	return &dto.HistorialResponse{
		ID:              h.ID,
		ActivoID:        h.ActivoID,
		UsuarioID:       h.UsuarioID,
		FechaCambio:     h.FechaCambio,
		CampoModificado: h.CampoModificado,
		ValorAnterior:   h.ValorAnterior,
		ValorNuevo:      h.ValorNuevo,
		Nota:            h.Nota,
	}
}
