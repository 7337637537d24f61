package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
	"github.com/jhoicas/activos-api/internal/domain/ubicacion"
)

// UbicacionUseCase casos de uso CRUD del árbol de ubicaciones.
type UbicacionUseCase struct {
	repo repository.UbicacionRepository
}

// NewUbicacionUseCase construye el caso de uso.
func NewUbicacionUseCase(repo repository.UbicacionRepository) *UbicacionUseCase {
	return &UbicacionUseCase{repo: repo}
}

// Create crea una ubicación, validando que el padre exista y no forme ciclo.
func (uc *UbicacionUseCase) Create(in dto.CreateUbicacionRequest) (*dto.UbicacionResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	if in.ParentUbicacionID != nil {
		padre, err := uc.repo.GetByID(*in.ParentUbicacionID)
		if err != nil {
			return nil, err
		}
		if padre == nil {
			return nil, fmt.Errorf("%w: la ubicación padre no existe", domain.ErrInvalidInput)
		}
	}
	u := &entity.Ubicacion{
		ID:                uuid.New().String(),
		Nombre:            in.Nombre,
		Descripcion:       in.Descripcion,
		ParentUbicacionID: in.ParentUbicacionID,
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	return toUbicacionResponse(u), nil
}

// GetByID obtiene una ubicación; nil si no existe.
func (uc *UbicacionUseCase) GetByID(id string) (*dto.UbicacionResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return toUbicacionResponse(u), nil
}

// List lista todas las ubicaciones.
func (uc *UbicacionUseCase) List() ([]dto.UbicacionResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UbicacionResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUbicacionResponse(u))
	}
	return items, nil
}

// Update actualiza una ubicación. Reparentar rechaza ciclos con
// domain.ErrCicloUbicacion.
func (uc *UbicacionUseCase) Update(id string, in dto.UpdateUbicacionRequest) (*dto.UbicacionResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		u.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		u.Descripcion = *in.Descripcion
	}
	if in.ParentUbicacionID != nil {
		nuevoPadre := *in.ParentUbicacionID
		if nuevoPadre == "" {
			u.ParentUbicacionID = nil
		} else {
			padres, err := uc.mapaPadres()
			if err != nil {
				return nil, err
			}
			if _, existe := padres[nuevoPadre]; !existe {
				return nil, fmt.Errorf("%w: la ubicación padre no existe", domain.ErrInvalidInput)
			}
			if ubicacion.CreaCiclo(padres, u.ID, nuevoPadre) {
				return nil, domain.ErrCicloUbicacion
			}
			u.ParentUbicacionID = &nuevoPadre
		}
	}
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return toUbicacionResponse(u), nil
}

// Delete elimina una ubicación por ID.
func (uc *UbicacionUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// mapaPadres arma el índice id -> id del padre de todo el árbol.
func (uc *UbicacionUseCase) mapaPadres() (map[string]string, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	padres := make(map[string]string, len(list))
	for _, u := range list {
		padres[u.ID] = strPtr(u.ParentUbicacionID)
	}
	return padres, nil
}

func toUbicacionResponse(u *entity.Ubicacion) *dto.UbicacionResponse {
	if u == nil {
		return nil
	}
	return &dto.UbicacionResponse{
		ID:                u.ID,
		Nombre:            u.Nombre,
		Descripcion:       u.Descripcion,
		ParentUbicacionID: u.ParentUbicacionID,
	}
}
