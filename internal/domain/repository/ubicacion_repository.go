package repository

import "github.com/jhoicas/activos-api/internal/domain/entity"

// UbicacionRepository define el puerto de persistencia para Ubicacion.
type UbicacionRepository interface {
	Create(ubicacion *entity.Ubicacion) error
	GetByID(id string) (*entity.Ubicacion, error)
	List() ([]*entity.Ubicacion, error)
	Update(ubicacion *entity.Ubicacion) error
	Delete(id string) error
}
