package repository

import "github.com/jhoicas/activos-api/internal/domain/entity"

// CompraRepository define el puerto de persistencia para Compra.
type CompraRepository interface {
	Create(compra *entity.Compra) error
	GetByID(id string) (*entity.Compra, error)
	List() ([]*entity.Compra, error)
}
