package repository

import "github.com/jhoicas/activos-api/internal/domain/entity"

// MantenimientoRepository define el puerto de persistencia para Mantenimiento.
type MantenimientoRepository interface {
	Create(m *entity.Mantenimiento) error
	ListByActivo(activoID string) ([]*entity.Mantenimiento, error)
}
