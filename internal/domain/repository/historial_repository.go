package repository

import "github.com/jhoicas/activos-api/internal/domain/entity"

// HistorialRepository define el puerto del rastro de cambios de activos.
// Solo inserta y lista: las filas nunca se modifican.
type HistorialRepository interface {
	Create(h *entity.HistorialMovimiento) error
	ListByActivo(activoID string) ([]*entity.HistorialMovimiento, error)
}
