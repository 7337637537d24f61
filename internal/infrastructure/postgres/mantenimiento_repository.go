package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

var _ repository.MantenimientoRepository = (*MantenimientoRepo)(nil)

// MantenimientoRepo implementación del puerto MantenimientoRepository sobre PostgreSQL.
type MantenimientoRepo struct {
	q Querier
}

// NewMantenimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMantenimientoRepository(q Querier) *MantenimientoRepo {
	return &MantenimientoRepo{q: q}
}

// Create persiste un registro de mantenimiento.
func (r *MantenimientoRepo) Create(m *entity.Mantenimiento) error {
	query := `
		INSERT INTO mantenimientos (id, activo_id, fecha_mantenimiento, tipo_mantenimiento, descripcion, costo, realizado_por_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ActivoID, m.FechaMantenimiento, m.TipoMantenimiento, m.Descripcion, m.Costo, m.RealizadoPorID,
	)
	if err != nil {
		return fmt.Errorf("insert mantenimiento: %w", err)
	}
	return nil
}

// ListByActivo lista los mantenimientos de un activo, más recientes primero.
func (r *MantenimientoRepo) ListByActivo(activoID string) ([]*entity.Mantenimiento, error) {
	query := `
		SELECT id, activo_id, fecha_mantenimiento, tipo_mantenimiento, descripcion, costo, realizado_por_id
		FROM mantenimientos WHERE activo_id = $1 ORDER BY fecha_mantenimiento DESC`
	rows, err := r.q.Query(context.Background(), query, activoID)
	if err != nil {
		return nil, fmt.Errorf("list mantenimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Mantenimiento
	for rows.Next() {
		var m entity.Mantenimiento
		if err := rows.Scan(&m.ID, &m.ActivoID, &m.FechaMantenimiento, &m.TipoMantenimiento, &m.Descripcion, &m.Costo, &m.RealizadoPorID); err != nil {
			return nil, fmt.Errorf("scan mantenimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
