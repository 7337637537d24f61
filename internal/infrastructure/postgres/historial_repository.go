package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

var _ repository.HistorialRepository = (*HistorialRepo)(nil)

// HistorialRepo implementación del rastro de cambios sobre PostgreSQL.
// Solo inserta y lee: el historial es append-only.
type HistorialRepo struct {
	q Querier
}

// NewHistorialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHistorialRepository(q Querier) *HistorialRepo {
	return &HistorialRepo{q: q}
}

// Create inserta una entrada del historial.
func (r *HistorialRepo) Create(h *entity.HistorialMovimiento) error {
	query := `
		INSERT INTO historial_movimientos (id, activo_id, usuario_id, fecha_cambio, campo_modificado, valor_anterior, valor_nuevo, nota)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.ActivoID, h.UsuarioID, h.FechaCambio, h.CampoModificado, h.ValorAnterior, h.ValorNuevo, h.Nota,
	)
	if err != nil {
		return fmt.Errorf("insert historial: %w", err)
	}
	return nil
}

// ListByActivo lista el historial de un activo, más reciente primero.
func (r *HistorialRepo) ListByActivo(activoID string) ([]*entity.HistorialMovimiento, error) {
	query := `
		SELECT id, activo_id, usuario_id, fecha_cambio, campo_modificado, valor_anterior, valor_nuevo, nota
		FROM historial_movimientos WHERE activo_id = $1 ORDER BY fecha_cambio DESC`
	rows, err := r.q.Query(context.Background(), query, activoID)
	if err != nil {
		return nil, fmt.Errorf("list historial: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistorialMovimiento
	for rows.Next() {
		var h entity.HistorialMovimiento
		if err := rows.Scan(&h.ID, &h.ActivoID, &h.UsuarioID, &h.FechaCambio, &h.CampoModificado, &h.ValorAnterior, &h.ValorNuevo, &h.Nota); err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
