package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

var _ repository.UbicacionRepository = (*UbicacionRepo)(nil)

// UbicacionRepo implementación del puerto UbicacionRepository sobre PostgreSQL.
type UbicacionRepo struct {
	q Querier
}

// NewUbicacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUbicacionRepository(q Querier) *UbicacionRepo {
	return &UbicacionRepo{q: q}
}

// Create persiste una nueva ubicación. Devuelve domain.ErrDuplicate si el nombre ya existe.
func (r *UbicacionRepo) Create(u *entity.Ubicacion) error {
	query := `
		INSERT INTO ubicaciones (id, nombre, descripcion, parent_ubicacion_id)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, u.ID, u.Nombre, u.Descripcion, u.ParentUbicacionID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ubicacion: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID; nil si no existe.
func (r *UbicacionRepo) GetByID(id string) (*entity.Ubicacion, error) {
	query := `SELECT id, nombre, descripcion, parent_ubicacion_id FROM ubicaciones WHERE id = $1`
	var u entity.Ubicacion
	err := r.q.QueryRow(context.Background(), query, id).Scan(&u.ID, &u.Nombre, &u.Descripcion, &u.ParentUbicacionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ubicacion: %w", err)
	}
	return &u, nil
}

// List lista todas las ubicaciones ordenadas por nombre.
func (r *UbicacionRepo) List() ([]*entity.Ubicacion, error) {
	query := `SELECT id, nombre, descripcion, parent_ubicacion_id FROM ubicaciones ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ubicaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ubicacion
	for rows.Next() {
		var u entity.Ubicacion
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Descripcion, &u.ParentUbicacionID); err != nil {
			return nil, fmt.Errorf("scan ubicacion: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza una ubicación existente.
func (r *UbicacionRepo) Update(u *entity.Ubicacion) error {
	query := `UPDATE ubicaciones SET nombre = $2, descripcion = $3, parent_ubicacion_id = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, u.ID, u.Nombre, u.Descripcion, u.ParentUbicacionID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ubicacion: %w", err)
	}
	return nil
}

// Delete elimina una ubicación por ID.
func (r *UbicacionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ubicaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ubicacion: %w", err)
	}
	return nil
}
