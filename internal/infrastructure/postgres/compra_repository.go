package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo implementación del puerto CompraRepository sobre PostgreSQL.
type CompraRepo struct {
	q Querier
}

// NewCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

// Create persiste una nueva compra.
func (r *CompraRepo) Create(c *entity.Compra) error {
	query := `
		INSERT INTO compras (id, numero_factura, proveedor, fecha_compra, solicitado_por_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.NumeroFactura, c.Proveedor, c.FechaCompra, c.SolicitadoPorID, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert compra: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID; nil si no existe.
func (r *CompraRepo) GetByID(id string) (*entity.Compra, error) {
	query := `
		SELECT id, numero_factura, proveedor, fecha_compra, solicitado_por_id, created_at
		FROM compras WHERE id = $1`
	var c entity.Compra
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.NumeroFactura, &c.Proveedor, &c.FechaCompra, &c.SolicitadoPorID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	return &c, nil
}

// List lista las compras más recientes primero.
func (r *CompraRepo) List() ([]*entity.Compra, error) {
	query := `
		SELECT id, numero_factura, proveedor, fecha_compra, solicitado_por_id, created_at
		FROM compras ORDER BY fecha_compra DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Compra
	for rows.Next() {
		var c entity.Compra
		if err := rows.Scan(&c.ID, &c.NumeroFactura, &c.Proveedor, &c.FechaCompra, &c.SolicitadoPorID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
