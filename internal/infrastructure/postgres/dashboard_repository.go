package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/activos-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo métricas agregadas de solo lectura para el panel.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// TotalActivos cuenta todos los activos.
func (r *DashboardRepo) TotalActivos() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM activos`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total activos: %w", err)
	}
	return total, nil
}

// ActivosPorStatus cuenta activos agrupados por status.
func (r *DashboardRepo) ActivosPorStatus() ([]repository.ConteoPorStatus, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT status, count(*) FROM activos GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, fmt.Errorf("activos por status: %w", err)
	}
	defer rows.Close()
	var list []repository.ConteoPorStatus
	for rows.Next() {
		var c repository.ConteoPorStatus
		if err := rows.Scan(&c.Status, &c.Cantidad); err != nil {
			return nil, fmt.Errorf("scan conteo status: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ActivosPorUbicacion cuenta activos agrupados por ubicación.
func (r *DashboardRepo) ActivosPorUbicacion() ([]repository.ConteoPorUbicacion, error) {
	query := `
		SELECT u.id, u.nombre, count(a.id)
		FROM ubicaciones u
		LEFT JOIN activos a ON a.ubicacion_id = u.id
		GROUP BY u.id, u.nombre
		ORDER BY u.nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("activos por ubicacion: %w", err)
	}
	defer rows.Close()
	var list []repository.ConteoPorUbicacion
	for rows.Next() {
		var c repository.ConteoPorUbicacion
		if err := rows.Scan(&c.UbicacionID, &c.Nombre, &c.Cantidad); err != nil {
			return nil, fmt.Errorf("scan conteo ubicacion: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CostoTotalAdquisicion suma el costo de adquisición de todos los activos.
func (r *DashboardRepo) CostoTotalAdquisicion() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(sum(costo_adquisicion), 0) FROM activos`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("costo total adquisicion: %w", err)
	}
	return total, nil
}

// CostoMantenimientoUltimosMeses suma el costo de mantenimientos recientes.
func (r *DashboardRepo) CostoMantenimientoUltimosMeses(meses int) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(sum(costo), 0) FROM mantenimientos
		 WHERE fecha_mantenimiento >= now() - ($1 * interval '1 month')`, meses).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("costo mantenimiento: %w", err)
	}
	return total, nil
}
