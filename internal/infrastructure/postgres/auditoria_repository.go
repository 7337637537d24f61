package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

var _ repository.AuditoriaRepository = (*AuditoriaRepo)(nil)

// AuditoriaRepo implementación del puerto AuditoriaRepository sobre PostgreSQL.
type AuditoriaRepo struct {
	q Querier
}

// NewAuditoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditoriaRepository(q Querier) *AuditoriaRepo {
	return &AuditoriaRepo{q: q}
}

// Create persiste una auditoría recién iniciada.
func (r *AuditoriaRepo) Create(a *entity.Auditoria) error {
	query := `
		INSERT INTO auditorias (id, ubicacion_auditada_id, auditor_id, fecha_inicio, fecha_fin, status, resumen)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.UbicacionAuditadaID, a.AuditorID, a.FechaInicio, a.FechaFin, a.Status, a.Resumen,
	)
	if err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}

// GetByID obtiene una auditoría por ID; nil si no existe.
func (r *AuditoriaRepo) GetByID(id string) (*entity.Auditoria, error) {
	query := `
		SELECT id, ubicacion_auditada_id, auditor_id, fecha_inicio, fecha_fin, status, resumen
		FROM auditorias WHERE id = $1`
	var a entity.Auditoria
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.UbicacionAuditadaID, &a.AuditorID, &a.FechaInicio, &a.FechaFin, &a.Status, &a.Resumen,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get auditoria: %w", err)
	}
	return &a, nil
}

// List lista auditorías, más recientes primero.
func (r *AuditoriaRepo) List() ([]*entity.Auditoria, error) {
	query := `
		SELECT id, ubicacion_auditada_id, auditor_id, fecha_inicio, fecha_fin, status, resumen
		FROM auditorias ORDER BY fecha_inicio DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list auditorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Auditoria
	for rows.Next() {
		var a entity.Auditoria
		if err := rows.Scan(&a.ID, &a.UbicacionAuditadaID, &a.AuditorID, &a.FechaInicio, &a.FechaFin, &a.Status, &a.Resumen); err != nil {
			return nil, fmt.Errorf("scan auditoria: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza status, fecha_fin y resumen de una auditoría.
func (r *AuditoriaRepo) Update(a *entity.Auditoria) error {
	query := `UPDATE auditorias SET fecha_fin = $2, status = $3, resumen = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, a.ID, a.FechaFin, a.Status, a.Resumen)
	if err != nil {
		return fmt.Errorf("update auditoria: %w", err)
	}
	return nil
}

// Delete borra la auditoría cascadeando sus detalles de forma explícita.
// Son dos DELETE sobre el Querier recibido: debe correr sobre una tx
// (vía TxRunner) para que la cascada sea atómica.
func (r *AuditoriaRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM auditoria_detalles WHERE auditoria_id = $1`, id); err != nil {
		return fmt.Errorf("delete detalles auditoria: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM auditorias WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete auditoria: %w", err)
	}
	return nil
}

// CreateDetalle inserta el resultado del escaneo de un activo.
func (r *AuditoriaRepo) CreateDetalle(d *entity.AuditoriaDetalle) error {
	query := `
		INSERT INTO auditoria_detalles (id, auditoria_id, activo_id, resultado, timestamp_scan, nota)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.AuditoriaID, d.ActivoID, d.Resultado, d.TimestampScan, d.Nota,
	)
	if err != nil {
		return fmt.Errorf("insert detalle auditoria: %w", err)
	}
	return nil
}

// ListDetalles lista los detalles de una auditoría en orden de escaneo.
func (r *AuditoriaRepo) ListDetalles(auditoriaID string) ([]*entity.AuditoriaDetalle, error) {
	query := `
		SELECT id, auditoria_id, activo_id, resultado, timestamp_scan, nota
		FROM auditoria_detalles WHERE auditoria_id = $1 ORDER BY timestamp_scan`
	rows, err := r.q.Query(context.Background(), query, auditoriaID)
	if err != nil {
		return nil, fmt.Errorf("list detalles auditoria: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditoriaDetalle
	for rows.Next() {
		var d entity.AuditoriaDetalle
		if err := rows.Scan(&d.ID, &d.AuditoriaID, &d.ActivoID, &d.Resultado, &d.TimestampScan, &d.Nota); err != nil {
			return nil, fmt.Errorf("scan detalle auditoria: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
