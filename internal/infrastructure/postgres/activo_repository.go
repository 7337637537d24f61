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

var _ repository.ActivoRepository = (*ActivoRepo)(nil)

const columnasActivo = `id, codigo_activo, nombre_activo, descripcion, marca, modelo, numero_serie, status,
		fecha_adquisicion, costo_adquisicion, vida_util_meses, valor_residual,
		ubicacion_id, usuario_asignado_id, compra_id,
		ultima_auditoria_fecha, ultima_auditoria_por_id, created_at`

// ActivoRepo implementación del puerto ActivoRepository sobre PostgreSQL (usable con pool o tx).
type ActivoRepo struct {
	q Querier
}

// NewActivoRepository construye el adaptador de persistencia para activos. Pasar pool o tx (Querier).
func NewActivoRepository(q Querier) *ActivoRepo {
	return &ActivoRepo{q: q}
}

// Create persiste un nuevo activo. Devuelve domain.ErrDuplicate si el código
// o el número de serie ya existen.
func (r *ActivoRepo) Create(activo *entity.Activo) error {
	query := `
		INSERT INTO activos (` + columnasActivo + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		activo.ID, activo.CodigoActivo, activo.NombreActivo, activo.Descripcion,
		activo.Marca, activo.Modelo, activo.NumeroSerie, activo.Status,
		activo.FechaAdquisicion, activo.CostoAdquisicion, activo.VidaUtilMeses, activo.ValorResidual,
		activo.UbicacionID, activo.UsuarioAsignadoID, activo.CompraID,
		activo.UltimaAuditoriaFecha, activo.UltimaAuditoriaPorID, activo.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert activo: %w", err)
	}
	return nil
}

// GetByID obtiene un activo por ID; nil si no existe.
func (r *ActivoRepo) GetByID(id string) (*entity.Activo, error) {
	return r.getWhere(`id = $1`, id)
}

// GetByCodigo obtiene un activo por código de inventario; nil si no existe.
func (r *ActivoRepo) GetByCodigo(codigo string) (*entity.Activo, error) {
	return r.getWhere(`codigo_activo = $1`, codigo)
}

func (r *ActivoRepo) getWhere(cond string, arg any) (*entity.Activo, error) {
	query := `SELECT ` + columnasActivo + ` FROM activos WHERE ` + cond
	var a entity.Activo
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.CodigoActivo, &a.NombreActivo, &a.Descripcion,
		&a.Marca, &a.Modelo, &a.NumeroSerie, &a.Status,
		&a.FechaAdquisicion, &a.CostoAdquisicion, &a.VidaUtilMeses, &a.ValorResidual,
		&a.UbicacionID, &a.UsuarioAsignadoID, &a.CompraID,
		&a.UltimaAuditoriaFecha, &a.UltimaAuditoriaPorID, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activo: %w", err)
	}
	return &a, nil
}

// List devuelve todos los activos ordenados por nombre_activo.
func (r *ActivoRepo) List() ([]*entity.Activo, error) {
	return r.listWhere(``)
}

// ListByUbicacion devuelve los activos de una ubicación.
func (r *ActivoRepo) ListByUbicacion(ubicacionID string) ([]*entity.Activo, error) {
	return r.listWhere(`WHERE ubicacion_id = $1`, ubicacionID)
}

func (r *ActivoRepo) listWhere(cond string, args ...any) ([]*entity.Activo, error) {
	query := `SELECT ` + columnasActivo + ` FROM activos ` + cond + ` ORDER BY nombre_activo`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Activo
	for rows.Next() {
		var a entity.Activo
		if err := rows.Scan(
			&a.ID, &a.CodigoActivo, &a.NombreActivo, &a.Descripcion,
			&a.Marca, &a.Modelo, &a.NumeroSerie, &a.Status,
			&a.FechaAdquisicion, &a.CostoAdquisicion, &a.VidaUtilMeses, &a.ValorResidual,
			&a.UbicacionID, &a.UsuarioAsignadoID, &a.CompraID,
			&a.UltimaAuditoriaFecha, &a.UltimaAuditoriaPorID, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan activo: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables del activo.
func (r *ActivoRepo) Update(activo *entity.Activo) error {
	query := `
		UPDATE activos SET nombre_activo = $2, descripcion = $3, marca = $4, modelo = $5,
			numero_serie = $6, status = $7, fecha_adquisicion = $8, costo_adquisicion = $9,
			vida_util_meses = $10, valor_residual = $11, ubicacion_id = $12,
			usuario_asignado_id = $13, compra_id = $14,
			ultima_auditoria_fecha = $15, ultima_auditoria_por_id = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		activo.ID, activo.NombreActivo, activo.Descripcion, activo.Marca, activo.Modelo,
		activo.NumeroSerie, activo.Status, activo.FechaAdquisicion, activo.CostoAdquisicion,
		activo.VidaUtilMeses, activo.ValorResidual, activo.UbicacionID,
		activo.UsuarioAsignadoID, activo.CompraID,
		activo.UltimaAuditoriaFecha, activo.UltimaAuditoriaPorID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update activo: %w", err)
	}
	return nil
}

// DeleteByCodigo borra el activo con sus hijos en cascada explícita.
// Emite varios DELETE sobre el Querier recibido: debe correr sobre una tx
// (vía TxRunner) para que la cascada sea atómica.
// Idempotente: si el código no existe no hace nada y no devuelve error.
func (r *ActivoRepo) DeleteByCodigo(codigo string) error {
	ctx := context.Background()
	activo, err := r.GetByCodigo(codigo)
	if err != nil {
		return err
	}
	if activo == nil {
		return nil
	}
	// La cascada es una operación explícita del borrado, no un comportamiento
	// implícito del esquema.
	borrados := []string{
		`DELETE FROM mantenimientos WHERE activo_id = $1`,
		`DELETE FROM historial_movimientos WHERE activo_id = $1`,
		`DELETE FROM auditoria_detalles WHERE activo_id = $1`,
		`DELETE FROM activos WHERE id = $1`,
	}
	for _, q := range borrados {
		if _, err := r.q.Exec(ctx, q, activo.ID); err != nil {
			return fmt.Errorf("delete activo: %w", err)
		}
	}
	return nil
}
