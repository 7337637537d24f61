package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// esquema del inventario. Se crea si no existe; no hay tooling de migraciones.
var esquema = []string{
	`CREATE TABLE IF NOT EXISTS usuarios (
		id UUID PRIMARY KEY,
		nombre_completo VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		rol VARCHAR(50) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS ubicaciones (
		id UUID PRIMARY KEY,
		nombre VARCHAR(255) NOT NULL UNIQUE,
		descripcion TEXT NOT NULL DEFAULT '',
		parent_ubicacion_id UUID REFERENCES ubicaciones(id)
	)`,
	`CREATE TABLE IF NOT EXISTS compras (
		id UUID PRIMARY KEY,
		numero_factura VARCHAR(100) NOT NULL DEFAULT '',
		proveedor VARCHAR(255) NOT NULL DEFAULT '',
		fecha_compra DATE NOT NULL,
		solicitado_por_id UUID REFERENCES usuarios(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS activos (
		id UUID PRIMARY KEY,
		codigo_activo VARCHAR(50) NOT NULL UNIQUE,
		nombre_activo VARCHAR(255) NOT NULL,
		descripcion TEXT NOT NULL DEFAULT '',
		marca VARCHAR(100) NOT NULL DEFAULT '',
		modelo VARCHAR(100) NOT NULL DEFAULT '',
		numero_serie VARCHAR(100) UNIQUE,
		status VARCHAR(50) NOT NULL DEFAULT 'En Bodega',
		fecha_adquisicion DATE NOT NULL,
		costo_adquisicion NUMERIC(10,2) NOT NULL,
		vida_util_meses INTEGER NOT NULL DEFAULT 36,
		valor_residual NUMERIC(10,2) NOT NULL DEFAULT 0,
		ubicacion_id UUID REFERENCES ubicaciones(id),
		usuario_asignado_id UUID REFERENCES usuarios(id),
		compra_id UUID REFERENCES compras(id),
		ultima_auditoria_fecha TIMESTAMPTZ,
		ultima_auditoria_por_id UUID REFERENCES usuarios(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS mantenimientos (
		id UUID PRIMARY KEY,
		activo_id UUID NOT NULL REFERENCES activos(id),
		fecha_mantenimiento DATE NOT NULL,
		tipo_mantenimiento VARCHAR(50) NOT NULL,
		descripcion TEXT NOT NULL,
		costo NUMERIC(10,2) NOT NULL DEFAULT 0,
		realizado_por_id UUID NOT NULL REFERENCES usuarios(id)
	)`,
	`CREATE TABLE IF NOT EXISTS historial_movimientos (
		id UUID PRIMARY KEY,
		activo_id UUID NOT NULL REFERENCES activos(id),
		usuario_id UUID NOT NULL REFERENCES usuarios(id),
		fecha_cambio TIMESTAMPTZ NOT NULL DEFAULT now(),
		campo_modificado VARCHAR(100) NOT NULL,
		valor_anterior TEXT NOT NULL DEFAULT '',
		valor_nuevo TEXT NOT NULL DEFAULT '',
		nota TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS auditorias (
		id UUID PRIMARY KEY,
		ubicacion_auditada_id UUID NOT NULL REFERENCES ubicaciones(id),
		auditor_id UUID NOT NULL REFERENCES usuarios(id),
		fecha_inicio TIMESTAMPTZ NOT NULL DEFAULT now(),
		fecha_fin TIMESTAMPTZ,
		status VARCHAR(50) NOT NULL DEFAULT 'En Progreso',
		resumen TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS auditoria_detalles (
		id UUID PRIMARY KEY,
		auditoria_id UUID NOT NULL REFERENCES auditorias(id),
		activo_id UUID NOT NULL REFERENCES activos(id),
		resultado VARCHAR(50) NOT NULL,
		timestamp_scan TIMESTAMPTZ NOT NULL DEFAULT now(),
		nota TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activos_ubicacion ON activos(ubicacion_id)`,
	`CREATE INDEX IF NOT EXISTS idx_mantenimientos_activo ON mantenimientos(activo_id)`,
	`CREATE INDEX IF NOT EXISTS idx_historial_activo ON historial_movimientos(activo_id)`,
	`CREATE INDEX IF NOT EXISTS idx_detalles_auditoria ON auditoria_detalles(auditoria_id)`,
}

// EnsureSchema crea las tablas del inventario si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range esquema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
