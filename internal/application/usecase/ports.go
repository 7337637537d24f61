package usecase

import (
	"context"

	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks con repos atados a una misma transacción.
// Lo implementa la infraestructura de PostgreSQL.
type TxRunner interface {
	// Run cubre las mutaciones de activos que escriben historial.
	Run(ctx context.Context, fn func(
		activos repository.ActivoRepository,
		historial repository.HistorialRepository,
	) error) error
	// RunAuditoria cubre el escaneo: detalle + update del activo.
	RunAuditoria(ctx context.Context, fn func(
		auditorias repository.AuditoriaRepository,
		activos repository.ActivoRepository,
	) error) error
}
