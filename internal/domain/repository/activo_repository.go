package repository

import "github.com/jhoicas/activos-api/internal/domain/entity"

// ActivoRepository define el puerto de persistencia para Activo.
type ActivoRepository interface {
	Create(activo *entity.Activo) error
	GetByID(id string) (*entity.Activo, error)
	GetByCodigo(codigo string) (*entity.Activo, error)
	// List devuelve todos los activos ordenados por nombre_activo.
	List() ([]*entity.Activo, error)
	ListByUbicacion(ubicacionID string) ([]*entity.Activo, error)
	Update(activo *entity.Activo) error
	// DeleteByCodigo borra el activo y sus hijos (mantenimientos, historial,
	// detalles de auditoría) de forma explícita. Idempotente: no distingue
	// ausencia de éxito.
	DeleteByCodigo(codigo string) error
}
