package repository

import "github.com/jhoicas/activos-api/internal/domain/entity"

// AuditoriaRepository define el puerto de persistencia para Auditoria y sus detalles.
type AuditoriaRepository interface {
	Create(a *entity.Auditoria) error
	GetByID(id string) (*entity.Auditoria, error)
	List() ([]*entity.Auditoria, error)
	Update(a *entity.Auditoria) error
	// Delete borra la auditoría y cascadea sus detalles.
	Delete(id string) error

	CreateDetalle(d *entity.AuditoriaDetalle) error
	ListDetalles(auditoriaID string) ([]*entity.AuditoriaDetalle, error)
}
