package usecase_test

import (
	"context"

	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

type fakeActivoRepo struct {
	activos []*entity.Activo
}

func (r *fakeActivoRepo) Create(a *entity.Activo) error {
	// unicidad de código y número de serie, como la constraint real
	for _, existente := range r.activos {
		if existente.CodigoActivo == a.CodigoActivo {
			return domain.ErrDuplicate
		}
		if existente.NumeroSerie != nil && a.NumeroSerie != nil && *existente.NumeroSerie == *a.NumeroSerie {
			return domain.ErrDuplicate
		}
	}
	r.activos = append(r.activos, a)
	return nil
}

func (r *fakeActivoRepo) GetByID(id string) (*entity.Activo, error) {
	for _, a := range r.activos {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeActivoRepo) GetByCodigo(codigo string) (*entity.Activo, error) {
	for _, a := range r.activos {
		if a.CodigoActivo == codigo {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeActivoRepo) List() ([]*entity.Activo, error) {
	return r.activos, nil
}

func (r *fakeActivoRepo) ListByUbicacion(ubicacionID string) ([]*entity.Activo, error) {
	var out []*entity.Activo
	for _, a := range r.activos {
		if a.UbicacionID != nil && *a.UbicacionID == ubicacionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeActivoRepo) Update(a *entity.Activo) error {
	for i, existente := range r.activos {
		if existente.ID == a.ID {
			r.activos[i] = a
			return nil
		}
	}
	return nil
}

func (r *fakeActivoRepo) DeleteByCodigo(codigo string) error {
	out := r.activos[:0]
	for _, a := range r.activos {
		if a.CodigoActivo != codigo {
			out = append(out, a)
		}
	}
	r.activos = out
	return nil
}

type fakeHistorialRepo struct {
	filas []*entity.HistorialMovimiento
}

func (r *fakeHistorialRepo) Create(h *entity.HistorialMovimiento) error {
	r.filas = append(r.filas, h)
	return nil
}

func (r *fakeHistorialRepo) ListByActivo(activoID string) ([]*entity.HistorialMovimiento, error) {
	var out []*entity.HistorialMovimiento
	for _, h := range r.filas {
		if h.ActivoID == activoID {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeUbicacionRepo struct {
	ubicaciones []*entity.Ubicacion
}

func (r *fakeUbicacionRepo) Create(u *entity.Ubicacion) error {
	r.ubicaciones = append(r.ubicaciones, u)
	return nil
}

func (r *fakeUbicacionRepo) GetByID(id string) (*entity.Ubicacion, error) {
	for _, u := range r.ubicaciones {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUbicacionRepo) List() ([]*entity.Ubicacion, error) {
	return r.ubicaciones, nil
}

func (r *fakeUbicacionRepo) Update(u *entity.Ubicacion) error {
	for i, existente := range r.ubicaciones {
		if existente.ID == u.ID {
			r.ubicaciones[i] = u
			return nil
		}
	}
	return nil
}

func (r *fakeUbicacionRepo) Delete(id string) error {
	out := r.ubicaciones[:0]
	for _, u := range r.ubicaciones {
		if u.ID != id {
			out = append(out, u)
		}
	}
	r.ubicaciones = out
	return nil
}

type fakeAuditoriaRepo struct {
	auditorias []*entity.Auditoria
	detalles   []*entity.AuditoriaDetalle
}

func (r *fakeAuditoriaRepo) Create(a *entity.Auditoria) error {
	r.auditorias = append(r.auditorias, a)
	return nil
}

func (r *fakeAuditoriaRepo) GetByID(id string) (*entity.Auditoria, error) {
	for _, a := range r.auditorias {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAuditoriaRepo) List() ([]*entity.Auditoria, error) {
	return r.auditorias, nil
}

func (r *fakeAuditoriaRepo) Update(a *entity.Auditoria) error {
	for i, existente := range r.auditorias {
		if existente.ID == a.ID {
			r.auditorias[i] = a
			return nil
		}
	}
	return nil
}

func (r *fakeAuditoriaRepo) Delete(id string) error {
	out := r.auditorias[:0]
	for _, a := range r.auditorias {
		if a.ID != id {
			out = append(out, a)
		}
	}
	r.auditorias = out
	return nil
}

func (r *fakeAuditoriaRepo) CreateDetalle(d *entity.AuditoriaDetalle) error {
	r.detalles = append(r.detalles, d)
	return nil
}

func (r *fakeAuditoriaRepo) ListDetalles(auditoriaID string) ([]*entity.AuditoriaDetalle, error) {
	var out []*entity.AuditoriaDetalle
	for _, d := range r.detalles {
		if d.AuditoriaID == auditoriaID {
			out = append(out, d)
		}
	}
	return out, nil
}

// fakeTxRunner pasa los mismos fakes al callback; no hay transacción real.
// corridas cuenta cuántos callbacks se ejecutaron, para afirmar que una
// mutación pasó por el runner y no directo al repo.
type fakeTxRunner struct {
	activos    *fakeActivoRepo
	historial  *fakeHistorialRepo
	auditorias *fakeAuditoriaRepo
	corridas   int
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	activos repository.ActivoRepository,
	historial repository.HistorialRepository,
) error) error {
	tx.corridas++
	return fn(tx.activos, tx.historial)
}

func (tx *fakeTxRunner) RunAuditoria(ctx context.Context, fn func(
	auditorias repository.AuditoriaRepository,
	activos repository.ActivoRepository,
) error) error {
	tx.corridas++
	return fn(tx.auditorias, tx.activos)
}
