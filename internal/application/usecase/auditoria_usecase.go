package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// AuditoriaUseCase ciclo de vida de una auditoría física:
// iniciar -> escanear activos -> finalizar o cancelar.
type AuditoriaUseCase struct {
	repo          repository.AuditoriaRepository
	activoRepo    repository.ActivoRepository
	ubicacionRepo repository.UbicacionRepository
	tx            TxRunner
}

// NewAuditoriaUseCase construye el caso de uso.
func NewAuditoriaUseCase(
	repo repository.AuditoriaRepository,
	activoRepo repository.ActivoRepository,
	ubicacionRepo repository.UbicacionRepository,
	tx TxRunner,
) *AuditoriaUseCase {
	return &AuditoriaUseCase{repo: repo, activoRepo: activoRepo, ubicacionRepo: ubicacionRepo, tx: tx}
}

// Iniciar abre una auditoría En Progreso sobre una ubicación.
// auditorID sale de la sesión.
func (uc *AuditoriaUseCase) Iniciar(auditorID string, in dto.IniciarAuditoriaRequest) (*dto.AuditoriaResponse, error) {
	if in.UbicacionID == "" {
		return nil, fmt.Errorf("%w: ubicacion_id es requerido", domain.ErrInvalidInput)
	}
	u, err := uc.ubicacionRepo.GetByID(in.UbicacionID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: la ubicación no existe", domain.ErrInvalidInput)
	}
	a := &entity.Auditoria{
		ID:                  uuid.New().String(),
		UbicacionAuditadaID: in.UbicacionID,
		AuditorID:           auditorID,
		FechaInicio:         time.Now(),
		Status:              entity.AuditoriaEnProgreso,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAuditoriaResponse(a), nil
}

// Escanear registra el resultado del escaneo de un activo dentro de una
// auditoría en progreso. OK y Ubicación Incorrecta actualizan los campos
// ultima_auditoria_* del activo; todo en una transacción.
func (uc *AuditoriaUseCase) Escanear(ctx context.Context, auditoriaID string, in dto.EscanearActivoRequest) (*dto.AuditoriaDetalleResponse, error) {
	if !entity.ResultadoScanValido(in.Resultado) {
		return nil, fmt.Errorf("%w: resultado %q inválido", domain.ErrInvalidInput, in.Resultado)
	}
	a, err := uc.repo.GetByID(auditoriaID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if a.Status != entity.AuditoriaEnProgreso {
		return nil, domain.ErrAuditoriaCerrada
	}
	activo, err := uc.activoRepo.GetByCodigo(in.CodigoActivo)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, fmt.Errorf("%w: activo %q no existe", domain.ErrInvalidInput, in.CodigoActivo)
	}

	detalle := &entity.AuditoriaDetalle{
		ID:            uuid.New().String(),
		AuditoriaID:   a.ID,
		ActivoID:      activo.ID,
		Resultado:     in.Resultado,
		TimestampScan: time.Now(),
		Nota:          in.Nota,
	}
	err = uc.tx.RunAuditoria(ctx, func(auditorias repository.AuditoriaRepository, activos repository.ActivoRepository) error {
		if err := auditorias.CreateDetalle(detalle); err != nil {
			return err
		}
		if in.Resultado == entity.ScanOK || in.Resultado == entity.ScanUbicacionIncorrecta {
			ahora := detalle.TimestampScan
			activo.UltimaAuditoriaFecha = &ahora
			activo.UltimaAuditoriaPorID = &a.AuditorID
			return activos.Update(activo)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDetalleResponse(detalle), nil
}

// Finalizar cierra una auditoría en progreso con status Completada.
func (uc *AuditoriaUseCase) Finalizar(auditoriaID string, in dto.FinalizarAuditoriaRequest) (*dto.AuditoriaResponse, error) {
	return uc.cerrar(auditoriaID, entity.AuditoriaCompletada, in.Resumen)
}

// Cancelar cierra una auditoría en progreso con status Cancelada.
func (uc *AuditoriaUseCase) Cancelar(auditoriaID string) (*dto.AuditoriaResponse, error) {
	return uc.cerrar(auditoriaID, entity.AuditoriaCancelada, "")
}

func (uc *AuditoriaUseCase) cerrar(auditoriaID, status, resumen string) (*dto.AuditoriaResponse, error) {
	a, err := uc.repo.GetByID(auditoriaID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if a.Status != entity.AuditoriaEnProgreso {
		return nil, domain.ErrAuditoriaCerrada
	}
	ahora := time.Now()
	a.FechaFin = &ahora
	a.Status = status
	if resumen != "" {
		a.Resumen = resumen
	}
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toAuditoriaResponse(a), nil
}

// GetConDetalles obtiene una auditoría con sus escaneos; nil si no existe.
func (uc *AuditoriaUseCase) GetConDetalles(auditoriaID string) (*dto.AuditoriaConDetallesResponse, error) {
	a, err := uc.repo.GetByID(auditoriaID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	detalles, err := uc.repo.ListDetalles(a.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.AuditoriaConDetallesResponse{
		AuditoriaResponse: *toAuditoriaResponse(a),
		Detalles:          make([]dto.AuditoriaDetalleResponse, 0, len(detalles)),
	}
	for _, d := range detalles {
		out.Detalles = append(out.Detalles, *toDetalleResponse(d))
	}
	return out, nil
}

// List lista todas las auditorías.
func (uc *AuditoriaUseCase) List() ([]dto.AuditoriaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditoriaResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAuditoriaResponse(a))
	}
	return items, nil
}

// Delete borra una auditoría y sus detalles en una sola transacción.
func (uc *AuditoriaUseCase) Delete(ctx context.Context, auditoriaID string) error {
	return uc.tx.RunAuditoria(ctx, func(auditorias repository.AuditoriaRepository, _ repository.ActivoRepository) error {
		return auditorias.Delete(auditoriaID)
	})
}

func toAuditoriaResponse(a *entity.Auditoria) *dto.AuditoriaResponse {
	if a == nil {
		return nil
	}
	return &dto.AuditoriaResponse{
		ID:                  a.ID,
		UbicacionAuditadaID: a.UbicacionAuditadaID,
		AuditorID:           a.AuditorID,
		FechaInicio:         a.FechaInicio,
		FechaFin:            a.FechaFin,
		Status:              a.Status,
		Resumen:             a.Resumen,
	}
}

func toDetalleResponse(d *entity.AuditoriaDetalle) *dto.AuditoriaDetalleResponse {
	if d == nil {
		return nil
	}
	return &dto.AuditoriaDetalleResponse{
		ID:            d.ID,
		AuditoriaID:   d.AuditoriaID,
		ActivoID:      d.ActivoID,
		Resultado:     d.Resultado,
		TimestampScan: d.TimestampScan,
		Nota:          d.Nota,
	}
}
