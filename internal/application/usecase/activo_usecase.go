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
	"github.com/jhoicas/activos-api/pkg/normalizar"
)

// ActivoUseCase casos de uso del registro de activos.
type ActivoUseCase struct {
	repo repository.ActivoRepository
	tx   TxRunner
}

// NewActivoUseCase construye el caso de uso.
func NewActivoUseCase(repo repository.ActivoRepository, tx TxRunner) *ActivoUseCase {
	return &ActivoUseCase{repo: repo, tx: tx}
}

// List devuelve todos los activos ordenados por nombre. Si buscar no es vacío
// filtra por nombre, código, marca o modelo ignorando tildes y mayúsculas.
func (uc *ActivoUseCase) List(buscar string) ([]dto.ActivoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivoResponse, 0, len(list))
	for _, a := range list {
		if buscar != "" && !coincide(a, buscar) {
			continue
		}
		items = append(items, *toActivoResponse(a))
	}
	return items, nil
}

func coincide(a *entity.Activo, buscar string) bool {
	return normalizar.Contiene(a.NombreActivo, buscar) ||
		normalizar.Contiene(a.CodigoActivo, buscar) ||
		normalizar.Contiene(a.Marca, buscar) ||
		normalizar.Contiene(a.Modelo, buscar)
}

// Create registra un activo nuevo. Devuelve domain.ErrDuplicate si el código
// o el número de serie ya existen.
func (uc *ActivoUseCase) Create(in dto.CreateActivoRequest) (*dto.ActivoResponse, error) {
	if in.CodigoActivo == "" || in.NombreActivo == "" {
		return nil, fmt.Errorf("%w: codigo_activo y nombre_activo son requeridos", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.StatusEnBodega
	}
	if !entity.StatusActivoValido(status) {
		return nil, fmt.Errorf("%w: status %q inválido", domain.ErrInvalidInput, in.Status)
	}
	fecha, err := parseFecha(in.FechaAdquisicion)
	if err != nil {
		return nil, err
	}
	vidaUtil := in.VidaUtilMeses
	if vidaUtil <= 0 {
		vidaUtil = entity.VidaUtilMesesDefault
	}
	activo := &entity.Activo{
		ID:                uuid.New().String(),
		CodigoActivo:      in.CodigoActivo,
		NombreActivo:      in.NombreActivo,
		Descripcion:       in.Descripcion,
		Marca:             in.Marca,
		Modelo:            in.Modelo,
		NumeroSerie:       in.NumeroSerie,
		Status:            status,
		FechaAdquisicion:  fecha,
		CostoAdquisicion:  in.CostoAdquisicion,
		VidaUtilMeses:     vidaUtil,
		ValorResidual:     in.ValorResidual,
		UbicacionID:       in.UbicacionID,
		UsuarioAsignadoID: in.UsuarioAsignadoID,
		CompraID:          in.CompraID,
		CreatedAt:         time.Now(),
	}
	if err := uc.repo.Create(activo); err != nil {
		return nil, err
	}
	return toActivoResponse(activo), nil
}

// GetByCodigo obtiene un activo por código de inventario; nil si no existe.
func (uc *ActivoUseCase) GetByCodigo(codigo string) (*dto.ActivoResponse, error) {
	activo, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, nil
	}
	return toActivoResponse(activo), nil
}

// Update muta un activo en el lugar. Los campos rastreados (status, ubicación,
// usuario asignado) generan una fila de historial por cambio, en la misma
// transacción que la mutación.
func (uc *ActivoUseCase) Update(ctx context.Context, codigo, usuarioID string, in dto.UpdateActivoRequest) (*dto.ActivoResponse, error) {
	activo, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil && !entity.StatusActivoValido(*in.Status) {
		return nil, fmt.Errorf("%w: status %q inválido", domain.ErrInvalidInput, *in.Status)
	}

	var cambios []entity.HistorialMovimiento
	rastrear := func(campo, anterior, nuevo string) {
		if anterior == nuevo {
			return
		}
		cambios = append(cambios, entity.HistorialMovimiento{
			ID:              uuid.New().String(),
			ActivoID:        activo.ID,
			UsuarioID:       usuarioID,
			FechaCambio:     time.Now(),
			CampoModificado: campo,
			ValorAnterior:   anterior,
			ValorNuevo:      nuevo,
			Nota:            in.Nota,
		})
	}

	if in.NombreActivo != nil {
		activo.NombreActivo = *in.NombreActivo
	}
	if in.Descripcion != nil {
		activo.Descripcion = *in.Descripcion
	}
	if in.Marca != nil {
		activo.Marca = *in.Marca
	}
	if in.Modelo != nil {
		activo.Modelo = *in.Modelo
	}
	if in.NumeroSerie != nil {
		activo.NumeroSerie = in.NumeroSerie
	}
	if in.CostoAdquisicion != nil {
		activo.CostoAdquisicion = *in.CostoAdquisicion
	}
	if in.VidaUtilMeses != nil {
		activo.VidaUtilMeses = *in.VidaUtilMeses
	}
	if in.ValorResidual != nil {
		activo.ValorResidual = *in.ValorResidual
	}
	if in.CompraID != nil {
		activo.CompraID = in.CompraID
	}
	if in.Status != nil {
		rastrear(entity.CampoStatus, activo.Status, *in.Status)
		activo.Status = *in.Status
	}
	if in.UbicacionID != nil {
		rastrear(entity.CampoUbicacion, strPtr(activo.UbicacionID), *in.UbicacionID)
		activo.UbicacionID = in.UbicacionID
	}
	if in.UsuarioAsignadoID != nil {
		rastrear(entity.CampoUsuarioAsignado, strPtr(activo.UsuarioAsignadoID), *in.UsuarioAsignadoID)
		activo.UsuarioAsignadoID = in.UsuarioAsignadoID
	}

	err = uc.tx.Run(ctx, func(activos repository.ActivoRepository, historial repository.HistorialRepository) error {
		if err := activos.Update(activo); err != nil {
			return err
		}
		for i := range cambios {
			if err := historial.Create(&cambios[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toActivoResponse(activo), nil
}

// Delete borra un activo por código con su cascada de hijos dentro de una
// sola transacción: si cualquier DELETE falla no queda ningún borrado parcial.
// Idempotente: borrar un código inexistente no es error y no cambia el estado.
func (uc *ActivoUseCase) Delete(ctx context.Context, codigo string) error {
	return uc.tx.Run(ctx, func(activos repository.ActivoRepository, _ repository.HistorialRepository) error {
		return activos.DeleteByCodigo(codigo)
	})
}

func strPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func toActivoResponse(a *entity.Activo) *dto.ActivoResponse {
	if a == nil {
		return nil
	}
	return &dto.ActivoResponse{
		ID:                   a.ID,
		CodigoActivo:         a.CodigoActivo,
		NombreActivo:         a.NombreActivo,
		Descripcion:          a.Descripcion,
		Marca:                a.Marca,
		Modelo:               a.Modelo,
		NumeroSerie:          a.NumeroSerie,
		Status:               a.Status,
		FechaAdquisicion:     a.FechaAdquisicion.Format(formatoFecha),
		CostoAdquisicion:     a.CostoAdquisicion,
		VidaUtilMeses:        a.VidaUtilMeses,
		ValorResidual:        a.ValorResidual,
		UbicacionID:          a.UbicacionID,
		UsuarioAsignadoID:    a.UsuarioAsignadoID,
		CompraID:             a.CompraID,
		UltimaAuditoriaFecha: a.UltimaAuditoriaFecha,
		UltimaAuditoriaPorID: a.UltimaAuditoriaPorID,
		CreatedAt:            a.CreatedAt,
	}
}
