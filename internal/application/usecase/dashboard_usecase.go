package usecase

import (
	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// DashboardUseCase arma las métricas agregadas del panel de administración.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Resumen consulta todas las métricas del panel.
func (uc *DashboardUseCase) Resumen() (*dto.DashboardResponse, error) {
	total, err := uc.repo.TotalActivos()
	if err != nil {
		return nil, err
	}
	porStatus, err := uc.repo.ActivosPorStatus()
	if err != nil {
		return nil, err
	}
	porUbicacion, err := uc.repo.ActivosPorUbicacion()
	if err != nil {
		return nil, err
	}
	costoTotal, err := uc.repo.CostoTotalAdquisicion()
	if err != nil {
		return nil, err
	}
	costoMant, err := uc.repo.CostoMantenimientoUltimosMeses(12)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		TotalActivos:          total,
		PorStatus:             make([]dto.ConteoStatus, 0, len(porStatus)),
		PorUbicacion:          make([]dto.ConteoUbicacion, 0, len(porUbicacion)),
		CostoTotalAdquisicion: costoTotal,
		CostoMantenimiento12M: costoMant,
	}
	for _, c := range porStatus {
		out.PorStatus = append(out.PorStatus, dto.ConteoStatus{Status: c.Status, Cantidad: c.Cantidad})
	}
	for _, c := range porUbicacion {
		out.PorUbicacion = append(out.PorUbicacion, dto.ConteoUbicacion{
			UbicacionID: c.UbicacionID, Nombre: c.Nombre, Cantidad: c.Cantidad,
		})
	}
	return out, nil
}
