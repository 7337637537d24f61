package repository

import "github.com/shopspring/decimal"

// ConteoPorStatus par status -> cantidad de activos.
type ConteoPorStatus struct {
	Status   string
	Cantidad int
}

// ConteoPorUbicacion par ubicación -> cantidad de activos.
type ConteoPorUbicacion struct {
	UbicacionID string
	Nombre      string
	Cantidad    int
}

// DashboardRepository agrega métricas de solo lectura para el panel.
type DashboardRepository interface {
	TotalActivos() (int, error)
	ActivosPorStatus() ([]ConteoPorStatus, error)
	ActivosPorUbicacion() ([]ConteoPorUbicacion, error)
	CostoTotalAdquisicion() (decimal.Decimal, error)
	CostoMantenimientoUltimosMeses(meses int) (decimal.Decimal, error)
}
