package dto

import "github.com/shopspring/decimal"

// ConteoStatus cantidad de activos en un status.
type ConteoStatus struct {
	Status   string `json:"status"`
	Cantidad int    `json:"cantidad"`
}

// ConteoUbicacion cantidad de activos en una ubicación.
type ConteoUbicacion struct {
	UbicacionID string `json:"ubicacion_id"`
	Nombre      string `json:"nombre"`
	Cantidad    int    `json:"cantidad"`
}

// DashboardResponse métricas agregadas del panel.
type DashboardResponse struct {
	TotalActivos          int               `json:"total_activos"`
	PorStatus             []ConteoStatus    `json:"por_status"`
	PorUbicacion          []ConteoUbicacion `json:"por_ubicacion"`
	CostoTotalAdquisicion decimal.Decimal   `json:"costo_total_adquisicion"`
	CostoMantenimiento12M decimal.Decimal   `json:"costo_mantenimiento_12m"`
}
