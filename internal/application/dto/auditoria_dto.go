package dto

import "time"

// IniciarAuditoriaRequest entrada para abrir una auditoría sobre una ubicación.
type IniciarAuditoriaRequest struct {
	UbicacionID string `json:"ubicacion_id" validate:"required"`
}

// EscanearActivoRequest entrada para registrar el escaneo de un activo.
type EscanearActivoRequest struct {
	CodigoActivo string `json:"codigo_activo" validate:"required"`
	Resultado    string `json:"resultado" validate:"required,oneof=OK 'Ubicación Incorrecta' 'No Encontrado' 'Activo Desconocido'"`
	Nota         string `json:"nota"`
}

// FinalizarAuditoriaRequest entrada para cerrar una auditoría.
type FinalizarAuditoriaRequest struct {
	Resumen string `json:"resumen"`
}

// AuditoriaResponse salida de una auditoría.
type AuditoriaResponse struct {
	ID                  string     `json:"id"`
	UbicacionAuditadaID string     `json:"ubicacion_auditada_id"`
	AuditorID           string     `json:"auditor_id"`
	FechaInicio         time.Time  `json:"fecha_inicio"`
	FechaFin            *time.Time `json:"fecha_fin"`
	Status              string     `json:"status"`
	Resumen             string     `json:"resumen"`
}

// AuditoriaDetalleResponse salida del escaneo de un activo.
type AuditoriaDetalleResponse struct {
	ID            string    `json:"id"`
	AuditoriaID   string    `json:"auditoria_id"`
	ActivoID      string    `json:"activo_id"`
	Resultado     string    `json:"resultado"`
	TimestampScan time.Time `json:"timestamp_scan"`
	Nota          string    `json:"nota"`
}

// AuditoriaConDetallesResponse auditoría con sus escaneos.
type AuditoriaConDetallesResponse struct {
	AuditoriaResponse
	Detalles []AuditoriaDetalleResponse `json:"detalles"`
}
