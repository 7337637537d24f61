package entity

import "time"

// Status válidos de una auditoría.
const (
	AuditoriaEnProgreso = "En Progreso"
	AuditoriaCompletada = "Completada"
	AuditoriaCancelada  = "Cancelada"
)

// StatusAuditorias lista los status válidos de una auditoría.
var StatusAuditorias = []string{AuditoriaEnProgreso, AuditoriaCompletada, AuditoriaCancelada}

// StatusAuditoriaValido reporta si status pertenece al conjunto cerrado.
func StatusAuditoriaValido(status string) bool {
	for _, s := range StatusAuditorias {
		if s == status {
			return true
		}
	}
	return false
}

// Resultados de escaneo válidos durante una auditoría.
const (
	ScanOK                  = "OK"
	ScanUbicacionIncorrecta = "Ubicación Incorrecta"
	ScanNoEncontrado        = "No Encontrado"
	ScanActivoDesconocido   = "Activo Desconocido"
)

// ResultadosScan lista los resultados de escaneo válidos.
var ResultadosScan = []string{ScanOK, ScanUbicacionIncorrecta, ScanNoEncontrado, ScanActivoDesconocido}

// ResultadoScanValido reporta si resultado pertenece al conjunto cerrado.
func ResultadoScanValido(resultado string) bool {
	for _, r := range ResultadosScan {
		if r == resultado {
			return true
		}
	}
	return false
}

// Auditoria es una verificación física de los activos de una ubicación.
type Auditoria struct {
	ID                  string
	UbicacionAuditadaID string
	AuditorID           string
	FechaInicio         time.Time
	FechaFin            *time.Time
	Status              string // En Progreso, Completada, Cancelada
	Resumen             string
}

// AuditoriaDetalle es el resultado del escaneo de un activo dentro de una auditoría.
type AuditoriaDetalle struct {
	ID            string
	AuditoriaID   string
	ActivoID      string
	Resultado     string // OK, Ubicación Incorrecta, No Encontrado, Activo Desconocido
	TimestampScan time.Time
	Nota          string
}
