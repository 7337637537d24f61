package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/activos-api/internal/domain"
)

const formatoFecha = "2006-01-02"

// parseFecha interpreta una fecha YYYY-MM-DD; si viene vacía devuelve hoy.
func parseFecha(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(formatoFecha, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q inválida, formato esperado YYYY-MM-DD", domain.ErrInvalidInput, s)
	}
	return t, nil
}
