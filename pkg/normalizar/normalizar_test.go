package normalizar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/activos-api/pkg/normalizar"
)

func TestPlegar_QuitaTildesYMayusculas(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Teléfono", "telefono"},
		{"CÁMARA", "camara"},
		{"ubicación", "ubicacion"},
		{"ÑOÑO", "nono"},
		{"sin-cambios", "sin-cambios"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, normalizar.Plegar(c.entrada), "entrada %q", c.entrada)
	}
}

func TestContiene_IgnoraTildesYMayusculas(t *testing.T) {
	assert.True(t, normalizar.Contiene("Cámara de Vigilancia", "camara"))
	assert.True(t, normalizar.Contiene("Laptop Lenovo", "LENOVO"))
	assert.True(t, normalizar.Contiene("Monitor", "monitor"))
	assert.False(t, normalizar.Contiene("Impresora", "escaner"))
}

func TestContiene_AgujaVaciaSiempreCoincide(t *testing.T) {
	assert.True(t, normalizar.Contiene("cualquier cosa", ""))
}
