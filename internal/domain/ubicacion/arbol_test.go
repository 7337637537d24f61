package ubicacion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/activos-api/internal/domain/ubicacion"
)

// Árbol de prueba:
//
//	sede -> piso1 -> rack
//	sede -> piso2
func padresDePrueba() map[string]string {
	return map[string]string{
		"sede":  "",
		"piso1": "sede",
		"piso2": "sede",
		"rack":  "piso1",
	}
}

func TestCreaCiclo(t *testing.T) {
	casos := []struct {
		nombre     string
		nodo       string
		nuevoPadre string
		esperado   bool
	}{
		{"reparentar a una hoja ajena no cicla", "piso2", "rack", false},
		{"mover a la raíz no cicla", "rack", "", false},
		{"padre propio cicla", "piso1", "piso1", true},
		{"colgar un ancestro bajo su descendiente cicla", "sede", "rack", true},
		{"colgar el padre bajo el hijo cicla", "piso1", "rack", true},
		{"padre nuevo desconocido no cicla", "piso2", "bodega-externa", false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, ubicacion.CreaCiclo(padresDePrueba(), c.nodo, c.nuevoPadre))
		})
	}
}

func TestCreaCiclo_DatosCorruptosNoCuelga(t *testing.T) {
	// a y b ya se apuntan entre sí: la caminata debe terminar igual.
	padres := map[string]string{"a": "b", "b": "a"}
	assert.False(t, ubicacion.CreaCiclo(padres, "c", "a"))
}

func TestRutaHastaRaiz(t *testing.T) {
	ruta := ubicacion.RutaHastaRaiz(padresDePrueba(), "rack")
	assert.Equal(t, []string{"rack", "piso1", "sede"}, ruta)
}

func TestRutaHastaRaiz_NodoRaiz(t *testing.T) {
	ruta := ubicacion.RutaHastaRaiz(padresDePrueba(), "sede")
	assert.Equal(t, []string{"sede"}, ruta)
}
