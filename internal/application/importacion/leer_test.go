package importacion_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/application/importacion"
	"github.com/jhoicas/activos-api/internal/domain"
)

const csvValido = "ActivoFijo;NumeroSerie;Equipo;Marca;Modelo;TipoEquipo\n" +
	"AX-001;SN-123;Laptop;Lenovo;T14;Portátil\n" +
	"AX-002;;Monitor;Dell;U2419;Pantalla\n"

func TestLeerCSV_Valido(t *testing.T) {
	filas, err := importacion.LeerCSV(strings.NewReader(csvValido))
	require.NoError(t, err)
	require.Len(t, filas, 2)

	assert.Equal(t, 2, filas[0].Linea, "la primera fila de datos es la línea 2")
	assert.Equal(t, "AX-001", filas[0].CodigoActivo)
	assert.Equal(t, "SN-123", filas[0].NumeroSerie)
	assert.Equal(t, "Laptop", filas[0].Nombre)
	assert.Equal(t, "Portátil", filas[0].TipoEquipo)

	assert.Equal(t, "", filas[1].NumeroSerie, "serie vacía se conserva vacía")
}

func TestLeerCSV_ColumnasDesordenadas(t *testing.T) {
	// el mapeo es por nombre de columna, no por posición
	csv := "Equipo;ActivoFijo;Marca;Modelo;TipoEquipo;NumeroSerie\n" +
		"Laptop;AX-001;Lenovo;T14;Portátil;SN-123\n"
	filas, err := importacion.LeerCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "AX-001", filas[0].CodigoActivo)
	assert.Equal(t, "Laptop", filas[0].Nombre)
}

func TestLeerCSV_ReportaTodasLasColumnasFaltantes(t *testing.T) {
	csv := "ActivoFijo;Marca\nAX-001;Lenovo\n"
	_, err := importacion.LeerCSV(strings.NewReader(csv))
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// se nombran todas las faltantes, no solo la primera
	assert.Contains(t, err.Error(), "NumeroSerie")
	assert.Contains(t, err.Error(), "Equipo")
	assert.Contains(t, err.Error(), "Modelo")
	assert.Contains(t, err.Error(), "TipoEquipo")
	assert.NotContains(t, err.Error(), "ActivoFijo,")
}

func TestLeerCSV_ToleraBOM(t *testing.T) {
	filas, err := importacion.LeerCSV(strings.NewReader("\uFEFF" + csvValido))
	require.NoError(t, err)
	assert.Len(t, filas, 2)
}

func TestLeerCSV_RecortaEspacios(t *testing.T) {
	csv := "ActivoFijo;NumeroSerie;Equipo;Marca;Modelo;TipoEquipo\n" +
		" AX-001 ; SN-1 ; Laptop ;Lenovo;T14;Portátil\n"
	filas, err := importacion.LeerCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "AX-001", filas[0].CodigoActivo)
	assert.Equal(t, "SN-1", filas[0].NumeroSerie)
}

func TestLeerCSV_SinEncabezado(t *testing.T) {
	_, err := importacion.LeerCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
