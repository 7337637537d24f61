// Package importacion implementa la carga masiva de activos desde CSV o XLSX.
//
// Política de fallas parciales: el conjunto completo de encabezados se valida
// antes de escribir cualquier fila, reportando todas las columnas faltantes;
// luego cada fila mala se omite y se acumula en el reporte, sin abortar el
// resto del lote.
package importacion

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/activos-api/internal/domain"
)

// Columnas esperadas del archivo, con los nombres del inventario físico.
const (
	ColCodigo = "ActivoFijo"
	ColSerie  = "NumeroSerie"
	ColNombre = "Equipo"
	ColMarca  = "Marca"
	ColModelo = "Modelo"
	ColTipo   = "TipoEquipo"
)

// ColumnasEsperadas en el orden de referencia del formato.
var ColumnasEsperadas = []string{ColCodigo, ColSerie, ColNombre, ColMarca, ColModelo, ColTipo}

// Fila es un registro del archivo ya mapeado por encabezado.
type Fila struct {
	Linea        int // línea del archivo, 1-based contando el encabezado
	CodigoActivo string
	NumeroSerie  string
	Nombre       string
	Marca        string
	Modelo       string
	TipoEquipo   string
}

// LeerCSV lee un CSV delimitado por ';' (formato del inventario físico).
// Falla de entrada completa si el encabezado no trae todas las columnas,
// nombrando cada columna faltante.
func LeerCSV(r io.Reader) ([]Fila, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true

	encabezado, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: no se pudo leer el encabezado del CSV", domain.ErrInvalidInput)
	}
	indice, err := validarEncabezado(encabezado)
	if err != nil {
		return nil, err
	}

	var filas []Fila
	linea := 1
	for {
		registro, err := cr.Read()
		linea++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV línea %d: %w", linea, err)
		}
		filas = append(filas, filaDesde(registro, indice, linea))
	}
	return filas, nil
}

// LeerXLSX lee la primera hoja de un XLSX con el mismo formato de columnas.
func LeerXLSX(r io.Reader) ([]Fila, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: no se pudo abrir el XLSX", domain.ErrInvalidInput)
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return nil, fmt.Errorf("%w: el XLSX no tiene hojas", domain.ErrInvalidInput)
	}
	rows, err := f.GetRows(hojas[0])
	if err != nil {
		return nil, fmt.Errorf("leer XLSX: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: el XLSX está vacío", domain.ErrInvalidInput)
	}
	indice, err := validarEncabezado(rows[0])
	if err != nil {
		return nil, err
	}

	var filas []Fila
	for i, registro := range rows[1:] {
		filas = append(filas, filaDesde(registro, indice, i+2))
	}
	return filas, nil
}

// validarEncabezado verifica el conjunto completo de columnas y devuelve el
// índice nombre -> posición. Reporta todas las faltantes, no solo la primera.
func validarEncabezado(encabezado []string) (map[string]int, error) {
	indice := make(map[string]int, len(encabezado))
	for i, nombre := range encabezado {
		indice[strings.TrimSpace(strings.TrimPrefix(nombre, "\uFEFF"))] = i
	}
	var faltantes []string
	for _, col := range ColumnasEsperadas {
		if _, ok := indice[col]; !ok {
			faltantes = append(faltantes, col)
		}
	}
	if len(faltantes) > 0 {
		return nil, fmt.Errorf("%w: columnas faltantes en el encabezado: %s",
			domain.ErrInvalidInput, strings.Join(faltantes, ", "))
	}
	return indice, nil
}

func filaDesde(registro []string, indice map[string]int, linea int) Fila {
	celda := func(col string) string {
		i := indice[col]
		if i >= len(registro) {
			return ""
		}
		return strings.TrimSpace(registro[i])
	}
	return Fila{
		Linea:        linea,
		CodigoActivo: celda(ColCodigo),
		NumeroSerie:  celda(ColSerie),
		Nombre:       celda(ColNombre),
		Marca:        celda(ColMarca),
		Modelo:       celda(ColModelo),
		TipoEquipo:   celda(ColTipo),
	}
}
