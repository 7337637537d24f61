// Package pdf genera la etiqueta imprimible de un activo con Maroto v2.
//
// Layout de la etiqueta (media carta apaisada mental, una sola página A6):
//
//	┌────────────────────────────────────┐
//	│  NOMBRE DEL ACTIVO                 │
//	│  Código: AX-001                    │
//	│  ┌────────┐  Marca / Modelo        │
//	│  │   QR   │  Serie                 │
//	│  └────────┘  Ubicación             │
//	└────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/activos-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// EtiquetaGenerator genera etiquetas PDF de activos.
type EtiquetaGenerator struct{}

// NewEtiquetaGenerator construye el generador.
func NewEtiquetaGenerator() *EtiquetaGenerator { return &EtiquetaGenerator{} }

// GenerarEtiqueta genera el PDF de la etiqueta y devuelve sus bytes.
// urlQR es la URL de detalle que codifica el QR (viene de configuración).
func (g *EtiquetaGenerator) GenerarEtiqueta(activo *entity.Activo, ubicacion *entity.Ubicacion, urlQR string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A6).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiqueta de Activo "+activo.CodigoActivo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New(activo.NombreActivo, props.Text{
			Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
		}),
	)))
	m.AddRows(row.New(7).Add(col.New(12).Add(
		text.New("Código: "+activo.CodigoActivo, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))

	m.AddRows(row.New(42).Add(
		col.New(5).Add(code.NewQr(urlQR, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(7).Add(
			text.New(detalleLinea("Marca", activo.Marca), props.Text{Size: 8, Top: 4, Left: 2}),
			text.New(detalleLinea("Modelo", activo.Modelo), props.Text{Size: 8, Top: 10, Left: 2}),
			text.New(detalleLinea("Serie", serie(activo)), props.Text{Size: 8, Top: 16, Left: 2}),
			text.New(detalleLinea("Ubicación", nombreUbicacion(ubicacion)), props.Text{Size: 8, Top: 22, Left: 2}),
			text.New(detalleLinea("Status", activo.Status), props.Text{Size: 8, Top: 28, Left: 2}),
		),
	))

	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Escanea el QR para ver la hoja de vida del activo.", props.Text{
			Size: 7, Color: colorGray, Top: 2,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func detalleLinea(campo, valor string) string {
	if valor == "" {
		valor = "N/A"
	}
	return campo + ": " + valor
}

func serie(a *entity.Activo) string {
	if a.NumeroSerie == nil {
		return ""
	}
	return *a.NumeroSerie
}

func nombreUbicacion(u *entity.Ubicacion) string {
	if u == nil {
		return ""
	}
	return u.Nombre
}
