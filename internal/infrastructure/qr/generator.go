// Package qr genera las etiquetas QR de los activos como PNG.
// La URL codificada apunta a la página de detalle y su host sale siempre
// de la configuración, nunca de una constante.
package qr

import (
	"bytes"
	"fmt"
	"image/png"
	"net/url"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// Generator codifica URLs de detalle de activos en imágenes QR.
type Generator struct {
	baseURL string
	size    int
}

// NewGenerator construye el generador con la URL pública de la aplicación.
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: baseURL, size: 256}
}

// URLDetalle arma la URL de la página de detalle de un activo.
func (g *Generator) URLDetalle(codigoActivo string) string {
	return g.baseURL + "/activo/view/" + url.PathEscape(codigoActivo)
}

// PNG genera el QR de un activo y devuelve los bytes de la imagen.
func (g *Generator) PNG(codigoActivo string) ([]byte, error) {
	code, err := qr.Encode(g.URLDetalle(codigoActivo), qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("codificar QR: %w", err)
	}
	code, err = barcode.Scale(code, g.size, g.size)
	if err != nil {
		return nil, fmt.Errorf("escalar QR: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, fmt.Errorf("codificar PNG: %w", err)
	}
	return buf.Bytes(), nil
}
