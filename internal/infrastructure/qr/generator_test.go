package qr_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/infrastructure/qr"
)

func TestURLDetalle(t *testing.T) {
	g := qr.NewGenerator("https://activos.example.com")
	assert.Equal(t, "https://activos.example.com/activo/view/AX-001", g.URLDetalle("AX-001"))
}

func TestURLDetalle_EscapaCaracteresEspeciales(t *testing.T) {
	g := qr.NewGenerator("https://activos.example.com")
	assert.Equal(t, "https://activos.example.com/activo/view/AX%2F01%20B", g.URLDetalle("AX/01 B"))
}

func TestPNG_GeneraImagenValida(t *testing.T) {
	g := qr.NewGenerator("https://activos.example.com")

	datos, err := g.PNG("AX-001")
	require.NoError(t, err)
	require.NotEmpty(t, datos)

	img, err := png.Decode(bytes.NewReader(datos))
	require.NoError(t, err, "la salida debe ser un PNG decodificable")
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}
