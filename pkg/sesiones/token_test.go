package sesiones_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/pkg/sesiones"
)

const testSecret = "secreto-solo-para-tests"

func TestFirmarYValidar_RoundTrip(t *testing.T) {
	token, err := sesiones.Firmar(testSecret, "sesion-123", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sesionID, err := sesiones.Validar(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "sesion-123", sesionID)
}

func TestFirmar_RechazaSecretVacio(t *testing.T) {
	_, err := sesiones.Firmar("", "sesion-123", 60)
	assert.Error(t, err, "sin secret no debe firmarse nada")
}

func TestFirmar_RechazaSesionVacia(t *testing.T) {
	_, err := sesiones.Firmar(testSecret, "", 60)
	assert.Error(t, err)
}

func TestValidar_RechazaOtroSecret(t *testing.T) {
	token, err := sesiones.Firmar(testSecret, "sesion-123", 60)
	require.NoError(t, err)

	_, err = sesiones.Validar("otro-secret", token)
	assert.Error(t, err, "un token firmado con otro secret no debe validar")
}

func TestValidar_RechazaTokenExpirado(t *testing.T) {
	token, err := sesiones.Firmar(testSecret, "sesion-123", -1)
	require.NoError(t, err)

	_, err = sesiones.Validar(testSecret, token)
	assert.Error(t, err, "un token vencido no debe validar")
}

func TestValidar_RechazaBasura(t *testing.T) {
	_, err := sesiones.Validar(testSecret, "esto.no.es-un-jwt")
	assert.Error(t, err)
}
