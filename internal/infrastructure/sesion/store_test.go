package sesion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/infrastructure/sesion"
)

func TestMemoryStore_CrearYResolver(t *testing.T) {
	store := sesion.NewMemoryStore(time.Minute)

	id, err := store.Crear("usuario-1")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	usuarioID, ok := store.UsuarioDe(id)
	assert.True(t, ok)
	assert.Equal(t, "usuario-1", usuarioID)
}

func TestMemoryStore_SesionDesconocida(t *testing.T) {
	store := sesion.NewMemoryStore(time.Minute)

	_, ok := store.UsuarioDe("no-existe")
	assert.False(t, ok)
}

func TestMemoryStore_Revocar(t *testing.T) {
	store := sesion.NewMemoryStore(time.Minute)

	id, err := store.Crear("usuario-1")
	require.NoError(t, err)

	store.Revocar(id)
	_, ok := store.UsuarioDe(id)
	assert.False(t, ok, "una sesión revocada no debe resolver")

	// revocar dos veces no debe fallar
	store.Revocar(id)
}

func TestMemoryStore_SesionExpirada(t *testing.T) {
	store := sesion.NewMemoryStore(-time.Second)

	id, err := store.Crear("usuario-1")
	require.NoError(t, err)

	_, ok := store.UsuarioDe(id)
	assert.False(t, ok, "una sesión con TTL vencido no debe resolver")
}

func TestMemoryStore_SesionesIndependientes(t *testing.T) {
	store := sesion.NewMemoryStore(time.Minute)

	id1, _ := store.Crear("usuario-1")
	id2, _ := store.Crear("usuario-2")
	require.NotEqual(t, id1, id2)

	store.Revocar(id1)
	usuarioID, ok := store.UsuarioDe(id2)
	assert.True(t, ok, "revocar una sesión no debe afectar a otra")
	assert.Equal(t, "usuario-2", usuarioID)
}
