package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/usecase"
	"github.com/jhoicas/activos-api/internal/domain"
)

func nuevoUbicacionUC() (*usecase.UbicacionUseCase, *fakeUbicacionRepo) {
	repo := &fakeUbicacionRepo{}
	return usecase.NewUbicacionUseCase(repo), repo
}

func crearUbicacion(t *testing.T, uc *usecase.UbicacionUseCase, nombre string, parentID *string) string {
	t.Helper()
	out, err := uc.Create(dto.CreateUbicacionRequest{Nombre: nombre, ParentUbicacionID: parentID})
	require.NoError(t, err)
	return out.ID
}

func TestUbicacionCreate_RequiereNombre(t *testing.T) {
	uc, _ := nuevoUbicacionUC()
	_, err := uc.Create(dto.CreateUbicacionRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUbicacionCreate_PadreDebeExistir(t *testing.T) {
	uc, _ := nuevoUbicacionUC()
	fantasma := "no-existe"
	_, err := uc.Create(dto.CreateUbicacionRequest{Nombre: "Sala", ParentUbicacionID: &fantasma})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUbicacionUpdate_ReparentarValido(t *testing.T) {
	uc, _ := nuevoUbicacionUC()
	sede := crearUbicacion(t, uc, "Sede", nil)
	piso1 := crearUbicacion(t, uc, "Piso 1", &sede)
	piso2 := crearUbicacion(t, uc, "Piso 2", &sede)

	out, err := uc.Update(piso2, dto.UpdateUbicacionRequest{ParentUbicacionID: &piso1})
	require.NoError(t, err)
	require.NotNil(t, out.ParentUbicacionID)
	assert.Equal(t, piso1, *out.ParentUbicacionID)
}

func TestUbicacionUpdate_RechazaCiclo(t *testing.T) {
	uc, _ := nuevoUbicacionUC()
	sede := crearUbicacion(t, uc, "Sede", nil)
	piso := crearUbicacion(t, uc, "Piso 1", &sede)
	rack := crearUbicacion(t, uc, "Rack A", &piso)

	// colgar la sede debajo de su nieto formaría un ciclo
	_, err := uc.Update(sede, dto.UpdateUbicacionRequest{ParentUbicacionID: &rack})
	assert.ErrorIs(t, err, domain.ErrCicloUbicacion)

	// el propio nodo como padre también
	_, err = uc.Update(piso, dto.UpdateUbicacionRequest{ParentUbicacionID: &piso})
	assert.ErrorIs(t, err, domain.ErrCicloUbicacion)
}

func TestUbicacionUpdate_MoverARaiz(t *testing.T) {
	uc, _ := nuevoUbicacionUC()
	sede := crearUbicacion(t, uc, "Sede", nil)
	piso := crearUbicacion(t, uc, "Piso 1", &sede)

	raiz := ""
	out, err := uc.Update(piso, dto.UpdateUbicacionRequest{ParentUbicacionID: &raiz})
	require.NoError(t, err)
	assert.Nil(t, out.ParentUbicacionID)
}

func TestUbicacionUpdate_NoExiste(t *testing.T) {
	uc, _ := nuevoUbicacionUC()
	_, err := uc.Update("no-existe", dto.UpdateUbicacionRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
