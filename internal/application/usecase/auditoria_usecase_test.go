package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/usecase"
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
)

type entornoAuditoria struct {
	uc         *usecase.AuditoriaUseCase
	auditorias *fakeAuditoriaRepo
	activos    *fakeActivoRepo
	tx         *fakeTxRunner
	ubicacion  string
}

func nuevoEntornoAuditoria(t *testing.T) *entornoAuditoria {
	t.Helper()
	auditorias := &fakeAuditoriaRepo{}
	activos := &fakeActivoRepo{}
	ubicaciones := &fakeUbicacionRepo{}
	tx := &fakeTxRunner{activos: activos, auditorias: auditorias}

	u := &entity.Ubicacion{ID: "ubicacion-1", Nombre: "Bodega"}
	require.NoError(t, ubicaciones.Create(u))
	require.NoError(t, activos.Create(&entity.Activo{
		ID:           "activo-1",
		CodigoActivo: "AX-001",
		NombreActivo: "Laptop",
		Status:       entity.StatusEnBodega,
	}))

	return &entornoAuditoria{
		uc:         usecase.NewAuditoriaUseCase(auditorias, activos, ubicaciones, tx),
		auditorias: auditorias,
		activos:    activos,
		tx:         tx,
		ubicacion:  u.ID,
	}
}

func (e *entornoAuditoria) iniciar(t *testing.T) string {
	t.Helper()
	out, err := e.uc.Iniciar("auditor-1", dto.IniciarAuditoriaRequest{UbicacionID: e.ubicacion})
	require.NoError(t, err)
	return out.ID
}

func TestIniciar_AbreEnProgreso(t *testing.T) {
	e := nuevoEntornoAuditoria(t)

	out, err := e.uc.Iniciar("auditor-1", dto.IniciarAuditoriaRequest{UbicacionID: e.ubicacion})
	require.NoError(t, err)
	assert.Equal(t, entity.AuditoriaEnProgreso, out.Status)
	assert.Equal(t, "auditor-1", out.AuditorID)
	assert.Nil(t, out.FechaFin)
}

func TestIniciar_UbicacionDesconocida(t *testing.T) {
	e := nuevoEntornoAuditoria(t)

	_, err := e.uc.Iniciar("auditor-1", dto.IniciarAuditoriaRequest{UbicacionID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEscanear_OKActualizaMarcaDeAuditoria(t *testing.T) {
	e := nuevoEntornoAuditoria(t)
	auditoriaID := e.iniciar(t)

	detalle, err := e.uc.Escanear(context.Background(), auditoriaID, dto.EscanearActivoRequest{
		CodigoActivo: "AX-001",
		Resultado:    entity.ScanOK,
	})
	require.NoError(t, err)
	assert.Equal(t, "activo-1", detalle.ActivoID)
	assert.Equal(t, entity.ScanOK, detalle.Resultado)

	activo, err := e.activos.GetByID("activo-1")
	require.NoError(t, err)
	require.NotNil(t, activo.UltimaAuditoriaFecha, "el escaneo OK marca la última auditoría")
	require.NotNil(t, activo.UltimaAuditoriaPorID)
	assert.Equal(t, "auditor-1", *activo.UltimaAuditoriaPorID)
}

func TestEscanear_NoEncontradoNoTocaElActivo(t *testing.T) {
	e := nuevoEntornoAuditoria(t)
	auditoriaID := e.iniciar(t)

	_, err := e.uc.Escanear(context.Background(), auditoriaID, dto.EscanearActivoRequest{
		CodigoActivo: "AX-001",
		Resultado:    entity.ScanNoEncontrado,
	})
	require.NoError(t, err)

	activo, err := e.activos.GetByID("activo-1")
	require.NoError(t, err)
	assert.Nil(t, activo.UltimaAuditoriaFecha)
}

func TestEscanear_ResultadoInvalido(t *testing.T) {
	e := nuevoEntornoAuditoria(t)
	auditoriaID := e.iniciar(t)

	_, err := e.uc.Escanear(context.Background(), auditoriaID, dto.EscanearActivoRequest{
		CodigoActivo: "AX-001",
		Resultado:    "Más o Menos",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEscanear_AuditoriaCerrada(t *testing.T) {
	e := nuevoEntornoAuditoria(t)
	auditoriaID := e.iniciar(t)
	_, err := e.uc.Finalizar(auditoriaID, dto.FinalizarAuditoriaRequest{Resumen: "todo bien"})
	require.NoError(t, err)

	_, err = e.uc.Escanear(context.Background(), auditoriaID, dto.EscanearActivoRequest{
		CodigoActivo: "AX-001",
		Resultado:    entity.ScanOK,
	})
	assert.ErrorIs(t, err, domain.ErrAuditoriaCerrada)
}

func TestFinalizar_CierraConResumen(t *testing.T) {
	e := nuevoEntornoAuditoria(t)
	auditoriaID := e.iniciar(t)

	out, err := e.uc.Finalizar(auditoriaID, dto.FinalizarAuditoriaRequest{Resumen: "faltó un monitor"})
	require.NoError(t, err)
	assert.Equal(t, entity.AuditoriaCompletada, out.Status)
	assert.Equal(t, "faltó un monitor", out.Resumen)
	require.NotNil(t, out.FechaFin)
}

func TestFinalizar_DosVecesFalla(t *testing.T) {
	e := nuevoEntornoAuditoria(t)
	auditoriaID := e.iniciar(t)
	_, err := e.uc.Finalizar(auditoriaID, dto.FinalizarAuditoriaRequest{})
	require.NoError(t, err)

	_, err = e.uc.Finalizar(auditoriaID, dto.FinalizarAuditoriaRequest{})
	assert.ErrorIs(t, err, domain.ErrAuditoriaCerrada)
}

func TestCancelar_CierraComoCancelada(t *testing.T) {
	e := nuevoEntornoAuditoria(t)
	auditoriaID := e.iniciar(t)

	out, err := e.uc.Cancelar(auditoriaID)
	require.NoError(t, err)
	assert.Equal(t, entity.AuditoriaCancelada, out.Status)
}

func TestGetConDetalles_IncluyeEscaneos(t *testing.T) {
	e := nuevoEntornoAuditoria(t)
	auditoriaID := e.iniciar(t)
	_, err := e.uc.Escanear(context.Background(), auditoriaID, dto.EscanearActivoRequest{
		CodigoActivo: "AX-001",
		Resultado:    entity.ScanOK,
	})
	require.NoError(t, err)

	out, err := e.uc.GetConDetalles(auditoriaID)
	require.NoError(t, err)
	assert.Equal(t, auditoriaID, out.ID)
	require.Len(t, out.Detalles, 1)
	assert.Equal(t, entity.ScanOK, out.Detalles[0].Resultado)
}

func TestDeleteAuditoria_CascadaCorreDentroDeLaTransaccion(t *testing.T) {
	e := nuevoEntornoAuditoria(t)
	auditoriaID := e.iniciar(t)
	corridasPrevias := e.tx.corridas

	require.NoError(t, e.uc.Delete(context.Background(), auditoriaID))
	assert.Equal(t, corridasPrevias+1, e.tx.corridas, "el borrado con detalles pasa por el runner")
	assert.Empty(t, e.auditorias.auditorias)
}
