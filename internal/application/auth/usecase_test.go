package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/application/auth"
	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	porEmail map[string]*entity.Usuario
	porID    map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{
		porEmail: map[string]*entity.Usuario{},
		porID:    map[string]*entity.Usuario{},
	}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	if _, ok := r.porEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.porEmail[u.Email] = u
	r.porID[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.porID[id], nil
}

func (r *fakeUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	return r.porEmail[email], nil
}

func (r *fakeUsuarioRepo) List() ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.porID {
		out = append(out, u)
	}
	return out, nil
}

func nuevoUC(t *testing.T) (*auth.AuthUseCase, *fakeUsuarioRepo) {
	t.Helper()
	repo := newFakeUsuarioRepo()
	store := newFakeStore()
	return auth.NewAuthUseCase(repo, store), repo
}

type fakeStore struct {
	sesiones map[string]string
	contador int
}

func newFakeStore() *fakeStore {
	return &fakeStore{sesiones: map[string]string{}}
}

func (s *fakeStore) Crear(usuarioID string) (string, error) {
	s.contador++
	id := "sesion-" + usuarioID
	s.sesiones[id] = usuarioID
	return id, nil
}

func (s *fakeStore) UsuarioDe(sessionID string) (string, bool) {
	u, ok := s.sesiones[sessionID]
	return u, ok
}

func (s *fakeStore) Revocar(sessionID string) {
	delete(s.sesiones, sessionID)
}

func registroValido() dto.RegisterRequest {
	return dto.RegisterRequest{
		NombreCompleto: "Ana Gómez",
		Email:          "ana@example.com",
		Password:       "clave-muy-segura",
		Rol:            entity.RolTecnico,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioSinExponerPassword(t *testing.T) {
	uc, repo := nuevoUC(t)

	usuario, err := uc.Register(registroValido())
	require.NoError(t, err)
	require.NotNil(t, usuario)
	assert.NotEmpty(t, usuario.ID)
	assert.Equal(t, "ana@example.com", usuario.Email)
	assert.Equal(t, entity.RolTecnico, usuario.Rol)

	guardado := repo.porEmail["ana@example.com"]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "clave-muy-segura", guardado.PasswordHash,
		"la contraseña nunca se guarda en claro")
}

func TestRegister_RolPorDefectoEsEmpleado(t *testing.T) {
	uc, _ := nuevoUC(t)
	in := registroValido()
	in.Rol = ""

	usuario, err := uc.Register(in)
	require.NoError(t, err)
	assert.Equal(t, entity.RolEmpleado, usuario.Rol)
}

func TestRegister_RechazaRolDesconocido(t *testing.T) {
	uc, _ := nuevoUC(t)
	in := registroValido()
	in.Rol = "SuperUsuario"

	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_RechazaEmailInvalido(t *testing.T) {
	uc, _ := nuevoUC(t)
	in := registroValido()
	in.Email = "no-es-un-email"

	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_RechazaPasswordCorta(t *testing.T) {
	uc, _ := nuevoUC(t)
	in := registroValido()
	in.Password = "corta"

	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := nuevoUC(t)
	_, err := uc.Register(registroValido())
	require.NoError(t, err)

	_, err = uc.Register(registroValido())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Logout / Status
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AbreSesion(t *testing.T) {
	uc, _ := nuevoUC(t)
	_, err := uc.Register(registroValido())
	require.NoError(t, err)

	usuario, sesionID, err := uc.Login(dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "clave-muy-segura",
	})
	require.NoError(t, err)
	require.NotNil(t, usuario)
	assert.NotEmpty(t, sesionID)

	actual, ok := uc.UsuarioActual(sesionID)
	require.True(t, ok)
	assert.Equal(t, usuario.ID, actual.ID)
}

func TestLogin_ErrorGenericoParaEmailYPassword(t *testing.T) {
	uc, _ := nuevoUC(t)
	_, err := uc.Register(registroValido())
	require.NoError(t, err)

	// Email desconocido y password incorrecta deben producir el mismo error.
	_, _, errEmail := uc.Login(dto.LoginRequest{Email: "otra@example.com", Password: "clave-muy-segura"})
	_, _, errPass := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})

	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)
	assert.ErrorIs(t, errPass, domain.ErrUnauthorized)
	assert.Equal(t, errEmail.Error(), errPass.Error(),
		"el mensaje no debe revelar si el email existe")
}

func TestLogout_RevocaLaSesion(t *testing.T) {
	uc, _ := nuevoUC(t)
	_, err := uc.Register(registroValido())
	require.NoError(t, err)
	_, sesionID, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "clave-muy-segura"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(sesionID))

	_, ok := uc.UsuarioActual(sesionID)
	assert.False(t, ok, "la sesión debe quedar revocada")
}

func TestLogout_SinSesionVigente(t *testing.T) {
	uc, _ := nuevoUC(t)
	err := uc.Logout("sesion-inexistente")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestStatus_NuncaFalla(t *testing.T) {
	uc, _ := nuevoUC(t)

	out, err := uc.Status("")
	require.NoError(t, err)
	assert.False(t, out.LoggedIn)
	assert.Nil(t, out.User)
}

func TestStatus_ConSesionVigente(t *testing.T) {
	uc, _ := nuevoUC(t)
	_, err := uc.Register(registroValido())
	require.NoError(t, err)
	_, sesionID, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "clave-muy-segura"})
	require.NoError(t, err)

	out, err := uc.Status(sesionID)
	require.NoError(t, err)
	assert.True(t, out.LoggedIn)
	require.NotNil(t, out.User)
	assert.Equal(t, "ana@example.com", out.User.Email)
}
