package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/application/auth"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/infrastructure/sesion"
	apphttp "github.com/jhoicas/activos-api/internal/interfaces/http"
	"github.com/jhoicas/activos-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "secreto-solo-para-tests"
	testCookie = "activos_session_test"
)

type fakeUsuarioRepo struct {
	usuarios []*entity.Usuario
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	r.usuarios = append(r.usuarios, u)
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) List() ([]*entity.Usuario, error) {
	return r.usuarios, nil
}

// buildTestApp arma una app Fiber con el flujo completo de sesión:
// middleware CargarSesion, endpoints de auth y una ruta protegida dummy.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := sesion.NewMemoryStore(time.Minute)
	authUC := auth.NewAuthUseCase(&fakeUsuarioRepo{}, store)
	cfg := config.SessionConfig{Secret: testSecret, TTLMinutes: 1, CookieName: testCookie}

	app := fiber.New()
	app.Use(apphttp.CargarSesion(apphttp.SesionDeps{
		AuthUC:     authUC,
		Secret:     testSecret,
		CookieName: testCookie,
	}))

	handler := apphttp.NewAuthHandler(authUC, cfg)
	app.Post("/api/auth/register", handler.Register)
	app.Post("/api/auth/login", handler.Login)
	app.Post("/api/auth/logout", handler.Logout)
	app.Get("/api/auth/status", handler.Status)

	app.Get("/api/protegida", apphttp.RequiereSesionAPI(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"usuario": apphttp.GetUsuario(c).Email})
	})
	app.Get("/pagina", apphttp.RequiereSesionPagina(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, ruta string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()
	datos, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, ruta, bytes.NewReader(datos))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func putJSON(t *testing.T, app *fiber.App, ruta string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()
	datos, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, ruta, bytes.NewReader(datos))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func doRequest(t *testing.T, app *fiber.App, metodo, ruta string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(metodo, ruta, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, app *fiber.App, ruta string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, ruta, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func cookieDeSesion(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	t.Fatal("la respuesta no trae la cookie de sesión")
	return nil
}

func registrarYLoguear(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	resp := postJSON(t, app, "/api/auth/register", fiber.Map{
		"nombre_completo": "Ana Gómez",
		"email":           "ana@example.com",
		"password":        "clave-muy-segura",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "ana@example.com",
		"password": "clave-muy-segura",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return cookieDeSesion(t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EmailDuplicadoRetorna409(t *testing.T) {
	app := buildTestApp(t)
	body := fiber.Map{
		"nombre_completo": "Ana Gómez",
		"email":           "ana@example.com",
		"password":        "clave-muy-segura",
	}
	resp := postJSON(t, app, "/api/auth/register", body, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/register", body, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegister_PasswordCortaRetorna400(t *testing.T) {
	app := buildTestApp(t)
	resp := postJSON(t, app, "/api/auth/register", fiber.Map{
		"nombre_completo": "Ana",
		"email":           "ana@example.com",
		"password":        "corta",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_DejaCookieQueAbreRutasProtegidas(t *testing.T) {
	app := buildTestApp(t)
	cookie := registrarYLoguear(t, app)

	resp := get(t, app, "/api/protegida", cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ana@example.com", body["usuario"])
}

func TestLogin_PasswordIncorrectaRetorna401(t *testing.T) {
	app := buildTestApp(t)
	registrarYLoguear(t, app)

	resp := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "ana@example.com",
		"password": "incorrecta",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRutaProtegida_SinCookieRetorna401(t *testing.T) {
	app := buildTestApp(t)
	resp := get(t, app, "/api/protegida", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRutaProtegida_CookieAdulteradaRetorna401(t *testing.T) {
	app := buildTestApp(t)
	registrarYLoguear(t, app)

	falsa := &http.Cookie{Name: testCookie, Value: "token.falso.aqui"}
	resp := get(t, app, "/api/protegida", falsa)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout_RevocaLaSesionDelServidor(t *testing.T) {
	app := buildTestApp(t)
	cookie := registrarYLoguear(t, app)

	resp := postJSON(t, app, "/api/auth/logout", fiber.Map{}, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// la misma cookie firmada ya no sirve: la sesión murió del lado servidor
	resp = get(t, app, "/api/protegida", cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout_SinSesionRetorna401(t *testing.T) {
	app := buildTestApp(t)
	resp := postJSON(t, app, "/api/auth/logout", fiber.Map{}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStatus_SiempreRetorna200(t *testing.T) {
	app := buildTestApp(t)

	resp := get(t, app, "/api/auth/status", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["logged_in"])

	cookie := registrarYLoguear(t, app)
	resp = get(t, app, "/api/auth/status", cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["logged_in"])
}

func TestPaginaProtegida_SinSesionRedirigeALogin(t *testing.T) {
	app := buildTestApp(t)
	resp := get(t, app, "/pagina", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get("Location"))
}
