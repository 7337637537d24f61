package auth

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// SessionStore puerto del store de sesiones del lado servidor.
type SessionStore interface {
	Crear(usuarioID string) (string, error)
	UsuarioDe(sessionID string) (string, bool)
	Revocar(sessionID string)
}

// patrón simple local@dominio.tld, igual criterio que el frontend
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// AuthUseCase casos de uso de autenticación: registro, login, logout y status.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	store       SessionStore
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, store SessionStore) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, store: store}
}

// Register crea un usuario: valida email, password y rol, hashea con bcrypt y
// persiste. Devuelve domain.ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	if in.NombreCompleto == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: nombre_completo, email y password son requeridos", domain.ErrInvalidInput)
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: formato de email inválido", domain.ErrInvalidInput)
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolEmpleado
	}
	if !entity.RolValido(rol) {
		return nil, fmt.Errorf("%w: rol %q inválido, roles válidos: %s",
			domain.ErrInvalidInput, in.Rol, strings.Join(entity.Roles, ", "))
	}
	existing, err := uc.usuarioRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		ID:             uuid.New().String(),
		NombreCompleto: in.NombreCompleto,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Rol:            rol,
		CreatedAt:      time.Now(),
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return ToUsuarioResponse(usuario), nil
}

// Login verifica email/password y abre una sesión del lado servidor.
// El error es siempre genérico: no se distingue email desconocido de
// contraseña incorrecta.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.UsuarioResponse, string, error) {
	if in.Email == "" || in.Password == "" {
		return nil, "", fmt.Errorf("%w: email y password son requeridos", domain.ErrInvalidInput)
	}
	usuario, err := uc.usuarioRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, "", err
	}
	if usuario == nil {
		return nil, "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", domain.ErrUnauthorized
	}
	sessionID, err := uc.store.Crear(usuario.ID)
	if err != nil {
		return nil, "", err
	}
	return ToUsuarioResponse(usuario), sessionID, nil
}

// Logout revoca la sesión. Devuelve ErrUnauthorized si no hay sesión vigente.
func (uc *AuthUseCase) Logout(sessionID string) error {
	if _, ok := uc.store.UsuarioDe(sessionID); !ok {
		return domain.ErrUnauthorized
	}
	uc.store.Revocar(sessionID)
	return nil
}

// Status devuelve el estado de la sesión; nunca falla por falta de sesión.
func (uc *AuthUseCase) Status(sessionID string) (*dto.StatusSesionResponse, error) {
	usuario, ok := uc.UsuarioActual(sessionID)
	if !ok {
		return &dto.StatusSesionResponse{LoggedIn: false}, nil
	}
	return &dto.StatusSesionResponse{LoggedIn: true, User: ToUsuarioResponse(usuario)}, nil
}

// UsuarioActual resuelve el usuario de una sesión vigente; false si la sesión
// no existe, expiró o el usuario fue borrado.
func (uc *AuthUseCase) UsuarioActual(sessionID string) (*entity.Usuario, bool) {
	if sessionID == "" {
		return nil, false
	}
	usuarioID, ok := uc.store.UsuarioDe(sessionID)
	if !ok {
		return nil, false
	}
	usuario, err := uc.usuarioRepo.GetByID(usuarioID)
	if err != nil || usuario == nil {
		return nil, false
	}
	return usuario, true
}

// ToUsuarioResponse arma el resumen público de un usuario.
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:             u.ID,
		NombreCompleto: u.NombreCompleto,
		Email:          u.Email,
		Rol:            u.Rol,
	}
}
