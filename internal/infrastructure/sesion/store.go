// Package sesion implementa el store de sesiones del lado servidor en memoria.
// La app corre en un solo proceso, así que un mapa protegido por RWMutex
// alcanza; las sesiones expiradas se descartan al leerlas.
package sesion

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/activos-api/internal/application/auth"
)

var _ auth.SessionStore = (*MemoryStore)(nil)

type registro struct {
	usuarioID string
	expira    time.Time
}

// MemoryStore store de sesiones en memoria con TTL.
type MemoryStore struct {
	mu       sync.RWMutex
	sesiones map[string]registro
	ttl      time.Duration
}

// NewMemoryStore construye el store con la vida de sesión indicada.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sesiones: make(map[string]registro),
		ttl:      ttl,
	}
}

// Crear registra una sesión nueva para el usuario y devuelve su ID.
func (s *MemoryStore) Crear(usuarioID string) (string, error) {
	id := uuid.New().String()
	s.mu.Lock()
	s.sesiones[id] = registro{usuarioID: usuarioID, expira: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return id, nil
}

// UsuarioDe devuelve el usuario de una sesión vigente; "" si no existe o expiró.
func (s *MemoryStore) UsuarioDe(sessionID string) (string, bool) {
	s.mu.RLock()
	reg, ok := s.sesiones[sessionID]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(reg.expira) {
		s.Revocar(sessionID)
		return "", false
	}
	return reg.usuarioID, true
}

// Revocar elimina una sesión; revocar una inexistente no es error.
func (s *MemoryStore) Revocar(sessionID string) {
	s.mu.Lock()
	delete(s.sesiones, sessionID)
	s.mu.Unlock()
}
