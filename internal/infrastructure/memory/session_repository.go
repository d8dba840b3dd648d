// Package memory implementa el repositorio de sesiones en memoria.
// No hay persistencia entre reinicios ni entre sesiones: un recibo vive
// mientras el usuario lo edita y se descarta al volver al formulario.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/Recibos-api/internal/application/receipt"
)

// SessionRepository guarda las sesiones en un mapa protegido por RWMutex.
// El caso de uso es el único mutador de una sesión dada (flujo de un solo
// usuario por sesión); el lock protege el mapa frente a peticiones HTTP
// concurrentes de sesiones distintas.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*receipt.Session

	ttl  time.Duration
	stop chan struct{}
	once sync.Once
}

// NewSessionRepository construye el repositorio. Si ttl > 0, un barrido
// periódico elimina sesiones sin actividad por más de ttl, para que las
// sesiones abandonadas no queden vivas en el proceso para siempre.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	r := &SessionRepository{
		sessions: make(map[string]*receipt.Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	if ttl > 0 {
		go r.janitor()
	}
	return r
}

// Save guarda o reemplaza la sesión.
func (r *SessionRepository) Save(s *receipt.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return nil
}

// Get devuelve la sesión o nil si no existe.
func (r *SessionRepository) Get(id string) (*receipt.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id], nil
}

// Delete elimina la sesión; no-op si no existe.
func (r *SessionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// Stop detiene el barrido de expiración.
func (r *SessionRepository) Stop() {
	r.once.Do(func() { close(r.stop) })
}

func (r *SessionRepository) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case now := <-ticker.C:
			r.sweep(now)
		}
	}
}

// sweep elimina toda sesión sin actividad desde hace más de ttl.
func (r *SessionRepository) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		if now.Sub(s.UpdatedAt) > r.ttl {
			delete(r.sessions, id)
		}
	}
}
