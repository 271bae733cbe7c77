package memory

import (
	"context"
	"sync"

	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase/interfaces"
)

// SessionStore keeps sessions in process memory. Sessions are lost on restart
// and are not shared between instances.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
}

var _ interfaces.ISessionStore = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]entities.Session)}
}

func (s *SessionStore) Save(_ context.Context, session entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

// Get returns a zero-value Session when token is unknown.
func (s *SessionStore) Get(_ context.Context, token string) (entities.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[token], nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
