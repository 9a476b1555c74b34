package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionOwner = errors.New("session belongs to another user")

// Manager keeps the open editing sessions in memory, keyed by session id.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	custom   CustomItemStore
}

func NewManager(custom CustomItemStore) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		custom:   custom,
	}
}

// Open starts a fresh session for a user who just logged in.
func (m *Manager) Open(ctx context.Context, username string, isAdmin bool) (*Session, error) {
	s, err := newSession(ctx, uuid.NewString(), username, isAdmin, m.custom)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

// Resume returns the session with id, recreating a blank one when it is not
// in memory (for example after a restart). A live session owned by another
// user is never handed out or replaced; ErrSessionOwner is returned instead.
func (m *Manager) Resume(ctx context.Context, id, username string, isAdmin bool) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if ok {
		if s.Username != username {
			return nil, fmt.Errorf("%w: %s", ErrSessionOwner, id)
		}
		return s, nil
	}

	s, err := newSession(ctx, id, username, isAdmin, m.custom)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[id]; ok {
		if existing.Username != username {
			return nil, fmt.Errorf("%w: %s", ErrSessionOwner, id)
		}
		return existing, nil
	}
	m.sessions[id] = s
	return s, nil
}

// Close drops the session. Closing an unknown id is a no-op.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
