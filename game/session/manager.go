package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wricardo/jungle-game/game/engine"
	"github.com/wricardo/jungle-game/game/service"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyExists = errors.New("session already exists")
)

// Manager handles game session lifecycle
type Manager struct {
	sessions map[string]*service.Session
	mu       sync.RWMutex
}

// NewManager creates a new session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*service.Session),
	}
}

// Create starts a session on a copy of start. An empty id gets a generated one.
func (m *Manager) Create(id, setupName string, start *engine.Board) (*service.Session, error) {
	if id == "" {
		id = generateSessionID()
	}

	eng, err := engine.NewEngine(start)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(id)
	if _, exists := m.sessions[key]; exists {
		return nil, ErrSessionAlreadyExists
	}

	now := time.Now()
	sess := &service.Session{
		ID:             id,
		SetupName:      setupName,
		Engine:         eng,
		CreatedAt:      now,
		LastAccessedAt: now,
	}
	m.sessions[key] = sess
	return sess, nil
}

// Get retrieves a session by ID (case-insensitive)
func (m *Manager) Get(id string) (*service.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, exists := m.sessions[strings.ToLower(id)]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// GetOrCreate gets an existing session or creates a new one
func (m *Manager) GetOrCreate(id, setupName string, start *engine.Board) (*service.Session, error) {
	sess, err := m.Get(id)
	if err == nil {
		return sess, nil
	}
	if errors.Is(err, ErrSessionNotFound) {
		sess, err = m.Create(id, setupName, start)
		if errors.Is(err, ErrSessionAlreadyExists) {
			// lost a race with another creator
			return m.Get(id)
		}
		return sess, err
	}
	return nil, err
}

// List returns all active sessions
func (m *Manager) List() []*service.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*service.Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		result = append(result, sess)
	}
	return result
}

// Delete removes a session
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(id)
	if _, exists := m.sessions[key]; !exists {
		return ErrSessionNotFound
	}
	delete(m.sessions, key)
	return nil
}

// UpdateLastAccessed updates the last accessed time for a session
func (m *Manager) UpdateLastAccessed(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, exists := m.sessions[strings.ToLower(id)]
	if !exists {
		return ErrSessionNotFound
	}
	sess.LastAccessedAt = time.Now()
	return nil
}

// CleanupExpiredSessions removes sessions that haven't been accessed in the given duration
func (m *Manager) CleanupExpiredSessions(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for key, sess := range m.sessions {
		if sess.LastAccessedAt.Before(cutoff) {
			delete(m.sessions, key)
			removed++
		}
	}
	return removed
}

// Count returns the number of active sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// generateSessionID returns the first block of a random UUID, eight hex characters
func generateSessionID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
