package service

import (
	"context"
	"sync"
	"time"

	"github.com/wricardo/jungle-game/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, setupName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Move(ctx context.Context, sessionID string, req MoveRequest) (*MoveResult, error)
	Undo(ctx context.Context, sessionID string) (*MoveResult, error)
	Reset(ctx context.Context, sessionID string) (*SessionInfo, error)

	// Game State
	LegalMoves(ctx context.Context, sessionID string, from *engine.Position) ([]engine.Move, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Setups
	ListSetups(ctx context.Context) ([]*SetupInfo, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id, setupName string, start *engine.Board) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	CleanupExpiredSessions(maxAge time.Duration) int
}

// SetupCatalog handles starting setup loading
type SetupCatalog interface {
	LoadSetup(name string) (*engine.Setup, error)
	ListSetups() ([]*SetupInfo, error)
	GetDefault() *engine.Setup
}

// Session represents an active game session. Callers must hold the session
// lock while touching Engine.
type Session struct {
	ID             string
	SetupName      string
	Engine         *engine.GameEngine
	CreatedAt      time.Time
	LastAccessedAt time.Time

	mu sync.Mutex
}

// Lock acquires the session's lock
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session's lock
func (s *Session) Unlock() { s.mu.Unlock() }
