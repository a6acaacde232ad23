package service

import (
	"time"

	"github.com/wricardo/jungle-game/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string    `json:"id"`
	SetupName      string    `json:"setup_name"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	Position       string    `json:"position"`
	Turn           string    `json:"turn"`
	GameOver       bool      `json:"game_over"`
	Winner         string    `json:"winner,omitempty"`
	MoveCount      int       `json:"move_count"`
	Board          []string  `json:"board"`
}

// MoveRequest asks for one piece to move from From to To
type MoveRequest struct {
	From engine.Position `json:"from"`
	To   engine.Position `json:"to"`
	// Reset returns the game to its starting position before moving
	Reset bool `json:"reset,omitempty"`
}

// Reason codes reported on a rejected move
const (
	ReasonIllegalMove = "illegal_move"
	ReasonNotYourTurn = "not_your_turn"
	ReasonGameOver    = "game_over"
	ReasonNoHistory   = "no_history"
)

// MoveResult contains the result of a move or undo
type MoveResult struct {
	Success  bool                     `json:"success"`
	Message  string                   `json:"message"`
	Reason   string                   `json:"reason,omitempty"` // one of the Reason codes when Success is false
	Entry    *engine.MoveHistoryEntry `json:"entry,omitempty"`
	Events   []GameEvent              `json:"events,omitempty"`
	GameOver bool                     `json:"game_over"`
	Winner   string                   `json:"winner,omitempty"`
	Session  *SessionInfo             `json:"session"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string          `json:"type"` // "reset", "move", "capture", "win", "undo"
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Position  engine.Position `json:"position,omitempty"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// SetupInfo provides information about a starting setup
type SetupInfo struct {
	Filename    string `json:"filename"`
	SetupID     string `json:"setup_id"` // The identifier to use for session creation
	Name        string `json:"name"`
	Description string `json:"description"`
	Position    string `json:"position"`
	RedPieces   int    `json:"red_pieces"`
	BlackPieces int    `json:"black_pieces"`
}
