package engine

import (
	"fmt"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetBoard() *Board
	SetBoard(b *Board) error
	Reset() *Board
	Turn() Side
	IsGameOver() bool
	Winner() Side

	// Movement operations
	Move(m Move) (MoveHistoryEntry, error)
	CanMove(m Move) bool
	GetPossibleMoves() []Move
	Undo() (MoveHistoryEntry, error)

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// GameEngine implements the Engine interface. Unlike Board, it enforces turn
// order and refuses moves once the game is decided.
type GameEngine struct {
	board   *Board
	start   *Board
	history []MoveHistoryEntry
}

// NewEngine creates a game engine starting from a copy of start
func NewEngine(start *Board) (*GameEngine, error) {
	if err := ValidateBoard(start); err != nil {
		return nil, err
	}
	return &GameEngine{
		board:   start.Clone(),
		start:   start.Clone(),
		history: []MoveHistoryEntry{},
	}, nil
}

// NewEngineWithDefaults creates a game engine on the classic starting board
func NewEngineWithDefaults() *GameEngine {
	b := NewBoard()
	return &GameEngine{
		board:   b,
		start:   b.Clone(),
		history: []MoveHistoryEntry{},
	}
}

// GetBoard returns the live board
func (e *GameEngine) GetBoard() *Board {
	return e.board
}

// SetBoard replaces the position and clears the history
func (e *GameEngine) SetBoard(b *Board) error {
	if b == nil {
		return fmt.Errorf("board cannot be nil")
	}
	if err := ValidateBoard(b); err != nil {
		return err
	}
	e.board = b.Clone()
	e.start = b.Clone()
	e.history = []MoveHistoryEntry{}
	return nil
}

// Reset returns to the starting position
func (e *GameEngine) Reset() *Board {
	e.board = e.start.Clone()
	e.history = []MoveHistoryEntry{}
	return e.board
}

// Turn returns the side to move
func (e *GameEngine) Turn() Side {
	return e.board.Turn()
}

// IsGameOver returns whether either side has won
func (e *GameEngine) IsGameOver() bool {
	return e.board.IsTerminal()
}

// Winner returns the winning side, or SideNone
func (e *GameEngine) Winner() Side {
	return e.board.Winner()
}

// Move applies m for the side to move and passes the turn
func (e *GameEngine) Move(m Move) (MoveHistoryEntry, error) {
	if e.IsGameOver() {
		return MoveHistoryEntry{}, ErrGameOver
	}
	mover := e.board.PieceAt(m.From.Row, m.From.Col)
	if !mover.IsZero() && mover.Side != e.board.Turn() {
		return MoveHistoryEntry{}, fmt.Errorf("%w: %s to move", ErrNotYourTurn, e.board.Turn())
	}

	captured, ok := e.board.MakeMove(m)
	if !ok {
		return MoveHistoryEntry{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	e.board.PassTurn()

	entry := MoveHistoryEntry{
		Move:       m,
		Side:       mover.Side,
		Piece:      mover,
		Captured:   captured,
		Timestamp:  time.Now().Unix(),
		MoveNumber: len(e.history) + 1,
		Position:   e.board.Encode(),
	}
	e.history = append(e.history, entry)
	return entry, nil
}

// CanMove reports whether Move(m) would succeed
func (e *GameEngine) CanMove(m Move) bool {
	if e.IsGameOver() {
		return false
	}
	if e.board.SideAt(m.From.Row, m.From.Col) != e.board.Turn() {
		return false
	}
	return e.board.IsLegal(m)
}

// GetPossibleMoves returns all legal moves for the side to move
func (e *GameEngine) GetPossibleMoves() []Move {
	if e.IsGameOver() {
		return nil
	}
	return e.board.LegalMoves(e.board.Turn())
}

// Undo takes back the last move and returns it
func (e *GameEngine) Undo() (MoveHistoryEntry, error) {
	if len(e.history) == 0 {
		return MoveHistoryEntry{}, ErrNoHistory
	}
	last := e.history[len(e.history)-1]
	e.board.unmakeMove(last.Move, last.Captured)
	e.board.SetTurn(last.Side)
	e.history = e.history[:len(e.history)-1]
	return last, nil
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.history
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.history) == 0 {
		return nil
	}
	return &e.history[len(e.history)-1]
}

// BulkMove plays moves in order and stops at the first failure, returning the
// entries that were applied together with that failure.
func (e *GameEngine) BulkMove(moves []Move) ([]MoveHistoryEntry, error) {
	applied := make([]MoveHistoryEntry, 0, len(moves))
	for i, m := range moves {
		entry, err := e.Move(m)
		if err != nil {
			return applied, fmt.Errorf("move %d: %w", i+1, err)
		}
		applied = append(applied, entry)
	}
	return applied, nil
}
