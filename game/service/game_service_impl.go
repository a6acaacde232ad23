package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/wricardo/jungle-game/game/engine"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions   SessionManager
	setups     SetupCatalog
	log        *zap.SugaredLogger
	sessionTTL time.Duration
}

// Option configures the game service
type Option func(*gameServiceImpl)

// WithSessionTTL drops sessions idle for longer than ttl whenever a new
// session is created. Zero disables expiry.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *gameServiceImpl) {
		s.sessionTTL = ttl
	}
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, setups SetupCatalog, log *zap.SugaredLogger, opts ...Option) GameService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &gameServiceImpl{
		sessions: sessions,
		setups:   setups,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSession creates a new game session from a named setup, or the default
// setup when setupName is empty
func (s *gameServiceImpl) CreateSession(ctx context.Context, setupName string) (*SessionInfo, error) {
	if s.sessionTTL > 0 {
		if n := s.sessions.CleanupExpiredSessions(s.sessionTTL); n > 0 {
			s.log.Infow("expired sessions removed", "count", n)
		}
	}

	var setup *engine.Setup
	if setupName != "" {
		var err error
		setup, err = s.setups.LoadSetup(setupName)
		if err != nil {
			available, listErr := s.setups.ListSetups()
			if listErr == nil && len(available) > 0 {
				ids := make([]string, 0, len(available))
				for _, info := range available {
					ids = append(ids, info.SetupID)
				}
				return nil, fmt.Errorf("setup '%s' not available (have %v): %w", setupName, ids, err)
			}
			return nil, fmt.Errorf("failed to load setup %s: %w", setupName, err)
		}
	} else {
		setup = s.setups.GetDefault()
		setupName = setup.Name
	}

	start, err := setup.Board()
	if err != nil {
		return nil, fmt.Errorf("failed to build board for setup %s: %w", setupName, err)
	}

	sess, err := s.sessions.Create("", setupName, start)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.log.Infow("session created", "session", sess.ID, "setup", setupName, "turn", start.Turn())

	sess.Lock()
	defer sess.Unlock()
	return sessionInfo(sess), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	sess, err := s.lockSession(sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.Unlock()

	return sessionInfo(sess), nil
}

// ListSessions returns all active sessions, oldest first
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		sess.Lock()
		result = append(result, sessionInfo(sess))
		sess.Unlock()
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(sessionID); err != nil {
		return err
	}
	s.log.Infow("session deleted", "session", sessionID)
	return nil
}

// Move plays one move for the side to move. A move the rules refuse is
// reported through MoveResult, not as an error.
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, req MoveRequest) (*MoveResult, error) {
	sess, err := s.lockSession(sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.Unlock()

	events := []GameEvent{}
	if req.Reset {
		sess.Engine.Reset()
		events = append(events, GameEvent{
			Type:      "reset",
			Message:   "Game reset to starting position",
			Timestamp: time.Now(),
		})
	}

	side := sess.Engine.Turn()
	entry, err := sess.Engine.Move(engine.Move{From: req.From, To: req.To})
	if err != nil {
		s.log.Debugw("move rejected", "session", sess.ID, "side", side, "from", req.From, "to", req.To, "error", err)
		return &MoveResult{
			Success:  false,
			Message:  err.Error(),
			Reason:   reasonFor(err),
			Events:   events,
			GameOver: sess.Engine.IsGameOver(),
			Winner:   winnerName(sess.Engine.Winner()),
			Session:  sessionInfo(sess),
		}, nil
	}

	s.log.Debugw("move applied", "session", sess.ID, "side", side, "from", req.From, "to", req.To)
	events = append(events, moveEvents(entry)...)

	result := &MoveResult{
		Success:  true,
		Message:  fmt.Sprintf("%s %s", entry.Piece, entry.Move),
		Entry:    &entry,
		GameOver: sess.Engine.IsGameOver(),
		Winner:   winnerName(sess.Engine.Winner()),
	}
	if result.GameOver {
		s.log.Infow("game won", "session", sess.ID, "side", sess.Engine.Winner(), "moves", entry.MoveNumber)
		events = append(events, GameEvent{
			Type:      "win",
			Message:   fmt.Sprintf("%s wins", sess.Engine.Winner()),
			Timestamp: time.Now(),
			Position:  entry.Move.To,
		})
	}
	result.Events = events
	result.Session = sessionInfo(sess)
	return result, nil
}

// Undo takes back the last move of a session
func (s *gameServiceImpl) Undo(ctx context.Context, sessionID string) (*MoveResult, error) {
	sess, err := s.lockSession(sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.Unlock()

	entry, err := sess.Engine.Undo()
	if err != nil {
		return &MoveResult{
			Success: false,
			Message: err.Error(),
			Reason:  reasonFor(err),
			Session: sessionInfo(sess),
		}, nil
	}
	s.log.Debugw("move undone", "session", sess.ID, "side", entry.Side, "from", entry.Move.From, "to", entry.Move.To)

	return &MoveResult{
		Success: true,
		Message: fmt.Sprintf("took back %s", entry.Move),
		Entry:   &entry,
		Events: []GameEvent{{
			Type:      "undo",
			Message:   fmt.Sprintf("%s returns to %s", entry.Piece, entry.Move.From),
			Timestamp: time.Now(),
			Position:  entry.Move.From,
		}},
		Session: sessionInfo(sess),
	}, nil
}

// Reset returns a session to its starting position
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*SessionInfo, error) {
	sess, err := s.lockSession(sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.Unlock()

	sess.Engine.Reset()
	s.log.Debugw("session reset", "session", sess.ID)
	return sessionInfo(sess), nil
}

// LegalMoves lists the moves of the piece on from, or every move of the side
// to move when from is nil. A piece of the side not to move has no moves.
func (s *gameServiceImpl) LegalMoves(ctx context.Context, sessionID string, from *engine.Position) ([]engine.Move, error) {
	sess, err := s.lockSession(sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.Unlock()

	var moves []engine.Move
	if from == nil {
		moves = sess.Engine.GetPossibleMoves()
	} else if b := sess.Engine.GetBoard(); !sess.Engine.IsGameOver() && b.SideAt(from.Row, from.Col) == sess.Engine.Turn() {
		moves = b.LegalMovesFrom(from.Row, from.Col)
	}
	if moves == nil {
		moves = []engine.Move{}
	}
	return moves, nil
}

// GetMoveHistory returns one page of a session's moves
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	sess, err := s.lockSession(sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.Unlock()

	history := sess.Engine.GetMoveHistory()
	total := len(history)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultHistoryLimit
	}
	if opts.Limit > maxHistoryLimit {
		opts.Limit = maxHistoryLimit
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	moves := []engine.MoveHistoryEntry{}
	if opts.Order == "desc" {
		// most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else if start < total {
		moves = append(moves, history[start:end]...)
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListSetups returns the available starting setups
func (s *gameServiceImpl) ListSetups(ctx context.Context) ([]*SetupInfo, error) {
	return s.setups.ListSetups()
}

// lockSession fetches a session, locks it and marks it accessed
func (s *gameServiceImpl) lockSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	sess.Lock()
	if err := s.sessions.UpdateLastAccessed(sess.ID); err != nil {
		// deleted while we waited for the lock
		sess.Unlock()
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	return sess, nil
}

// sessionInfo snapshots a locked session
func sessionInfo(sess *Session) *SessionInfo {
	e := sess.Engine
	b := e.GetBoard()
	return &SessionInfo{
		ID:             sess.ID,
		SetupName:      sess.SetupName,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		Position:       b.Encode(),
		Turn:           e.Turn().String(),
		GameOver:       e.IsGameOver(),
		Winner:         winnerName(e.Winner()),
		MoveCount:      len(e.GetMoveHistory()),
		Board:          b.Grid(),
	}
}

func moveEvents(entry engine.MoveHistoryEntry) []GameEvent {
	now := time.Now()
	events := []GameEvent{{
		Type:      "move",
		Message:   fmt.Sprintf("%s moves %s", entry.Piece, entry.Move),
		Timestamp: now,
		Position:  entry.Move.To,
	}}
	if !entry.Captured.IsZero() {
		events = append(events, GameEvent{
			Type:      "capture",
			Message:   fmt.Sprintf("%s takes %s", entry.Piece, entry.Captured),
			Timestamp: now,
			Position:  entry.Move.To,
		})
	}
	return events
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, engine.ErrGameOver):
		return ReasonGameOver
	case errors.Is(err, engine.ErrNotYourTurn):
		return ReasonNotYourTurn
	case errors.Is(err, engine.ErrNoHistory):
		return ReasonNoHistory
	}
	return ReasonIllegalMove
}

func winnerName(side engine.Side) string {
	if side == engine.SideNone {
		return ""
	}
	return side.String()
}
