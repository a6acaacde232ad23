package engine

import "errors"

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrGameOver        = errors.New("game is over")
	ErrInvalidPosition = errors.New("invalid position")
	ErrNoHistory       = errors.New("no moves to undo")
)
