package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Setup is a named starting position as stored in a setup file
type Setup struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Position    string `json:"position"`
	// First overrides the side to move written in Position ("red" or "black")
	First string `json:"first,omitempty"`
}

// ClassicSetup returns the standard opening
func ClassicSetup() *Setup {
	return &Setup{
		Name:        "classic",
		Description: "Standard opening, black moves first",
		Position:    ClassicPosition,
	}
}

// Board decodes the setup into a fresh board
func (s *Setup) Board() (*Board, error) {
	b, err := DecodeBoard(s.Position)
	if err != nil {
		return nil, err
	}
	if s.First != "" {
		side, err := ParseSide(s.First)
		if err != nil {
			return nil, fmt.Errorf("%w: first: %v", ErrInvalidPosition, err)
		}
		b.SetTurn(side)
	}
	return b, nil
}

// ValidateSetup checks required fields and that the position is playable
func ValidateSetup(s *Setup) error {
	if s == nil {
		return fmt.Errorf("setup validation: setup is nil")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("setup validation: name is required")
	}
	if strings.TrimSpace(s.Position) == "" {
		return fmt.Errorf("setup validation: position is required")
	}

	b, err := s.Board()
	if err != nil {
		return fmt.Errorf("setup validation: %w", err)
	}
	if err := ValidateBoard(b); err != nil {
		return fmt.Errorf("setup validation: %w", err)
	}
	if b.CountPieces(Red) == 0 || b.CountPieces(Black) == 0 {
		return fmt.Errorf("setup validation: %w: both sides need at least one piece", ErrInvalidPosition)
	}
	if b.IsTerminal() {
		return fmt.Errorf("setup validation: %w: position is already decided", ErrInvalidPosition)
	}
	return nil
}

// LoadSetupFile reads and validates a setup from a JSON file
func LoadSetupFile(filename string) (*Setup, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read setup file: %w", err)
	}

	var setup Setup
	if err := json.Unmarshal(data, &setup); err != nil {
		return nil, fmt.Errorf("failed to parse setup JSON: %w", err)
	}

	if err := ValidateSetup(&setup); err != nil {
		return nil, err
	}
	return &setup, nil
}
