package engine

import "fmt"

// ValidateBoard checks that a hand-built or decoded position could arise in
// play: no duplicate species per side, only swimmers in water, and nobody in
// their own den.
func ValidateBoard(b *Board) error {
	if b == nil {
		return fmt.Errorf("%w: board is nil", ErrInvalidPosition)
	}
	if b.turn != Red && b.turn != Black {
		return fmt.Errorf("%w: side to move must be red or black", ErrInvalidPosition)
	}

	seen := make(map[Piece]Position)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			cell := b.cells[r][c]
			p := cell.Piece
			if p.IsZero() {
				continue
			}
			pos := Position{Row: r, Col: c}
			if prev, dup := seen[p]; dup {
				return fmt.Errorf("%w: %s appears at %s and %s", ErrInvalidPosition, p, prev, pos)
			}
			seen[p] = pos

			if cell.Terrain == Water && !p.Species.CanSwim() {
				return fmt.Errorf("%w: %s cannot stand in water at %s", ErrInvalidPosition, p, pos)
			}
			if cell.Terrain.IsDen() && cell.Terrain.Owner() == p.Side {
				return fmt.Errorf("%w: %s is in its own den", ErrInvalidPosition, p)
			}
		}
	}
	return nil
}
