package engine

// CountPieces returns the number of pieces side has on the board
func (b *Board) CountPieces(side Side) int {
	count := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c].Piece.Side == side && !b.cells[r][c].Piece.IsZero() {
				count++
			}
		}
	}
	return count
}

// SideHasWon reports whether side has eliminated every opposing piece or has a
// piece standing in the opponent's den.
func (b *Board) SideHasWon(side Side) bool {
	if side != Red && side != Black {
		return false
	}
	den := DenOf(side.Opponent())
	if b.SideAt(den.Row, den.Col) == side {
		return true
	}
	return b.CountPieces(side.Opponent()) == 0
}

// Winner returns the side that has won, or SideNone. If a hand-built position
// satisfies both sides, Red is reported.
func (b *Board) Winner() Side {
	switch {
	case b.SideHasWon(Red):
		return Red
	case b.SideHasWon(Black):
		return Black
	}
	return SideNone
}

// IsTerminal reports whether either side has won
func (b *Board) IsTerminal() bool {
	return b.Winner() != SideNone
}
