package engine

// ApplyMove performs the move if IsLegalMove allows it and reports whether it
// did. The destination keeps its terrain; any occupant there is captured. The
// turn is left alone, that belongs to the caller.
func (b *Board) ApplyMove(fromR, fromC, toR, toC int) bool {
	_, ok := b.MakeMove(Move{
		From: Position{Row: fromR, Col: fromC},
		To:   Position{Row: toR, Col: toC},
	})
	return ok
}

// MakeMove is ApplyMove returning the captured piece (NoPiece if none)
func (b *Board) MakeMove(m Move) (Piece, bool) {
	if !b.IsLegal(m) {
		return NoPiece, false
	}
	from := &b.cells[m.From.Row][m.From.Col]
	to := &b.cells[m.To.Row][m.To.Col]

	captured := to.Piece
	to.Piece = from.Piece
	from.Piece = NoPiece
	return captured, true
}

// unmakeMove restores a move made by MakeMove
func (b *Board) unmakeMove(m Move, captured Piece) {
	from := &b.cells[m.From.Row][m.From.Col]
	to := &b.cells[m.To.Row][m.To.Col]
	from.Piece = to.Piece
	to.Piece = captured
}
