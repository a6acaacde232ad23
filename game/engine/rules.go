package engine

// speciesRule holds everything that sets one species apart from plain
// rank-versus-rank combat.
type speciesRule struct {
	swims      bool    // may enter and move through water
	leaps      bool    // may jump straight across a water basin
	overpowers Species // captured regardless of rank, unless the mover stands in water
	spares     Species // never captured by this species, on any terrain
}

var speciesRules = [...]speciesRule{
	Rat:      {swims: true, overpowers: Elephant},
	Cat:      {},
	Dog:      {},
	Wolf:     {},
	Leopard:  {},
	Tiger:    {leaps: true},
	Lion:     {leaps: true},
	Elephant: {spares: Rat},
}

func ruleFor(s Species) speciesRule {
	if s.Rank() == 0 {
		return speciesRule{}
	}
	return speciesRules[s]
}

// CanSwim reports whether s may enter water
func (s Species) CanSwim() bool { return ruleFor(s).swims }

// CanLeap reports whether s may jump across water
func (s Species) CanLeap() bool { return ruleFor(s).leaps }

// IsLegalMove reports whether the piece on (fromR, fromC) may move to
// (toR, toC). Whose turn it is does not matter. It never modifies the board.
func (b *Board) IsLegalMove(fromR, fromC, toR, toC int) bool {
	if !InBounds(fromR, fromC) || !InBounds(toR, toC) {
		return false
	}
	if fromR == toR && fromC == toC {
		return false
	}
	mover := b.cells[fromR][fromC].Piece
	if mover.IsZero() {
		return false
	}

	from := Position{Row: fromR, Col: fromC}
	to := Position{Row: toR, Col: toC}
	switch {
	case isStep(from, to):
		return b.canLand(mover, from, to)
	case ruleFor(mover.Species).leaps:
		return b.canJump(mover, from, to)
	}
	return false
}

// IsLegal is IsLegalMove for a Move value
func (b *Board) IsLegal(m Move) bool {
	return b.IsLegalMove(m.From.Row, m.From.Col, m.To.Row, m.To.Col)
}

func isStep(from, to Position) bool {
	return ManhattanDistance(from, to) == 1
}

// canLand evaluates the destination cell for a mover arriving from `from`,
// whether by a single step or at the end of a jump.
func (b *Board) canLand(mover Piece, from, to Position) bool {
	rule := ruleFor(mover.Species)
	dest := b.cells[to.Row][to.Col]

	if dest.Terrain == Water && !rule.swims {
		return false
	}
	if dest.Terrain.IsDen() && dest.Terrain.Owner() == mover.Side {
		return false
	}

	occupant := dest.Piece
	if !occupant.IsZero() && occupant.Side == mover.Side {
		return false
	}
	if dest.Terrain.IsDen() {
		return true
	}
	if occupant.IsZero() {
		return true
	}
	return b.canCapture(mover, from, occupant, dest.Terrain)
}

// canCapture decides combat between mover and an enemy occupant standing on
// terrain. Rank dominance is settled here, before anything moves.
func (b *Board) canCapture(mover Piece, from Position, occupant Piece, terrain Terrain) bool {
	rule := ruleFor(mover.Species)
	if rule.spares != SpeciesNone && rule.spares == occupant.Species {
		return false
	}
	if terrain.IsTrap() {
		return true
	}
	if rule.overpowers != SpeciesNone && rule.overpowers == occupant.Species &&
		b.cells[from.Row][from.Col].Terrain != Water {
		return true
	}
	return mover.Rank() >= occupant.Rank()
}

// canJump checks the long-range move across a water basin: a straight line of
// JumpSpanCols columns or JumpSpanRows rows whose intermediate cells are all
// water and free of rats.
func (b *Board) canJump(mover Piece, from, to Position) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	switch {
	case dr == 0 && abs(dc) == JumpSpanCols:
	case dc == 0 && abs(dr) == JumpSpanRows:
	default:
		return false
	}
	stepR, stepC := sign(dr), sign(dc)
	for r, c := from.Row+stepR, from.Col+stepC; r != to.Row || c != to.Col; r, c = r+stepR, c+stepC {
		cell := b.cells[r][c]
		if cell.Terrain != Water {
			return false
		}
		if cell.Piece.Species == Rat {
			return false
		}
	}
	if b.cells[to.Row][to.Col].Terrain == Water {
		return false
	}
	return b.canLand(mover, from, to)
}

// LegalMovesFrom lists every legal destination of the piece on (r, c)
func (b *Board) LegalMovesFrom(r, c int) []Move {
	if !b.HasPiece(r, c) {
		return nil
	}
	from := Position{Row: r, Col: c}
	var moves []Move
	for _, d := range directions {
		candidates := []Position{{Row: r + d.dr, Col: c + d.dc}}
		if b.cells[r][c].Piece.Species.CanLeap() {
			span := JumpSpanCols
			if d.dr != 0 {
				span = JumpSpanRows
			}
			candidates = append(candidates, Position{Row: r + d.dr*span, Col: c + d.dc*span})
		}
		for _, to := range candidates {
			if b.IsLegalMove(r, c, to.Row, to.Col) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// LegalMoves lists every legal move available to side, in board order
func (b *Board) LegalMoves(side Side) []Move {
	var moves []Move
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.SideAt(r, c) == side {
				moves = append(moves, b.LegalMovesFrom(r, c)...)
			}
		}
	}
	return moves
}
