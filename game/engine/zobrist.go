package engine

import "sync"

// pieceCodes covers the codes returned by pieceCode: 0 for an empty cell,
// 1..8 for Red by rank, 9..16 for Black.
const pieceCodes = 2*int(Elephant) + 1

var (
	zobristOnce sync.Once

	// zobristCells[sq][code] is the key for the piece with that code on cell sq.
	// The empty code keeps a zero key so empty cells drop out of the hash.
	zobristCells [NumCells][pieceCodes]uint64
	zobristTurn  uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for sq := 0; sq < NumCells; sq++ {
			for code := 1; code < pieceCodes; code++ {
				zobristCells[sq][code] = next()
			}
		}
		zobristTurn = next()
	})
}

// pieceCode numbers a piece by rank for Red and rank+8 for Black. Absent or
// malformed pieces are 0.
func pieceCode(p Piece) int {
	rank := p.Rank()
	switch {
	case rank == 0:
		return 0
	case p.Side == Red:
		return rank
	case p.Side == Black:
		return rank + int(Elephant)
	}
	return 0
}

// Hash returns a Zobrist key over pieces and the side to move. Terrain is the
// same on every board and is left out. Suitable as a transposition key.
func (b *Board) Hash() uint64 {
	initZobrist()

	var h uint64
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			h ^= zobristCells[r*Cols+c][pieceCode(b.cells[r][c].Piece)]
		}
	}
	if b.turn == Red {
		h ^= zobristTurn
	}
	return h
}

// cellCode packs a cell into one byte: terrain in the high three bits, the
// piece code in the low five.
func cellCode(cell Cell) int32 {
	return int32(cell.Terrain)<<5 | int32(pieceCode(cell.Piece))
}

// ContentHash is a polynomial (base 31) hash over the packed cell codes in row
// order, plus 1 when Black is to move and 2 otherwise. Boards that are
// EqualState always agree.
func (b *Board) ContentHash() int32 {
	var h int32
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			h = h*31 + cellCode(b.cells[r][c])
		}
	}
	if b.turn == Black {
		return h + 1
	}
	return h + 2
}
