package engine

// geography is the fixed terrain of every board, row 0 first.
//
//	. ground   ~ water
//	t red trap T black trap
//	d red den  D black den
//
// The two halves are laid out cell by cell rather than mirrored.
var geography = [Rows]string{
	"..tdt..",
	"...t...",
	".......",
	".~~.~~.",
	".~~.~~.",
	".~~.~~.",
	".......",
	"...T...",
	"..TDT..",
}

var terrainByChar = map[byte]Terrain{
	'.': Ground,
	'~': Water,
	't': RedTrap,
	'T': BlackTrap,
	'd': RedDen,
	'D': BlackDen,
}

// startingPieces is the canonical opening placement
var startingPieces = map[Position]Piece{
	{0, 0}: {Lion, Red},
	{0, 6}: {Tiger, Red},
	{1, 1}: {Dog, Red},
	{1, 5}: {Cat, Red},
	{2, 0}: {Rat, Red},
	{2, 2}: {Leopard, Red},
	{2, 4}: {Wolf, Red},
	{2, 6}: {Elephant, Red},

	{6, 0}: {Elephant, Black},
	{6, 2}: {Wolf, Black},
	{6, 4}: {Leopard, Black},
	{6, 6}: {Rat, Black},
	{7, 1}: {Cat, Black},
	{7, 5}: {Dog, Black},
	{8, 0}: {Tiger, Black},
	{8, 6}: {Lion, Black},
}

// Black moves first by convention
const firstSide = Black

// Board is a 9x7 grid of cells plus the side to move. The turn is bookkeeping
// for a game loop; the rules themselves ignore it.
type Board struct {
	cells [Rows][Cols]Cell
	turn  Side
}

// NewEmptyBoard returns a board with the canonical terrain and no pieces
func NewEmptyBoard() *Board {
	b := &Board{turn: firstSide}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			b.cells[r][c].Terrain = terrainByChar[geography[r][c]]
		}
	}
	return b
}

// NewBoard returns a board in the canonical starting layout
func NewBoard() *Board {
	b := NewEmptyBoard()
	for pos, p := range startingPieces {
		b.cells[pos.Row][pos.Col].Piece = p
	}
	return b
}

// InBounds reports whether (r, c) is on the board
func InBounds(r, c int) bool {
	return r >= 0 && r < Rows && c >= 0 && c < Cols
}

// Cell returns the cell at (r, c), or the zero Cell when out of bounds
func (b *Board) Cell(r, c int) Cell {
	if !InBounds(r, c) {
		return Cell{}
	}
	return b.cells[r][c]
}

// PieceAt returns the piece at (r, c), or NoPiece
func (b *Board) PieceAt(r, c int) Piece {
	return b.Cell(r, c).Piece
}

// TerrainAt returns the terrain at (r, c), or TerrainNone when out of bounds
func (b *Board) TerrainAt(r, c int) Terrain {
	return b.Cell(r, c).Terrain
}

// SideAt returns the owner of the piece at (r, c), or SideNone
func (b *Board) SideAt(r, c int) Side {
	p := b.PieceAt(r, c)
	if p.IsZero() {
		return SideNone
	}
	return p.Side
}

// RankAt returns the rank of the piece at (r, c), or 0
func (b *Board) RankAt(r, c int) int {
	return b.PieceAt(r, c).Rank()
}

// HasPiece reports whether a piece stands on (r, c)
func (b *Board) HasPiece(r, c int) bool {
	return !b.PieceAt(r, c).IsZero()
}

// IsEmpty reports whether (r, c) is on the board and holds no piece
func (b *Board) IsEmpty(r, c int) bool {
	return InBounds(r, c) && !b.HasPiece(r, c)
}

// Turn returns the side to move
func (b *Board) Turn() Side {
	return b.turn
}

// SetTurn sets the side to move; SideNone is ignored
func (b *Board) SetTurn(s Side) {
	if s == Red || s == Black {
		b.turn = s
	}
}

// PassTurn hands the move to the opponent
func (b *Board) PassTurn() {
	b.turn = b.turn.Opponent()
}

// Place puts p on (r, c), replacing any occupant. It exists for building
// positions; normal play goes through ApplyMove.
func (b *Board) Place(r, c int, p Piece) bool {
	if !InBounds(r, c) {
		return false
	}
	if p.IsZero() {
		p = NoPiece
	}
	b.cells[r][c].Piece = p
	return true
}

// Remove clears (r, c) and returns what was there
func (b *Board) Remove(r, c int) Piece {
	if !InBounds(r, c) {
		return NoPiece
	}
	p := b.cells[r][c].Piece
	b.cells[r][c].Piece = NoPiece
	return p
}

// Find returns the position of p, if it is on the board
func (b *Board) Find(p Piece) (Position, bool) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c].Piece == p {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

// DenOf returns the den cell belonging to side
func DenOf(side Side) Position {
	if side == Red {
		return Position{Row: 0, Col: Cols / 2}
	}
	return Position{Row: Rows - 1, Col: Cols / 2}
}

// Clone returns an independent copy, turn included
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// Equal reports whether both boards hold the same terrain and pieces in every
// cell. The turn is not compared.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return b.cells == other.cells
}

// EqualState is Equal plus the side to move
func (b *Board) EqualState(other *Board) bool {
	return b.Equal(other) && b.turn == other.turn
}
