package engine

import (
	"fmt"
	"strings"
)

// Board dimensions
const (
	Rows     = 9
	Cols     = 7
	NumCells = Rows * Cols

	// Straight-line spans of the long-range jump across the water basins
	JumpSpanRows = 4
	JumpSpanCols = 3
)

// Side identifies the owner of a piece, trap or den
type Side int8

const (
	SideNone Side = iota
	Red
	Black
)

// Opponent returns the other side, or SideNone for SideNone
func (s Side) Opponent() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	}
	return SideNone
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

// ParseSide accepts "red"/"r" and "black"/"b" in any case
func ParseSide(s string) (Side, error) {
	switch s {
	case "red", "Red", "RED", "r", "R":
		return Red, nil
	case "black", "Black", "BLACK", "b", "B":
		return Black, nil
	}
	return SideNone, fmt.Errorf("unknown side %q", s)
}

// Species is an animal kind. The numeric value is its rank, 1 (weakest) to 8.
type Species int8

const (
	SpeciesNone Species = iota
	Rat
	Cat
	Dog
	Wolf
	Leopard
	Tiger
	Lion
	Elephant
)

var speciesNames = [...]string{"none", "rat", "cat", "dog", "wolf", "leopard", "tiger", "lion", "elephant"}

// Rank returns 1..8, or 0 for SpeciesNone and unknown values
func (s Species) Rank() int {
	if s < Rat || s > Elephant {
		return 0
	}
	return int(s)
}

func (s Species) String() string {
	if s < SpeciesNone || s > Elephant {
		return "none"
	}
	return speciesNames[s]
}

// Piece is a species owned by a side. The zero value is "no piece".
type Piece struct {
	Species Species `json:"species"`
	Side    Side    `json:"side"`
}

// NoPiece is the empty-cell sentinel
var NoPiece = Piece{}

// IsZero reports whether p is the absent piece
func (p Piece) IsZero() bool {
	return p.Species == SpeciesNone || p.Side == SideNone
}

// Rank returns the species rank, 0 when absent
func (p Piece) Rank() int {
	if p.IsZero() {
		return 0
	}
	return p.Species.Rank()
}

// Label returns the three character board label, e.g. "rRa" or "bEl"
func (p Piece) Label() string {
	if p.IsZero() {
		return "   "
	}
	name := p.Species.String()
	prefix := "r"
	if p.Side == Black {
		prefix = "b"
	}
	return prefix + strings.ToUpper(name[:1]) + name[1:2]
}

func (p Piece) String() string {
	if p.IsZero() {
		return "none"
	}
	return p.Side.String() + " " + p.Species.String()
}

// Terrain is the static ground type of a cell
type Terrain int8

const (
	TerrainNone Terrain = iota
	Ground
	Water
	RedTrap
	BlackTrap
	RedDen
	BlackDen
)

var terrainNames = [...]string{"None", "Ground", "Water", "RTrap", "BTrap", "RDen", "BDen"}

func (t Terrain) String() string {
	if t < TerrainNone || t > BlackDen {
		return "None"
	}
	return terrainNames[t]
}

// IsTrap reports whether t is a trap of either side
func (t Terrain) IsTrap() bool { return t == RedTrap || t == BlackTrap }

// IsDen reports whether t is a den of either side
func (t Terrain) IsDen() bool { return t == RedDen || t == BlackDen }

// Owner returns the side a trap or den belongs to, SideNone otherwise
func (t Terrain) Owner() Side {
	switch t {
	case RedTrap, RedDen:
		return Red
	case BlackTrap, BlackDen:
		return Black
	}
	return SideNone
}

// Cell is a single board square
type Cell struct {
	Terrain Terrain `json:"terrain"`
	Piece   Piece   `json:"piece"`
}

// Position is a row/column coordinate; row 0 is Red's back rank
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the position lies on the 9x7 board
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move is a from/to pair
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + "->" + m.To.String()
}

// MoveHistoryEntry represents a single applied move in the game history
type MoveHistoryEntry struct {
	Move       Move   `json:"move"`
	Side       Side   `json:"side"`
	Piece      Piece  `json:"piece"`
	Captured   Piece  `json:"captured,omitempty"`
	Timestamp  int64  `json:"timestamp"`
	MoveNumber int    `json:"move_number"`
	Position   string `json:"position"` // notation after the move
}
