package engine

import "testing"

func TestSpeciesRank(t *testing.T) {
	tests := []struct {
		species  Species
		expected int
	}{
		{SpeciesNone, 0},
		{Rat, 1},
		{Cat, 2},
		{Dog, 3},
		{Wolf, 4},
		{Leopard, 5},
		{Tiger, 6},
		{Lion, 7},
		{Elephant, 8},
		{Species(42), 0},
	}

	for _, test := range tests {
		t.Run(test.species.String(), func(t *testing.T) {
			if got := test.species.Rank(); got != test.expected {
				t.Errorf("Rank(%v): expected %d, got %d", test.species, test.expected, got)
			}
		})
	}
}

func TestPieceLabel(t *testing.T) {
	tests := []struct {
		piece    Piece
		expected string
	}{
		{Piece{Rat, Red}, "rRa"},
		{Piece{Cat, Red}, "rCa"},
		{Piece{Leopard, Black}, "bLe"},
		{Piece{Lion, Red}, "rLi"},
		{Piece{Elephant, Black}, "bEl"},
		{NoPiece, "   "},
	}

	for _, test := range tests {
		if got := test.piece.Label(); got != test.expected {
			t.Errorf("Label(%v): expected %q, got %q", test.piece, test.expected, got)
		}
	}
}

func TestPieceIsZero(t *testing.T) {
	if !NoPiece.IsZero() {
		t.Error("Expected NoPiece to be zero")
	}
	if !(Piece{Species: Rat}).IsZero() {
		t.Error("Expected a piece without a side to be zero")
	}
	if (Piece{Rat, Black}).IsZero() {
		t.Error("Expected black rat not to be zero")
	}
	if NoPiece.Rank() != 0 {
		t.Errorf("Expected rank 0 for NoPiece, got %d", NoPiece.Rank())
	}
}

func TestSideOpponent(t *testing.T) {
	if Red.Opponent() != Black {
		t.Error("Expected red's opponent to be black")
	}
	if Black.Opponent() != Red {
		t.Error("Expected black's opponent to be red")
	}
	if SideNone.Opponent() != SideNone {
		t.Error("Expected SideNone to have no opponent")
	}
}

func TestParseSide(t *testing.T) {
	tests := []struct {
		input    string
		expected Side
		wantErr  bool
	}{
		{"red", Red, false},
		{"R", Red, false},
		{"black", Black, false},
		{"b", Black, false},
		{"blue", SideNone, true},
		{"", SideNone, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			side, err := ParseSide(test.input)
			if (err != nil) != test.wantErr {
				t.Fatalf("ParseSide(%q): unexpected error state %v", test.input, err)
			}
			if side != test.expected {
				t.Errorf("ParseSide(%q): expected %v, got %v", test.input, test.expected, side)
			}
		})
	}
}

func TestTerrainOwner(t *testing.T) {
	tests := []struct {
		terrain Terrain
		owner   Side
		trap    bool
		den     bool
	}{
		{Ground, SideNone, false, false},
		{Water, SideNone, false, false},
		{RedTrap, Red, true, false},
		{BlackTrap, Black, true, false},
		{RedDen, Red, false, true},
		{BlackDen, Black, false, true},
	}

	for _, test := range tests {
		t.Run(test.terrain.String(), func(t *testing.T) {
			if test.terrain.Owner() != test.owner {
				t.Errorf("expected owner %v, got %v", test.owner, test.terrain.Owner())
			}
			if test.terrain.IsTrap() != test.trap {
				t.Errorf("expected IsTrap %v", test.trap)
			}
			if test.terrain.IsDen() != test.den {
				t.Errorf("expected IsDen %v", test.den)
			}
		})
	}
}

func TestSpeciesAbilities(t *testing.T) {
	for s := Rat; s <= Elephant; s++ {
		wantSwim := s == Rat
		wantLeap := s == Tiger || s == Lion
		if s.CanSwim() != wantSwim {
			t.Errorf("%v: expected CanSwim %v", s, wantSwim)
		}
		if s.CanLeap() != wantLeap {
			t.Errorf("%v: expected CanLeap %v", s, wantLeap)
		}
	}
	if SpeciesNone.CanSwim() || SpeciesNone.CanLeap() {
		t.Error("Expected SpeciesNone to have no abilities")
	}
}
