package engine

import "testing"

func TestHash_EqualBoards(t *testing.T) {
	a := NewBoard()
	b := NewBoard()
	if a.Hash() != b.Hash() {
		t.Error("Expected identical boards to hash the same")
	}
	if a.Hash() != a.Clone().Hash() {
		t.Error("Expected clone to hash the same")
	}
}

func TestHash_ChangesWithState(t *testing.T) {
	b := NewBoard()
	start := b.Hash()

	b.PassTurn()
	if b.Hash() == start {
		t.Error("Expected side to move to change the hash")
	}
	b.PassTurn()
	if b.Hash() != start {
		t.Error("Expected hash to return after passing twice")
	}

	if !b.ApplyMove(7, 1, 6, 1) {
		t.Fatal("Expected black cat to move")
	}
	if b.Hash() == start {
		t.Error("Expected a move to change the hash")
	}
}

func TestHash_EmptyBoard(t *testing.T) {
	if NewEmptyBoard().Hash() != 0 {
		t.Error("Expected an empty board with black to move to hash to zero")
	}
}

func TestContentHash(t *testing.T) {
	a := NewBoard()
	if a.ContentHash() != a.Clone().ContentHash() {
		t.Error("Expected clone to share the content hash")
	}

	b := a.Clone()
	b.PassTurn()
	if b.ContentHash()-a.ContentHash() != 1 {
		t.Error("Expected red to move to add one over black to move")
	}

	c := a.Clone()
	c.ApplyMove(2, 0, 3, 0)
	if c.ContentHash() == a.ContentHash() {
		t.Error("Expected a move to change the content hash")
	}
}

func TestPieceCode(t *testing.T) {
	seen := make(map[int]Piece)
	for _, side := range []Side{Red, Black} {
		for s := Rat; s <= Elephant; s++ {
			p := Piece{s, side}
			code := pieceCode(p)
			if code < 1 || code >= pieceCodes {
				t.Fatalf("Expected code in 1..%d for %v, got %d", pieceCodes-1, p, code)
			}
			if other, ok := seen[code]; ok {
				t.Errorf("Expected distinct codes, %v and %v share %d", other, p, code)
			}
			seen[code] = p
		}
	}

	for _, p := range []Piece{NoPiece, {Lion, SideNone}, {SpeciesNone, Red}} {
		if code := pieceCode(p); code != 0 {
			t.Errorf("Expected code 0 for %v, got %d", p, code)
		}
	}
}

func TestHash_TellsSidesAndSquaresApart(t *testing.T) {
	tests := []struct {
		name string
		a, b func(*Board)
	}{
		{
			name: "same species, other side",
			a:    func(b *Board) { b.Place(4, 3, Piece{Tiger, Red}) },
			b:    func(b *Board) { b.Place(4, 3, Piece{Tiger, Black}) },
		},
		{
			name: "same piece, other square",
			a:    func(b *Board) { b.Place(4, 3, Piece{Rat, Red}) },
			b:    func(b *Board) { b.Place(4, 1, Piece{Rat, Red}) },
		},
		{
			name: "pieces swapped",
			a: func(b *Board) {
				b.Place(2, 0, Piece{Elephant, Red})
				b.Place(6, 6, Piece{Rat, Black})
			},
			b: func(b *Board) {
				b.Place(2, 0, Piece{Rat, Black})
				b.Place(6, 6, Piece{Elephant, Red})
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a, b := NewEmptyBoard(), NewEmptyBoard()
			test.a(a)
			test.b(b)
			if a.Hash() == b.Hash() {
				t.Error("Expected different hashes")
			}
			if a.ContentHash() == b.ContentHash() {
				t.Error("Expected different content hashes")
			}
		})
	}
}
