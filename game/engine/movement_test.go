package engine

import "testing"

func TestApplyMove_Capture(t *testing.T) {
	b := createTestBoard(map[Position]Piece{
		pos(4, 3): redWolf,
		pos(5, 3): blackDog,
	})

	captured, ok := b.MakeMove(Move{From: pos(4, 3), To: pos(5, 3)})
	if !ok {
		t.Fatal("Expected wolf to capture dog")
	}
	if captured != blackDog {
		t.Errorf("Expected captured black dog, got %v", captured)
	}
	if b.PieceAt(5, 3) != redWolf {
		t.Errorf("Expected wolf on (5,3), got %v", b.PieceAt(5, 3))
	}
	if b.HasPiece(4, 3) {
		t.Error("Expected source to be empty")
	}
	if b.CountPieces(Black) != 0 {
		t.Errorf("Expected black to have no pieces, got %d", b.CountPieces(Black))
	}
}

func TestApplyMove_IllegalLeavesBoardUntouched(t *testing.T) {
	tests := []struct {
		name                   string
		fromR, fromC, toR, toC int
	}{
		{"cat into water", 7, 1, 6, 1},
		{"off the board", 8, 0, 9, 0},
		{"empty source", 4, 3, 4, 4},
		{"dog attacks wolf", 1, 1, 2, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := NewBoard()
			if test.name == "cat into water" {
				// put the cat next to the basin first
				b.Remove(7, 1)
				b.Place(2, 1, blackCat)
				test.fromR, test.fromC, test.toR, test.toC = 2, 1, 3, 1
			}
			if test.name == "dog attacks wolf" {
				b.Place(2, 1, blackWolf)
			}
			before := b.Clone()
			hashBefore := b.Hash()

			if b.ApplyMove(test.fromR, test.fromC, test.toR, test.toC) {
				t.Fatal("Expected illegal move to be rejected")
			}
			if !b.EqualState(before) {
				t.Error("Expected board to be identical after a rejected move")
			}
			if b.Hash() != hashBefore {
				t.Error("Expected hash to be unchanged after a rejected move")
			}
		})
	}
}

func TestApplyMove_TerrainPreserved(t *testing.T) {
	b := createTestBoard(map[Position]Piece{
		pos(2, 1): redRat,
		pos(7, 2): redCat,
		pos(7, 3): blackWolf,
	})

	moves := []Move{
		{From: pos(2, 1), To: pos(3, 1)}, // into water
		{From: pos(7, 2), To: pos(7, 3)}, // capture in a trap
		{From: pos(7, 3), To: pos(8, 3)}, // into the den
	}

	for _, m := range moves {
		fromTerrain := b.TerrainAt(m.From.Row, m.From.Col)
		toTerrain := b.TerrainAt(m.To.Row, m.To.Col)
		if _, ok := b.MakeMove(m); !ok {
			t.Fatalf("Expected %v to be legal\n%s", m, b)
		}
		if b.TerrainAt(m.From.Row, m.From.Col) != fromTerrain {
			t.Errorf("%v: source terrain changed", m)
		}
		if b.TerrainAt(m.To.Row, m.To.Col) != toTerrain {
			t.Errorf("%v: destination terrain changed", m)
		}
	}

	if !b.SideHasWon(Red) {
		t.Error("Expected red to win after entering the black den")
	}
}

func TestApplyMove_DoesNotFlipTurn(t *testing.T) {
	b := NewBoard()
	if !b.ApplyMove(7, 1, 7, 0) {
		t.Fatal("Expected black cat to move")
	}
	if b.Turn() != Black {
		t.Errorf("Expected turn to remain black, got %v", b.Turn())
	}
}

func TestUnmakeMove_RestoresCapture(t *testing.T) {
	b := createTestBoard(map[Position]Piece{
		pos(1, 2): redRat,
		pos(1, 3): blackElephant,
	})
	before := b.Clone()

	m := Move{From: pos(1, 2), To: pos(1, 3)}
	captured, ok := b.MakeMove(m)
	if !ok {
		t.Fatal("Expected rat to capture the trapped elephant")
	}
	b.unmakeMove(m, captured)

	if !b.EqualState(before) {
		t.Error("Expected unmake to restore the position")
	}
}
