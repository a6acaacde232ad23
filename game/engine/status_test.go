package engine

import "testing"

func TestSideHasWon_StartingBoard(t *testing.T) {
	b := NewBoard()
	if b.SideHasWon(Red) || b.SideHasWon(Black) {
		t.Error("Expected nobody to have won at the start")
	}
	if b.Winner() != SideNone || b.IsTerminal() {
		t.Error("Expected the starting board not to be terminal")
	}
	if b.SideHasWon(SideNone) {
		t.Error("Expected SideNone never to win")
	}
}

func TestSideHasWon_DenByPlacement(t *testing.T) {
	b := NewBoard()
	b.Remove(2, 0)
	b.Place(8, 3, redRat)

	if !b.SideHasWon(Red) {
		t.Error("Expected red to win with a piece in the black den")
	}
	if b.SideHasWon(Black) {
		t.Error("Expected black not to have won")
	}
	if b.Winner() != Red {
		t.Errorf("Expected winner red, got %v", b.Winner())
	}
}

func TestSideHasWon_DenByMove(t *testing.T) {
	b := createTestBoard(map[Position]Piece{
		pos(8, 2): redCat,
		pos(4, 3): blackLion,
	})

	if !b.IsLegalMove(8, 2, 8, 3) {
		t.Fatal("Expected the cat to be able to enter the black den")
	}
	b.ApplyMove(8, 2, 8, 3)
	if !b.SideHasWon(Red) {
		t.Error("Expected red to win after entering the den")
	}
}

func TestSideHasWon_BlackInRedDen(t *testing.T) {
	b := createTestBoard(map[Position]Piece{
		pos(0, 3): blackDog,
		pos(4, 3): redLion,
	})

	if !b.SideHasWon(Black) {
		t.Error("Expected black to win with a piece in the red den")
	}
	if b.SideHasWon(Red) {
		t.Error("Expected red not to win because black occupies the red den")
	}
}

func TestSideHasWon_Elimination(t *testing.T) {
	b := createTestBoard(map[Position]Piece{
		pos(4, 3): redCat,
	})

	if !b.SideHasWon(Red) {
		t.Error("Expected red to win when black has no pieces")
	}
	if b.SideHasWon(Black) {
		t.Error("Expected black not to win while red has a piece")
	}
	if b.CountPieces(Red) != 1 || b.CountPieces(Black) != 0 {
		t.Errorf("Unexpected counts red=%d black=%d", b.CountPieces(Red), b.CountPieces(Black))
	}
}

func TestSideHasWon_Idempotent(t *testing.T) {
	b := NewBoard()
	b.Place(0, 3, blackRat)
	before := b.Clone()

	for i := 0; i < 3; i++ {
		if !b.SideHasWon(Black) {
			t.Fatal("Expected black to win on every call")
		}
	}
	if !b.EqualState(before) {
		t.Error("Expected SideHasWon not to modify the board")
	}
}
