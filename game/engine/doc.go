// Package engine provides the rules of Jungle (Dou Shou Qi) on the standard
// 9x7 board.
//
// The engine package implements:
//   - The board model: fixed terrain (ground, water, traps, dens) and pieces
//   - Move validation for all eight species, including the water jump
//   - Move application, win detection and move enumeration
//   - Position notation, rendering, equality and hashing
//
// Core Types:
//
// Board holds the cells and an advisory side to move. Its rule methods
// (IsLegalMove, ApplyMove, SideHasWon) ignore whose turn it is. GameEngine
// wraps a Board for a game loop: it enforces turn order, records history and
// supports undo.
//
// Usage:
//
//	b := engine.NewBoard()
//	if b.IsLegalMove(7, 1, 6, 1) {
//		b.ApplyMove(7, 1, 6, 1)
//	}
//	fmt.Print(b)
//
//	eng := engine.NewEngineWithDefaults()
//	if _, err := eng.Move(engine.Move{From: engine.Position{Row: 7, Col: 1}, To: engine.Position{Row: 6, Col: 1}}); err != nil {
//		log.Fatal(err)
//	}
//
// Game Rules:
//
// Pieces step one cell orthogonally and capture pieces of equal or lower
// rank. The rat swims and, from land, captures the elephant; the elephant never
// captures the rat. Tigers and lions jump straight across the water unless a
// rat is in the way. Any piece standing in a trap may be captured by any enemy.
// A side wins by entering the opposing den or by capturing every enemy piece.
package engine
