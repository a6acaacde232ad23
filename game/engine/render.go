package engine

import (
	"fmt"
	"strings"
)

// String renders one line per row; each cell is its terrain label padded to
// six characters followed by the three character piece label.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := b.cells[r][c]
			fmt.Fprintf(&sb, "%-6s%s", cell.Terrain, cell.Piece.Label())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Grid renders a compact view with row and column indices, used by the CLI.
// Empty cells show their terrain: ~~~ water, [r] / [b] traps, <R> / <B> dens.
func (b *Board) Grid() []string {
	lines := make([]string, 0, Rows+1)
	header := "   "
	for c := 0; c < Cols; c++ {
		header += fmt.Sprintf("  %d ", c)
	}
	lines = append(lines, header)
	for r := 0; r < Rows; r++ {
		row := fmt.Sprintf("%d  ", r)
		for c := 0; c < Cols; c++ {
			cell := b.cells[r][c]
			label := cell.Piece.Label()
			if cell.Piece.IsZero() {
				label = terrainGlyph(cell.Terrain)
			}
			row += " " + label
		}
		lines = append(lines, row)
	}
	return lines
}

func terrainGlyph(t Terrain) string {
	switch t {
	case Water:
		return "~~~"
	case RedTrap:
		return "[r]"
	case BlackTrap:
		return "[b]"
	case RedDen:
		return "<R>"
	case BlackDen:
		return "<B>"
	}
	return " . "
}
