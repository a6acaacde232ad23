package engine

// directions are the four orthogonal steps: up, down, left, right
var directions = [4]struct{ dr, dc int }{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	return abs(from.Row-to.Row) + abs(from.Col-to.Col)
}

// CountTerrain counts the cells of a given terrain
func (b *Board) CountTerrain(t Terrain) int {
	count := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c].Terrain == t {
				count++
			}
		}
	}
	return count
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
