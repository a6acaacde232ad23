package engine

import (
	"fmt"
	"strings"
	"unicode"
)

// ClassicPosition is the starting layout in position notation
const ClassicPosition = "L5T/1D3C1/R1P1W1E/7/7/7/e1w1p1r/1c3d1/t5l b"

var letterToSpecies = map[rune]Species{
	'r': Rat,
	'c': Cat,
	'd': Dog,
	'w': Wolf,
	'p': Leopard,
	't': Tiger,
	'l': Lion,
	'e': Elephant,
}

func pieceToChar(p Piece) rune {
	if p.IsZero() {
		return '.'
	}
	for ch, s := range letterToSpecies {
		if s == p.Species {
			if p.Side == Red {
				return unicode.ToUpper(ch)
			}
			return ch
		}
	}
	return '.'
}

// Encode writes the board as 9 ranks separated by "/", empty runs as digits,
// Red in upper case and Black in lower case, then the side to move ("r" or "b").
// Terrain is not written; it is always the standard geography.
func (b *Board) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			p := b.cells[r][c].Piece
			if p.IsZero() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if b.turn == Red {
		sb.WriteByte('r')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

// DecodeBoard parses position notation produced by Encode. The side to move
// may be omitted, in which case Black moves first.
func DecodeBoard(s string) (*Board, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, fmt.Errorf("%w: expected ranks and an optional side", ErrInvalidPosition)
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != Rows {
		return nil, fmt.Errorf("%w: expected %d ranks, got %d", ErrInvalidPosition, Rows, len(ranks))
	}

	b := NewEmptyBoard()
	for r, rank := range ranks {
		c := 0
		for _, ch := range rank {
			if c >= Cols {
				return nil, fmt.Errorf("%w: rank %d is too long", ErrInvalidPosition, r+1)
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			species, ok := letterToSpecies[unicode.ToLower(ch)]
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece letter %q", ErrInvalidPosition, ch)
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			b.cells[r][c].Piece = Piece{Species: species, Side: side}
			c++
		}
		if c != Cols {
			return nil, fmt.Errorf("%w: rank %d has %d columns", ErrInvalidPosition, r+1, c)
		}
	}

	if len(fields) == 2 {
		side, err := ParseSide(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, err)
		}
		b.turn = side
	}
	return b, nil
}
