// Package connectfour implements the 6x7 drop-disc game with an alpha-beta opponent.
package connectfour

import "github.com/casualarcade/arcade/engine"

const (
	Rows    = 6
	Cols    = 7
	Cells   = Rows * Cols
	connect = 4
)

// Disc is the content of one cell.
type Disc uint8

const (
	Empty  Disc = iota
	Red         // human, moves first
	Yellow      // AI
)

func (d Disc) Other() Disc {
	switch d {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	return Empty
}

func (d Disc) String() string {
	switch d {
	case Red:
		return "R"
	case Yellow:
		return "Y"
	}
	return "."
}

// Board is stored row-major with row 0 at the top: index = row*Cols + col.
type Board [Cells]Disc

// Index converts (row, col) into a board index.
func Index(row, col int) int { return row*Cols + col }

// DropRow returns the row a disc dropped into col would land on, or -1 if full.
func (b *Board) DropRow(col int) int {
	if col < 0 || col >= Cols {
		return -1
	}
	for row := Rows - 1; row >= 0; row-- {
		if b[Index(row, col)] == Empty {
			return row
		}
	}
	return -1
}

// LegalColumns returns non-full columns in ascending order.
func (b *Board) LegalColumns() []int {
	var out []int
	for c := 0; c < Cols; c++ {
		if b[Index(0, c)] == Empty {
			out = append(out, c)
		}
	}
	return out
}

// Drop returns a copy of b with d dropped into col and the landing index.
// The caller must have checked that col is legal.
func (b Board) Drop(col int, d Disc) (Board, int) {
	row := b.DropRow(col)
	idx := Index(row, col)
	b[idx] = d
	return b, idx
}

var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// WinsAt reports whether the disc at idx is part of a run of four.
func (b *Board) WinsAt(idx int) bool {
	d := b[idx]
	if d == Empty {
		return false
	}
	row, col := idx/Cols, idx%Cols
	for _, dir := range directions {
		n := 1
		for _, sign := range [2]int{1, -1} {
			r, c := row+sign*dir[0], col+sign*dir[1]
			for r >= 0 && r < Rows && c >= 0 && c < Cols && b[Index(r, c)] == d {
				n++
				r += sign * dir[0]
				c += sign * dir[1]
			}
		}
		if n >= connect {
			return true
		}
	}
	return false
}

// Winner scans the whole board; used for positions not built move by move.
func (b *Board) Winner() Disc {
	for i := range b {
		if b.WinsAt(i) {
			return b[i]
		}
	}
	return Empty
}

// Full reports whether the top row is occupied everywhere.
func (b *Board) Full() bool { return len(b.LegalColumns()) == 0 }

func outcomeFor(d Disc) engine.Outcome {
	if d == Red {
		return engine.WinSideOne
	}
	return engine.WinSideTwo
}
