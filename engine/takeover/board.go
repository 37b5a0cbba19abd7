// Package takeover implements the 8x8 disc-flipping territory game.
package takeover

import "github.com/casualarcade/arcade/engine"

const (
	Size  = 8
	Cells = Size * Size
)

// Disc is the content of one cell.
type Disc uint8

const (
	Empty Disc = iota
	Dark        // human, moves first
	Light       // AI
)

func (d Disc) Other() Disc {
	switch d {
	case Dark:
		return Light
	case Light:
		return Dark
	}
	return Empty
}

func (d Disc) String() string {
	switch d {
	case Dark:
		return "D"
	case Light:
		return "L"
	}
	return "."
}

// Board is row-major: index = row*Size + col.
type Board [Cells]Disc

// Index converts (row, col) into a board index.
func Index(row, col int) int { return row*Size + col }

// StartBoard returns the standard four-disc opening.
func StartBoard() Board {
	var b Board
	b[Index(3, 3)] = Light
	b[Index(4, 4)] = Light
	b[Index(3, 4)] = Dark
	b[Index(4, 3)] = Dark
	return b
}

var directions = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// flips returns the cells that placing side at idx would capture.
func (b *Board) flips(idx int, side Disc) []int {
	if b[idx] != Empty {
		return nil
	}
	row, col := idx/Size, idx%Size
	opp := side.Other()
	var out []int
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		var run []int
		for r >= 0 && r < Size && c >= 0 && c < Size && b[Index(r, c)] == opp {
			run = append(run, Index(r, c))
			r += d[0]
			c += d[1]
		}
		if len(run) > 0 && r >= 0 && r < Size && c >= 0 && c < Size && b[Index(r, c)] == side {
			out = append(out, run...)
		}
	}
	return out
}

// LegalMoves returns every cell where side can place, ascending.
func (b *Board) LegalMoves(side Disc) []int {
	var out []int
	for i := range b {
		if b[i] == Empty && len(b.flips(i, side)) > 0 {
			out = append(out, i)
		}
	}
	return out
}

// HasMove is a cheaper LegalMoves(side) != nil.
func (b *Board) HasMove(side Disc) bool {
	for i := range b {
		if b[i] == Empty && len(b.flips(i, side)) > 0 {
			return true
		}
	}
	return false
}

// Apply returns a new board with side placed at idx and the flipped cells.
// The input is not modified. flipped is empty when the move is illegal.
func (b Board) Apply(idx int, side Disc) (Board, []int) {
	flipped := b.flips(idx, side)
	if len(flipped) == 0 {
		return b, nil
	}
	b[idx] = side
	for _, f := range flipped {
		b[f] = side
	}
	return b, flipped
}

// Count returns the number of discs of each colour.
func (b *Board) Count() (dark, light int) {
	for _, d := range b {
		switch d {
		case Dark:
			dark++
		case Light:
			light++
		}
	}
	return dark, light
}

// Terminal reports whether neither side can move (this includes a full board).
func (b *Board) Terminal() bool {
	return !b.HasMove(Dark) && !b.HasMove(Light)
}

func (b *Board) outcome() engine.Outcome {
	dark, light := b.Count()
	switch {
	case dark > light:
		return engine.WinSideOne
	case light > dark:
		return engine.WinSideTwo
	}
	return engine.Draw
}
