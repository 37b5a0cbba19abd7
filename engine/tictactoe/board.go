// Package tictactoe implements 3x3 noughts and crosses with a minimax opponent.
package tictactoe

import "github.com/casualarcade/arcade/engine"

// Mark is the content of one cell.
type Mark uint8

const (
	Empty Mark = iota
	X          // human, moves first
	O          // AI
)

func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return "."
}

// Board is a fixed 3x3 board stored row-major: index = row*3 + col.
type Board [9]Mark

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns the mark holding a complete line and that line, or Empty.
func (b *Board) Winner() (Mark, [3]int) {
	for _, ln := range lines {
		m := b[ln[0]]
		if m != Empty && b[ln[1]] == m && b[ln[2]] == m {
			return m, ln
		}
	}
	return Empty, [3]int{-1, -1, -1}
}

// Full reports whether no empty cell remains.
func (b *Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// LegalMoves returns the empty cells in index order; empty once the game is decided.
func (b *Board) LegalMoves() []int {
	if w, _ := b.Winner(); w != Empty {
		return nil
	}
	var out []int
	for i, m := range b {
		if m == Empty {
			out = append(out, i)
		}
	}
	return out
}

// Apply returns a copy of b with m placed at cell.
func (b Board) Apply(cell int, m Mark) Board {
	b[cell] = m
	return b
}

func (b *Board) outcome() engine.Outcome {
	switch w, _ := b.Winner(); w {
	case X:
		return engine.WinSideOne
	case O:
		return engine.WinSideTwo
	}
	if b.Full() {
		return engine.Draw
	}
	return engine.InProgress
}

func (b Board) String() string {
	buf := make([]byte, 0, 12)
	for i, m := range b {
		buf = append(buf, m.String()[0])
		if i%3 == 2 && i != 8 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
