// Package checkers implements 8x8 draughts with forced capture, multi-jump
// chains and promotion.
//
// Light (engine.SideOne, the human) starts on rows 5-7 and moves toward row 0.
// Dark (engine.SideTwo, the AI) starts on rows 0-2 and moves toward row 7.
package checkers

import (
	"fmt"

	"github.com/casualarcade/arcade/engine"
)

const (
	Size  = 8
	Cells = Size * Size
)

// Piece is the content of a square.
type Piece uint8

const (
	Empty Piece = iota
	LightMan
	LightKing
	DarkMan
	DarkKing
)

// Side returns the owner of the piece.
func (p Piece) Side() engine.Side {
	switch p {
	case LightMan, LightKing:
		return engine.SideOne
	case DarkMan, DarkKing:
		return engine.SideTwo
	}
	return engine.SideNone
}

func (p Piece) IsKing() bool { return p == LightKing || p == DarkKing }

// Crowned returns the king of the same side.
func (p Piece) Crowned() Piece {
	switch p {
	case LightMan:
		return LightKing
	case DarkMan:
		return DarkKing
	}
	return p
}

func (p Piece) String() string {
	return [...]string{".", "l", "L", "d", "D"}[p]
}

// Index converts (row, col) into a board index.
func Index(row, col int) int { return row*Size + col }

// Playable reports whether idx is a dark square.
func Playable(idx int) bool { return (idx/Size+idx%Size)%2 == 1 }

// Board is row-major with row 0 at the top.
type Board [Cells]Piece

// StartBoard places twelve men per side on the dark squares.
func StartBoard() Board {
	var b Board
	for i := range b {
		if !Playable(i) {
			continue
		}
		switch row := i / Size; {
		case row <= 2:
			b[i] = DarkMan
		case row >= 5:
			b[i] = LightMan
		}
	}
	return b
}

// Count returns the number of pieces a side owns.
func (b *Board) Count(side engine.Side) (men, kings int) {
	for _, p := range b {
		if p.Side() != side {
			continue
		}
		if p.IsKing() {
			kings++
		} else {
			men++
		}
	}
	return men, kings
}

func (b Board) String() string {
	out := make([]byte, 0, Cells+Size)
	for i, p := range b {
		out = append(out, p.String()[0])
		if i%Size == Size-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}

// Move is a single step or a single jump. A multi-jump is a sequence of
// jumps played while ForcedFrom stays set.
type Move struct {
	From, To int
	Captured int // jumped square, -1 for a step
}

func (m Move) IsCapture() bool { return m.Captured >= 0 }

func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return fmt.Sprintf("%d%s%d", m.From, sep, m.To)
}

// forward returns the row direction men of side travel.
func forward(side engine.Side) int {
	if side == engine.SideOne {
		return -1
	}
	return 1
}

func directionsFor(p Piece) [][2]int {
	if p.IsKing() {
		return [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	}
	f := forward(p.Side())
	return [][2]int{{f, -1}, {f, 1}}
}

func inBounds(r, c int) bool { return r >= 0 && r < Size && c >= 0 && c < Size }

// capturesFrom lists the jumps available to the piece on from.
func (b *Board) capturesFrom(from int) []Move {
	p := b[from]
	if p == Empty {
		return nil
	}
	r, c := from/Size, from%Size
	var out []Move
	for _, d := range directionsFor(p) {
		mr, mc := r+d[0], c+d[1]
		lr, lc := r+2*d[0], c+2*d[1]
		if !inBounds(lr, lc) {
			continue
		}
		mid, land := Index(mr, mc), Index(lr, lc)
		if b[mid].Side() == p.Side().Opponent() && b[land] == Empty {
			out = append(out, Move{From: from, To: land, Captured: mid})
		}
	}
	return out
}

func (b *Board) stepsFrom(from int) []Move {
	p := b[from]
	r, c := from/Size, from%Size
	var out []Move
	for _, d := range directionsFor(p) {
		nr, nc := r+d[0], c+d[1]
		if inBounds(nr, nc) && b[Index(nr, nc)] == Empty {
			out = append(out, Move{From: from, To: Index(nr, nc), Captured: -1})
		}
	}
	return out
}

// LegalMoves generates moves for side. forcedFrom >= 0 restricts generation to
// captures by that piece (mid multi-jump). Otherwise captures are mandatory
// board-wide: if any exist, no step is legal.
func (b *Board) LegalMoves(side engine.Side, forcedFrom int) []Move {
	if forcedFrom >= 0 {
		if b[forcedFrom].Side() != side {
			return nil
		}
		return b.capturesFrom(forcedFrom)
	}
	var caps, steps []Move
	for i, p := range b {
		if p.Side() != side {
			continue
		}
		caps = append(caps, b.capturesFrom(i)...)
		if len(caps) == 0 {
			steps = append(steps, b.stepsFrom(i)...)
		}
	}
	if len(caps) > 0 {
		return caps
	}
	return steps
}

// Effects describes what applying a move did.
type Effects struct {
	Captured     Piece
	Promoted     bool
	ContinueFrom int // landing square if the same piece must keep jumping, else -1
}

// Apply returns a fresh board with m played. The input board is not modified.
// A capture that can be followed by another capture from the landing square
// sets ContinueFrom; promotion ends a chain.
func (b Board) Apply(m Move) (Board, Effects) {
	fx := Effects{ContinueFrom: -1}
	p := b[m.From]
	b[m.From] = Empty
	if m.IsCapture() {
		fx.Captured = b[m.Captured]
		b[m.Captured] = Empty
	}
	row := m.To / Size
	if !p.IsKing() && ((p.Side() == engine.SideOne && row == 0) || (p.Side() == engine.SideTwo && row == Size-1)) {
		p = p.Crowned()
		fx.Promoted = true
	}
	b[m.To] = p
	if m.IsCapture() && !fx.Promoted && len(b.capturesFrom(m.To)) > 0 {
		fx.ContinueFrom = m.To
	}
	return b, fx
}
