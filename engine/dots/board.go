// Package dots implements dots-and-boxes on a 4x4 box grid. Completing a box
// keeps the same side to move.
package dots

import "github.com/casualarcade/arcade/engine"

const (
	BoxRows = 4
	BoxCols = 4
	Boxes   = BoxRows * BoxCols

	hEdges = (BoxRows + 1) * BoxCols
	vEdges = BoxRows * (BoxCols + 1)
	Edges  = hEdges + vEdges
)

// HEdge is the horizontal edge above box row r (r may be BoxRows for the bottom border).
func HEdge(r, c int) int { return r*BoxCols + c }

// VEdge is the vertical edge left of box column c (c may be BoxCols for the right border).
func VEdge(r, c int) int { return hEdges + r*(BoxCols+1) + c }

// Board tracks drawn edges and box owners.
type Board struct {
	Edges  [Edges]bool
	Owners [Boxes]engine.Side
}

func boxEdges(box int) [4]int {
	r, c := box/BoxCols, box%BoxCols
	return [4]int{HEdge(r, c), HEdge(r+1, c), VEdge(r, c), VEdge(r, c+1)}
}

// adjacentBoxes lists the one or two boxes an edge borders.
func adjacentBoxes(edge int) []int {
	var out []int
	if edge < hEdges {
		r, c := edge/BoxCols, edge%BoxCols
		if r > 0 {
			out = append(out, (r-1)*BoxCols+c)
		}
		if r < BoxRows {
			out = append(out, r*BoxCols+c)
		}
		return out
	}
	e := edge - hEdges
	r, c := e/(BoxCols+1), e%(BoxCols+1)
	if c > 0 {
		out = append(out, r*BoxCols+c-1)
	}
	if c < BoxCols {
		out = append(out, r*BoxCols+c)
	}
	return out
}

// Sides counts the drawn edges around box.
func (b *Board) Sides(box int) int {
	n := 0
	for _, e := range boxEdges(box) {
		if b.Edges[e] {
			n++
		}
	}
	return n
}

// LegalMoves returns undrawn edges ascending.
func (b *Board) LegalMoves() []int {
	var out []int
	for i, drawn := range b.Edges {
		if !drawn {
			out = append(out, i)
		}
	}
	return out
}

// Apply returns a copy with edge drawn by side and the number of boxes it completed.
func (b Board) Apply(edge int, side engine.Side) (Board, int) {
	b.Edges[edge] = true
	completed := 0
	for _, box := range adjacentBoxes(edge) {
		if b.Sides(box) == 4 && b.Owners[box] == engine.SideNone {
			b.Owners[box] = side
			completed++
		}
	}
	return b, completed
}

// Score counts boxes owned by each side.
func (b *Board) Score() (one, two int) {
	for _, o := range b.Owners {
		switch o {
		case engine.SideOne:
			one++
		case engine.SideTwo:
			two++
		}
	}
	return one, two
}

// Full reports whether every edge has been drawn.
func (b *Board) Full() bool {
	for _, drawn := range b.Edges {
		if !drawn {
			return false
		}
	}
	return true
}
