// Package battleship implements grid attack: two hidden fleets on 10x10
// grids, alternating shots, and a hunt/target computer gunner.
package battleship

import (
	"fmt"
	"slices"

	"github.com/casualarcade/arcade/engine"
)

// Grid geometry.
const (
	Size  = 10
	Cells = Size * Size
)

// FleetLengths are the ships every side places.
var FleetLengths = [...]int{5, 4, 3, 3, 2}

// Shot is what a cell is known to hold from the attacker's side.
type Shot uint8

const (
	Unknown Shot = iota
	Miss
	Hit
)

// Ship occupies Cells; it is sunk when every cell is hit.
type Ship struct {
	Cells []int
	hits  int
}

func (s *Ship) Sunk() bool { return s.hits == len(s.Cells) }

// Fleet is one side's ships plus the shots fired at them.
type Fleet struct {
	ships []Ship
	at    [Cells]int // ship index + 1, 0 for water
	shots [Cells]Shot
}

// RandomFleet places FleetLengths without overlap, each horizontal or vertical.
func RandomFleet(r *engine.Rand) *Fleet {
	f := &Fleet{}
	for _, n := range FleetLengths {
		for {
			horizontal := r.Chance(0.5)
			row, col := r.Intn(Size), r.Intn(Size)
			cells, ok := f.fits(row, col, n, horizontal)
			if ok {
				f.add(cells)
				break
			}
		}
	}
	return f
}

// NewFleet places ships at explicit cells. Each ship must be a straight,
// contiguous, in-bounds line that does not overlap another.
func NewFleet(ships ...[]int) (*Fleet, error) {
	f := &Fleet{}
	for _, cells := range ships {
		if len(cells) == 0 {
			return nil, fmt.Errorf("%w: empty ship", engine.ErrInvalidArgument)
		}
		row, col := cells[0]/Size, cells[0]%Size
		horizontal := len(cells) == 1 || cells[1] == cells[0]+1
		want, ok := f.fits(row, col, len(cells), horizontal)
		if !ok || !slices.Equal(want, cells) {
			return nil, fmt.Errorf("%w: bad ship %v", engine.ErrInvalidArgument, cells)
		}
		f.add(cells)
	}
	return f, nil
}

func (f *Fleet) fits(row, col, n int, horizontal bool) ([]int, bool) {
	cells := make([]int, 0, n)
	for i := 0; i < n; i++ {
		r, c := row, col+i
		if !horizontal {
			r, c = row+i, col
		}
		if r < 0 || r >= Size || c < 0 || c >= Size || f.at[r*Size+c] != 0 {
			return nil, false
		}
		cells = append(cells, r*Size+c)
	}
	return cells, true
}

func (f *Fleet) add(cells []int) {
	f.ships = append(f.ships, Ship{Cells: cells})
	for _, c := range cells {
		f.at[c] = len(f.ships)
	}
}

// Shots is the attacker's view of this grid.
func (f *Fleet) Shots() [Cells]Shot { return f.shots }

// ShipAt reports the ship index on cell, or -1.
func (f *Fleet) ShipAt(cell int) int { return f.at[cell] - 1 }

// Ships returns copies of the ships.
func (f *Fleet) Ships() []Ship {
	out := make([]Ship, len(f.ships))
	for i, s := range f.ships {
		out[i] = Ship{Cells: append([]int(nil), s.Cells...), hits: s.hits}
	}
	return out
}

// SunkCells marks every cell of every sunk ship.
func (f *Fleet) SunkCells() [Cells]bool {
	var out [Cells]bool
	for _, s := range f.ships {
		if s.Sunk() {
			for _, c := range s.Cells {
				out[c] = true
			}
		}
	}
	return out
}

// AllSunk reports a destroyed fleet.
func (f *Fleet) AllSunk() bool {
	for i := range f.ships {
		if !f.ships[i].Sunk() {
			return false
		}
	}
	return true
}

// AttackResult describes one shot. Sunk is the ship index sunk by it, or -1.
type AttackResult struct {
	Cell int
	Hit  bool
	Sunk int
}

// Fire shoots cell. Repeated shots and off-grid cells are rejected.
func (f *Fleet) Fire(cell int) (AttackResult, error) {
	if cell < 0 || cell >= Cells {
		return AttackResult{}, fmt.Errorf("%w: cell %d", engine.ErrInvalidArgument, cell)
	}
	if f.shots[cell] != Unknown {
		return AttackResult{}, fmt.Errorf("%w: cell %d already shot", engine.ErrIllegalMove, cell)
	}
	res := AttackResult{Cell: cell, Sunk: -1}
	idx := f.at[cell] - 1
	if idx < 0 {
		f.shots[cell] = Miss
		return res, nil
	}
	f.shots[cell] = Hit
	res.Hit = true
	s := &f.ships[idx]
	s.hits++
	if s.Sunk() {
		res.Sunk = idx
	}
	return res, nil
}
