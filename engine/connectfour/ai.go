package connectfour

import (
	"math"

	"github.com/casualarcade/arcade/engine"
)

// HardDepth is the alpha-beta search depth of the HARD policy.
const HardDepth = 5

const winScore = 1_000_000

// centre-out column order for move ordering and tie-breaks.
var columnOrder = [Cols]int{3, 2, 4, 1, 5, 0, 6}

// ChooseColumn picks a column for side. ok is false when the board is full.
func ChooseColumn(b Board, side Disc, d engine.Difficulty, r *engine.Rand) (col int, ok bool) {
	legal := b.LegalColumns()
	if len(legal) == 0 || b.Winner() != Empty {
		return -1, false
	}
	switch d {
	case engine.Easy:
		if r.Chance(0.5) {
			if c, found := immediateWin(b, side, legal); found {
				return c, true
			}
		}
		return legal[r.Intn(len(legal))], true
	case engine.Normal:
		if c, found := immediateWin(b, side, legal); found {
			return c, true
		}
		if c, found := immediateWin(b, side.Other(), legal); found {
			return c, true
		}
		best, bestScore := -1, math.MinInt
		for _, c := range columnOrder {
			if b.DropRow(c) < 0 {
				continue
			}
			nb, _ := b.Drop(c, side)
			s := evaluate(&nb, side)
			if s > bestScore {
				best, bestScore = c, s
			}
		}
		return best, true
	default:
		return searchRoot(b, side, HardDepth), true
	}
}

func immediateWin(b Board, side Disc, legal []int) (int, bool) {
	for _, c := range legal {
		nb, idx := b.Drop(c, side)
		if nb.WinsAt(idx) {
			return c, true
		}
	}
	return -1, false
}

func searchRoot(b Board, side Disc, depth int) int {
	best, alpha := -1, -math.MaxInt
	for _, c := range columnOrder {
		if b.DropRow(c) < 0 {
			continue
		}
		nb, idx := b.Drop(c, side)
		var s int
		if nb.WinsAt(idx) {
			s = winScore + depth
		} else {
			s = -negamax(nb, side.Other(), depth-1, -math.MaxInt, -alpha)
		}
		if best < 0 || s > alpha {
			best, alpha = c, s
		}
	}
	return best
}

func negamax(b Board, toMove Disc, depth, alpha, beta int) int {
	if b.Full() {
		return 0
	}
	if depth == 0 {
		return evaluate(&b, toMove)
	}
	best := -math.MaxInt
	for _, c := range columnOrder {
		if b.DropRow(c) < 0 {
			continue
		}
		nb, idx := b.Drop(c, toMove)
		var s int
		if nb.WinsAt(idx) {
			s = winScore + depth
		} else {
			s = -negamax(nb, toMove.Other(), depth-1, -beta, -alpha)
		}
		if s > best {
			best = s
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// evaluate scores every 4-cell window from side's point of view.
func evaluate(b *Board, side Disc) int {
	score := 0
	for r := 0; r < Rows; r++ {
		if b[Index(r, Cols/2)] == side {
			score += 3
		}
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			for _, dir := range directions {
				er, ec := r+3*dir[0], c+3*dir[1]
				if er < 0 || er >= Rows || ec < 0 || ec >= Cols {
					continue
				}
				var own, opp, empty int
				for k := 0; k < connect; k++ {
					switch b[Index(r+k*dir[0], c+k*dir[1])] {
					case side:
						own++
					case Empty:
						empty++
					default:
						opp++
					}
				}
				score += windowScore(own, opp, empty)
			}
		}
	}
	return score
}

func windowScore(own, opp, empty int) int {
	switch {
	case own == 4:
		return 100
	case own == 3 && empty == 1:
		return 5
	case own == 2 && empty == 2:
		return 2
	case opp == 3 && empty == 1:
		return -4
	}
	return 0
}
