package tictactoe

import "github.com/casualarcade/arcade/engine"

// ChooseMove picks a cell for side to play on b. ok is false when no move exists.
func ChooseMove(b Board, side Mark, d engine.Difficulty, r *engine.Rand) (cell int, ok bool) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return -1, false
	}
	switch d {
	case engine.Easy:
		if r.Chance(0.3) {
			if c, found := winningCell(b, side, moves); found {
				return c, true
			}
		}
		return moves[r.Intn(len(moves))], true
	case engine.Normal:
		return ruleMove(b, side, moves), true
	default:
		return bestMinimax(b, side), true
	}
}

func winningCell(b Board, side Mark, moves []int) (int, bool) {
	for _, c := range moves {
		nb := b.Apply(c, side)
		if w, _ := nb.Winner(); w == side {
			return c, true
		}
	}
	return -1, false
}

// ruleMove: win, block, centre, corner, lowest index.
func ruleMove(b Board, side Mark, moves []int) int {
	if c, ok := winningCell(b, side, moves); ok {
		return c
	}
	if c, ok := winningCell(b, side.Other(), moves); ok {
		return c
	}
	if b[4] == Empty {
		return 4
	}
	for _, c := range [4]int{0, 2, 6, 8} {
		if b[c] == Empty {
			return c
		}
	}
	return moves[0]
}

func bestMinimax(b Board, side Mark) int {
	best, bestScore := -1, -1000
	for _, c := range b.LegalMoves() {
		s := -negamax(b.Apply(c, side), side.Other(), 1)
		if s > bestScore {
			best, bestScore = c, s
		}
	}
	return best
}

// negamax scores b from toMove's perspective; wins score 10-depth so faster wins rank higher.
func negamax(b Board, toMove Mark, depth int) int {
	if w, _ := b.Winner(); w != Empty {
		if w == toMove {
			return 10 - depth
		}
		return depth - 10
	}
	if b.Full() {
		return 0
	}
	best := -1000
	for i, m := range b {
		if m != Empty {
			continue
		}
		s := -negamax(b.Apply(i, toMove), toMove.Other(), depth+1)
		if s > best {
			best = s
		}
	}
	return best
}
