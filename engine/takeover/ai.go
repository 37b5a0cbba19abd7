package takeover

import (
	"math"

	"github.com/casualarcade/arcade/engine"
)

// HardDepth is the alpha-beta depth of the HARD policy.
const HardDepth = 4

var weights = [Cells]int{
	100, -20, 10, 5, 5, 10, -20, 100,
	-20, -50, -2, -2, -2, -2, -50, -20,
	10, -2, 1, 1, 1, 1, -2, 10,
	5, -2, 1, 0, 0, 1, -2, 5,
	5, -2, 1, 0, 0, 1, -2, 5,
	10, -2, 1, 1, 1, 1, -2, 10,
	-20, -50, -2, -2, -2, -2, -50, -20,
	100, -20, 10, 5, 5, 10, -20, 100,
}

var corners = [4]int{0, Size - 1, Cells - Size, Cells - 1}

// ChooseMove picks a placement for side. ok is false when side must pass.
func ChooseMove(b Board, side Disc, d engine.Difficulty, r *engine.Rand) (cell int, ok bool) {
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		return -1, false
	}
	switch d {
	case engine.Easy:
		return moves[r.Intn(len(moves))], true
	case engine.Normal:
		best, bestScore := moves[0], math.MinInt
		for _, m := range moves {
			_, flipped := b.Apply(m, side)
			s := weights[m] + len(flipped)
			if s > bestScore {
				best, bestScore = m, s
			}
		}
		return best, true
	default:
		best, alpha := moves[0], -math.MaxInt
		for _, m := range moves {
			nb, _ := b.Apply(m, side)
			s := -negamax(nb, side.Other(), HardDepth-1, -math.MaxInt, -alpha)
			if s > alpha {
				best, alpha = m, s
			}
		}
		return best, true
	}
}

func negamax(b Board, toMove Disc, depth, alpha, beta int) int {
	if b.Terminal() {
		dark, light := b.Count()
		diff := dark - light
		if toMove == Light {
			diff = -diff
		}
		return diff * 1000
	}
	if depth == 0 {
		return evaluate(&b, toMove)
	}
	moves := b.LegalMoves(toMove)
	if len(moves) == 0 {
		return -negamax(b, toMove.Other(), depth-1, -beta, -alpha)
	}
	best := -math.MaxInt
	for _, m := range moves {
		nb, _ := b.Apply(m, toMove)
		s := -negamax(nb, toMove.Other(), depth-1, -beta, -alpha)
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

// evaluate: positional weights + mobility differential*5 + corner ownership*25.
func evaluate(b *Board, side Disc) int {
	opp := side.Other()
	score := 0
	for i, d := range b {
		switch d {
		case side:
			score += weights[i]
		case opp:
			score -= weights[i]
		}
	}
	score += 5 * (len(b.LegalMoves(side)) - len(b.LegalMoves(opp)))
	for _, c := range corners {
		switch b[c] {
		case side:
			score += 25
		case opp:
			score -= 25
		}
	}
	return score
}
