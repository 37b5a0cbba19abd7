package checkers

import (
	"math"
	"sort"

	"github.com/casualarcade/arcade/engine"
)

const (
	manValue      = 3.0
	kingValue     = 5.0
	captureBonus  = 2.0
	advanceWeight = 0.1
	exposurePenal = 3.0
	replyWeight   = 0.9
)

// ChooseMove picks the next single step or jump for side. ok is false when
// side has no legal move, which the game treats as a loss for side.
func ChooseMove(b Board, side engine.Side, forcedFrom int, d engine.Difficulty, r *engine.Rand) (Move, bool) {
	moves := b.LegalMoves(side, forcedFrom)
	if len(moves) == 0 {
		return Move{}, false
	}
	if d == engine.Easy {
		return moves[r.Intn(len(moves))], true
	}
	sort.SliceStable(moves, func(i, j int) bool {
		if moves[i].To != moves[j].To {
			return moves[i].To < moves[j].To
		}
		return moves[i].From < moves[j].From
	})
	best, bestScore := moves[0], math.Inf(-1)
	for _, m := range moves {
		var s float64
		if d == engine.Normal {
			s = scoreMove(&b, m, side)
		} else {
			s = scoreWithReply(&b, m, side)
		}
		if s > bestScore {
			best, bestScore = m, s
		}
	}
	return best, true
}

func pieceValue(p Piece) float64 {
	if p.IsKing() {
		return kingValue
	}
	return manValue
}

func material(b *Board, side engine.Side) float64 {
	v := 0.0
	for _, p := range b {
		switch p.Side() {
		case side:
			v += pieceValue(p)
		case side.Opponent():
			v -= pieceValue(p)
		}
	}
	return v
}

// advancement is how many rows a man has travelled from its home edge.
func advancement(side engine.Side, idx int) float64 {
	row := idx / Size
	if side == engine.SideOne {
		return float64(Size - 1 - row)
	}
	return float64(row)
}

// exposed reports whether the piece on idx can be jumped by the opponent next turn.
func exposed(b *Board, idx int) bool {
	side := b[idx].Side()
	for _, m := range b.LegalMoves(side.Opponent(), -1) {
		if m.IsCapture() && m.Captured == idx {
			return true
		}
	}
	return false
}

// scoreMove is the one-ply heuristic shared by NORMAL and HARD.
func scoreMove(b *Board, m Move, side engine.Side) float64 {
	nb, fx := b.Apply(m)
	s := material(&nb, side)
	if m.IsCapture() {
		s += captureBonus
	}
	if !nb[m.To].IsKing() {
		s += advanceWeight * advancement(side, m.To)
	}
	if fx.ContinueFrom < 0 && exposed(&nb, m.To) {
		s -= exposurePenal
	}
	return s
}

// scoreWithReply approximates a 2-ply search: a move that continues a chain
// adds the best continuation, otherwise the opponent's best reply counts against it.
func scoreWithReply(b *Board, m Move, side engine.Side) float64 {
	s := scoreMove(b, m, side)
	nb, fx := b.Apply(m)
	if fx.ContinueFrom >= 0 {
		best := math.Inf(-1)
		for _, next := range nb.LegalMoves(side, fx.ContinueFrom) {
			if v := scoreWithReply(&nb, next, side); v > best {
				best = v
			}
		}
		if !math.IsInf(best, -1) {
			return best
		}
		return s
	}
	opp := side.Opponent()
	replies := nb.LegalMoves(opp, -1)
	if len(replies) == 0 {
		return s + 100 // opponent is out of moves
	}
	bestReply := math.Inf(-1)
	for _, rm := range replies {
		if v := scoreMove(&nb, rm, opp); v > bestReply {
			bestReply = v
		}
	}
	return s - replyWeight*bestReply
}
