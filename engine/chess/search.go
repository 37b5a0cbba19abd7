package chess

import (
	"math"
	"runtime"
	"sort"

	"github.com/casualarcade/arcade/engine"
	"golang.org/x/sync/errgroup"
)

// Search depths per difficulty.
const (
	NormalDepth = 2
	HardDepth   = 3
)

const (
	mateScore = 100000
	infinity  = math.MaxInt32
)

// ChooseMove picks a move for the side to move. ok is false when there is no
// legal move (checkmate or stalemate).
func ChooseMove(pos Position, d engine.Difficulty, r *engine.Rand) (Move, bool) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return Move{}, false
	}
	switch d {
	case engine.Easy:
		return easyMove(&pos, moves, r), true
	case engine.Normal:
		return searchRoot(&pos, moves, NormalDepth), true
	default:
		return searchRoot(&pos, moves, HardDepth), true
	}
}

// easyMove plays a random move from the worse half of one-ply scores, and the
// best one-ply move 20% of the time.
func easyMove(pos *Position, moves []Move, r *engine.Rand) Move {
	type scored struct {
		m Move
		s int
	}
	list := make([]scored, len(moves))
	for i, m := range moves {
		next := pos.Apply(m)
		list[i] = scored{m, -next.relativeEval()}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].s > list[j].s })
	if r.Chance(0.2) {
		return list[0].m
	}
	half := len(list) / 2
	worse := list[half:]
	return worse[r.Intn(len(worse))].m
}

// searchRoot searches every root move in parallel with a full window, so the
// result does not depend on goroutine scheduling. Ties keep generation order.
func searchRoot(pos *Position, moves []Move, depth int) Move {
	orderMoves(moves)
	scores := make([]int, len(moves))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range moves {
		g.Go(func() error {
			next := pos.Apply(m)
			scores[i] = -negamax(&next, depth-1, -infinity, infinity, 1)
			return nil
		})
	}
	_ = g.Wait()
	best := 0
	for i := range moves {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return moves[best]
}

func negamax(pos *Position, depth, alpha, beta, ply int) int {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if pos.InCheck() {
			return -mateScore + ply
		}
		return 0
	}
	if pos.Rights.HalfMoveClock >= 100 || pos.insufficientMaterial() {
		return 0
	}
	if depth == 0 {
		return pos.relativeEval()
	}
	orderMoves(moves)
	best := -infinity
	for _, m := range moves {
		next := pos.Apply(m)
		s := -negamax(&next, depth-1, -beta, -alpha, ply+1)
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

// orderMoves puts captures first by most valuable victim, least valuable
// attacker, then promotions; the sort is stable so generation order breaks ties.
func orderMoves(moves []Move) {
	key := func(m Move) int {
		k := 0
		if m.Is(FlagCapture) {
			k += 10*pieceValues[m.Captured.Type()] - pieceValues[m.Piece.Type()]/10
		}
		if m.Promo != NoPieceType {
			k += pieceValues[m.Promo]
		}
		return k
	}
	sort.SliceStable(moves, func(i, j int) bool { return key(moves[i]) > key(moves[j]) })
}
