package dots

import "github.com/casualarcade/arcade/engine"

// ChooseEdge picks an edge for side. ok is false on a full board.
func ChooseEdge(b Board, side engine.Side, d engine.Difficulty, r *engine.Rand) (edge int, ok bool) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return -1, false
	}
	if d == engine.Easy {
		return moves[r.Intn(len(moves))], true
	}
	for _, e := range moves {
		if _, n := b.Apply(e, side); n > 0 {
			return e, true
		}
	}
	var safe []int
	for _, e := range moves {
		if !createsThirdSide(&b, e) {
			safe = append(safe, e)
		}
	}
	if len(safe) > 0 {
		return safe[r.Intn(len(safe))], true
	}
	if d == engine.Normal {
		return moves[r.Intn(len(moves))], true
	}
	// Every edge gives something away: concede the smallest chain.
	best, bestCost := moves[0], Boxes+1
	for _, e := range moves {
		nb, _ := b.Apply(e, side)
		if cost := greedyTake(nb, side.Opponent()); cost < bestCost {
			best, bestCost = e, cost
		}
	}
	return best, true
}

func createsThirdSide(b *Board, edge int) bool {
	for _, box := range adjacentBoxes(edge) {
		if b.Sides(box) == 2 {
			return true
		}
	}
	return false
}

// greedyTake counts how many boxes side collects by completing boxes while it can.
func greedyTake(b Board, side engine.Side) int {
	taken := 0
	for {
		progressed := false
		for _, e := range b.LegalMoves() {
			nb, n := b.Apply(e, side)
			if n > 0 {
				b = nb
				taken += n
				progressed = true
				break
			}
		}
		if !progressed {
			return taken
		}
	}
}
