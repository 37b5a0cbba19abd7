package balance

import (
	"github.com/casualarcade/arcade/engine"
)

// replyWeight scales the opponent's best reply in the HARD score.
const replyWeight = 0.9

func slack(b *Beam) int { return TipLimit - abs(b.Torque()) }

// better breaks ties toward smaller |position| and then lighter weights.
func better(a, b Placement) bool {
	if abs(a.Pos) != abs(b.Pos) {
		return abs(a.Pos) < abs(b.Pos)
	}
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.Pos < b.Pos
}

// ChoosePlacement picks side's placement. With no safe placement available
// any legal one is played.
func ChoosePlacement(b Beam, side engine.Side, d engine.Difficulty, r *engine.Rand) (Placement, bool) {
	legal := b.Legal(side)
	if len(legal) == 0 {
		return Placement{}, false
	}
	var safe []Placement
	for _, p := range legal {
		next := b.Apply(side, p)
		if slack(&next) >= 0 {
			safe = append(safe, p)
		}
	}
	if len(safe) == 0 {
		return legal[0], true
	}
	if d == engine.Easy {
		return safe[r.Intn(len(safe))], true
	}

	best := safe[0]
	bestScore := -1e9
	for _, p := range safe {
		next := b.Apply(side, p)
		score := float64(slack(&next))
		if d == engine.Hard {
			score -= replyWeight * bestReplySlack(next, side.Opponent())
		}
		if score > bestScore || score == bestScore && better(p, best) {
			best, bestScore = p, score
		}
	}
	return best, true
}

// bestReplySlack is the largest slack the opponent can keep with one
// placement; zero when it has no move.
func bestReplySlack(b Beam, side engine.Side) float64 {
	best := 0
	for _, p := range b.Legal(side) {
		next := b.Apply(side, p)
		if s := slack(&next); s > best {
			best = s
		}
	}
	return float64(best)
}
