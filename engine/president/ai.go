package president

import (
	"github.com/casualarcade/arcade/engine"
)

// aceValue is the lowest of the two premium ranks (aces and twos).
const aceValue = 11

// ChoosePlay picks a play for hand onto pile; ok is false for a pass. A
// leader always plays.
func ChoosePlay(hand []Card, pile Play, d engine.Difficulty, r *engine.Rand) (Play, bool) {
	plays := LegalPlays(hand, pile)
	if len(plays) == 0 {
		return Play{}, false
	}
	leading := len(pile.Cards) == 0

	if d == engine.Easy {
		if !leading && r.Chance(0.2) {
			return Play{}, false
		}
		return plays[r.Intn(len(plays))], true
	}

	held := map[int]int{}
	for _, c := range hand {
		held[Value(c)]++
	}
	choice, intact := plays[0], false
	for _, p := range plays {
		if held[p.Value()] == p.Count() {
			choice, intact = p, true
			break
		}
	}
	if d == engine.Hard && !leading && len(hand) > 3 && (!intact || choice.Value() >= aceValue) {
		return Play{}, false
	}
	return choice, true
}
