package rummy

import (
	"github.com/casualarcade/arcade/engine"
)

// HardKnockLimit is the deadwood the HARD opponent waits for before knocking.
const HardKnockLimit = 7

// hardSafetyMargin is how much extra deadwood HARD accepts to avoid feeding
// the opponent a card next to one they picked up.
const hardSafetyMargin = 4

// ChooseDraw reports whether to take top from the discard pile instead of the
// stock. EASY never does; the others take it only when it joins a meld and
// lowers their best achievable deadwood after the discard.
func ChooseDraw(hand []Card, top Card, d engine.Difficulty) bool {
	if d == engine.Easy || !top.Valid() {
		return false
	}
	withTop := append(append([]Card(nil), hand...), top)
	_, dead := FindOptimalMelds(withTop)
	for _, c := range dead {
		if c == top {
			return false
		}
	}
	current := DeadwoodValue(hand)
	for i := range hand {
		if DeadwoodValue(without(withTop, i)) < current {
			return true
		}
	}
	return false
}

// ChooseDiscard picks the card to throw from an 11-card hand and whether to
// knock with it. forbidden is the card just taken from the pile; picks are the
// cards the opponent has taken from the pile this round.
func ChooseDiscard(hand []Card, forbidden Card, picks []Card, rules Rules, d engine.Difficulty, r *engine.Rand) (int, bool) {
	dw := make([]int, len(hand))
	best := -1
	for i, c := range hand {
		dw[i] = -1
		if c == forbidden {
			continue
		}
		dw[i] = DeadwoodValue(without(hand, i))
		if best < 0 || dw[i] < dw[best] || dw[i] == dw[best] && Points(c) > Points(hand[best]) {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}

	switch d {
	case engine.Easy:
		i := easyDiscard(hand, forbidden, r)
		if i < 0 {
			i = best
		}
		return i, dw[i] <= rules.KnockLimit
	case engine.Normal:
		return best, dw[best] <= rules.KnockLimit
	}

	pick := best
	safe := -1
	for i, c := range hand {
		if dw[i] < 0 || feeds(c, picks) {
			continue
		}
		if safe < 0 || dw[i] < dw[safe] || dw[i] == dw[safe] && Points(c) > Points(hand[safe]) {
			safe = i
		}
	}
	if safe >= 0 && dw[safe] <= dw[best]+hardSafetyMargin {
		pick = safe
	}
	knock := dw[pick] == 0 || dw[pick] <= min(HardKnockLimit, rules.KnockLimit)
	return pick, knock
}

// easyDiscard throws an unmelded card: half the time at random, otherwise
// the highest-scoring one. It returns -1 when every card is melded.
func easyDiscard(hand []Card, forbidden Card, r *engine.Rand) int {
	_, dead := FindOptimalMelds(hand)
	var idx []int
	for i, c := range hand {
		if c == forbidden {
			continue
		}
		for _, x := range dead {
			if x == c {
				idx = append(idx, i)
				break
			}
		}
	}
	if len(idx) == 0 {
		return -1
	}
	if r.Chance(0.5) {
		return idx[r.Intn(len(idx))]
	}
	top := idx[0]
	for _, i := range idx[1:] {
		if Points(hand[i]) > Points(hand[top]) {
			top = i
		}
	}
	return top
}

// feeds reports whether c would help a hand that picked up picks: same rank,
// or an adjacent rank of the same suit.
func feeds(c Card, picks []Card) bool {
	for _, p := range picks {
		if p.Rank() == c.Rank() {
			return true
		}
		if p.Suit() == c.Suit() {
			diff := int(p.Rank()) - int(c.Rank())
			if diff == 1 || diff == -1 {
				return true
			}
		}
	}
	return false
}
