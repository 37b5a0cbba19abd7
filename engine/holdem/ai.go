package holdem

import (
	"slices"

	"github.com/casualarcade/arcade/engine"
)

// View is what a seat can see when it must act.
type View struct {
	Hole       []Card
	Board      []Card
	Street     Street
	Pot        int
	ToCall     int
	CurrentBet int
	MinRaiseTo int
	CanRaise   bool
	Bet        int
	Chips      int
	Position   int // seats acting before this one post-flop, 0 = first
	Opponents  int // other players still in the hand
}

// View builds the decision view for seat.
func (t *Table) View(seat int) View {
	p := &t.players[seat]
	v := View{
		Hole:       slices.Clone(p.Hole),
		Board:      slices.Clone(t.board),
		Street:     t.street,
		Pot:        t.Pot(),
		ToCall:     max(0, t.currentBet-p.Bet),
		CurrentBet: t.currentBet,
		MinRaiseTo: t.MinRaiseTo(),
		CanRaise:   t.CanRaise(seat),
		Bet:        p.Bet,
		Chips:      p.Chips,
	}
	for s := t.next(t.button, seated); s != seat && s >= 0; s = t.next(s, seated) {
		if t.players[s].inHand() {
			v.Position++
		}
	}
	inHand, _ := t.countIn()
	v.Opponents = inHand - 1
	return v
}

// ChenScore rates two hole cards with the Chen formula, 0..20.
func ChenScore(a, b Card) float64 {
	va, vb := value(a), value(b)
	if va < vb {
		va, vb = vb, va
	}
	high := func(v int) float64 {
		switch v {
		case 14:
			return 10
		case 13:
			return 8
		case 12:
			return 7
		case 11:
			return 6
		}
		return float64(v) / 2
	}
	score := high(va)
	if va == vb {
		score = max(score*2, 5)
		return score
	}
	if a.Suit() == b.Suit() {
		score += 2
	}
	switch gap := va - vb - 1; {
	case gap == 1:
		score--
	case gap == 2:
		score -= 2
	case gap == 3:
		score -= 4
	case gap >= 4:
		score -= 5
	}
	if va-vb <= 2 && va < 12 {
		score++
	}
	return score
}

var categoryStrength = [...]float64{
	HighCard: 0.1, OnePair: 0.35, TwoPair: 0.55, ThreeOfAKind: 0.7, Straight: 0.8,
	Flush: 0.85, FullHouse: 0.92, FourOfAKind: 0.97, StraightFlush: 1, RoyalFlush: 1,
}

// Strength estimates hand quality in 0..1 from the hole and board cards.
func Strength(hole, board []Card) float64 {
	if len(hole) < 2 {
		return 0
	}
	if len(board) < 3 {
		return min(1, ChenScore(hole[0], hole[1])/20)
	}
	all := append(slices.Clone(hole), board...)
	v, _, _ := EvaluateBestHand(all)
	s := categoryStrength[v.Category]
	// A pair made only from the board is worth little.
	if v.Category == OnePair && !slices.ContainsFunc(hole, func(c Card) bool { return value(c) == v.Tiebreaker[0] }) {
		s = categoryStrength[HighCard]
	}
	if len(board) < 5 && v.Category < Straight {
		if flushDraw(all) {
			s += 0.15
		} else if straightDraw(all) {
			s += 0.1
		}
	}
	return min(1, s)
}

func flushDraw(cards []Card) bool {
	var suits [engine.NumSuits]int
	for _, c := range cards {
		suits[c.Suit()]++
	}
	return slices.Max(suits[:]) == 4
}

// straightDraw reports four consecutive values (ace counts high and low).
func straightDraw(cards []Card) bool {
	var has [15]bool
	for _, c := range cards {
		has[value(c)] = true
		if value(c) == 14 {
			has[1] = true
		}
	}
	run := 0
	for v := 1; v <= 14; v++ {
		if has[v] {
			run++
			if run == 4 {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

// Decide picks a betting action for v.
func Decide(v View, d engine.Difficulty, r *engine.Rand) Decision {
	s := Strength(v.Hole, v.Board)
	odds := 0.0
	if v.ToCall > 0 {
		odds = float64(v.ToCall) / float64(v.Pot+v.ToCall)
	}
	passive := func() Decision {
		if v.ToCall == 0 {
			return Decision{Action: ActCheck}
		}
		return Decision{Action: ActFold}
	}
	call := func() Decision {
		if v.ToCall == 0 {
			return Decision{Action: ActCheck}
		}
		if v.ToCall >= v.Chips {
			return Decision{Action: ActAllIn}
		}
		return Decision{Action: ActCall}
	}
	raise := func(to int) Decision {
		if !v.CanRaise {
			return call()
		}
		to = max(to, v.MinRaiseTo)
		if to >= v.Bet+v.Chips {
			return Decision{Action: ActAllIn}
		}
		return Decision{Action: ActRaise, Amount: to}
	}

	switch d {
	case engine.Easy:
		if v.ToCall == 0 {
			if s > 0.7 && r.Chance(0.1) {
				return raise(v.MinRaiseTo)
			}
			return Decision{Action: ActCheck}
		}
		if s < 0.3 && r.Chance(0.15) {
			return Decision{Action: ActFold}
		}
		return call()

	case engine.Normal:
		switch {
		case s > 0.75:
			return raise(v.MinRaiseTo)
		case v.ToCall == 0:
			return Decision{Action: ActCheck}
		case s >= odds+0.1:
			return call()
		}
		return passive()
	}

	s += 0.05 * float64(v.Position) / float64(max(1, v.Opponents))
	switch {
	case s > 0.65:
		return raise(v.CurrentBet + v.Pot/2)
	case v.ToCall == 0 && r.Chance(0.1):
		return raise(v.CurrentBet + v.Pot/2)
	case v.ToCall == 0:
		return Decision{Action: ActCheck}
	case s >= odds:
		return call()
	}
	return passive()
}
