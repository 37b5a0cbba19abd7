// Package holdem implements no-limit Texas hold'em for a small table: hand
// evaluation, the betting state machine, side pots and computer players.
package holdem

import (
	"fmt"
	"sort"

	"github.com/casualarcade/arcade/engine"
)

// Card is the shared playing card.
type Card = engine.Card

// Category is a poker hand class, weakest first.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = [...]string{
	"high card", "pair", "two pair", "three of a kind", "straight",
	"flush", "full house", "four of a kind", "straight flush", "royal flush",
}

func (c Category) String() string { return categoryNames[c] }

// HandValue orders hands: category first, then tiebreakers compared left to right.
type HandValue struct {
	Category   Category
	Tiebreaker []int // poker values, 2..14 with ace high
}

func (h HandValue) String() string { return fmt.Sprintf("%s %v", h.Category, h.Tiebreaker) }

// Compare returns -1, 0 or 1 as a is weaker than, equal to or stronger than b.
func Compare(a, b HandValue) int {
	if a.Category != b.Category {
		if a.Category < b.Category {
			return -1
		}
		return 1
	}
	for i := 0; i < len(a.Tiebreaker) && i < len(b.Tiebreaker); i++ {
		switch {
		case a.Tiebreaker[i] < b.Tiebreaker[i]:
			return -1
		case a.Tiebreaker[i] > b.Tiebreaker[i]:
			return 1
		}
	}
	return 0
}

// value maps a card onto 2..14, ace high.
func value(c Card) int {
	if c.Rank() == engine.RankAce {
		return 14
	}
	return int(c.Rank()) + 1
}

// Evaluate5 scores exactly five cards.
func Evaluate5(cards [5]Card) HandValue {
	var counts [15]int
	vals := make([]int, 5)
	flush := true
	for i, c := range cards {
		vals[i] = value(c)
		counts[vals[i]]++
		if c.Suit() != cards[0].Suit() {
			flush = false
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(vals)))

	high, straight := straightHigh(vals)
	switch {
	case straight && flush && high == 14:
		return HandValue{RoyalFlush, []int{14}}
	case straight && flush:
		return HandValue{StraightFlush, []int{high}}
	}

	// groups sorted by size then value, both descending
	type group struct{ n, v int }
	var groups []group
	for v := 14; v >= 2; v-- {
		if counts[v] > 0 {
			groups = append(groups, group{counts[v], v})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].n > groups[j].n })
	tb := make([]int, len(groups))
	for i, g := range groups {
		tb[i] = g.v
	}

	switch {
	case groups[0].n == 4:
		return HandValue{FourOfAKind, tb}
	case groups[0].n == 3 && groups[1].n == 2:
		return HandValue{FullHouse, tb}
	case flush:
		return HandValue{Flush, vals}
	case straight:
		return HandValue{Straight, []int{high}}
	case groups[0].n == 3:
		return HandValue{ThreeOfAKind, tb}
	case groups[0].n == 2 && groups[1].n == 2:
		return HandValue{TwoPair, tb}
	case groups[0].n == 2:
		return HandValue{OnePair, tb}
	}
	return HandValue{HighCard, vals}
}

// straightHigh finds a five-card straight in descending values. The wheel
// A-2-3-4-5 counts as five high.
func straightHigh(vals []int) (int, bool) {
	for i := 1; i < 5; i++ {
		if vals[i] != vals[0]-i {
			if vals[0] == 14 && vals[1] == 5 && vals[2] == 4 && vals[3] == 3 && vals[4] == 2 {
				return 5, true
			}
			return 0, false
		}
	}
	return vals[0], true
}

// EvaluateBestHand tries every five-card subset of 5 to 7 cards and returns the
// strongest value together with the cards that make it.
func EvaluateBestHand(cards []Card) (HandValue, [5]Card, error) {
	var best HandValue
	var bestCards [5]Card
	if len(cards) < 5 || len(cards) > 7 {
		return best, bestCards, fmt.Errorf("%w: need 5-7 cards, got %d", engine.ErrInvalidArgument, len(cards))
	}
	found := false
	n := len(cards)
	var idx [5]int
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == 5 {
			var five [5]Card
			for i, j := range idx {
				five[i] = cards[j]
			}
			v := Evaluate5(five)
			if !found || Compare(v, best) > 0 {
				best, bestCards, found = v, five, true
			}
			return
		}
		for i := start; i <= n-(5-depth); i++ {
			idx[depth] = i
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
	return best, bestCards, nil
}
