// Package president implements the climbing card game President for four
// players: one human and three computer seats.
package president

import (
	"slices"

	"github.com/casualarcade/arcade/engine"
)

// Card is the shared playing card.
type Card = engine.Card

// Value orders cards for President: three lowest, then up to king, ace, and two highest.
func Value(c Card) int { return (int(c.Rank()) + 11) % engine.NumRanks }

// sortHand orders by value then suit, lowest first.
func sortHand(h []Card) {
	slices.SortFunc(h, func(a, b Card) int {
		if d := Value(a) - Value(b); d != 0 {
			return d
		}
		return int(a.Suit()) - int(b.Suit())
	})
}

// Play is a group of same-rank cards laid on the pile.
type Play struct {
	Cards []Card
}

// Value is the rank value shared by the cards.
func (p Play) Value() int {
	if len(p.Cards) == 0 {
		return -1
	}
	return Value(p.Cards[0])
}

func (p Play) Count() int { return len(p.Cards) }

// Beats reports whether p may follow top: same count and strictly higher value.
// Any group beats an empty pile.
func (p Play) Beats(top Play) bool {
	if len(p.Cards) == 0 {
		return false
	}
	if len(top.Cards) == 0 {
		return true
	}
	return p.Count() == top.Count() && p.Value() > top.Value()
}

// groups splits a sorted hand into runs of equal value.
func groups(hand []Card) [][]Card {
	var out [][]Card
	for i := 0; i < len(hand); {
		j := i
		for j < len(hand) && Value(hand[j]) == Value(hand[i]) {
			j++
		}
		out = append(out, hand[i:j])
		i = j
	}
	return out
}

// LegalPlays lists every play from hand onto top. When leading (top empty) any
// 1-4 cards of one rank may go; when following the count must match. The
// lowest suits of a rank are used first. Plays are ordered by value, then count.
func LegalPlays(hand []Card, top Play) []Play {
	sorted := slices.Clone(hand)
	sortHand(sorted)
	var plays []Play
	for _, g := range groups(sorted) {
		for n := 1; n <= len(g); n++ {
			p := Play{Cards: slices.Clone(g[:n])}
			if p.Beats(top) {
				plays = append(plays, p)
			}
		}
	}
	return plays
}
