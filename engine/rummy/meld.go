// Package rummy implements two-player gin rummy: meld search, knocking,
// layoffs and scoring, plus a tiered computer opponent.
package rummy

import (
	"sort"

	"github.com/casualarcade/arcade/engine"
)

// MeldKind distinguishes sets from runs.
type MeldKind uint8

const (
	Set MeldKind = iota // 3-4 cards of one rank
	Run                 // 3+ consecutive ranks of one suit, ace low
)

func (k MeldKind) String() string {
	if k == Set {
		return "set"
	}
	return "run"
}

// Meld is a group of cards that scores no deadwood. Run cards are kept in
// ascending rank order.
type Meld struct {
	Kind  MeldKind
	Cards []Card
}

// Card is the shared playing card.
type Card = engine.Card

// Points is the deadwood value of a card: ace 1, pips at face value, court cards 10.
func Points(c Card) int {
	if r := int(c.Rank()) + 1; r < 10 {
		return r
	}
	return 10
}

// Deadwood sums the points of cards.
func Deadwood(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += Points(c)
	}
	return total
}

func mask(cards []Card) uint64 {
	var m uint64
	for _, c := range cards {
		m |= 1 << uint(c.Index())
	}
	return m
}

// FindAllMelds lists every candidate meld in hand: each run of three or more
// (including the shorter runs inside a longer one) and every set of three or
// four cards of a rank. Runs come first, ordered by suit then start rank.
func FindAllMelds(hand []Card) []Meld {
	var bySuit [engine.NumSuits][engine.NumRanks]bool
	var byRank [engine.NumRanks][]Card
	for _, c := range hand {
		if !c.Valid() {
			continue
		}
		bySuit[c.Suit()][c.Rank()] = true
		byRank[c.Rank()] = append(byRank[c.Rank()], c)
	}

	var melds []Meld
	for s := 0; s < engine.NumSuits; s++ {
		for start := 0; start < engine.NumRanks; start++ {
			for end := start; end < engine.NumRanks && bySuit[s][end]; end++ {
				if end-start+1 < 3 {
					continue
				}
				run := make([]Card, 0, end-start+1)
				for r := start; r <= end; r++ {
					run = append(run, engine.NewCard(uint8(s), uint8(r)))
				}
				melds = append(melds, Meld{Kind: Run, Cards: run})
			}
		}
	}
	for r := 0; r < engine.NumRanks; r++ {
		cards := byRank[r]
		sort.Slice(cards, func(i, j int) bool { return cards[i].Suit() < cards[j].Suit() })
		switch len(cards) {
		case 3:
			melds = append(melds, Meld{Kind: Set, Cards: cards})
		case 4:
			melds = append(melds, Meld{Kind: Set, Cards: cards})
			for skip := range cards {
				sub := make([]Card, 0, 3)
				for i, c := range cards {
					if i != skip {
						sub = append(sub, c)
					}
				}
				melds = append(melds, Meld{Kind: Set, Cards: sub})
			}
		}
	}
	return melds
}

type meldSearch struct {
	masks    []uint64
	saves    []int
	pick     []int
	best     []int
	bestSave int
}

func (s *meldSearch) run(start int, used uint64, saved int) {
	if saved > s.bestSave {
		s.bestSave = saved
		s.best = append(s.best[:0], s.pick...)
	}
	for i := start; i < len(s.masks); i++ {
		if s.masks[i]&used != 0 {
			continue
		}
		s.pick = append(s.pick, i)
		s.run(i+1, used|s.masks[i], saved+s.saves[i])
		s.pick = s.pick[:len(s.pick)-1]
	}
}

// FindOptimalMelds chooses non-overlapping melds that minimise deadwood by
// exhaustive backtracking over FindAllMelds. Among equal arrangements the
// first found wins. Deadwood cards keep their order in hand.
func FindOptimalMelds(hand []Card) (melds []Meld, deadwood []Card) {
	all := FindAllMelds(hand)
	s := &meldSearch{masks: make([]uint64, len(all)), saves: make([]int, len(all))}
	for i, m := range all {
		s.masks[i] = mask(m.Cards)
		s.saves[i] = Deadwood(m.Cards)
	}
	s.run(0, 0, 0)

	var used uint64
	for _, i := range s.best {
		melds = append(melds, all[i])
		used |= s.masks[i]
	}
	for _, c := range hand {
		if used&(1<<uint(c.Index())) == 0 {
			deadwood = append(deadwood, c)
		}
	}
	return melds, deadwood
}

// DeadwoodValue is the optimal deadwood total of hand.
func DeadwoodValue(hand []Card) int {
	_, dw := FindOptimalMelds(hand)
	return Deadwood(dw)
}

// Extends reports whether c can be laid off on m.
func (m Meld) Extends(c Card) bool {
	if len(m.Cards) == 0 {
		return false
	}
	switch m.Kind {
	case Set:
		return len(m.Cards) < engine.NumSuits && c.Rank() == m.Cards[0].Rank()
	default:
		lo, hi := m.Cards[0], m.Cards[len(m.Cards)-1]
		if c.Suit() != lo.Suit() {
			return false
		}
		return int(c.Rank()) == int(lo.Rank())-1 || int(c.Rank()) == int(hi.Rank())+1
	}
}

func (m Meld) with(c Card) Meld {
	cards := append(append([]Card(nil), m.Cards...), c)
	if m.Kind == Run {
		sort.Slice(cards, func(i, j int) bool { return cards[i].Rank() < cards[j].Rank() })
	}
	return Meld{Kind: m.Kind, Cards: cards}
}

// LayOff extends melds with cards from deadwood until nothing more fits. A
// card placed on a run can open room for another, so it loops to a fixed
// point. The input slices are not modified.
func LayOff(melds []Meld, deadwood []Card) (extended []Meld, laid, remaining []Card) {
	extended = append([]Meld(nil), melds...)
	remaining = append([]Card(nil), deadwood...)
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(remaining); i++ {
			c := remaining[i]
			for j := range extended {
				if extended[j].Extends(c) {
					extended[j] = extended[j].with(c)
					laid = append(laid, c)
					remaining = append(remaining[:i], remaining[i+1:]...)
					i--
					changed = true
					break
				}
			}
		}
	}
	return extended, laid, remaining
}
