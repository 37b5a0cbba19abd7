package engine

// Deck is an ordered pile of cards; the top of the deck is the end of the slice.
type Deck struct {
	cards []Card
}

// NewDeck returns the 52 standard cards in suit-major order.
func NewDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, DeckSize)}
	for suit := uint8(0); suit < NumSuits; suit++ {
		for rank := uint8(0); rank < NumRanks; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	return d
}

// NewShuffledDeck returns a full deck shuffled with r.
func NewShuffledDeck(r *Rand) *Deck {
	d := NewDeck()
	d.Shuffle(r)
	return d
}

// DeckOf builds a deck from explicit cards; the last card is drawn first.
func DeckOf(cards ...Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Shuffle reorders the remaining cards.
func (d *Deck) Shuffle(r *Rand) {
	r.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

// Draw pops the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (c Card, ok bool) {
	if len(d.cards) == 0 {
		return NoCard, false
	}
	c = d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// Len returns the number of cards left.
func (d *Deck) Len() int { return len(d.cards) }

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []Card { return append([]Card(nil), d.cards...) }

// Clone returns an independent copy.
func (d *Deck) Clone() *Deck { return DeckOf(d.cards...) }

// Put places cards on the bottom of the deck (used when reshuffling a discard pile back in).
func (d *Deck) Put(cards ...Card) {
	d.cards = append(append([]Card(nil), cards...), d.cards...)
}
