package engine

import (
	"fmt"
	"strings"
)

// Suit constants, packed into the upper 4 bits of Card.
const (
	SuitHearts   uint8 = 0
	SuitDiamonds uint8 = 1
	SuitClubs    uint8 = 2
	SuitSpades   uint8 = 3
)

// Rank constants, packed into the lower 4 bits of Card.
const (
	RankAce   uint8 = 0
	RankTwo   uint8 = 1
	RankThree uint8 = 2
	RankFour  uint8 = 3
	RankFive  uint8 = 4
	RankSix   uint8 = 5
	RankSeven uint8 = 6
	RankEight uint8 = 7
	RankNine  uint8 = 8
	RankTen   uint8 = 9
	RankJack  uint8 = 10
	RankQueen uint8 = 11
	RankKing  uint8 = 12
)

// NumSuits and NumRanks describe a standard deck.
const (
	NumSuits = 4
	NumRanks = 13
	DeckSize = NumSuits * NumRanks
)

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
type Card uint8

// NoCard represents the absence of a card.
const NoCard Card = 0xFF

// NewCard constructs a Card from suit and rank.
func NewCard(suit, rank uint8) Card {
	return Card((suit << 4) | (rank & 0x0F))
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// Valid reports whether c is one of the 52 standard cards.
func (c Card) Valid() bool {
	return c != NoCard && c.Suit() < NumSuits && c.Rank() < NumRanks
}

// Index maps the card onto 0..51 (suit-major), handy for bitsets.
func (c Card) Index() int { return int(c.Suit())*NumRanks + int(c.Rank()) }

// CardFromIndex is the inverse of Index.
func CardFromIndex(i int) Card { return NewCard(uint8(i/NumRanks), uint8(i%NumRanks)) }

// IsRed reports whether the card is a heart or diamond.
func (c Card) IsRed() bool {
	s := c.Suit()
	return s == SuitHearts || s == SuitDiamonds
}

var rankText = [NumRanks]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
var suitText = [NumSuits]string{"♥", "♦", "♣", "♠"}
var suitLetter = [NumSuits]byte{'h', 'd', 'c', 's'}

func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return rankText[c.Rank()] + suitText[c.Suit()]
}

// ParseCard reads short notation such as "As", "Td", "10h", "7c".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return NoCard, fmt.Errorf("%w: card %q", ErrInvalidArgument, s)
	}
	rs, ss := strings.ToUpper(s[:len(s)-1]), s[len(s)-1]
	var rank uint8
	switch rs {
	case "A":
		rank = RankAce
	case "T", "10":
		rank = RankTen
	case "J":
		rank = RankJack
	case "Q":
		rank = RankQueen
	case "K":
		rank = RankKing
	default:
		if len(rs) != 1 || rs[0] < '2' || rs[0] > '9' {
			return NoCard, fmt.Errorf("%w: card rank %q", ErrInvalidArgument, rs)
		}
		rank = rs[0] - '1'
	}
	for suit, l := range suitLetter {
		if ss == l || ss == l-'a'+'A' {
			return NewCard(uint8(suit), rank), nil
		}
	}
	return NoCard, fmt.Errorf("%w: card suit %q", ErrInvalidArgument, string(ss))
}

// MustParseCards parses a space separated list and panics on error. Test helper.
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}
