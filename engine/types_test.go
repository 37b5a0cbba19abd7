package engine

import (
	"errors"
	"testing"
)

// TestCardSuitRank verifies Suit/Rank roundtrip for every suit×rank combo.
func TestCardSuitRank(t *testing.T) {
	for s := uint8(0); s < NumSuits; s++ {
		for r := uint8(0); r < NumRanks; r++ {
			c := NewCard(s, r)
			if c.Suit() != s {
				t.Errorf("NewCard(%d,%d).Suit() = %d, want %d", s, r, c.Suit(), s)
			}
			if c.Rank() != r {
				t.Errorf("NewCard(%d,%d).Rank() = %d, want %d", s, r, c.Rank(), r)
			}
			if !c.Valid() {
				t.Errorf("NewCard(%d,%d) not valid", s, r)
			}
			if got := CardFromIndex(c.Index()); got != c {
				t.Errorf("CardFromIndex(%d) = %v, want %v", c.Index(), got, c)
			}
		}
	}
	if NoCard.Valid() {
		t.Error("NoCard reported valid")
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"As", NewCard(SuitSpades, RankAce)},
		{"Td", NewCard(SuitDiamonds, RankTen)},
		{"10h", NewCard(SuitHearts, RankTen)},
		{"7c", NewCard(SuitClubs, RankSeven)},
		{"kH", NewCard(SuitHearts, RankKing)},
		{"2S", NewCard(SuitSpades, RankTwo)},
	}
	for _, tt := range tests {
		got, err := ParseCard(tt.in)
		if err != nil {
			t.Errorf("ParseCard(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCard(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "A", "1s", "Ax", "11h", "Zs"} {
		if _, err := ParseCard(bad); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseCard(%q) err = %v, want ErrInvalidArgument", bad, err)
		}
	}
}

func TestCardString(t *testing.T) {
	if got := NewCard(SuitSpades, RankAce).String(); got != "A♠" {
		t.Errorf("String() = %q, want A♠", got)
	}
	if got := NewCard(SuitHearts, RankTen).String(); got != "10♥" {
		t.Errorf("String() = %q, want 10♥", got)
	}
	if !NewCard(SuitDiamonds, RankTwo).IsRed() || NewCard(SuitClubs, RankTwo).IsRed() {
		t.Error("IsRed mismatch")
	}
}

func TestNewDeckUnique(t *testing.T) {
	d := NewShuffledDeck(NewRand(42))
	if d.Len() != DeckSize {
		t.Fatalf("Len() = %d, want %d", d.Len(), DeckSize)
	}
	seen := map[Card]bool{}
	for {
		c, ok := d.Draw()
		if !ok {
			break
		}
		if !c.Valid() || seen[c] {
			t.Fatalf("bad or duplicate card %v", c)
		}
		seen[c] = true
	}
	if len(seen) != DeckSize {
		t.Errorf("drew %d cards, want %d", len(seen), DeckSize)
	}
	if _, ok := d.Draw(); ok {
		t.Error("Draw on empty deck reported ok")
	}
}

func TestDeckOrder(t *testing.T) {
	cards := MustParseCards("2h 3h 4h")
	d := DeckOf(cards...)
	if c, _ := d.Draw(); c != cards[2] {
		t.Errorf("Draw() = %v, want top card %v", c, cards[2])
	}
	d.Put(MustParseCards("Ks")...)
	got := d.Cards()
	if len(got) != 3 || got[0] != NewCard(SuitSpades, RankKing) {
		t.Errorf("Put did not place on bottom: %v", got)
	}
	clone := d.Clone()
	clone.Draw()
	if d.Len() != 3 {
		t.Error("Clone shares storage with original")
	}
}

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 100; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatal("same seed diverged")
		}
	}
	if NewRand(0).Uint64() != NewRand(1).Uint64() {
		t.Error("seed 0 should behave like seed 1")
	}
	c := a.Clone()
	if a.Intn(1000) != c.Intn(1000) {
		t.Error("Clone is not positioned at the same point")
	}
	if NewRand(a.Seed()).Uint64() != a.Uint64() {
		t.Error("NewRand(Seed()) does not continue the stream")
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 1000; i++ {
		if n := r.Intn(6); n < 0 || n >= 6 {
			t.Fatalf("Intn(6) = %d", n)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v", f)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
	if r.Chance(0) || !r.Chance(1) {
		t.Error("Chance bounds wrong")
	}
}

func TestDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Easy, Normal, Hard} {
		got, err := ParseDifficulty(" " + d.String() + " ")
		if err != nil || got != d {
			t.Errorf("ParseDifficulty(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDifficulty("brutal"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseDifficulty(brutal) err = %v", err)
	}
}

func TestSidesAndOutcomes(t *testing.T) {
	if SideOne.Opponent() != SideTwo || SideTwo.Opponent() != SideOne || SideNone.Opponent() != SideNone {
		t.Error("Opponent mismatch")
	}
	if WinFor(SideTwo).Winner() != SideTwo || Draw.Winner() != SideNone {
		t.Error("Winner mismatch")
	}
	if TurnContinue.String() != "continue" {
		t.Errorf("TurnContinue.String() = %q", TurnContinue.String())
	}
}
