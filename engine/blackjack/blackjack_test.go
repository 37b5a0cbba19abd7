package blackjack

import (
	"slices"
	"strings"
	"testing"

	"github.com/casualarcade/arcade/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandValue(t *testing.T) {
	cases := []struct {
		hand  string
		total int
		soft  bool
	}{
		{"As 6d 5c", 12, false},
		{"As 6d", 17, true},
		{"As Ad 9c", 21, true},
		{"Ks Qd 5c", 25, false},
		{"As Kd", 21, true},
		{"2c 3d", 5, false},
	}
	for _, tc := range cases {
		total, soft := HandValue(engine.MustParseCards(tc.hand))
		assert.Equal(t, tc.total, total, tc.hand)
		assert.Equal(t, tc.soft, soft, tc.hand)
	}
	assert.True(t, IsBlackjack(engine.MustParseCards("As Kd")))
	assert.False(t, IsBlackjack(engine.MustParseCards("7s 7d 7c")))
}

func TestDealerSoft17(t *testing.T) {
	soft17 := engine.MustParseCards("As 6d")
	assert.False(t, DealerShouldHit(soft17, false))
	assert.True(t, DealerShouldHit(soft17, true))
	assert.False(t, DealerShouldHit(engine.MustParseCards("Ts 7d"), true))
	assert.True(t, DealerShouldHit(engine.MustParseCards("Ts 6d"), false))
}

// stack orders a full deck so the listed cards come off first.
func stack(draws string) *engine.Deck {
	want := engine.MustParseCards(draws)
	var cards []Card
	for _, c := range engine.NewDeck().Cards() {
		if !slices.Contains(want, c) {
			cards = append(cards, c)
		}
	}
	for i := len(want) - 1; i >= 0; i-- {
		cards = append(cards, want[i])
	}
	return engine.DeckOf(cards...)
}

// deal order is player, dealer, player, dealer, then hits
func rigged(d engine.Difficulty, draws ...string) *Game {
	g := New(1, d)
	g.deck = stack(strings.Join(draws, " "))
	return g
}

func TestNaturalPaysThreeToTwo(t *testing.T) {
	g := rigged(engine.Normal, "As Kd Kh 7c")
	require.NoError(t, g.Bet(100))
	assert.Equal(t, PlayerBlackjack, g.Result())
	assert.Equal(t, 1150, g.Chips())
	assert.Equal(t, PhaseRoundOver, g.Phase())
}

func TestPlayerBust(t *testing.T) {
	g := rigged(engine.Normal, "Th 9c 6h 8d Kh")
	require.NoError(t, g.Bet(100))
	assert.Equal(t, []Card{g.DealerHand()[0], engine.NoCard}, g.DealerHand())
	require.NoError(t, g.Hit())
	assert.Equal(t, PlayerBust, g.Result())
	assert.Equal(t, 900, g.Chips())
	assert.ErrorIs(t, g.Hit(), engine.ErrWrongPhase)
}

func TestSoft17DependsOnDifficulty(t *testing.T) {
	g := rigged(engine.Normal, "Th As 8h 6d 5c 9c")
	require.NoError(t, g.Bet(100))
	require.NoError(t, g.Stand())
	assert.Equal(t, PlayerWin, g.Result())
	assert.Equal(t, 1100, g.Chips())
	assert.Len(t, g.DealerHand(), 2)

	g = rigged(engine.Hard, "Th As 8h 6d 5c 9c")
	require.NoError(t, g.Bet(100))
	require.NoError(t, g.Stand())
	assert.Equal(t, DealerWin, g.Result())
	assert.Equal(t, 900, g.Chips())
	assert.Len(t, g.DealerHand(), 4)
}

func TestDoubleDown(t *testing.T) {
	g := rigged(engine.Normal, "5h Tc 6h 7d Kd")
	require.NoError(t, g.Bet(100))
	require.NoError(t, g.DoubleDown())
	assert.Equal(t, PlayerWin, g.Result())
	assert.Equal(t, 1200, g.Chips())
	assert.Len(t, g.PlayerHand(), 3)
}

func TestBetValidation(t *testing.T) {
	g := New(1, engine.Normal)
	assert.ErrorIs(t, g.Bet(0), engine.ErrInvalidArgument)
	assert.ErrorIs(t, g.Bet(5000), engine.ErrInvalidArgument)
	assert.ErrorIs(t, g.Bet(25), engine.ErrInvalidArgument)
	assert.ErrorIs(t, g.Bet(1), engine.ErrInvalidArgument)
	assert.ErrorIs(t, g.Stand(), engine.ErrWrongPhase)
	assert.Equal(t, StartChips, g.Chips())
	assert.Equal(t, 52, g.CardCount())
}

func TestManyRoundsConserveCards(t *testing.T) {
	g := New(8, engine.Hard)
	for i := 0; i < 2000 && !g.IsOver(); i++ {
		require.True(t, g.PerformAIMove())
		require.Equal(t, 52, g.CardCount())
	}
	g.Reset()
	assert.Equal(t, StartChips, g.Chips())
	assert.Equal(t, PhaseBetting, g.Phase())
}

func TestSmallNaturalPaysWholeChips(t *testing.T) {
	g := rigged(engine.Normal, "As Kd Kh 7c")
	require.NoError(t, g.Bet(MinBet))
	assert.Equal(t, PlayerBlackjack, g.Result())
	assert.Equal(t, StartChips+3, g.Chips())
}

func TestResetMidRoundMatchesFreshTable(t *testing.T) {
	g := New(8, engine.Normal)
	for i := 0; i < 5; i++ {
		if g.Phase() == PhaseRoundOver || g.Phase() == PhaseBetting {
			require.NoError(t, g.Bet(10))
			continue
		}
		require.True(t, g.PerformAIMove())
	}
	if g.Phase() != PhasePlayer {
		require.NoError(t, g.Bet(10))
	}
	g.Reset()

	fresh := New(8, engine.Normal)
	assert.Equal(t, fresh.Chips(), g.Chips())
	assert.Equal(t, fresh.Phase(), g.Phase())
	assert.Equal(t, fresh.Result(), g.Result())
	assert.Empty(t, g.PlayerHand())
	assert.Equal(t, 52, g.CardCount())
	require.NoError(t, g.Bet(10))
	require.NoError(t, fresh.Bet(10))
	assert.Equal(t, fresh.PlayerHand(), g.PlayerHand())
	assert.Equal(t, fresh.Chips(), g.Chips())
}
