package president

import (
	"testing"

	"github.com/casualarcade/arcade/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cards = engine.MustParseCards

func TestValueOrder(t *testing.T) {
	order := cards("3c 4c 5c 6c 7c 8c 9c Tc Jc Qc Kc Ac 2c")
	for i, c := range order {
		assert.Equal(t, i, Value(c), c.String())
	}
}

func TestDealAndLead(t *testing.T) {
	g := New(1, engine.Normal)
	threeClubs := cards("3c")[0]
	for s := 0; s < Players; s++ {
		assert.Len(t, g.Hand(s), 13)
	}
	assert.Contains(t, g.Hand(g.Turn()), threeClubs)
	assert.Equal(t, 52, g.CardCount())
	assert.Empty(t, g.Pile().Cards)
}

func TestLegalPlaysFollowCount(t *testing.T) {
	hand := cards("4h 4d 7c 9s 9h 9d 2c")
	lead := LegalPlays(hand, Play{})
	assert.Len(t, lead, 2+1+3+1)

	follow := LegalPlays(hand, Play{Cards: cards("5s 5c")})
	require.Len(t, follow, 1)
	assert.Equal(t, Value(cards("9s")[0]), follow[0].Value())
	assert.Len(t, follow[0].Cards, 2)

	assert.Empty(t, LegalPlays(hand, Play{Cards: cards("2s")}))
	assert.True(t, Play{Cards: cards("2h")}.Beats(Play{Cards: cards("Ah")}))
	assert.False(t, Play{Cards: cards("Kh Kd")}.Beats(Play{Cards: cards("5h")}))
}

// rig gives each seat a fixed hand with seat 0 to lead.
func rig(g *Game, hands ...string) {
	for s, h := range hands {
		g.hands[s] = cards(h)
		sortHand(g.hands[s])
	}
	g.played = nil
	g.pile = Play{}
	g.turn = 0
	g.lastPlayer = 0
	g.passes = 0
	g.finished = nil
}

func TestTrickClearsAfterAllPass(t *testing.T) {
	g := New(1, engine.Normal)
	rig(g, "5h 9c", "4h 6c", "3d 7s", "8d Kd")
	require.NoError(t, g.PlayCards(0, cards("5h")))
	assert.Equal(t, 1, g.Turn())
	assert.ErrorIs(t, g.PlayCards(1, cards("4h")), engine.ErrIllegalMove)
	require.NoError(t, g.PassSeat(1))
	require.NoError(t, g.PassSeat(2))
	require.NoError(t, g.PassSeat(3))
	assert.Empty(t, g.Pile().Cards)
	assert.Equal(t, 0, g.Turn(), "last player leads again")
	assert.ErrorIs(t, g.PassSeat(0), engine.ErrIllegalMove)
}

func TestFinishedPlayerHandsLeadOn(t *testing.T) {
	g := New(1, engine.Normal)
	rig(g, "5h", "4h 6c", "3d 7s", "8d Kd")
	require.NoError(t, g.PlayCards(0, cards("5h")))
	assert.Equal(t, []int{0}, g.FinishOrder())
	require.NoError(t, g.PassSeat(1))
	require.NoError(t, g.PassSeat(2))
	require.NoError(t, g.PassSeat(3))
	assert.Equal(t, 1, g.Turn())
	assert.Empty(t, g.Pile().Cards)
}

func TestRoundEndTitlesAndExchange(t *testing.T) {
	g := New(1, engine.Normal)
	rig(g, "2h", "2d", "2c", "3s 4s")
	require.NoError(t, g.PlayCards(0, cards("2h")))
	require.NoError(t, g.PassSeat(1))
	require.NoError(t, g.PassSeat(2))
	require.NoError(t, g.PassSeat(3))
	require.NoError(t, g.PlayCards(1, cards("2d")))
	require.NoError(t, g.PassSeat(2))
	require.NoError(t, g.PassSeat(3))
	require.NoError(t, g.PlayCards(2, cards("2c")))
	assert.Equal(t, PhaseRoundOver, g.Phase())
	assert.Equal(t, [Players]Title{President, VicePresident, ViceScum, Scum}, g.Titles())
	assert.Equal(t, [Players]int{3, 2, 1, 0}, g.Scores())

	require.NoError(t, g.NewRound())
	assert.Equal(t, 0, g.Turn(), "President leads")
	assert.Equal(t, 52, g.CardCount())
	ex := g.Exchanges()
	require.Len(t, ex, 4)
	assert.Equal(t, 3, ex[0].From)
	assert.Equal(t, 0, ex[0].To)
	assert.Len(t, ex[0].Cards, 2)
	for _, c := range ex[0].Cards {
		assert.Contains(t, g.Hand(0), c)
	}
	// Scum gave away its two best cards.
	for _, c := range g.Hand(3) {
		if c == ex[1].Cards[0] || c == ex[1].Cards[1] {
			continue
		}
		assert.LessOrEqual(t, Value(c), Value(ex[0].Cards[0]))
	}
}

func TestHumanPlayByIndex(t *testing.T) {
	g := New(1, engine.Normal)
	rig(g, "5h 5d 9c", "4h 6c", "3d 7s", "8d Kd")
	assert.ErrorIs(t, g.Play([]int{0, 0}), engine.ErrInvalidArgument)
	assert.ErrorIs(t, g.Play([]int{0, 2}), engine.ErrIllegalMove)
	require.NoError(t, g.Play([]int{0, 1}))
	assert.Len(t, g.Pile().Cards, 2)
	assert.Equal(t, cards("9c"), g.Hand(0))
}

func TestNormalKeepsSetsIntact(t *testing.T) {
	hand := cards("4h 6c 6d 9s 9h Kd")
	p, ok := ChoosePlay(hand, Play{Cards: cards("5s")}, engine.Normal, engine.NewRand(1))
	require.True(t, ok)
	assert.Equal(t, cards("Kd"), p.Cards)

	p, ok = ChoosePlay(hand, Play{}, engine.Normal, engine.NewRand(1))
	require.True(t, ok)
	assert.Equal(t, cards("4h"), p.Cards)
}

func TestHardHoldsPremiumCards(t *testing.T) {
	hand := cards("4h 6c 6d 9s 9h 2d")
	_, ok := ChoosePlay(hand, Play{Cards: cards("Ks")}, engine.Hard, engine.NewRand(1))
	assert.False(t, ok)
	_, ok = ChoosePlay(hand, Play{Cards: cards("Ks")}, engine.Normal, engine.NewRand(1))
	assert.True(t, ok)
	p, ok := ChoosePlay(cards("4h 2d"), Play{Cards: cards("Ks")}, engine.Hard, engine.NewRand(1))
	require.True(t, ok)
	assert.Equal(t, cards("2d"), p.Cards)
}

func TestSelfPlayMatch(t *testing.T) {
	for _, d := range []engine.Difficulty{engine.Easy, engine.Normal, engine.Hard} {
		g := New(4, d)
		for step := 0; step < 10000 && !g.IsOver(); step++ {
			if g.Phase() == PhaseRoundOver {
				require.NoError(t, g.NewRound())
				continue
			}
			if g.Turn() == HumanSeat {
				// the human seat plays its lowest legal group or passes
				plays := g.LegalPlays()
				if len(plays) == 0 {
					require.NoError(t, g.Pass())
				} else {
					require.NoError(t, g.PlayCards(HumanSeat, plays[0].Cards))
				}
			} else {
				require.True(t, g.PerformAIMove())
			}
			require.Equal(t, 52, g.CardCount())
		}
		assert.True(t, g.IsOver(), d.String())
		assert.Equal(t, Rounds, g.Round())
		total := 0
		for _, s := range g.Scores() {
			total += s
		}
		assert.Equal(t, Rounds*6, total)
	}
}

func TestDuplicateCardRejected(t *testing.T) {
	g := New(1, engine.Normal)
	rig(g, "5h 9c", "4h 6c", "3d 7s", "8d Kd")
	five := cards("5h")[0]
	assert.ErrorIs(t, g.PlayCards(0, []Card{five, five}), engine.ErrInvalidArgument)
	assert.Equal(t, cards("5h 9c"), g.Hand(0))
	assert.Empty(t, g.Pile().Cards)
	assert.Equal(t, 0, g.Turn())
}

func TestResetMidRoundMatchesFreshGame(t *testing.T) {
	g := New(9, engine.Normal)
	// finish one round and stop partway into the next
	for step := 0; step < 2000 && !g.IsOver(); step++ {
		if g.Phase() == PhaseRoundOver {
			require.NoError(t, g.NewRound())
			continue
		}
		if g.Round() == 2 && len(g.Pile().Cards) > 0 {
			break
		}
		require.True(t, g.PerformAIMove())
	}
	require.Equal(t, 2, g.Round())
	require.NotEqual(t, [Players]int{}, g.Scores())
	g.Reset()

	fresh := New(9, engine.Normal)
	assert.Equal(t, fresh.Scores(), g.Scores())
	assert.Equal(t, fresh.Titles(), g.Titles())
	assert.Equal(t, fresh.Round(), g.Round())
	assert.Equal(t, fresh.Turn(), g.Turn())
	for s := 0; s < Players; s++ {
		assert.Equal(t, fresh.Hand(s), g.Hand(s))
	}
	assert.Equal(t, 52, g.CardCount())
}
