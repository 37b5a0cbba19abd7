package balance

import (
	"testing"

	"github.com/casualarcade/arcade/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTipLoses(t *testing.T) {
	g := New(1, engine.Normal)
	res, err := g.Place(4, 5)
	require.NoError(t, err)
	assert.Equal(t, engine.TurnGameOver, res)
	assert.Equal(t, RoundResult{Kind: Tipped, Loser: engine.SideOne, Torque: 20}, g.Result())
	assert.Equal(t, engine.WinSideTwo, g.Outcome())
	_, err = g.Place(-4, 1)
	assert.ErrorIs(t, err, engine.ErrGameOver)
}

func TestIllegalPlacements(t *testing.T) {
	g := New(1, engine.Normal)
	for _, p := range []Placement{{0, 1}, {5, 1}, {2, 6}} {
		_, err := g.Place(p.Pos, p.Weight)
		assert.ErrorIs(t, err, engine.ErrIllegalMove)
	}
	_, err := g.Place(2, 1)
	require.NoError(t, err)
	_, err = g.Place(2, 3)
	assert.ErrorIs(t, err, engine.ErrIllegalMove, "occupied")
	assert.Equal(t, engine.SideTwo, g.Turn())
	assert.Equal(t, 2, g.Torque())
}

func TestStableRoundIsDraw(t *testing.T) {
	g := New(1, engine.Normal)
	steps := []Placement{{4, 1}, {-4, 1}, {3, 2}, {-3, 2}, {2, 3}, {-2, 3}, {1, 4}, {-1, 4}}
	for i, p := range steps {
		res, err := g.Place(p.Pos, p.Weight)
		require.NoError(t, err, "step %d", i)
		if i < len(steps)-1 {
			assert.Equal(t, engine.TurnSwitch, res)
		}
	}
	assert.Equal(t, RoundResult{Kind: Stable, Torque: 0}, g.Result())
	assert.Equal(t, engine.Draw, g.Outcome())
	b := g.Beam()
	assert.Equal(t, []int{5}, b.Remaining(engine.SideOne))
}

func TestNormalRecentres(t *testing.T) {
	g := New(1, engine.Normal)
	_, err := g.Place(4, 3)
	require.NoError(t, err)
	p, ok := ChoosePlacement(g.Beam(), engine.SideTwo, engine.Normal, engine.NewRand(1))
	require.True(t, ok)
	assert.Equal(t, Placement{Pos: -3, Weight: 4}, p)
}

func TestApplyDoesNotAlias(t *testing.T) {
	b := newBeam()
	next := b.Apply(engine.SideOne, Placement{Pos: 1, Weight: 5})
	assert.Len(t, b.Remaining(engine.SideOne), 5)
	assert.Len(t, next.Remaining(engine.SideOne), 4)
	w, side := next.At(1)
	assert.Equal(t, 5, w)
	assert.Equal(t, engine.SideOne, side)
}

func TestAIPlaysSafelyWhenPossible(t *testing.T) {
	for _, d := range []engine.Difficulty{engine.Easy, engine.Normal, engine.Hard} {
		for seed := uint64(1); seed <= 20; seed++ {
			g := New(seed, d)
			for !g.IsOver() {
				safe := false
				for _, p := range g.LegalPlacements() {
					next := g.Beam().Apply(g.Turn(), p)
					if slack(&next) >= 0 {
						safe = true
					}
				}
				mover := g.Turn()
				require.True(t, g.PerformAIMove())
				if safe {
					require.False(t, g.Result().Kind == Tipped && g.Result().Loser == mover)
				}
			}
		}
	}
}
