package dots

import (
	"testing"

	"github.com/casualarcade/arcade/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeGeometry(t *testing.T) {
	assert.Equal(t, 40, Edges)
	assert.ElementsMatch(t, []int{0}, adjacentBoxes(HEdge(0, 0)))
	assert.ElementsMatch(t, []int{0, 4}, adjacentBoxes(HEdge(1, 0)))
	assert.ElementsMatch(t, []int{0, 1}, adjacentBoxes(VEdge(0, 1)))
	assert.ElementsMatch(t, []int{15}, adjacentBoxes(VEdge(3, 4)))
}

func TestCompletingBoxKeepsTurn(t *testing.T) {
	g := New(1, engine.Normal)
	steps := []struct {
		edge int
		want engine.TurnResult
	}{
		{HEdge(0, 0), engine.TurnSwitch},
		{HEdge(1, 0), engine.TurnSwitch},
		{VEdge(0, 0), engine.TurnSwitch},
		{VEdge(0, 1), engine.TurnContinue},
	}
	for _, s := range steps {
		res, err := g.Draw(s.edge)
		require.NoError(t, err)
		assert.Equal(t, s.want, res)
	}
	// Fourth edge was drawn by SideTwo (turns: one, two, one, two).
	one, two := g.Score()
	assert.Equal(t, 0, one)
	assert.Equal(t, 1, two)
	assert.Equal(t, engine.SideTwo, g.Turn())
}

func TestRedrawRejected(t *testing.T) {
	g := New(1, engine.Normal)
	_, err := g.Draw(3)
	require.NoError(t, err)
	_, err = g.Draw(3)
	assert.ErrorIs(t, err, engine.ErrIllegalMove)
	_, err = g.Draw(Edges)
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
	assert.Equal(t, engine.SideTwo, g.Turn())
}

func TestNormalTakesFreeBox(t *testing.T) {
	var b Board
	b, _ = b.Apply(HEdge(0, 0), engine.SideOne)
	b, _ = b.Apply(HEdge(1, 0), engine.SideOne)
	b, _ = b.Apply(VEdge(0, 0), engine.SideOne)
	e, ok := ChooseEdge(b, engine.SideTwo, engine.Normal, engine.NewRand(1))
	require.True(t, ok)
	assert.Equal(t, VEdge(0, 1), e)
}

func TestFullGameByAI(t *testing.T) {
	g := New(3, engine.Hard)
	for i := 0; i < Edges && !g.IsOver(); i++ {
		require.True(t, g.PerformAIMove())
	}
	require.True(t, g.IsOver())
	one, two := g.Score()
	assert.Equal(t, Boxes, one+two)
}
