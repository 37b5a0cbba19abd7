package arcade

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casualarcade/arcade/engine"
)

func TestSelfPlayTicTacToeHardAlwaysDraws(t *testing.T) {
	rep, err := SelfPlay(context.Background(), DefaultRegistry(), SelfPlayOptions{
		Title:      "tictactoe",
		Difficulty: engine.Hard,
		Seed:       1,
		Games:      8,
		Workers:    3,
		Log:        quietLogger(),
	})
	require.NoError(t, err)
	assert.Equal(t, 8, rep.Draws)
	assert.Len(t, rep.Games, 8)
	for i, g := range rep.Games {
		assert.Equal(t, i, g.Index)
		assert.Equal(t, uint64(1+i), g.Seed)
		assert.Equal(t, 9, g.Turns)
	}
}

func TestSelfPlayReproducible(t *testing.T) {
	opts := SelfPlayOptions{Title: "connectfour", Difficulty: engine.Easy, Seed: 5, Games: 6, Workers: 4, Log: quietLogger()}
	a, err := SelfPlay(context.Background(), DefaultRegistry(), opts)
	require.NoError(t, err)
	opts.Workers = 1
	b, err := SelfPlay(context.Background(), DefaultRegistry(), opts)
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("reports differ across worker counts (-a +b):\n%s", diff)
	}
	assert.Equal(t, 6, a.SideOne+a.SideTwo+a.Draws+a.Unfinished)
}

func TestSelfPlayEveryBoardTitleFinishes(t *testing.T) {
	reg := DefaultRegistry()
	for _, e := range reg.Entries() {
		if !e.SelfPlay || e.Title == "chess" {
			continue
		}
		rep, err := SelfPlay(context.Background(), reg, SelfPlayOptions{
			Title: e.Title, Difficulty: engine.Easy, Seed: 3, Games: 2, Workers: 2, Log: quietLogger(),
		})
		require.NoError(t, err, e.Title)
		assert.Zero(t, rep.Unfinished, e.Title)
	}
}

func TestSelfPlayErrors(t *testing.T) {
	reg := DefaultRegistry()
	_, err := SelfPlay(context.Background(), reg, SelfPlayOptions{Title: "rummy", Games: 1})
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
	_, err = SelfPlay(context.Background(), reg, SelfPlayOptions{Title: "tictactoe", Games: 0})
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
	_, err = SelfPlay(context.Background(), reg, SelfPlayOptions{Title: "nope", Games: 1})
	assert.ErrorIs(t, err, ErrUnknownGame)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = SelfPlay(ctx, reg, SelfPlayOptions{Title: "tictactoe", Games: 4, Log: quietLogger()})
	assert.ErrorIs(t, err, context.Canceled)
}
