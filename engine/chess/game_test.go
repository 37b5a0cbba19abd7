package chess

import (
	"testing"

	"github.com/casualarcade/arcade/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sq(t *testing.T, name string) int {
	t.Helper()
	s, err := ParseSquare(name)
	require.NoError(t, err)
	return s
}

func TestFoolsMate(t *testing.T) {
	g := New(1, engine.Normal)
	for _, mv := range [][2]string{{"f2", "f3"}, {"e7", "e5"}, {"g2", "g4"}, {"d8", "h4"}} {
		require.NoError(t, g.Move(sq(t, mv[0]), sq(t, mv[1]), NoPieceType))
	}
	assert.True(t, g.IsOver())
	assert.Equal(t, Checkmate, g.Result())
	assert.Equal(t, engine.WinSideTwo, g.Outcome())
	assert.True(t, g.InCheck())
	assert.Empty(t, g.LegalMoves())
	assert.Equal(t, "Checkmate, Black wins", g.Status())
	assert.ErrorIs(t, g.Move(sq(t, "e2"), sq(t, "e4"), NoPieceType), engine.ErrGameOver)
}

func TestTerminalClassification(t *testing.T) {
	cases := []struct {
		name    string
		fen     string
		status  Status
		outcome engine.Outcome
	}{
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate, engine.Draw},
		{"mated in corner", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", Checkmate, engine.WinSideOne},
		{"bare kings", "8/8/8/4k3/8/8/8/4K3 w - - 0 1", InsufficientMaterial, engine.Draw},
		{"king and knight", "8/8/8/4k3/8/8/8/4KN2 w - - 0 1", InsufficientMaterial, engine.Draw},
		{"fifty moves", "8/8/8/4k3/8/8/8/R3K3 w - - 100 80", FiftyMoveDraw, engine.Draw},
		{"ongoing", StartFEN, Ongoing, engine.InProgress},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := New(1, engine.Normal)
			require.NoError(t, g.SetFEN(tc.fen))
			assert.Equal(t, tc.status, g.Result())
			assert.Equal(t, tc.outcome, g.Outcome())
		})
	}
}

func TestIllegalMoveLeavesStateUnchanged(t *testing.T) {
	g := New(1, engine.Normal)
	before := g.FEN()
	assert.ErrorIs(t, g.Move(sq(t, "e2"), sq(t, "e5"), NoPieceType), engine.ErrIllegalMove)
	assert.ErrorIs(t, g.Move(sq(t, "e7"), sq(t, "e5"), NoPieceType), engine.ErrIllegalMove)
	assert.ErrorIs(t, g.Move(-1, 70, NoPieceType), engine.ErrInvalidArgument)
	assert.Equal(t, before, g.FEN())
	assert.Empty(t, g.History())
}

func TestSelect(t *testing.T) {
	g := New(1, engine.Normal)
	assert.ElementsMatch(t, []int{sq(t, "e3"), sq(t, "e4")}, g.Select(sq(t, "e2")))
	assert.ElementsMatch(t, []int{sq(t, "f3"), sq(t, "h3")}, g.Select(sq(t, "g1")))
	assert.Empty(t, g.Select(sq(t, "e1")))
}

func TestPromotionDefaultsToQueen(t *testing.T) {
	g := New(1, engine.Normal)
	require.NoError(t, g.SetFEN("8/P7/8/8/8/8/8/k6K w - - 0 1"))
	require.NoError(t, g.Move(sq(t, "a7"), sq(t, "a8"), NoPieceType))
	assert.Equal(t, MakePiece(White, Queen), g.Board()[0])

	require.NoError(t, g.SetFEN("8/P7/8/8/8/8/8/k6K w - - 0 1"))
	require.NoError(t, g.Move(sq(t, "a7"), sq(t, "a8"), Knight))
	assert.Equal(t, MakePiece(White, Knight), g.Board()[0])
}

func TestAIFindsMateInOne(t *testing.T) {
	for _, d := range []engine.Difficulty{engine.Normal, engine.Hard} {
		g := New(3, d)
		require.NoError(t, g.SetFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"))
		require.True(t, g.PerformAIMove())
		assert.Equal(t, "a1a8", g.LastMove().String(), d.String())
		assert.Equal(t, Checkmate, g.Result())
	}
}

func TestAIWinsHangingQueen(t *testing.T) {
	g := New(3, engine.Hard)
	require.NoError(t, g.SetFEN("4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1"))
	require.True(t, g.PerformAIMove())
	assert.Equal(t, "d2d5", g.LastMove().String())
}

func TestSearchIsDeterministic(t *testing.T) {
	pos, err := ParseFEN(kiwipete)
	require.NoError(t, err)
	a, ok := ChooseMove(pos, engine.Hard, engine.NewRand(1))
	require.True(t, ok)
	for i := 0; i < 3; i++ {
		b, _ := ChooseMove(pos, engine.Hard, engine.NewRand(1))
		assert.Equal(t, a, b)
	}
}

func TestEasyReproducibleBySeed(t *testing.T) {
	play := func() string {
		g := New(11, engine.Easy)
		for i := 0; i < 20 && !g.IsOver(); i++ {
			g.PerformAIMove()
		}
		return g.FEN()
	}
	assert.Equal(t, play(), play())
}

func TestNoMoveWhenMated(t *testing.T) {
	pos, err := ParseFEN("R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	require.NoError(t, err)
	_, ok := ChooseMove(pos, engine.Hard, engine.NewRand(1))
	assert.False(t, ok)
}

func TestResetAfterDifficultyChange(t *testing.T) {
	g := New(5, engine.Easy)
	require.NoError(t, g.Move(sq(t, "e2"), sq(t, "e4"), NoPieceType))
	assert.True(t, g.AIToMove())
	g.SetDifficulty(engine.Hard)
	assert.Equal(t, StartFEN, g.FEN())
	assert.Equal(t, engine.Hard, g.Difficulty())
	assert.False(t, g.AIToMove())
	assert.Equal(t, "White to move", g.Status())
}
