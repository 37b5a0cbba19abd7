package checkers

import (
	"testing"

	"github.com/casualarcade/arcade/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartBoard(t *testing.T) {
	b := StartBoard()
	lm, lk := b.Count(engine.SideOne)
	dm, dk := b.Count(engine.SideTwo)
	assert.Equal(t, 12, lm)
	assert.Equal(t, 12, dm)
	assert.Zero(t, lk+dk)

	g := New(1, engine.Normal)
	assert.Equal(t, engine.SideOne, g.Turn())
	assert.Equal(t, -1, g.ForcedFrom())
	assert.Len(t, g.LegalMoves(), 7)
}

// Dark man on 10 jumps 17 to land on 24, and from 24 can jump 33 to 42.
func TestCaptureChainKeepsTurn(t *testing.T) {
	var b Board
	b[10] = DarkMan
	b[17] = LightMan
	b[33] = LightMan
	b[Index(7, 0)] = LightMan // keeps Light alive after the chain
	g := New(1, engine.Normal)
	g.SetPosition(b, engine.SideTwo)

	res, err := g.Move(10, 24)
	require.NoError(t, err)
	assert.Equal(t, engine.TurnContinue, res)
	assert.Equal(t, 24, g.ForcedFrom())
	assert.Equal(t, engine.SideTwo, g.Turn())
	for _, m := range g.LegalMoves() {
		assert.Equal(t, 24, m.From)
		assert.True(t, m.IsCapture())
	}
	assert.Equal(t, Empty, g.Board()[17])

	res, err = g.Move(24, 42)
	require.NoError(t, err)
	assert.Equal(t, engine.TurnSwitch, res)
	assert.Equal(t, -1, g.ForcedFrom())
	assert.Equal(t, engine.SideOne, g.Turn())
}

func TestForcedCaptureBlocksSteps(t *testing.T) {
	var b Board
	b[Index(5, 2)] = LightMan
	b[Index(4, 3)] = DarkMan
	b[Index(6, 7)] = LightMan
	b[Index(0, 1)] = DarkMan
	moves := b.LegalMoves(engine.SideOne, -1)
	require.Len(t, moves, 1)
	assert.Equal(t, Move{From: Index(5, 2), To: Index(3, 4), Captured: Index(4, 3)}, moves[0])

	g := New(1, engine.Normal)
	g.SetPosition(b, engine.SideOne)
	_, err := g.Move(Index(6, 7), Index(5, 6))
	assert.ErrorIs(t, err, engine.ErrIllegalMove)
}

func TestForcedCaptureHoldsDuringPlay(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		g := New(seed, engine.Easy)
		for ply := 0; ply < 300 && !g.IsOver(); ply++ {
			legal := g.LegalMoves()
			anyCapture := false
			for _, m := range g.board.LegalMoves(g.turn, -1) {
				if m.IsCapture() {
					anyCapture = true
				}
			}
			if anyCapture || g.ForcedFrom() >= 0 {
				for _, m := range legal {
					require.True(t, m.IsCapture(), "step offered while a capture exists")
				}
			}
			lm, lk := g.board.Count(engine.SideOne)
			dm, dk := g.board.Count(engine.SideTwo)
			before := lm + lk + dm + dk
			require.True(t, g.PerformAIMove())
			lm, lk = g.board.Count(engine.SideOne)
			dm, dk = g.board.Count(engine.SideTwo)
			assert.LessOrEqual(t, lm+lk+dm+dk, before, "pieces only leave the board by capture")
		}
	}
}

func TestPromotionEndsChain(t *testing.T) {
	var b Board
	b[Index(2, 1)] = LightMan
	b[Index(1, 2)] = DarkMan
	b[Index(1, 4)] = DarkMan // a king on (0,3) could jump this, but promotion ends the turn
	b[Index(5, 0)] = DarkMan
	g := New(1, engine.Normal)
	g.SetPosition(b, engine.SideOne)
	res, err := g.Move(Index(2, 1), Index(0, 3))
	require.NoError(t, err)
	assert.Equal(t, engine.TurnSwitch, res)
	assert.Equal(t, LightKing, g.Board()[Index(0, 3)])
	assert.Equal(t, engine.SideTwo, g.Turn())
}

func TestNoMovesLoses(t *testing.T) {
	// Dark's only man is boxed in and cannot jump.
	var blocked Board
	blocked[Index(0, 1)] = DarkMan
	blocked[Index(1, 0)] = LightMan
	blocked[Index(1, 2)] = LightMan
	blocked[Index(2, 3)] = LightMan
	g := New(1, engine.Normal)
	g.SetPosition(blocked, engine.SideTwo)
	assert.True(t, g.IsOver())
	assert.Equal(t, engine.WinSideOne, g.Outcome())

	var empty Board
	empty[Index(3, 2)] = LightMan
	g.SetPosition(empty, engine.SideTwo)
	assert.Equal(t, engine.WinSideOne, g.Outcome())
}

func TestApplyDoesNotAliasInput(t *testing.T) {
	b := StartBoard()
	m := b.LegalMoves(engine.SideOne, -1)[0]
	nb, _ := b.Apply(m)
	assert.Equal(t, StartBoard(), b)
	assert.Equal(t, Empty, nb[m.From])
}

func TestHardFollowsDoubleJump(t *testing.T) {
	var b Board
	b[Index(2, 3)] = DarkMan
	b[Index(3, 2)] = LightMan
	b[Index(3, 4)] = LightMan
	b[Index(5, 2)] = LightMan // jumping to (4,1) opens a second jump over this man
	m, ok := ChooseMove(b, engine.SideTwo, -1, engine.Hard, engine.NewRand(1))
	require.True(t, ok)
	assert.Equal(t, Index(4, 1), m.To)
}

func TestPerformAIMoveFinishesChain(t *testing.T) {
	var b Board
	b[10] = DarkMan
	b[17] = LightMan
	b[33] = LightMan
	b[Index(7, 6)] = LightMan
	g := New(1, engine.Hard)
	g.SetPosition(b, engine.SideTwo)
	require.True(t, g.PerformAIMove())
	assert.Equal(t, engine.SideOne, g.Turn())
	assert.Equal(t, DarkMan, g.Board()[42])
	b = g.Board()
	lm, _ := b.Count(engine.SideOne)
	assert.Equal(t, 1, lm)
}

func TestResetIdempotent(t *testing.T) {
	g := New(2, engine.Normal)
	_, _ = g.Move(Index(5, 0), Index(4, 1))
	g.Reset()
	a := g.Board()
	g.Reset()
	assert.Equal(t, a, g.Board())
	assert.Equal(t, StartBoard(), g.Board())
	assert.Equal(t, engine.SideOne, g.Turn())
}
