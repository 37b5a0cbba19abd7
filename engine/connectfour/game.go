package connectfour

import (
	"fmt"

	"github.com/casualarcade/arcade/engine"
)

const title = "connectfour"

// Game owns one connect-four match. Red (human) always moves first.
type Game struct {
	board      Board
	turn       Disc
	outcome    engine.Outcome
	lastMove   int
	difficulty engine.Difficulty
	seed       uint64
	rng        *engine.Rand
}

// New creates an empty board with Red to move.
func New(seed uint64, d engine.Difficulty) *Game {
	g := &Game{seed: seed, difficulty: d}
	g.Reset()
	return g
}

func (g *Game) Reset() {
	g.board = Board{}
	g.turn = Red
	g.outcome = engine.InProgress
	g.lastMove = -1
	g.rng = engine.NewRand(g.seed)
}

// SetDifficulty changes the opponent policy and resets the game.
func (g *Game) SetDifficulty(d engine.Difficulty) {
	g.difficulty = d
	g.Reset()
}

func (g *Game) Title() string                 { return title }
func (g *Game) Difficulty() engine.Difficulty { return g.difficulty }
func (g *Game) Board() Board                  { return g.board }
func (g *Game) Turn() Disc                    { return g.turn }
func (g *Game) Outcome() engine.Outcome       { return g.outcome }
func (g *Game) IsOver() bool                  { return g.outcome != engine.InProgress }

// LastMove is the board index of the most recent disc, or -1.
func (g *Game) LastMove() int { return g.lastMove }

// Winner returns the winning disc or Empty.
func (g *Game) Winner() Disc {
	switch g.outcome {
	case engine.WinSideOne:
		return Red
	case engine.WinSideTwo:
		return Yellow
	}
	return Empty
}

// LegalColumns returns the playable columns; none once the game is over.
func (g *Game) LegalColumns() []int {
	if g.IsOver() {
		return nil
	}
	return g.board.LegalColumns()
}

// Drop plays the side-to-move's disc into col.
func (g *Game) Drop(col int) error {
	if g.IsOver() {
		return engine.Reject(title, "drop", engine.ErrGameOver)
	}
	if col < 0 || col >= Cols {
		return engine.Reject(title, "drop", fmt.Errorf("%w: column %d", engine.ErrInvalidArgument, col))
	}
	if g.board.DropRow(col) < 0 {
		return engine.Reject(title, "drop", fmt.Errorf("%w: column %d is full", engine.ErrIllegalMove, col))
	}
	var idx int
	g.board, idx = g.board.Drop(col, g.turn)
	g.lastMove = idx
	switch {
	case g.board.WinsAt(idx):
		g.outcome = outcomeFor(g.turn)
	case g.board.Full():
		g.outcome = engine.Draw
	default:
		g.turn = g.turn.Other()
	}
	return nil
}

// AIToMove reports whether Yellow should act now.
func (g *Game) AIToMove() bool { return !g.IsOver() && g.turn == Yellow }

// PerformAIMove drops a disc chosen by the current policy for the side to move.
func (g *Game) PerformAIMove() bool {
	if g.IsOver() {
		return false
	}
	col, ok := ChooseColumn(g.board, g.turn, g.difficulty, g.rng)
	if !ok {
		return false
	}
	return g.Drop(col) == nil
}

func (g *Game) Status() string {
	switch g.outcome {
	case engine.WinSideOne:
		return "Red wins"
	case engine.WinSideTwo:
		return "Yellow wins"
	case engine.Draw:
		return "Draw"
	}
	if g.turn == Red {
		return "Red to move"
	}
	return "Yellow to move"
}
