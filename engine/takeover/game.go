package takeover

import (
	"fmt"

	"github.com/casualarcade/arcade/engine"
)

const title = "takeover"

// Game owns one takeover match. Dark (human) moves first.
type Game struct {
	board      Board
	turn       Disc
	outcome    engine.Outcome
	passed     Disc // side that was skipped on the last transition, or Empty
	lastFlips  []int
	difficulty engine.Difficulty
	seed       uint64
	rng        *engine.Rand
}

func New(seed uint64, d engine.Difficulty) *Game {
	g := &Game{seed: seed, difficulty: d}
	g.Reset()
	return g
}

func (g *Game) Reset() {
	g.board = StartBoard()
	g.turn = Dark
	g.outcome = engine.InProgress
	g.passed = Empty
	g.lastFlips = nil
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

// Passed returns the side whose turn was skipped by the last move, or Empty.
func (g *Game) Passed() Disc { return g.passed }

// LastFlips lists the cells flipped by the last placement.
func (g *Game) LastFlips() []int { return append([]int(nil), g.lastFlips...) }

// Counts returns the current disc counts.
func (g *Game) Counts() (dark, light int) { return g.board.Count() }

// LegalMoves returns placements for the side to move.
func (g *Game) LegalMoves() []int {
	if g.IsOver() {
		return nil
	}
	return g.board.LegalMoves(g.turn)
}

// Place puts the side-to-move's disc on cell, flips, and advances the turn.
// A side without moves is skipped automatically; if neither side can move the game ends.
func (g *Game) Place(cell int) error {
	if g.IsOver() {
		return engine.Reject(title, "place", engine.ErrGameOver)
	}
	if cell < 0 || cell >= Cells {
		return engine.Reject(title, "place", fmt.Errorf("%w: cell %d", engine.ErrInvalidArgument, cell))
	}
	nb, flipped := g.board.Apply(cell, g.turn)
	if len(flipped) == 0 {
		return engine.Reject(title, "place", fmt.Errorf("%w: cell %d flips nothing", engine.ErrIllegalMove, cell))
	}
	g.board = nb
	g.lastFlips = flipped
	g.advance()
	return nil
}

func (g *Game) advance() engine.TurnResult {
	g.passed = Empty
	next := g.turn.Other()
	switch {
	case g.board.HasMove(next):
		g.turn = next
		return engine.TurnSwitch
	case g.board.HasMove(g.turn):
		g.passed = next
		return engine.TurnContinue
	}
	g.outcome = g.board.outcome()
	return engine.TurnGameOver
}

// AIToMove reports whether Light should act now.
func (g *Game) AIToMove() bool { return !g.IsOver() && g.turn == Light }

// PerformAIMove places a disc for the side to move using the current policy.
func (g *Game) PerformAIMove() bool {
	if g.IsOver() {
		return false
	}
	cell, ok := ChooseMove(g.board, g.turn, g.difficulty, g.rng)
	if !ok {
		return false
	}
	return g.Place(cell) == nil
}

func (g *Game) Status() string {
	dark, light := g.board.Count()
	switch g.outcome {
	case engine.WinSideOne:
		return fmt.Sprintf("Dark wins %d-%d", dark, light)
	case engine.WinSideTwo:
		return fmt.Sprintf("Light wins %d-%d", light, dark)
	case engine.Draw:
		return fmt.Sprintf("Draw %d-%d", dark, light)
	}
	if g.passed != Empty {
		return fmt.Sprintf("%s passes; %s to move", g.passed, g.turn)
	}
	return fmt.Sprintf("%s to move (%d-%d)", g.turn, dark, light)
}

// setPosition installs an arbitrary position; tests use it.
func (g *Game) setPosition(b Board, turn Disc) {
	g.board = b
	g.turn = turn
	g.outcome = engine.InProgress
	if g.board.Terminal() {
		g.outcome = g.board.outcome()
	}
}
