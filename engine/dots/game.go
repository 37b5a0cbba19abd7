package dots

import (
	"fmt"

	"github.com/casualarcade/arcade/engine"
)

const title = "dots"

// Game owns a dots-and-boxes match. SideOne is the human and moves first.
type Game struct {
	board      Board
	turn       engine.Side
	outcome    engine.Outcome
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
	g.board = Board{}
	g.turn = engine.SideOne
	g.outcome = engine.InProgress
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
func (g *Game) Turn() engine.Side             { return g.turn }
func (g *Game) Outcome() engine.Outcome       { return g.outcome }
func (g *Game) IsOver() bool                  { return g.outcome != engine.InProgress }
func (g *Game) Score() (one, two int)         { return g.board.Score() }

func (g *Game) LegalMoves() []int {
	if g.IsOver() {
		return nil
	}
	return g.board.LegalMoves()
}

// Draw adds edge for the side to move. Completing a box keeps the turn.
func (g *Game) Draw(edge int) (engine.TurnResult, error) {
	if g.IsOver() {
		return engine.TurnGameOver, engine.Reject(title, "draw", engine.ErrGameOver)
	}
	if edge < 0 || edge >= Edges {
		return engine.TurnSwitch, engine.Reject(title, "draw", fmt.Errorf("%w: edge %d", engine.ErrInvalidArgument, edge))
	}
	if g.board.Edges[edge] {
		return engine.TurnSwitch, engine.Reject(title, "draw", fmt.Errorf("%w: edge %d already drawn", engine.ErrIllegalMove, edge))
	}
	var completed int
	g.board, completed = g.board.Apply(edge, g.turn)
	if g.board.Full() {
		one, two := g.board.Score()
		switch {
		case one > two:
			g.outcome = engine.WinSideOne
		case two > one:
			g.outcome = engine.WinSideTwo
		default:
			g.outcome = engine.Draw
		}
		return engine.TurnGameOver, nil
	}
	if completed > 0 {
		return engine.TurnContinue, nil
	}
	g.turn = g.turn.Opponent()
	return engine.TurnSwitch, nil
}

// AIToMove reports whether SideTwo should act now.
func (g *Game) AIToMove() bool { return !g.IsOver() && g.turn == engine.SideTwo }

// PerformAIMove draws edges for the side to move until its turn ends.
func (g *Game) PerformAIMove() bool {
	if g.IsOver() {
		return false
	}
	side := g.turn
	moved := false
	for !g.IsOver() && g.turn == side {
		e, ok := ChooseEdge(g.board, side, g.difficulty, g.rng)
		if !ok {
			break
		}
		if _, err := g.Draw(e); err != nil {
			break
		}
		moved = true
	}
	return moved
}

func (g *Game) Status() string {
	one, two := g.board.Score()
	switch g.outcome {
	case engine.WinSideOne:
		return fmt.Sprintf("Player wins %d-%d", one, two)
	case engine.WinSideTwo:
		return fmt.Sprintf("AI wins %d-%d", two, one)
	case engine.Draw:
		return fmt.Sprintf("Draw %d-%d", one, two)
	}
	return fmt.Sprintf("%d-%d", one, two)
}
