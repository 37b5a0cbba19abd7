package checkers

import (
	"fmt"

	"github.com/casualarcade/arcade/engine"
)

const title = "checkers"

// DrawPlies is the number of consecutive king-only non-capturing plies that draws the game.
const DrawPlies = 80

// Game owns one checkers match.
type Game struct {
	board      Board
	turn       engine.Side
	forcedFrom int
	outcome    engine.Outcome
	quietPlies int
	lastMove   Move
	difficulty engine.Difficulty
	seed       uint64
	rng        *engine.Rand
}

// New creates the starting position with Light (the human) to move.
func New(seed uint64, d engine.Difficulty) *Game {
	g := &Game{seed: seed, difficulty: d}
	g.Reset()
	return g
}

func (g *Game) Reset() {
	g.board = StartBoard()
	g.turn = engine.SideOne
	g.forcedFrom = -1
	g.outcome = engine.InProgress
	g.quietPlies = 0
	g.lastMove = Move{From: -1, To: -1, Captured: -1}
	g.rng = engine.NewRand(g.seed)
}

// SetDifficulty changes the opponent policy and resets the game.
func (g *Game) SetDifficulty(d engine.Difficulty) {
	g.difficulty = d
	g.Reset()
}

// SetPosition installs an arbitrary position with side to move.
func (g *Game) SetPosition(b Board, side engine.Side) {
	g.board = b
	g.turn = side
	g.forcedFrom = -1
	g.quietPlies = 0
	g.outcome = engine.InProgress
	g.checkTerminal()
}

func (g *Game) Title() string                 { return title }
func (g *Game) Difficulty() engine.Difficulty { return g.difficulty }
func (g *Game) Board() Board                  { return g.board }
func (g *Game) Turn() engine.Side             { return g.turn }
func (g *Game) Outcome() engine.Outcome       { return g.outcome }
func (g *Game) IsOver() bool                  { return g.outcome != engine.InProgress }
func (g *Game) LastMove() Move                { return g.lastMove }

// ForcedFrom is the square of a piece in the middle of a multi-jump, or -1.
func (g *Game) ForcedFrom() int { return g.forcedFrom }

// LegalMoves is recomputed from the board, side and any forced continuation.
func (g *Game) LegalMoves() []Move {
	if g.IsOver() {
		return nil
	}
	return g.board.LegalMoves(g.turn, g.forcedFrom)
}

// Select returns the legal destinations for the piece on cell.
func (g *Game) Select(cell int) []int {
	var out []int
	for _, m := range g.LegalMoves() {
		if m.From == cell {
			out = append(out, m.To)
		}
	}
	return out
}

// Move plays from->to for the side to move.
func (g *Game) Move(from, to int) (engine.TurnResult, error) {
	if g.IsOver() {
		return engine.TurnGameOver, engine.Reject(title, "move", engine.ErrGameOver)
	}
	if from < 0 || from >= Cells || to < 0 || to >= Cells {
		return engine.TurnSwitch, engine.Reject(title, "move", fmt.Errorf("%w: %d-%d", engine.ErrInvalidArgument, from, to))
	}
	for _, m := range g.LegalMoves() {
		if m.From == from && m.To == to {
			return g.apply(m), nil
		}
	}
	return engine.TurnSwitch, engine.Reject(title, "move", fmt.Errorf("%w: %d-%d", engine.ErrIllegalMove, from, to))
}

func (g *Game) apply(m Move) engine.TurnResult {
	moved := g.board[m.From]
	var fx Effects
	g.board, fx = g.board.Apply(m)
	g.lastMove = m
	if m.IsCapture() || !moved.IsKing() {
		g.quietPlies = 0
	} else {
		g.quietPlies++
	}
	if fx.ContinueFrom >= 0 {
		g.forcedFrom = fx.ContinueFrom
		return engine.TurnContinue
	}
	g.forcedFrom = -1
	g.turn = g.turn.Opponent()
	if g.checkTerminal() {
		return engine.TurnGameOver
	}
	return engine.TurnSwitch
}

// checkTerminal ends the game when the side to move has no pieces or no
// legal moves (the opponent wins), or on the quiet-ply draw rule.
func (g *Game) checkTerminal() bool {
	if len(g.board.LegalMoves(g.turn, g.forcedFrom)) == 0 {
		g.outcome = engine.WinFor(g.turn.Opponent())
		return true
	}
	if g.quietPlies >= DrawPlies {
		g.outcome = engine.Draw
		return true
	}
	return false
}

// AIToMove reports whether Dark should act now.
func (g *Game) AIToMove() bool { return !g.IsOver() && g.turn == engine.SideTwo }

// PerformAIMove plays the side to move's whole turn, including every jump of a chain.
func (g *Game) PerformAIMove() bool {
	if g.IsOver() {
		return false
	}
	side := g.turn
	moved := false
	for !g.IsOver() && g.turn == side {
		m, ok := ChooseMove(g.board, side, g.forcedFrom, g.difficulty, g.rng)
		if !ok {
			break
		}
		g.apply(m)
		moved = true
	}
	return moved
}

func (g *Game) Status() string {
	switch g.outcome {
	case engine.WinSideOne:
		return "Light wins"
	case engine.WinSideTwo:
		return "Dark wins"
	case engine.Draw:
		return "Draw"
	}
	who := "Light"
	if g.turn == engine.SideTwo {
		who = "Dark"
	}
	if g.forcedFrom >= 0 {
		return fmt.Sprintf("%s must continue jumping from %d", who, g.forcedFrom)
	}
	return who + " to move"
}
