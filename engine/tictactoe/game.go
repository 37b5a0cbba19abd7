package tictactoe

import (
	"fmt"

	"github.com/casualarcade/arcade/engine"
)

const title = "tictactoe"

// Game owns one tic-tac-toe match. X is the human and always moves first.
type Game struct {
	board      Board
	turn       Mark
	outcome    engine.Outcome
	moves      int
	difficulty engine.Difficulty
	seed       uint64
	rng        *engine.Rand
}

// New creates a game with an empty board and X to move.
func New(seed uint64, d engine.Difficulty) *Game {
	g := &Game{seed: seed, difficulty: d}
	g.Reset()
	return g
}

// Reset returns to the empty board with X to move. The random stream restarts from the seed.
func (g *Game) Reset() {
	g.board = Board{}
	g.turn = X
	g.outcome = engine.InProgress
	g.moves = 0
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
func (g *Game) Turn() Mark                    { return g.turn }
func (g *Game) Outcome() engine.Outcome       { return g.outcome }
func (g *Game) IsOver() bool                  { return g.outcome != engine.InProgress }
func (g *Game) MoveCount() int                { return g.moves }

// Winner returns the winning mark or Empty.
func (g *Game) Winner() Mark {
	w, _ := g.board.Winner()
	return w
}

// WinningLine returns the three winning cells, or -1s.
func (g *Game) WinningLine() [3]int {
	_, ln := g.board.Winner()
	return ln
}

// LegalMoves returns the open cells, recomputed from the board.
func (g *Game) LegalMoves() []int {
	if g.IsOver() {
		return nil
	}
	return g.board.LegalMoves()
}

// Play places the side-to-move's mark on cell.
func (g *Game) Play(cell int) error {
	if g.IsOver() {
		return engine.Reject(title, "play", engine.ErrGameOver)
	}
	if cell < 0 || cell >= len(g.board) {
		return engine.Reject(title, "play", fmt.Errorf("%w: cell %d", engine.ErrInvalidArgument, cell))
	}
	if g.board[cell] != Empty {
		return engine.Reject(title, "play", fmt.Errorf("%w: cell %d occupied", engine.ErrIllegalMove, cell))
	}
	g.board[cell] = g.turn
	g.moves++
	g.outcome = g.board.outcome()
	if g.outcome == engine.InProgress {
		g.turn = g.turn.Other()
	}
	return nil
}

// AIToMove reports whether the AI (O) should act now.
func (g *Game) AIToMove() bool { return !g.IsOver() && g.turn == O }

// PerformAIMove plays the policy's choice for the side to move.
func (g *Game) PerformAIMove() bool {
	if g.IsOver() {
		return false
	}
	cell, ok := ChooseMove(g.board, g.turn, g.difficulty, g.rng)
	if !ok {
		return false
	}
	return g.Play(cell) == nil
}

// Status is a short human-readable summary.
func (g *Game) Status() string {
	switch g.outcome {
	case engine.WinSideOne:
		return "X wins"
	case engine.WinSideTwo:
		return "O wins"
	case engine.Draw:
		return "Draw"
	}
	return fmt.Sprintf("%s to move", g.turn)
}
