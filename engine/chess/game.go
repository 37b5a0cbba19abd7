package chess

import (
	"fmt"

	"github.com/casualarcade/arcade/engine"
)

const title = "chess"

// Game owns one chess match. White is the human side and moves first.
type Game struct {
	pos        Position
	outcome    engine.Outcome
	status     Status
	lastMove   Move
	history    []Move
	difficulty engine.Difficulty
	seed       uint64
	rng        *engine.Rand
}

// New creates the standard starting position.
func New(seed uint64, d engine.Difficulty) *Game {
	g := &Game{seed: seed, difficulty: d}
	g.Reset()
	return g
}

func (g *Game) Reset() {
	g.pos = StartPosition()
	g.outcome = engine.InProgress
	g.status = Ongoing
	g.lastMove = Move{From: -1, To: -1}
	g.history = nil
	g.rng = engine.NewRand(g.seed)
}

// SetDifficulty changes the opponent policy and resets the game.
func (g *Game) SetDifficulty(d engine.Difficulty) {
	g.difficulty = d
	g.Reset()
}

// SetFEN installs a position and classifies it immediately.
func (g *Game) SetFEN(fen string) error {
	pos, err := ParseFEN(fen)
	if err != nil {
		return engine.Reject(title, "set_fen", fmt.Errorf("%w: %v", engine.ErrInvalidArgument, err))
	}
	g.pos = pos
	g.history = nil
	g.lastMove = Move{From: -1, To: -1}
	g.classify()
	return nil
}

func (g *Game) Title() string                 { return title }
func (g *Game) Difficulty() engine.Difficulty { return g.difficulty }
func (g *Game) Position() Position            { return g.pos }
func (g *Game) Board() Board                  { return g.pos.Board }
func (g *Game) Turn() Color                   { return g.pos.Turn }
func (g *Game) Outcome() engine.Outcome       { return g.outcome }
func (g *Game) IsOver() bool                  { return g.outcome != engine.InProgress }
func (g *Game) InCheck() bool                 { return g.pos.InCheck() }
func (g *Game) FEN() string                   { return g.pos.FEN() }
func (g *Game) LastMove() Move                { return g.lastMove }

// Result is the classification of the current position.
func (g *Game) Result() Status { return g.status }

// History returns the moves played since the last reset.
func (g *Game) History() []Move { return append([]Move(nil), g.history...) }

// LegalMoves is empty once the game is over.
func (g *Game) LegalMoves() []Move {
	if g.IsOver() {
		return nil
	}
	return g.pos.LegalMoves()
}

// Select returns the legal destinations for the piece on sq.
func (g *Game) Select(sq int) []int {
	var out []int
	seen := map[int]bool{}
	for _, m := range g.LegalMoves() {
		if m.From == sq && !seen[m.To] {
			seen[m.To] = true
			out = append(out, m.To)
		}
	}
	return out
}

// Move plays from->to for the side to move. promo is ignored unless the move
// promotes; a promotion with no piece given becomes a queen.
func (g *Game) Move(from, to int, promo PieceType) error {
	if g.IsOver() {
		return engine.Reject(title, "move", engine.ErrGameOver)
	}
	if from < 0 || from > 63 || to < 0 || to > 63 || promo > Queen {
		return engine.Reject(title, "move", fmt.Errorf("%w: %d-%d", engine.ErrInvalidArgument, from, to))
	}
	for _, m := range g.pos.LegalMoves() {
		if m.From != from || m.To != to {
			continue
		}
		if m.Is(FlagPromotion) {
			want := promo
			if want == NoPieceType {
				want = Queen
			}
			if m.Promo != want {
				continue
			}
		}
		g.apply(m)
		return nil
	}
	return engine.Reject(title, "move", fmt.Errorf("%w: %s%s", engine.ErrIllegalMove, SquareName(from), SquareName(to)))
}

func (g *Game) apply(m Move) {
	g.pos = g.pos.Apply(m)
	g.lastMove = m
	g.history = append(g.history, m)
	g.classify()
}

// classify maps the position status onto the two-sided outcome: a checkmated
// side to move loses, every other terminal status is a draw.
func (g *Game) classify() {
	g.status = g.pos.Status()
	switch g.status {
	case Ongoing:
		g.outcome = engine.InProgress
	case Checkmate:
		g.outcome = engine.WinFor(sideOf(g.pos.Turn.Other()))
	default:
		g.outcome = engine.Draw
	}
}

func sideOf(c Color) engine.Side {
	if c == White {
		return engine.SideOne
	}
	return engine.SideTwo
}

// AIToMove reports whether Black should act now.
func (g *Game) AIToMove() bool { return !g.IsOver() && g.pos.Turn == Black }

// PerformAIMove plays the policy's move for the side to move.
func (g *Game) PerformAIMove() bool {
	if g.IsOver() {
		return false
	}
	m, ok := ChooseMove(g.pos, g.difficulty, g.rng)
	if !ok {
		return false
	}
	g.apply(m)
	return true
}

func (g *Game) Status() string {
	switch g.status {
	case Checkmate:
		return fmt.Sprintf("Checkmate, %s wins", capitalized(g.pos.Turn.Other()))
	case Stalemate:
		return "Stalemate"
	case FiftyMoveDraw:
		return "Draw by fifty-move rule"
	case InsufficientMaterial:
		return "Draw by insufficient material"
	}
	s := capitalized(g.pos.Turn) + " to move"
	if g.pos.InCheck() {
		s += " (check)"
	}
	return s
}

func capitalized(c Color) string {
	if c == White {
		return "White"
	}
	return "Black"
}
