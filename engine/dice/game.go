// Package dice implements Pig: roll to build a turn total, hold to bank it,
// and lose the turn total on a one.
package dice

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/casualarcade/arcade/engine"
)

const title = "dice"

const (
	Target     = 100
	HumanSeat  = 0
	DefaultAIs = 2
	bust       = 1
)

// Roll records one throw.
type Roll struct {
	Seat   int
	Face   int
	Busted bool
}

// Game is a Pig match between one human (seat 0) and some AI seats.
type Game struct {
	names      []string
	scores     []int
	current    int
	turnTotal  int
	last       *Roll
	winner     int
	difficulty engine.Difficulty
	seed       uint64
	rng        *engine.Rand
}

// New starts a match with the default roster of two AI opponents.
func New(seed uint64, d engine.Difficulty) *Game {
	g, _ := NewWithRoster(seed, d, DefaultAIs)
	return g
}

// NewWithRoster starts a match against ais opponents (1 to 5).
func NewWithRoster(seed uint64, d engine.Difficulty, ais int) (*Game, error) {
	if ais < 1 || ais > 5 {
		return nil, fmt.Errorf("%w: %d AI players", engine.ErrInvalidArgument, ais)
	}
	g := &Game{seed: seed, difficulty: d}
	g.names = []string{"You"}
	for i := 1; i <= ais; i++ {
		g.names = append(g.names, fmt.Sprintf("CPU %d", i))
	}
	g.Reset()
	return g, nil
}

func (g *Game) Reset() {
	g.rng = engine.NewRand(g.seed)
	g.scores = make([]int, len(g.names))
	g.current = HumanSeat
	g.turnTotal = 0
	g.last = nil
	g.winner = -1
}

func (g *Game) SetDifficulty(d engine.Difficulty) {
	g.difficulty = d
	g.Reset()
}

func (g *Game) Title() string                 { return title }
func (g *Game) Difficulty() engine.Difficulty { return g.difficulty }
func (g *Game) Players() int                  { return len(g.names) }
func (g *Game) Name(seat int) string          { return g.names[seat] }
func (g *Game) Current() int                  { return g.current }
func (g *Game) TurnTotal() int                { return g.turnTotal }
func (g *Game) Winner() int                   { return g.winner }
func (g *Game) IsOver() bool                  { return g.winner >= 0 }
func (g *Game) AIToMove() bool                { return !g.IsOver() && g.current != HumanSeat }

// Scores returns the banked score of every seat.
func (g *Game) Scores() []int { return append([]int(nil), g.scores...) }

// LastRoll is the most recent throw, if any.
func (g *Game) LastRoll() (Roll, bool) {
	if g.last == nil {
		return Roll{}, false
	}
	return *g.last, true
}

// Outcome is a win for side one when the human wins.
func (g *Game) Outcome() engine.Outcome {
	switch {
	case !g.IsOver():
		return engine.InProgress
	case g.winner == HumanSeat:
		return engine.WinSideOne
	}
	return engine.WinSideTwo
}

// Roll throws the die for the human.
func (g *Game) Roll() (int, error) {
	if err := g.humanTurn("roll"); err != nil {
		return 0, err
	}
	return g.roll(), nil
}

// Hold banks the human's turn total.
func (g *Game) Hold() error {
	if err := g.humanTurn("hold"); err != nil {
		return err
	}
	if g.turnTotal == 0 {
		return engine.Reject(title, "hold", fmt.Errorf("%w: nothing to bank", engine.ErrIllegalMove))
	}
	g.hold()
	return nil
}

func (g *Game) humanTurn(action string) error {
	if g.IsOver() {
		return engine.Reject(title, action, engine.ErrGameOver)
	}
	if g.current != HumanSeat {
		return engine.Reject(title, action, engine.ErrNotYourTurn)
	}
	return nil
}

// roll throws for the current seat. Reaching the target wins at once.
func (g *Game) roll() int {
	face := g.rng.Intn(6) + 1
	g.last = &Roll{Seat: g.current, Face: face, Busted: face == bust}
	if face == bust {
		g.turnTotal = 0
		g.pass()
		return face
	}
	g.turnTotal += face
	if g.scores[g.current]+g.turnTotal >= Target {
		g.hold()
	}
	return face
}

func (g *Game) hold() {
	g.scores[g.current] += g.turnTotal
	g.turnTotal = 0
	if g.scores[g.current] >= Target {
		g.winner = g.current
		engine.Log().WithFields(logrus.Fields{"game": title, "winner": g.names[g.winner], "scores": g.scores}).Debug("game over")
		return
	}
	g.pass()
}

func (g *Game) pass() {
	g.current = (g.current + 1) % len(g.names)
}

// PerformAIMove makes one roll-or-hold decision for the AI seat to move.
func (g *Game) PerformAIMove() bool {
	if !g.AIToMove() {
		return false
	}
	if ShouldHold(g.scores, g.current, g.turnTotal, g.difficulty, g.rng) {
		g.hold()
	} else {
		g.roll()
	}
	return true
}

func (g *Game) Status() string {
	var b strings.Builder
	for i, s := range g.scores {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %d", g.names[i], s)
	}
	if g.IsOver() {
		return fmt.Sprintf("%s win! (%s)", g.names[g.winner], b.String())
	}
	return fmt.Sprintf("%s to roll, turn %d (%s)", g.names[g.current], g.turnTotal, b.String())
}
