package battleship

import (
	"fmt"

	"github.com/casualarcade/arcade/engine"
)

const title = "battleship"

// Game pits the human (SideOne, fires first) against the computer. Turns
// alternate after every shot, hit or miss.
type Game struct {
	fleets     [2]*Fleet // fleets[0] is the human's own fleet
	turn       engine.Side
	outcome    engine.Outcome
	last       AttackResult
	difficulty engine.Difficulty
	seed       uint64
	rng        *engine.Rand
}

func New(seed uint64, d engine.Difficulty) *Game {
	g := &Game{seed: seed, difficulty: d}
	g.Reset()
	return g
}

// Reset places both fleets at random.
func (g *Game) Reset() {
	g.rng = engine.NewRand(g.seed)
	g.fleets[0] = RandomFleet(g.rng)
	g.fleets[1] = RandomFleet(g.rng)
	g.turn = engine.SideOne
	g.outcome = engine.InProgress
	g.last = AttackResult{Cell: -1, Sunk: -1}
}

func (g *Game) SetDifficulty(d engine.Difficulty) {
	g.difficulty = d
	g.Reset()
}

// SetFleets replaces both fleets, for fixed layouts.
func (g *Game) SetFleets(human, computer *Fleet) {
	g.fleets = [2]*Fleet{human, computer}
	g.turn = engine.SideOne
	g.outcome = engine.InProgress
}

func (g *Game) Title() string                 { return title }
func (g *Game) Difficulty() engine.Difficulty { return g.difficulty }
func (g *Game) Turn() engine.Side             { return g.turn }
func (g *Game) Outcome() engine.Outcome       { return g.outcome }
func (g *Game) IsOver() bool                  { return g.outcome != engine.InProgress }
func (g *Game) LastShot() AttackResult        { return g.last }

// Fleet returns the fleet owned by side.
func (g *Game) Fleet(side engine.Side) *Fleet { return g.fleets[side-1] }

// Attack fires the human's shot at the computer's grid.
func (g *Game) Attack(cell int) (AttackResult, error) {
	if g.turn != engine.SideOne {
		return AttackResult{}, engine.Reject(title, "attack", engine.ErrNotYourTurn)
	}
	return g.fire(cell)
}

func (g *Game) fire(cell int) (AttackResult, error) {
	if g.IsOver() {
		return AttackResult{}, engine.Reject(title, "attack", engine.ErrGameOver)
	}
	target := g.fleets[2-g.turn] // the opponent's fleet
	res, err := target.Fire(cell)
	if err != nil {
		return res, engine.Reject(title, "attack", err)
	}
	g.last = res
	if target.AllSunk() {
		g.outcome = engine.WinFor(g.turn)
		return res, nil
	}
	g.turn = g.turn.Opponent()
	return res, nil
}

func (g *Game) AIToMove() bool { return !g.IsOver() && g.turn == engine.SideTwo }

// PerformAIMove fires the side to move's shot chosen by the gunner policy.
func (g *Game) PerformAIMove() bool {
	if g.IsOver() {
		return false
	}
	target := g.fleets[2-g.turn]
	cell, ok := ChooseTarget(target.Shots(), target.SunkCells(), g.difficulty, g.rng)
	if !ok {
		return false
	}
	_, err := g.fire(cell)
	return err == nil
}

func (g *Game) Status() string {
	switch g.outcome {
	case engine.WinSideOne:
		return "You sank the whole fleet"
	case engine.WinSideTwo:
		return "Your fleet was sunk"
	}
	if g.last.Cell >= 0 {
		what := "miss"
		if g.last.Hit {
			what = "hit"
		}
		if g.last.Sunk >= 0 {
			what = fmt.Sprintf("sunk a %d", len(g.fleets[g.turn-1].ships[g.last.Sunk].Cells))
		}
		if g.turn == engine.SideOne {
			return "Computer " + what + "; your shot"
		}
		return "You " + what + "; computer's shot"
	}
	return "Your shot"
}
