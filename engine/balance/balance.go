// Package balance implements the balance-beam duel: players take turns
// hanging weights on a beam, and whoever tips it past the limit loses.
package balance

import (
	"fmt"

	"github.com/casualarcade/arcade/engine"
)

const title = "balance"

// Beam geometry and limits.
const (
	MinPos    = -4
	MaxPos    = 4
	Positions = MaxPos - MinPos + 1
	TipLimit  = 15
)

// Weights is the set each side starts with.
var Weights = [...]int{1, 2, 3, 4, 5}

// Placement hangs Weight at Pos (never the fulcrum).
type Placement struct {
	Pos    int
	Weight int
}

// ResultKind separates a tipped beam from one that survived every placement.
type ResultKind uint8

const (
	Pending ResultKind = iota
	Tipped
	Stable
)

// RoundResult is the closed outcome of a round. Loser is set only when Tipped.
type RoundResult struct {
	Kind   ResultKind
	Loser  engine.Side
	Torque int
}

// Beam is the board: weight per position plus each side's unused weights.
type Beam struct {
	slots [Positions]int
	owner [Positions]engine.Side
	left  [2][]int
}

func newBeam() Beam {
	var b Beam
	for s := range b.left {
		b.left[s] = append([]int(nil), Weights[:]...)
	}
	return b
}

func slot(pos int) int { return pos - MinPos }

// At returns the weight at pos and who placed it.
func (b *Beam) At(pos int) (int, engine.Side) { return b.slots[slot(pos)], b.owner[slot(pos)] }

// Remaining lists side's unused weights.
func (b *Beam) Remaining(side engine.Side) []int {
	return append([]int(nil), b.left[side-1]...)
}

// Torque is the sum of weight times position.
func (b *Beam) Torque() int {
	t := 0
	for i, w := range b.slots {
		t += w * (i + MinPos)
	}
	return t
}

// Legal lists side's placements: each unused weight on each empty non-zero position.
func (b *Beam) Legal(side engine.Side) []Placement {
	var out []Placement
	seen := map[int]bool{}
	for _, w := range b.left[side-1] {
		if seen[w] {
			continue
		}
		seen[w] = true
		for pos := MinPos; pos <= MaxPos; pos++ {
			if pos != 0 && b.slots[slot(pos)] == 0 {
				out = append(out, Placement{Pos: pos, Weight: w})
			}
		}
	}
	return out
}

// Apply returns the beam after side places p. The receiver is unchanged.
func (b Beam) Apply(side engine.Side, p Placement) Beam {
	next := b
	next.left[side-1] = nil
	removed := false
	for _, w := range b.left[side-1] {
		if w == p.Weight && !removed {
			removed = true
			continue
		}
		next.left[side-1] = append(next.left[side-1], w)
	}
	next.left[2-side] = append([]int(nil), b.left[2-side]...)
	next.slots[slot(p.Pos)] = p.Weight
	next.owner[slot(p.Pos)] = side
	return next
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Game is a round of the balance duel. The human is SideOne and places first.
type Game struct {
	beam       Beam
	turn       engine.Side
	result     RoundResult
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
	g.beam = newBeam()
	g.turn = engine.SideOne
	g.result = RoundResult{}
	g.outcome = engine.InProgress
	g.rng = engine.NewRand(g.seed)
}

func (g *Game) SetDifficulty(d engine.Difficulty) {
	g.difficulty = d
	g.Reset()
}

func (g *Game) Title() string                 { return title }
func (g *Game) Difficulty() engine.Difficulty { return g.difficulty }
func (g *Game) Beam() Beam                    { return g.beam }
func (g *Game) Turn() engine.Side             { return g.turn }
func (g *Game) Result() RoundResult           { return g.result }
func (g *Game) Outcome() engine.Outcome       { return g.outcome }
func (g *Game) IsOver() bool                  { return g.outcome != engine.InProgress }
func (g *Game) Torque() int                   { return g.beam.Torque() }

// LegalPlacements is empty once the round is over.
func (g *Game) LegalPlacements() []Placement {
	if g.IsOver() {
		return nil
	}
	return g.beam.Legal(g.turn)
}

// Place hangs weight at pos for the side to move.
func (g *Game) Place(pos, weight int) (engine.TurnResult, error) {
	if g.IsOver() {
		return engine.TurnGameOver, engine.Reject(title, "place", engine.ErrGameOver)
	}
	p := Placement{Pos: pos, Weight: weight}
	legal := false
	for _, q := range g.beam.Legal(g.turn) {
		if q == p {
			legal = true
			break
		}
	}
	if !legal {
		return engine.TurnSwitch, engine.Reject(title, "place", fmt.Errorf("%w: weight %d at %d", engine.ErrIllegalMove, weight, pos))
	}
	g.beam = g.beam.Apply(g.turn, p)
	torque := g.beam.Torque()
	switch {
	case abs(torque) > TipLimit:
		g.result = RoundResult{Kind: Tipped, Loser: g.turn, Torque: torque}
		g.outcome = engine.WinFor(g.turn.Opponent())
		return engine.TurnGameOver, nil
	case len(g.beam.Legal(g.turn.Opponent())) == 0 && len(g.beam.Legal(g.turn)) == 0:
		g.result = RoundResult{Kind: Stable, Torque: torque}
		g.outcome = engine.Draw
		return engine.TurnGameOver, nil
	}
	if len(g.beam.Legal(g.turn.Opponent())) > 0 {
		g.turn = g.turn.Opponent()
	}
	return engine.TurnSwitch, nil
}

func (g *Game) AIToMove() bool { return !g.IsOver() && g.turn == engine.SideTwo }

func (g *Game) PerformAIMove() bool {
	if g.IsOver() {
		return false
	}
	p, ok := ChoosePlacement(g.beam, g.turn, g.difficulty, g.rng)
	if !ok {
		return false
	}
	_, err := g.Place(p.Pos, p.Weight)
	return err == nil
}

func (g *Game) Status() string {
	switch g.result.Kind {
	case Tipped:
		if g.result.Loser == engine.SideOne {
			return fmt.Sprintf("You tipped the beam (torque %d)", g.result.Torque)
		}
		return fmt.Sprintf("Computer tipped the beam (torque %d)", g.result.Torque)
	case Stable:
		return fmt.Sprintf("Beam held at torque %d: draw", g.result.Torque)
	}
	if g.turn == engine.SideOne {
		return fmt.Sprintf("Your placement, torque %d", g.beam.Torque())
	}
	return fmt.Sprintf("Computer placing, torque %d", g.beam.Torque())
}
