// Package snake implements the classic snake on a walled grid, driven by
// elapsed time through Tick.
package snake

import (
	"fmt"
	"time"

	"github.com/casualarcade/arcade/engine"
)

const title = "snake"

// Board and scoring constants.
const (
	Width     = 20
	Height    = 20
	StartLen  = 3
	FoodScore = 10
)

// StepInterval is how long the snake takes to move one cell.
func StepInterval(d engine.Difficulty) time.Duration {
	switch d {
	case engine.Easy:
		return 200 * time.Millisecond
	case engine.Hard:
		return 90 * time.Millisecond
	}
	return 150 * time.Millisecond
}

// Point is a grid cell; Y grows downward.
type Point struct{ X, Y int }

// Direction of travel.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

var deltas = [...]Point{Up: {0, -1}, Right: {1, 0}, Down: {0, 1}, Left: {-1, 0}}

func (d Direction) opposite() Direction { return (d + 2) % 4 }

func (p Point) add(d Direction) Point { return Point{p.X + deltas[d].X, p.Y + deltas[d].Y} }

func inside(p Point) bool { return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height }

// Game is one run of snake.
type Game struct {
	body       []Point // head first
	heading    Direction
	pending    Direction
	food       Point
	score      int
	acc        time.Duration
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

// Reset puts a three-cell snake in the centre heading right.
func (g *Game) Reset() {
	g.rng = engine.NewRand(g.seed)
	cx, cy := Width/2, Height/2
	g.body = g.body[:0]
	for i := 0; i < StartLen; i++ {
		g.body = append(g.body, Point{cx - i, cy})
	}
	g.heading, g.pending = Right, Right
	g.score = 0
	g.acc = 0
	g.outcome = engine.InProgress
	g.spawnFood()
}

func (g *Game) SetDifficulty(d engine.Difficulty) {
	g.difficulty = d
	g.Reset()
}

func (g *Game) Title() string                 { return title }
func (g *Game) Difficulty() engine.Difficulty { return g.difficulty }
func (g *Game) Score() int                    { return g.score }
func (g *Game) Food() Point                   { return g.food }
func (g *Game) Head() Point                   { return g.body[0] }
func (g *Game) Len() int                      { return len(g.body) }
func (g *Game) Heading() Direction            { return g.heading }
func (g *Game) Outcome() engine.Outcome       { return g.outcome }
func (g *Game) IsOver() bool                  { return g.outcome != engine.InProgress }

// Body returns the snake's cells, head first.
func (g *Game) Body() []Point { return append([]Point(nil), g.body...) }

func (g *Game) occupied(p Point) bool {
	for _, b := range g.body {
		if b == p {
			return true
		}
	}
	return false
}

// spawnFood drops food on a random empty cell. A full board wins the game.
func (g *Game) spawnFood() {
	var free []Point
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if p := (Point{x, y}); !g.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.outcome = engine.WinSideOne
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// SetDirection queues a turn for the next step. Reversing onto the neck is rejected.
func (g *Game) SetDirection(d Direction) error {
	if g.IsOver() {
		return engine.Reject(title, "turn", engine.ErrGameOver)
	}
	if d > Left {
		return engine.Reject(title, "turn", fmt.Errorf("%w: direction %d", engine.ErrInvalidArgument, d))
	}
	if d == g.heading.opposite() {
		return engine.Reject(title, "turn", fmt.Errorf("%w: cannot reverse", engine.ErrIllegalMove))
	}
	g.pending = d
	return nil
}

// Tick advances the clock by dt and moves the snake one cell per elapsed
// interval. It returns the number of steps taken.
func (g *Game) Tick(dt time.Duration) int {
	if g.IsOver() || dt <= 0 {
		return 0
	}
	g.acc += dt
	step := StepInterval(g.difficulty)
	n := 0
	for g.acc >= step && !g.IsOver() {
		g.acc -= step
		g.step()
		n++
	}
	return n
}

func (g *Game) step() {
	g.heading = g.pending
	head := g.body[0].add(g.heading)
	eating := head == g.food
	// The tail moves out of the way unless the snake is growing.
	body := g.body
	if !eating {
		body = body[:len(body)-1]
	}
	if !inside(head) {
		g.outcome = engine.WinSideTwo
		return
	}
	for _, b := range body {
		if b == head {
			g.outcome = engine.WinSideTwo
			return
		}
	}
	g.body = append([]Point{head}, body...)
	if eating {
		g.score += FoodScore
		g.spawnFood()
	}
}

// AIToMove is false: the player steers. PerformAIMove is an autopilot used
// for demos.
func (g *Game) AIToMove() bool { return false }

// PerformAIMove steers toward the food without dying when it can and takes one step.
func (g *Game) PerformAIMove() bool {
	if g.IsOver() {
		return false
	}
	g.pending = g.autopilot()
	g.step()
	return true
}

func (g *Game) autopilot() Direction {
	head := g.body[0]
	best, bestDist := g.heading, -1
	for d := Up; d <= Left; d++ {
		if d == g.heading.opposite() {
			continue
		}
		next := head.add(d)
		if !inside(next) || g.occupied(next) && next != g.body[len(g.body)-1] {
			continue
		}
		dist := abs(next.X-g.food.X) + abs(next.Y-g.food.Y)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (g *Game) Status() string {
	switch g.outcome {
	case engine.WinSideOne:
		return fmt.Sprintf("Board filled! Score %d", g.score)
	case engine.WinSideTwo:
		return fmt.Sprintf("Crashed. Score %d", g.score)
	}
	return fmt.Sprintf("Score %d", g.score)
}
