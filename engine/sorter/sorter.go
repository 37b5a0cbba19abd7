// Package sorter implements a falling-item sorting game: items drop down a
// chute and the player flicks each into the bin matching its category.
package sorter

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/casualarcade/arcade/engine"
)

const title = "sorter"

const (
	Categories   = 3
	Rows         = 10
	StartLives   = 3
	CorrectScore = 10
	FallInterval = 500 * time.Millisecond
)

// SpawnInterval is the time between new items.
func SpawnInterval(d engine.Difficulty) time.Duration {
	switch d {
	case engine.Easy:
		return 2 * time.Second
	case engine.Hard:
		return time.Second
	}
	return 1500 * time.Millisecond
}

// Item is one falling object. Row 0 is the top of the chute.
type Item struct {
	ID       int
	Category int
	Row      int
}

// Game is one run of the sorter.
type Game struct {
	items      []Item
	nextID     int
	score      int
	lives      int
	spawnAcc   time.Duration
	fallAcc    time.Duration
	difficulty engine.Difficulty
	seed       uint64
	rng        *engine.Rand
}

func New(seed uint64, d engine.Difficulty) *Game {
	g := &Game{seed: seed, difficulty: d}
	g.Reset()
	return g
}

// Reset empties the chute and drops the first item.
func (g *Game) Reset() {
	g.rng = engine.NewRand(g.seed)
	g.items = g.items[:0]
	g.nextID = 1
	g.score = 0
	g.lives = StartLives
	g.spawnAcc, g.fallAcc = 0, 0
	g.spawn()
}

func (g *Game) SetDifficulty(d engine.Difficulty) {
	g.difficulty = d
	g.Reset()
}

func (g *Game) Title() string                 { return title }
func (g *Game) Difficulty() engine.Difficulty { return g.difficulty }
func (g *Game) Score() int                    { return g.score }
func (g *Game) Lives() int                    { return g.lives }
func (g *Game) IsOver() bool                  { return g.lives <= 0 }

// Items returns the falling items, oldest first.
func (g *Game) Items() []Item { return append([]Item(nil), g.items...) }

// Outcome is a loss once lives run out; the run has no winning end.
func (g *Game) Outcome() engine.Outcome {
	if g.IsOver() {
		return engine.WinSideTwo
	}
	return engine.InProgress
}

func (g *Game) spawn() {
	g.items = append(g.items, Item{ID: g.nextID, Category: g.rng.Intn(Categories)})
	g.nextID++
}

// Tick advances the clock: items fall a row per FallInterval, new items
// spawn each SpawnInterval, and anything falling out of the chute costs a life.
func (g *Game) Tick(dt time.Duration) {
	if g.IsOver() || dt <= 0 {
		return
	}
	g.fallAcc += dt
	for g.fallAcc >= FallInterval && !g.IsOver() {
		g.fallAcc -= FallInterval
		g.fall()
	}
	g.spawnAcc += dt
	spawn := SpawnInterval(g.difficulty)
	for g.spawnAcc >= spawn && !g.IsOver() {
		g.spawnAcc -= spawn
		g.spawn()
	}
}

func (g *Game) fall() {
	kept := g.items[:0]
	for _, it := range g.items {
		it.Row++
		if it.Row >= Rows {
			g.loseLife("dropped")
			continue
		}
		kept = append(kept, it)
	}
	g.items = kept
}

func (g *Game) loseLife(why string) {
	if g.lives == 0 {
		return
	}
	g.lives--
	if g.lives <= 0 {
		engine.Log().WithFields(logrus.Fields{"game": title, "score": g.score, "cause": why}).Debug("game over")
	}
}

// SortItem flicks item id into bin. It reports whether the bin was right;
// a wrong bin costs a life. The item leaves the chute either way.
func (g *Game) SortItem(id, bin int) (bool, error) {
	if g.IsOver() {
		return false, engine.Reject(title, "sort", engine.ErrGameOver)
	}
	if bin < 0 || bin >= Categories {
		return false, engine.Reject(title, "sort", fmt.Errorf("%w: bin %d", engine.ErrInvalidArgument, bin))
	}
	i := g.index(id)
	if i < 0 {
		return false, engine.Reject(title, "sort", fmt.Errorf("%w: no item %d", engine.ErrInvalidArgument, id))
	}
	it := g.items[i]
	g.items = append(g.items[:i], g.items[i+1:]...)
	if it.Category == bin {
		g.score += CorrectScore
		return true, nil
	}
	g.loseLife("wrong bin")
	return false, nil
}

func (g *Game) index(id int) int {
	for i, it := range g.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// AIToMove is false; PerformAIMove is an autopilot that sorts the lowest
// item, sometimes into the wrong bin on easier settings.
func (g *Game) AIToMove() bool { return false }

func (g *Game) PerformAIMove() bool {
	if g.IsOver() || len(g.items) == 0 {
		return false
	}
	low := g.items[0]
	for _, it := range g.items[1:] {
		if it.Row > low.Row {
			low = it
		}
	}
	bin := low.Category
	if g.rng.Chance(mistakeRate(g.difficulty)) {
		bin = (bin + 1 + g.rng.Intn(Categories-1)) % Categories
	}
	_, err := g.SortItem(low.ID, bin)
	return err == nil
}

func mistakeRate(d engine.Difficulty) float64 {
	switch d {
	case engine.Easy:
		return 0.3
	case engine.Normal:
		return 0.1
	}
	return 0
}

func (g *Game) Status() string {
	if g.IsOver() {
		return fmt.Sprintf("Game over. Score %d", g.score)
	}
	return fmt.Sprintf("Score %d, lives %d", g.score, g.lives)
}
