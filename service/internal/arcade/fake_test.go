package arcade

import (
	"errors"
	"fmt"

	"github.com/casualarcade/arcade/engine"
)

var errFake = errors.New("fake rejection")

// fakeGame alternates human and AI turns and ends after limit moves.
type fakeGame struct {
	moves    int
	limit    int
	aiTurn   bool
	aiMoves  int
	resets   int
	diff     engine.Difficulty
	aiStreak int // extra AI moves in a row before handing back
	streak   int
}

func (f *fakeGame) Title() string { return "fake" }
func (f *fakeGame) Reset() {
	f.moves, f.aiMoves, f.aiTurn, f.streak = 0, 0, false, 0
	f.resets++
}
func (f *fakeGame) SetDifficulty(d engine.Difficulty) { f.diff = d; f.Reset() }
func (f *fakeGame) IsOver() bool                      { return f.limit > 0 && f.moves >= f.limit }
func (f *fakeGame) AIToMove() bool                    { return !f.IsOver() && f.aiTurn }
func (f *fakeGame) Status() string                    { return fmt.Sprintf("moves %d", f.moves) }

func (f *fakeGame) Outcome() engine.Outcome {
	if f.IsOver() {
		return engine.Draw
	}
	return engine.InProgress
}

func (f *fakeGame) human(ok bool) error {
	if !ok {
		return errFake
	}
	if f.aiTurn || f.IsOver() {
		return engine.ErrNotYourTurn
	}
	f.moves++
	f.aiTurn = true
	return nil
}

func (f *fakeGame) PerformAIMove() bool {
	if !f.AIToMove() {
		return false
	}
	f.moves++
	f.aiMoves++
	if f.streak < f.aiStreak {
		f.streak++
		return true
	}
	f.streak = 0
	f.aiTurn = false
	return true
}
