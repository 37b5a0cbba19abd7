package arcade

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casualarcade/arcade/engine"
	"github.com/casualarcade/arcade/engine/tictactoe"
)

// recorder captures session events for assertions.
type recorder struct {
	mu     sync.Mutex
	events []Event
	ch     chan Event
}

func newRecorder() *recorder { return &recorder{ch: make(chan Event, 64)} }

func (r *recorder) OnEvent(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	r.ch <- ev
}

func (r *recorder) types() []EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

// waitFor blocks until an event of type t arrives.
func (r *recorder) waitFor(t *testing.T, want EventType) Event {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-r.ch:
			if ev.Type == want {
				return ev
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func quietLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func TestDoRejectedLeavesState(t *testing.T) {
	f := &fakeGame{limit: 10}
	s := NewSession(f, -1, quietLogger())
	rec := newRecorder()
	s.Subscribe(rec)

	err := s.Do(func(g Game) error { return g.(*fakeGame).human(false) })
	assert.ErrorIs(t, err, errFake)
	assert.Equal(t, []EventType{EventRejected}, rec.types())
	assert.Zero(t, f.moves)
}

func TestDoThenStepAI(t *testing.T) {
	f := &fakeGame{limit: 10}
	s := NewSession(f, -1, quietLogger())
	rec := newRecorder()
	s.Subscribe(rec)

	require.NoError(t, s.Do(func(g Game) error { return g.(*fakeGame).human(true) }))
	assert.ErrorIs(t, s.Do(func(g Game) error { return g.(*fakeGame).human(true) }), engine.ErrNotYourTurn)
	assert.True(t, s.StepAI())
	assert.False(t, s.StepAI())
	assert.Equal(t, []EventType{EventAction, EventRejected, EventAIMove}, rec.types())
	assert.Equal(t, "moves 2", s.Status())
}

func TestScheduledAIRunsAfterDelay(t *testing.T) {
	f := &fakeGame{limit: 10, aiStreak: 2}
	s := NewSession(f, time.Millisecond, quietLogger())
	rec := newRecorder()
	s.Subscribe(rec)

	require.NoError(t, s.Do(func(g Game) error { return g.(*fakeGame).human(true) }))
	// Three AI moves in a row are each scheduled separately.
	for i := 0; i < 3; i++ {
		rec.waitFor(t, EventAIMove)
	}
	s.View(func(g Game) {
		assert.Equal(t, 3, g.(*fakeGame).aiMoves)
		assert.False(t, g.AIToMove())
	})
}

func TestResetCancelsPendingAI(t *testing.T) {
	f := &fakeGame{limit: 10}
	s := NewSession(f, -1, quietLogger())
	require.NoError(t, s.Do(func(g Game) error { return g.(*fakeGame).human(true) }))
	require.True(t, s.ScheduleAI(time.Hour))
	require.NoError(t, s.Reset())
	s.View(func(g Game) {
		assert.Equal(t, 1, g.(*fakeGame).resets)
		assert.Nil(t, s.aiTimer)
	})
	require.NoError(t, s.SetDifficulty(engine.Hard))
	assert.Equal(t, engine.Hard, f.diff)
	assert.False(t, s.ScheduleAI(0), "human to move after reset")
}

func TestGameEndNotifiesOnce(t *testing.T) {
	f := &fakeGame{limit: 2}
	s := NewSession(f, -1, quietLogger())
	var ends []engine.Outcome
	s.onEnd = func(_ uuid.UUID, title string, o engine.Outcome, _ string) {
		assert.Equal(t, "fake", title)
		ends = append(ends, o)
	}
	rec := newRecorder()
	s.Subscribe(rec)

	require.NoError(t, s.Do(func(g Game) error { return g.(*fakeGame).human(true) }))
	require.True(t, s.StepAI())
	assert.Equal(t, []engine.Outcome{engine.Draw}, ends)
	assert.Equal(t, EventGameEnd, rec.types()[len(rec.types())-1])
	assert.False(t, s.ScheduleAI(0))
}

func TestClosedSession(t *testing.T) {
	s := NewSession(&fakeGame{limit: 4}, -1, quietLogger())
	s.Close()
	assert.ErrorIs(t, s.Do(func(Game) error { return nil }), ErrSessionClosed)
	assert.ErrorIs(t, s.Reset(), ErrSessionClosed)
	assert.False(t, s.ScheduleAI(0))
	assert.False(t, s.StepAI())
}

func TestTicTacToeSessionPlaysAIReply(t *testing.T) {
	s := NewSession(tictactoe.New(3, engine.Hard), 0, quietLogger())
	rec := newRecorder()
	s.Subscribe(rec)

	require.NoError(t, s.Do(func(g Game) error { return g.(*tictactoe.Game).Play(0) }))
	ev := rec.waitFor(t, EventAIMove)
	assert.Equal(t, 2, ev.Index)
	s.View(func(g Game) { assert.False(t, g.AIToMove()) })
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := NewSession(&fakeGame{limit: 10}, -1, quietLogger())
	b := NewSession(&fakeGame{limit: 10}, -1, quietLogger())
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, uuid.Version(4), a.ID.Version())
}
