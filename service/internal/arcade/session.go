package arcade

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/casualarcade/arcade/engine"
)

// ErrSessionClosed is returned for actions on a closed session.
var ErrSessionClosed = errors.New("session closed")

// EventType names what happened in a session.
type EventType string

const (
	EventAction   EventType = "action"   // a human action was applied
	EventRejected EventType = "rejected" // a human action was refused; state unchanged
	EventAIMove   EventType = "ai_move"  // the AI took a turn
	EventReset    EventType = "reset"    // the game was reset or its difficulty changed
	EventGameEnd  EventType = "game_end" // the game reached a terminal state
)

// Event is delivered to listeners after every state change.
type Event struct {
	Type    EventType
	Session uuid.UUID
	Title   string
	Index   int // sequential action index within the session
	Status  string
	Outcome engine.Outcome
	Err     error
}

// Listener observes a session. Events are delivered with the session lock
// held, so a listener must not call back into the same session.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(ev Event) { f(ev) }

// OnGameEndFunc is called once when a session's game finishes.
type OnGameEndFunc func(id uuid.UUID, title string, outcome engine.Outcome, status string)

// Session owns one running game. All access goes through its mutex.
type Session struct {
	ID    uuid.UUID
	Title string

	mu          sync.Mutex
	game        Game
	listeners   []Listener
	aiDelay     time.Duration
	aiTimer     *time.Timer
	turnID      int // bumped on every state change; stale timers compare against it
	actionIndex int
	ended       bool
	closed      bool
	onEnd       OnGameEndFunc
	log         logrus.FieldLogger
}

// NewSession wraps g. aiDelay is the pause before each automatic AI move;
// a negative delay disables automatic AI scheduling.
func NewSession(g Game, aiDelay time.Duration, log logrus.FieldLogger) *Session {
	id := uuid.New()
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{
		ID:      id,
		Title:   g.Title(),
		game:    g,
		aiDelay: aiDelay,
		log:     log.WithFields(logrus.Fields{"session": id, "game": g.Title()}),
	}
}

// Subscribe registers l for future events.
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Do applies a human action. If fn returns an error the game is assumed
// unchanged, listeners see EventRejected and the error is returned.
// Otherwise listeners see EventAction and, when the AI is now to move, an
// AI turn is scheduled after the session's delay.
func (s *Session) Do(fn func(Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if err := fn(s.game); err != nil {
		s.log.WithError(err).Debug("action rejected")
		s.fireLocked(EventRejected, err)
		return err
	}
	s.changedLocked(EventAction)
	if s.aiDelay >= 0 {
		s.scheduleAILocked(s.aiDelay)
	}
	return nil
}

// View runs fn with the game under the session lock. fn must not mutate it.
func (s *Session) View(fn func(Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Status returns the game's status line.
func (s *Session) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Status()
}

// Reset restarts the game, cancelling any pending AI turn.
func (s *Session) Reset() error {
	return s.restart(func(g Game) { g.Reset() })
}

// SetDifficulty changes the difficulty, which also resets the game.
func (s *Session) SetDifficulty(d engine.Difficulty) error {
	return s.restart(func(g Game) { g.SetDifficulty(d) })
}

func (s *Session) restart(fn func(Game)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.stopTimerLocked()
	fn(s.game)
	s.ended = false
	s.changedLocked(EventReset)
	if s.aiDelay >= 0 {
		s.scheduleAILocked(s.aiDelay)
	}
	return nil
}

// ScheduleAI arms the AI timer. When it fires, and nothing else has changed
// the game meanwhile, the AI takes one turn; if the AI is still to move
// afterwards another turn is scheduled with the same delay.
// It reports whether a timer was armed.
func (s *Session) ScheduleAI(delay time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	return s.scheduleAILocked(delay)
}

func (s *Session) scheduleAILocked(delay time.Duration) bool {
	s.stopTimerLocked()
	if s.ended || !s.game.AIToMove() {
		return false
	}
	if delay < 0 {
		delay = 0
	}
	expected := s.turnID
	s.aiTimer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || s.turnID != expected {
			return
		}
		s.aiTimer = nil
		s.aiTurnLocked(delay)
	})
	return true
}

func (s *Session) aiTurnLocked(delay time.Duration) {
	if !s.game.AIToMove() {
		return
	}
	if !s.game.PerformAIMove() {
		s.log.Warn("ai had no move")
		return
	}
	s.changedLocked(EventAIMove)
	s.scheduleAILocked(delay)
}

// StepAI performs one AI turn right away, for hosts that pace turns
// themselves. It reports whether the AI moved.
func (s *Session) StepAI() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.game.AIToMove() {
		return false
	}
	s.stopTimerLocked()
	if !s.game.PerformAIMove() {
		return false
	}
	s.changedLocked(EventAIMove)
	return true
}

// Close stops the AI timer; later actions return ErrSessionClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	s.closed = true
}

func (s *Session) stopTimerLocked() {
	if s.aiTimer != nil {
		s.aiTimer.Stop()
		s.aiTimer = nil
	}
}

func (s *Session) changedLocked(t EventType) {
	s.turnID++
	s.actionIndex++
	if t == EventAIMove {
		s.log.WithField("index", s.actionIndex).Debug("ai move")
	}
	s.fireLocked(t, nil)
	s.checkEndLocked()
}

func (s *Session) checkEndLocked() {
	if s.ended || !s.game.IsOver() {
		return
	}
	s.ended = true
	s.stopTimerLocked()
	outcome := outcomeOf(s.game)
	status := s.game.Status()
	s.log.WithFields(logrus.Fields{"outcome": outcome, "status": status}).Info("game over")
	s.fireLocked(EventGameEnd, nil)
	if s.onEnd != nil {
		s.onEnd(s.ID, s.Title, outcome, status)
	}
}

func (s *Session) fireLocked(t EventType, err error) {
	if len(s.listeners) == 0 {
		return
	}
	ev := Event{
		Type:    t,
		Session: s.ID,
		Title:   s.Title,
		Index:   s.actionIndex,
		Status:  s.game.Status(),
		Outcome: outcomeOf(s.game),
		Err:     err,
	}
	for _, l := range s.listeners {
		l.OnEvent(ev)
	}
}

func outcomeOf(g Game) engine.Outcome {
	if o, ok := g.(Outcomer); ok {
		return o.Outcome()
	}
	return engine.InProgress
}
