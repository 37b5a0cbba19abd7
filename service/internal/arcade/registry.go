// Package arcade hosts engine instances for a front end: it keeps a
// registry of titles, wraps each running game in a Session that serialises
// actions and paces AI turns, and runs AI self-play batches.
package arcade

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/casualarcade/arcade/engine"
	"github.com/casualarcade/arcade/engine/balance"
	"github.com/casualarcade/arcade/engine/battleship"
	"github.com/casualarcade/arcade/engine/blackjack"
	"github.com/casualarcade/arcade/engine/checkers"
	"github.com/casualarcade/arcade/engine/chess"
	"github.com/casualarcade/arcade/engine/connectfour"
	"github.com/casualarcade/arcade/engine/dice"
	"github.com/casualarcade/arcade/engine/dots"
	"github.com/casualarcade/arcade/engine/holdem"
	"github.com/casualarcade/arcade/engine/president"
	"github.com/casualarcade/arcade/engine/rummy"
	"github.com/casualarcade/arcade/engine/snake"
	"github.com/casualarcade/arcade/engine/sorter"
	"github.com/casualarcade/arcade/engine/takeover"
	"github.com/casualarcade/arcade/engine/tictactoe"
	"github.com/casualarcade/arcade/engine/wordguess"
)

// ErrUnknownGame is returned for a title that was never registered.
var ErrUnknownGame = errors.New("unknown game")

// Game is the surface every engine facade exposes to a host.
type Game interface {
	Title() string
	Reset()
	SetDifficulty(engine.Difficulty)
	IsOver() bool
	AIToMove() bool
	PerformAIMove() bool
	Status() string
}

// Outcomer is implemented by every engine here; hosts use it to report results.
type Outcomer interface {
	Outcome() engine.Outcome
}

// Factory builds a fresh game.
type Factory func(seed uint64, d engine.Difficulty) Game

// Kind groups titles for listing.
type Kind string

const (
	KindBoard  Kind = "board"
	KindCard   Kind = "card"
	KindArcade Kind = "arcade"
)

// Entry describes one registered title. SelfPlay marks titles whose
// PerformAIMove plays for whichever side is to move, so a game can be
// driven AI against AI.
type Entry struct {
	Title    string
	Kind     Kind
	SelfPlay bool
	New      Factory
}

// Registry maps titles to factories. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds e, refusing duplicates.
func (r *Registry) Register(e Entry) error {
	if e.Title == "" || e.New == nil {
		return fmt.Errorf("%w: entry needs a title and a factory", engine.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[e.Title]; ok {
		return fmt.Errorf("%w: %q already registered", engine.ErrInvalidArgument, e.Title)
	}
	r.entries[e.Title] = e
	return nil
}

// Lookup returns the entry for title.
func (r *Registry) Lookup(title string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[title]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownGame, title)
	}
	return e, nil
}

// New builds a game of the given title.
func (r *Registry) New(title string, seed uint64, d engine.Difficulty) (Game, error) {
	e, err := r.Lookup(title)
	if err != nil {
		return nil, err
	}
	return e.New(seed, d), nil
}

// Entries lists every registration sorted by kind then title.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// Titles lists registered titles alphabetically.
func (r *Registry) Titles() []string {
	es := r.Entries()
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Title
	}
	sort.Strings(out)
	return out
}

// DefaultRegistry registers every engine in this module.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, e := range []Entry{
		{"tictactoe", KindBoard, true, func(s uint64, d engine.Difficulty) Game { return tictactoe.New(s, d) }},
		{"connectfour", KindBoard, true, func(s uint64, d engine.Difficulty) Game { return connectfour.New(s, d) }},
		{"takeover", KindBoard, true, func(s uint64, d engine.Difficulty) Game { return takeover.New(s, d) }},
		{"dots", KindBoard, true, func(s uint64, d engine.Difficulty) Game { return dots.New(s, d) }},
		{"checkers", KindBoard, true, func(s uint64, d engine.Difficulty) Game { return checkers.New(s, d) }},
		{"chess", KindBoard, true, func(s uint64, d engine.Difficulty) Game { return chess.New(s, d) }},
		{"balance", KindBoard, true, func(s uint64, d engine.Difficulty) Game { return balance.New(s, d) }},
		{"battleship", KindBoard, true, func(s uint64, d engine.Difficulty) Game { return battleship.New(s, d) }},
		{"rummy", KindCard, false, func(s uint64, d engine.Difficulty) Game { return rummy.New(s, d) }},
		{"holdem", KindCard, false, func(s uint64, d engine.Difficulty) Game { return holdem.New(s, d) }},
		{"president", KindCard, false, func(s uint64, d engine.Difficulty) Game { return president.New(s, d) }},
		{"blackjack", KindCard, false, func(s uint64, d engine.Difficulty) Game { return blackjack.New(s, d) }},
		{"dice", KindArcade, false, func(s uint64, d engine.Difficulty) Game { return dice.New(s, d) }},
		{"snake", KindArcade, false, func(s uint64, d engine.Difficulty) Game { return snake.New(s, d) }},
		{"wordguess", KindArcade, false, func(s uint64, d engine.Difficulty) Game { return wordguess.New(s, d) }},
		{"sorter", KindArcade, false, func(s uint64, d engine.Difficulty) Game { return sorter.New(s, d) }},
	} {
		if err := r.Register(e); err != nil {
			panic(err)
		}
	}
	return r
}
