// Package wordguess implements a letter-guessing word game with a limited
// number of misses.
package wordguess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/casualarcade/arcade/engine"
)

const title = "wordguess"

// MaxMisses is the number of wrong letters that ends the game.
const MaxMisses = 6

// normalize upper-cases with English rules. A Caser is stateful, so each
// call builds its own.
func normalize(s string) string { return cases.Upper(language.English).String(s) }

// Game is one secret word.
type Game struct {
	secret     []rune
	guessed    map[rune]bool
	order      []rune
	misses     int
	outcome    engine.Outcome
	difficulty engine.Difficulty
	seed       uint64
	rng        *engine.Rand
}

func New(seed uint64, d engine.Difficulty) *Game {
	g := &Game{seed: seed, difficulty: d, rng: engine.NewRand(seed)}
	g.Reset()
	return g
}

// Reset picks a fresh word. Successive resets walk through the seeded sequence.
func (g *Game) Reset() {
	words := lists[g.difficulty]
	g.start(words[g.rng.Intn(len(words))])
}

// SetWord starts over with a chosen secret.
func (g *Game) SetWord(word string) error {
	w := normalize(strings.TrimSpace(word))
	if w == "" {
		return engine.Reject(title, "set word", fmt.Errorf("%w: empty word", engine.ErrInvalidArgument))
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return engine.Reject(title, "set word", fmt.Errorf("%w: %q is not a letter", engine.ErrInvalidArgument, r))
		}
	}
	g.start(w)
	return nil
}

func (g *Game) start(w string) {
	g.secret = []rune(w)
	g.guessed = map[rune]bool{}
	g.order = nil
	g.misses = 0
	g.outcome = engine.InProgress
}

func (g *Game) SetDifficulty(d engine.Difficulty) {
	g.difficulty = d
	g.Reset()
}

func (g *Game) Title() string                 { return title }
func (g *Game) Difficulty() engine.Difficulty { return g.difficulty }
func (g *Game) Misses() int                   { return g.misses }
func (g *Game) MissesLeft() int               { return MaxMisses - g.misses }
func (g *Game) Outcome() engine.Outcome       { return g.outcome }
func (g *Game) IsOver() bool                  { return g.outcome != engine.InProgress }

// Guessed lists the letters tried so far in order.
func (g *Game) Guessed() []rune { return append([]rune(nil), g.order...) }

// Secret is only revealed once the game ends.
func (g *Game) Secret() (string, bool) {
	if !g.IsOver() {
		return "", false
	}
	return string(g.secret), true
}

// Pattern shows revealed letters and underscores, separated by spaces.
func (g *Game) Pattern() string {
	var b strings.Builder
	for i, r := range g.secret {
		if i > 0 {
			b.WriteByte(' ')
		}
		if g.guessed[r] {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// GuessLetter tries one letter, case-insensitively. It reports whether the
// letter is in the word.
func (g *Game) GuessLetter(r rune) (bool, error) {
	if g.IsOver() {
		return false, engine.Reject(title, "guess", engine.ErrGameOver)
	}
	if !unicode.IsLetter(r) {
		return false, engine.Reject(title, "guess", fmt.Errorf("%w: %q is not a letter", engine.ErrInvalidArgument, r))
	}
	u := []rune(normalize(string(r)))
	if len(u) != 1 {
		return false, engine.Reject(title, "guess", fmt.Errorf("%w: %q", engine.ErrInvalidArgument, r))
	}
	r = u[0]
	if g.guessed[r] {
		return false, engine.Reject(title, "guess", fmt.Errorf("%w: %c already guessed", engine.ErrIllegalMove, r))
	}
	g.guessed[r] = true
	g.order = append(g.order, r)

	hit := false
	for _, s := range g.secret {
		if s == r {
			hit = true
			break
		}
	}
	if !hit {
		g.misses++
	}
	g.classify()
	return hit, nil
}

func (g *Game) classify() {
	if g.misses >= MaxMisses {
		g.outcome = engine.WinSideTwo
	} else if g.solved() {
		g.outcome = engine.WinSideOne
	}
	if g.IsOver() {
		engine.Log().WithFields(logrus.Fields{"game": title, "word": string(g.secret), "misses": g.misses}).Debug("round over")
	}
}

func (g *Game) solved() bool {
	for _, r := range g.secret {
		if !g.guessed[r] {
			return false
		}
	}
	return true
}

// AIToMove is false: guessing is the player's job. PerformAIMove is a hint
// solver that guesses the most common unguessed letter among the words
// still consistent with the board.
func (g *Game) AIToMove() bool { return false }

func (g *Game) PerformAIMove() bool {
	if g.IsOver() {
		return false
	}
	r, ok := g.Hint()
	if !ok {
		return false
	}
	_, err := g.GuessLetter(r)
	return err == nil
}

// Hint suggests the next letter.
func (g *Game) Hint() (rune, bool) {
	counts := map[rune]int{}
	for _, w := range g.candidates() {
		seen := map[rune]bool{}
		for _, r := range w {
			if !g.guessed[r] && !seen[r] {
				seen[r] = true
				counts[r]++
			}
		}
	}
	// Fall back to English frequency order when no listed word fits.
	const freq = "ETAOINSHRDLCUMWFGYPBVKJXQZ"
	best, bestN := rune(0), 0
	for _, r := range freq {
		if g.guessed[r] {
			continue
		}
		if best == 0 || counts[r] > bestN {
			best, bestN = r, counts[r]
		}
	}
	return best, best != 0
}

func (g *Game) candidates() []string {
	var out []string
	for _, list := range lists {
		for _, w := range list {
			if g.fits([]rune(w)) {
				out = append(out, w)
			}
		}
	}
	return out
}

func (g *Game) fits(w []rune) bool {
	if len(w) != len(g.secret) {
		return false
	}
	for i, r := range w {
		s := g.secret[i]
		if g.guessed[s] && r != s {
			return false
		}
		// A hidden cell cannot hold a letter that was already tried.
		if !g.guessed[s] && g.guessed[r] {
			return false
		}
	}
	return true
}

func (g *Game) Status() string {
	switch g.outcome {
	case engine.WinSideOne:
		return "You got it: " + string(g.secret)
	case engine.WinSideTwo:
		return "Out of guesses. The word was " + string(g.secret)
	}
	return fmt.Sprintf("%s  (%d misses left)", g.Pattern(), g.MissesLeft())
}
