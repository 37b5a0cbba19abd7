package engine

import (
	"fmt"
	"strings"
)

// Difficulty selects which opponent policy runs. It never changes the rules.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Normal
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", uint8(d))
}

// ParseDifficulty accepts "easy", "normal" or "hard" in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "normal", "medium":
		return Normal, nil
	case "hard":
		return Hard, nil
	}
	return Normal, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidArgument, s)
}
