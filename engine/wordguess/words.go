package wordguess

import (
	_ "embed"
	"strings"
	"unicode/utf8"

	"github.com/casualarcade/arcade/engine"
)

//go:embed words.txt
var wordFile string

// Word length bands per difficulty.
const (
	easyMax   = 5
	normalMax = 7
)

var lists = buildLists(wordFile)

func buildLists(src string) map[engine.Difficulty][]string {
	out := map[engine.Difficulty][]string{}
	for _, line := range strings.Split(src, "\n") {
		w := strings.TrimSpace(line)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		w = normalize(w)
		band := bandOf(utf8.RuneCountInString(w))
		out[band] = append(out[band], w)
	}
	return out
}

func bandOf(n int) engine.Difficulty {
	switch {
	case n <= easyMax:
		return engine.Easy
	case n <= normalMax:
		return engine.Normal
	}
	return engine.Hard
}

// Words returns the candidate secret words for a difficulty, upper-cased.
func Words(d engine.Difficulty) []string {
	return append([]string(nil), lists[d]...)
}
