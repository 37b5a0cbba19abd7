package battleship

import (
	"github.com/casualarcade/arcade/engine"
)

var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// ChooseTarget picks the next cell to fire at from the attacker's view: the
// shots so far and which cells belong to sunk ships. Hits on ships not yet
// sunk are "unresolved" and drive the target mode.
func ChooseTarget(shots [Cells]Shot, sunk [Cells]bool, d engine.Difficulty, r *engine.Rand) (int, bool) {
	var open []int
	for c, s := range shots {
		if s == Unknown {
			open = append(open, c)
		}
	}
	if len(open) == 0 {
		return -1, false
	}
	if d == engine.Easy {
		return open[r.Intn(len(open))], true
	}

	unresolved := func(c int) bool { return shots[c] == Hit && !sunk[c] }

	if d == engine.Hard {
		if line := lineExtensions(shots, unresolved); len(line) > 0 {
			return line[r.Intn(len(line))], true
		}
	}

	var probe []int
	seen := map[int]bool{}
	for c := range shots {
		if !unresolved(c) {
			continue
		}
		row, col := c/Size, c%Size
		for _, o := range orthogonal {
			nr, nc := row+o[0], col+o[1]
			if nr < 0 || nr >= Size || nc < 0 || nc >= Size {
				continue
			}
			n := nr*Size + nc
			if shots[n] == Unknown && !seen[n] {
				seen[n] = true
				probe = append(probe, n)
			}
		}
	}
	if len(probe) > 0 {
		return probe[r.Intn(len(probe))], true
	}

	// Hunt on a checkerboard: every ship of length two or more covers one.
	var parity []int
	for _, c := range open {
		if (c/Size+c%Size)%2 == 0 {
			parity = append(parity, c)
		}
	}
	if len(parity) > 0 {
		return parity[r.Intn(len(parity))], true
	}
	return open[r.Intn(len(open))], true
}

// lineExtensions finds runs of two or more adjacent unresolved hits in a row
// or column and returns the open cells just past either end.
func lineExtensions(shots [Cells]Shot, unresolved func(int) bool) []int {
	var out []int
	seen := map[int]bool{}
	add := func(r, c int) {
		if r < 0 || r >= Size || c < 0 || c >= Size {
			return
		}
		if n := r*Size + c; shots[n] == Unknown && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for c := range shots {
		if !unresolved(c) {
			continue
		}
		row, col := c/Size, c%Size
		// Walk only from the start of each run.
		if col+1 < Size && unresolved(c+1) && (col == 0 || !unresolved(c-1)) {
			end := col
			for end+1 < Size && unresolved(row*Size+end+1) {
				end++
			}
			add(row, col-1)
			add(row, end+1)
		}
		if row+1 < Size && unresolved(c+Size) && (row == 0 || !unresolved(c-Size)) {
			end := row
			for end+1 < Size && unresolved((end+1)*Size+col) {
				end++
			}
			add(row-1, col)
			add(end+1, col)
		}
	}
	return out
}
