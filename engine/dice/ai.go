package dice

import "github.com/casualarcade/arcade/engine"

// Hold thresholds.
const (
	EasyHold    = 15
	NormalHold  = 20
	hardFloor   = 15
	hardBase    = 21
	endgameZone = 20
)

// ShouldHold decides whether seat should bank turn now. A zero turn total
// always rolls.
func ShouldHold(scores []int, seat, turn int, d engine.Difficulty, r *engine.Rand) bool {
	if turn == 0 {
		return false
	}
	switch d {
	case engine.Easy:
		return turn >= EasyHold || r.Chance(0.1)
	case engine.Normal:
		return turn >= NormalHold
	}

	mine := scores[seat]
	if mine+turn >= Target {
		return true
	}
	leader := 0
	for i, s := range scores {
		if i != seat && s > leader {
			leader = s
		}
	}
	if leader >= Target-endgameZone {
		return false
	}
	return turn >= max(hardFloor, hardBase+(leader-mine)/8)
}
