// Package engine holds the pieces shared by every arcade rules engine:
// difficulty tiers, a seedable random source, playing cards, sentinel
// errors and turn bookkeeping.
//
// Each title lives in its own subpackage (engine/chess, engine/rummy, ...)
// and owns its state exclusively. Engines are synchronous and never block;
// a host drives them by calling actions and reading views afterwards.
package engine

// Side identifies one of two opponents in a two-sided game.
// Multi-seat games (hold'em, president, dice) use plain seat indices instead.
type Side uint8

const (
	SideNone Side = iota
	SideOne
	SideTwo
)

// Opponent returns the other side. SideNone maps to itself.
func (s Side) Opponent() Side {
	switch s {
	case SideOne:
		return SideTwo
	case SideTwo:
		return SideOne
	}
	return SideNone
}

// TurnResult is the state-machine outcome of applying one move.
type TurnResult uint8

const (
	TurnSwitch TurnResult = iota
	TurnContinue // same side moves again (multi-jump, completed box)
	TurnRoundOver
	TurnGameOver
)

func (r TurnResult) String() string {
	switch r {
	case TurnSwitch:
		return "switch"
	case TurnContinue:
		return "continue"
	case TurnRoundOver:
		return "round_over"
	case TurnGameOver:
		return "game_over"
	}
	return "unknown"
}

// Outcome is the terminal result of a two-sided game.
type Outcome uint8

const (
	InProgress Outcome = iota
	WinSideOne
	WinSideTwo
	Draw
)

// Winner returns the winning side, or SideNone for a draw or unfinished game.
func (o Outcome) Winner() Side {
	switch o {
	case WinSideOne:
		return SideOne
	case WinSideTwo:
		return SideTwo
	}
	return SideNone
}

// WinFor returns the outcome in which s has won.
func WinFor(s Side) Outcome {
	if s == SideOne {
		return WinSideOne
	}
	return WinSideTwo
}

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case WinSideOne:
		return "win_side_one"
	case WinSideTwo:
		return "win_side_two"
	case Draw:
		return "draw"
	}
	return "unknown"
}
