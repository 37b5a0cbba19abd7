package engine

import "errors"

// Sentinel errors returned by engine actions. A rejected action always
// leaves the engine state unchanged; match with errors.Is.
var (
	// ErrGameOver indicates an action after the game or round has ended.
	ErrGameOver = errors.New("game is over")

	// ErrNotYourTurn indicates an action by a side that is not to move.
	ErrNotYourTurn = errors.New("not this side's turn")

	// ErrIllegalMove indicates a move outside the current legal-move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongPhase indicates an action not valid in the current phase.
	ErrWrongPhase = errors.New("action not allowed in this phase")

	// ErrInvalidArgument indicates a malformed index, amount or value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoMoves indicates that a policy had nothing to choose from.
	ErrNoMoves = errors.New("no legal moves")
)
