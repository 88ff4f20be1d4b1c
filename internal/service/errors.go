package service

import "errors"

// Sentinel errors for the board server. Use these with errors.Is().
var (
	// ErrGameNotFound indicates an unknown or removed game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrIllegalMove indicates a move outside the current legal set. The game is unchanged.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates a square index outside 0..63.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrGameOver indicates a move attempt after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")
)
