package model

import "errors"

// Common errors used across the application
var (
	// Engine errors
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrOutOfBounds          = errors.New("position out of bounds")
	ErrNilBoard             = errors.New("board is nil")

	// Session errors
	ErrBoardNotFound = errors.New("board not found")
	ErrNoActiveGame  = errors.New("no active game")

	// Preset errors
	ErrUnknownPreset = errors.New("unknown preset")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")
	ErrBotStalled      = errors.New("bot exceeded move limit")
)
