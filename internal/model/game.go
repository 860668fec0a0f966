package model

import (
	"fmt"
	"time"
)

// GameID uniquely identifies a game
type GameID string

// Phase represents the lifecycle stage of a board
type Phase string

const (
	PhaseNotStarted Phase = "not_started" // No reveal yet, mines not placed
	PhaseInProgress Phase = "in_progress"
	PhaseWon        Phase = "won"
	PhaseLost       Phase = "lost"
)

// IsTerminal returns true for won and lost
func (p Phase) IsTerminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// MinDimension is the smallest accepted row or column count
const MinDimension = 5

// SafeZoneSize is the size of the first-click exclusion zone on an interior cell
const SafeZoneSize = 9

// GameConfig holds the dimensions and mine count for a new game
type GameConfig struct {
	Rows  int
	Cols  int
	Mines int
}

// MaxMines returns the largest mine count the config's dimensions allow
func (c GameConfig) MaxMines() int {
	return c.Rows*c.Cols - SafeZoneSize
}

// Validate rejects degenerate dimensions and mine counts outside [1, MaxMines]
func (c GameConfig) Validate() error {
	if c.Rows < MinDimension || c.Cols < MinDimension {
		return fmt.Errorf("%w: board must be at least %dx%d, got %dx%d",
			ErrInvalidConfiguration, MinDimension, MinDimension, c.Rows, c.Cols)
	}
	if c.Mines < 1 || c.Mines > c.MaxMines() {
		return fmt.Errorf("%w: mines must be between 1 and %d, got %d",
			ErrInvalidConfiguration, c.MaxMines(), c.Mines)
	}
	return nil
}

// Outcome describes how a reveal ended the game, if it did
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeMineHit Outcome = "mine_hit"
	OutcomeCleared Outcome = "cleared"
)

// RevealResult reports what changed during one reveal call
type RevealResult struct {
	// Revealed lists positions that became revealed, in reveal order
	Revealed []Position
	Outcome  Outcome

	// Loss disclosure
	Detonated  *Position
	Mines      []Position // Every mine, flagged or not
	Misflagged []Position // Flagged cells that are not mines

	// Win completion
	AutoFlagged  []Position
	FlaggedCount int
}

// IsEmpty returns true if the reveal changed nothing
func (r RevealResult) IsEmpty() bool {
	return len(r.Revealed) == 0 && r.Outcome == OutcomeNone
}

// GameEnded returns true if this reveal moved the board into a terminal phase
func (r RevealResult) GameEnded() bool {
	return r.Outcome != OutcomeNone
}

// FlagResult reports the outcome of a flag toggle
type FlagResult struct {
	Changed        bool
	Flagged        bool
	MinesRemaining int
}

// Status is a snapshot of a board's counters
type Status struct {
	Phase          Phase
	RevealedCount  int
	FlaggedCount   int
	MinesRemaining int
}

// Disclosure is the full-board information shown after a loss
type Disclosure struct {
	Mines      []Position
	Misflagged []Position
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID          GameID
	Config      GameConfig
	Phase       Phase
	Duration    time.Duration
	CompletedAt time.Time
}
