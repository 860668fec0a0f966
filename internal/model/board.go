package model

import (
	"time"

	"github.com/google/uuid"
)

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Cell is a single grid square
type Cell struct {
	Position      Position
	IsMine        bool
	AdjacentMines int // Only meaningful for non-mine cells
	IsRevealed    bool
	IsFlagged     bool
}

// Board is the aggregate state of one game
type Board struct {
	ID        GameID
	Rows      int
	Cols      int
	MineCount int

	RevealedCount int
	FlaggedCount  int
	Phase         Phase

	// MinesPlaced is set once the layout is fixed; placement never runs twice
	MinesPlaced bool

	CreatedAt  time.Time
	StartedAt  time.Time // Zero until the first reveal
	FinishedAt time.Time // Zero until won or lost

	Cells [][]Cell // Row-major: Cells[row][col]
}

// NewBoard creates a board with every cell concealed and no mines placed.
// It performs no validation; use the game controller for checked construction.
func NewBoard(rows, cols, mines int) *Board {
	cells := make([][]Cell, rows)
	for row := range cells {
		cells[row] = make([]Cell, cols)
		for col := range cells[row] {
			cells[row][col].Position = Position{Row: row, Col: col}
		}
	}
	return &Board{
		ID:        GameID(uuid.NewString()),
		Rows:      rows,
		Cols:      cols,
		MineCount: mines,
		Phase:     PhaseNotStarted,
		Cells:     cells,
	}
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Rows && pos.Col >= 0 && pos.Col < b.Cols
}

// Cell returns the cell at pos, or nil when out of bounds
func (b *Board) Cell(pos Position) *Cell {
	if !b.IsValidPosition(pos) {
		return nil
	}
	return &b.Cells[pos.Row][pos.Col]
}

// Neighbors returns the in-bounds 8-connected neighbours of pos, excluding pos itself
func (b *Board) Neighbors(pos Position) []Position {
	neighbors := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Position{Row: pos.Row + dr, Col: pos.Col + dc}
			if b.IsValidPosition(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// Positions returns every position on the board in row-major order
func (b *Board) Positions() []Position {
	positions := make([]Position, 0, b.Rows*b.Cols)
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			positions = append(positions, Position{Row: row, Col: col})
		}
	}
	return positions
}

// SafeCellCount returns the number of cells that must be revealed to win
func (b *Board) SafeCellCount() int {
	return b.Rows*b.Cols - b.MineCount
}

// MinesRemaining is the informational counter shown to the player.
// It goes negative when the player over-flags.
func (b *Board) MinesRemaining() int {
	return b.MineCount - b.FlaggedCount
}

// IsOver returns true once the game has been won or lost
func (b *Board) IsOver() bool {
	return b.Phase.IsTerminal()
}

// MinePositions returns every mined position in row-major order
func (b *Board) MinePositions() []Position {
	var mines []Position
	for row := range b.Cells {
		for col := range b.Cells[row] {
			if b.Cells[row][col].IsMine {
				mines = append(mines, Position{Row: row, Col: col})
			}
		}
	}
	return mines
}

// MisflaggedPositions returns flagged cells that are not mines, in row-major order
func (b *Board) MisflaggedPositions() []Position {
	var wrong []Position
	for row := range b.Cells {
		for col := range b.Cells[row] {
			cell := b.Cells[row][col]
			if cell.IsFlagged && !cell.IsMine {
				wrong = append(wrong, Position{Row: row, Col: col})
			}
		}
	}
	return wrong
}

// CountRevealed recounts revealed cells from scratch
func (b *Board) CountRevealed() int {
	count := 0
	for row := range b.Cells {
		for col := range b.Cells[row] {
			if b.Cells[row][col].IsRevealed {
				count++
			}
		}
	}
	return count
}

// CountFlagged recounts flagged cells from scratch
func (b *Board) CountFlagged() int {
	count := 0
	for row := range b.Cells {
		for col := range b.Cells[row] {
			if b.Cells[row][col].IsFlagged {
				count++
			}
		}
	}
	return count
}

// Elapsed returns the play time at now. It stops advancing once the game is over.
func (b *Board) Elapsed(now time.Time) time.Duration {
	if b.StartedAt.IsZero() {
		return 0
	}
	end := now
	if !b.FinishedAt.IsZero() {
		end = b.FinishedAt
	}
	if end.Before(b.StartedAt) {
		return 0
	}
	return end.Sub(b.StartedAt)
}
