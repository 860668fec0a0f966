package bot

import "github.com/mcoot/minesweeper/internal/model"

// MoveType is the kind of action a bot takes on a cell
type MoveType string

const (
	MoveReveal MoveType = "reveal"
	MoveFlag   MoveType = "flag"
)

// Move is a single bot decision
type Move struct {
	Type     MoveType
	Position model.Position
}

// Strategy defines how a bot chooses its next move
type Strategy interface {
	// NextMove returns the move to make, or false when there is nothing left to do
	NextMove(board *model.Board) (Move, bool)
}

// concealed returns every cell that is neither revealed nor flagged, in row-major order
func concealed(board *model.Board) []model.Position {
	var positions []model.Position
	for _, pos := range board.Positions() {
		cell := board.Cell(pos)
		if !cell.IsRevealed && !cell.IsFlagged {
			positions = append(positions, pos)
		}
	}
	return positions
}
