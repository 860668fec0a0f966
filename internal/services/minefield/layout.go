package minefield

import "github.com/mcoot/minesweeper/internal/model"

// FixedLayout plants a predetermined set of mines regardless of where the
// first reveal lands. Out-of-bounds and duplicate positions are skipped.
type FixedLayout struct {
	Mines []model.Position
}

// NewFixedLayout creates a FixedLayout for the given mine positions
func NewFixedLayout(mines ...model.Position) *FixedLayout {
	return &FixedLayout{Mines: mines}
}

// PlaceMines plants the layout and sets board.MineCount to the number planted
func (l *FixedLayout) PlaceMines(board *model.Board, _ model.Position) int {
	if board.MinesPlaced {
		return 0
	}
	count := 0
	for _, pos := range l.Mines {
		cell := board.Cell(pos)
		if cell == nil || cell.IsMine {
			continue
		}
		cell.IsMine = true
		count++
	}
	board.MineCount = count
	board.MinesPlaced = true
	return count
}
