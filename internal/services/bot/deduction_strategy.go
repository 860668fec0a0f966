package bot

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/mcoot/minesweeper/internal/model"
)

// DeductionStrategy applies single-cell constraints from revealed numbers
// and falls back to a random reveal when nothing is certain.
//
// For a revealed cell showing n with f flagged and h concealed neighbours:
// n == f means all h are safe, and n == f+h means all h are mines.
type DeductionStrategy struct {
	fallback Strategy
}

// NewDeductionStrategy creates a DeductionStrategy that defers to fallback when stuck
func NewDeductionStrategy(fallback Strategy) *DeductionStrategy {
	return &DeductionStrategy{fallback: fallback}
}

// NextMove prefers a certain-safe reveal, then a certain-mine flag, then the fallback
func (s *DeductionStrategy) NextMove(board *model.Board) (Move, bool) {
	if board.IsOver() {
		return Move{}, false
	}

	safe, mines := s.deduce(board)

	// Scan row-major so the choice is stable for a given board
	for _, pos := range board.Positions() {
		if safe.Has(pos) {
			return Move{Type: MoveReveal, Position: pos}, true
		}
	}
	for _, pos := range board.Positions() {
		if mines.Has(pos) {
			return Move{Type: MoveFlag, Position: pos}, true
		}
	}

	return s.fallback.NextMove(board)
}

func (s *DeductionStrategy) deduce(board *model.Board) (mapset.Set[model.Position], mapset.Set[model.Position]) {
	safe := mapset.New[model.Position]()
	mines := mapset.New[model.Position]()

	for _, pos := range board.Positions() {
		cell := board.Cell(pos)
		if !cell.IsRevealed || cell.AdjacentMines == 0 {
			continue
		}

		flagged := 0
		var hidden []model.Position
		for _, n := range board.Neighbors(pos) {
			neighbor := board.Cell(n)
			switch {
			case neighbor.IsFlagged:
				flagged++
			case !neighbor.IsRevealed:
				hidden = append(hidden, n)
			}
		}
		if len(hidden) == 0 {
			continue
		}

		switch cell.AdjacentMines {
		case flagged:
			for _, h := range hidden {
				safe.Put(h)
			}
		case flagged + len(hidden):
			for _, h := range hidden {
				mines.Put(h)
			}
		}
	}

	return safe, mines
}
