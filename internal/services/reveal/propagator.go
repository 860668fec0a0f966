package reveal

import (
	"log/slog"

	"github.com/gammazero/deque"
	"github.com/zyedidia/generic/mapset"

	"github.com/mcoot/minesweeper/internal/model"
)

// Propagator reveals cells and flood-fills zero-adjacency regions.
// It assumes the mine layout and adjacency counts are already fixed.
type Propagator struct {
	logger *slog.Logger
}

// New creates a new Propagator
func New(logger *slog.Logger) *Propagator {
	return &Propagator{
		logger: logger.With(slog.String("component", "reveal")),
	}
}

// Reveal uncovers pos and, when it has no adjacent mines, the whole
// contiguous zero region around it plus that region's numbered border.
// Revealing a flagged or already revealed cell, or any cell on a finished
// board, returns an empty result. The caller is responsible for bounds.
func (p *Propagator) Reveal(board *model.Board, pos model.Position) model.RevealResult {
	var result model.RevealResult

	if board.IsOver() {
		return result
	}
	target := board.Cell(pos)
	if target == nil || target.IsRevealed || target.IsFlagged {
		return result
	}

	p.uncover(board, target, &result)

	if target.IsMine {
		board.Phase = model.PhaseLost
		detonated := pos
		result.Outcome = model.OutcomeMineHit
		result.Detonated = &detonated
		result.Mines = board.MinePositions()
		result.Misflagged = board.MisflaggedPositions()
		return result
	}

	if target.AdjacentMines == 0 {
		p.flood(board, pos, &result)
	}

	if board.RevealedCount == board.SafeCellCount() {
		board.Phase = model.PhaseWon
		result.Outcome = model.OutcomeCleared
	}

	p.logger.Debug("cells revealed",
		slog.String("game_id", string(board.ID)),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
		slog.Int("count", len(result.Revealed)),
	)

	return result
}

// flood expands outward from a zero cell using an explicit worklist.
// expanded tracks cells whose neighbours have been queued, which is
// separate from reveal state: a cell can be revealed by one step and
// still need its own neighbours visited.
func (p *Propagator) flood(board *model.Board, origin model.Position, result *model.RevealResult) {
	var work deque.Deque[model.Position]
	expanded := mapset.New[model.Position]()

	work.PushBack(origin)
	expanded.Put(origin)

	for work.Len() > 0 {
		current := work.PopBack()
		for _, n := range board.Neighbors(current) {
			cell := board.Cell(n)
			if cell.IsRevealed || cell.IsFlagged {
				continue
			}
			p.uncover(board, cell, result)
			if cell.AdjacentMines == 0 && !expanded.Has(n) {
				expanded.Put(n)
				work.PushBack(n)
			}
		}
	}
}

func (p *Propagator) uncover(board *model.Board, cell *model.Cell, result *model.RevealResult) {
	cell.IsRevealed = true
	board.RevealedCount++
	result.Revealed = append(result.Revealed, cell.Position)
}
