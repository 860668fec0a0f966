package minefield

import (
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/model"
)

// Service places mines using an injected random source
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new minefield Service
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger.With(slog.String("component", "minefield")),
	}
}

// PlaceMines mines board.MineCount cells chosen uniformly from every cell
// outside the safe zone around origin. If fewer candidates exist than
// requested, all of them are mined and board.MineCount is lowered to match.
// Returns the number of mines placed; a board whose layout is already fixed
// is left untouched.
func (s *Service) PlaceMines(board *model.Board, origin model.Position) int {
	if board.MinesPlaced {
		return 0
	}

	forbidden := SafeZone(board, origin)
	candidates := make([]model.Position, 0, board.Rows*board.Cols)
	for _, pos := range board.Positions() {
		if !forbidden.Has(pos) {
			candidates = append(candidates, pos)
		}
	}

	count := max(0, min(board.MineCount, len(candidates)))

	// Partial Fisher-Yates: the first count slots end up a uniform sample
	for i := 0; i < count; i++ {
		j := i + s.random.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		board.Cell(candidates[i]).IsMine = true
	}

	if count != board.MineCount {
		s.logger.Warn("mine count clamped to available cells",
			slog.String("game_id", string(board.ID)),
			slog.Int("requested", board.MineCount),
			slog.Int("placed", count),
		)
	}
	board.MineCount = count
	board.MinesPlaced = true

	s.logger.Debug("mines placed",
		slog.String("game_id", string(board.ID)),
		slog.Int("origin_row", origin.Row),
		slog.Int("origin_col", origin.Col),
		slog.Int("mines", count),
	)

	return count
}

// SafeZone returns origin together with its in-bounds neighbours
func SafeZone(board *model.Board, origin model.Position) mapset.Set[model.Position] {
	zone := mapset.New[model.Position]()
	zone.Put(origin)
	for _, n := range board.Neighbors(origin) {
		zone.Put(n)
	}
	return zone
}

// ComputeAdjacency sets AdjacentMines on every non-mine cell.
// Mine cells keep zero. Running it twice on the same layout changes nothing.
func ComputeAdjacency(board *model.Board) {
	for _, pos := range board.Positions() {
		cell := board.Cell(pos)
		if cell.IsMine {
			cell.AdjacentMines = 0
			continue
		}
		count := 0
		for _, n := range board.Neighbors(pos) {
			if board.Cell(n).IsMine {
				count++
			}
		}
		cell.AdjacentMines = count
	}
}
