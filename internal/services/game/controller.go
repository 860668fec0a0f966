package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/minesweeper/internal/dependencies/clock"
	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/services/minefield"
	"github.com/mcoot/minesweeper/internal/services/reveal"
)

// MinePlacer fixes a board's mine layout when the first reveal arrives
type MinePlacer interface {
	PlaceMines(board *model.Board, origin model.Position) int
}

// Controller drives the board lifecycle: not started, in progress, won or lost.
// It holds no per-game state; every call takes the board it acts on.
type Controller struct {
	placer     MinePlacer
	propagator *reveal.Propagator
	clock      clock.Clock
	logger     *slog.Logger
	observers  []model.Observer
}

// NewController creates a new game Controller
func NewController(
	placer MinePlacer,
	propagator *reveal.Propagator,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		placer:     placer,
		propagator: propagator,
		clock:      clock,
		logger:     logger.With(slog.String("component", "game-controller")),
	}
}

// Subscribe registers an observer for every board this controller touches
func (c *Controller) Subscribe(observer model.Observer) {
	c.observers = append(c.observers, observer)
}

// NewGame validates cfg and returns a fresh board with no mines placed
func (c *Controller) NewGame(cfg model.GameConfig) (*model.Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	board := model.NewBoard(cfg.Rows, cfg.Cols, cfg.Mines)
	board.CreatedAt = c.clock.Now()

	c.logger.Info("game created",
		slog.String("game_id", string(board.ID)),
		slog.Int("rows", cfg.Rows),
		slog.Int("cols", cfg.Cols),
		slog.Int("mines", cfg.Mines),
	)
	c.emit(board, model.EventGameCreated, model.GameCreatedPayload{Config: cfg})

	return board, nil
}

// Reveal uncovers pos. The first reveal of a game places the mines around
// it. Reveals on flagged or revealed cells, or on a finished board, return
// an empty result.
func (c *Controller) Reveal(board *model.Board, pos model.Position) (model.RevealResult, error) {
	if err := checkTarget(board, pos); err != nil {
		return model.RevealResult{}, err
	}

	if board.IsOver() {
		return model.RevealResult{}, nil
	}
	if cell := board.Cell(pos); cell.IsRevealed || cell.IsFlagged {
		return model.RevealResult{}, nil
	}

	if board.Phase == model.PhaseNotStarted {
		c.start(board, pos)
	}

	result := c.propagator.Reveal(board, pos)
	now := c.clock.Now()

	if len(result.Revealed) > 0 {
		c.emit(board, model.EventCellsRevealed, model.CellsRevealedPayload{
			Positions:     result.Revealed,
			RevealedCount: board.RevealedCount,
		})
	}

	switch result.Outcome {
	case model.OutcomeCleared:
		c.win(board, &result, now)
	case model.OutcomeMineHit:
		c.lose(board, &result, now)
	}

	return result, nil
}

// ToggleFlag flips the flag on a concealed cell. Revealed cells and
// finished boards are left unchanged.
func (c *Controller) ToggleFlag(board *model.Board, pos model.Position) (model.FlagResult, error) {
	if err := checkTarget(board, pos); err != nil {
		return model.FlagResult{}, err
	}

	cell := board.Cell(pos)
	if board.IsOver() || cell.IsRevealed {
		return model.FlagResult{
			Changed:        false,
			Flagged:        cell.IsFlagged,
			MinesRemaining: board.MinesRemaining(),
		}, nil
	}

	cell.IsFlagged = !cell.IsFlagged
	if cell.IsFlagged {
		board.FlaggedCount++
	} else {
		board.FlaggedCount--
	}

	result := model.FlagResult{
		Changed:        true,
		Flagged:        cell.IsFlagged,
		MinesRemaining: board.MinesRemaining(),
	}

	c.logger.Debug("flag toggled",
		slog.String("game_id", string(board.ID)),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
		slog.Bool("flagged", cell.IsFlagged),
	)
	c.emit(board, model.EventFlagToggled, model.FlagToggledPayload{
		Position:       pos,
		Flagged:        result.Flagged,
		MinesRemaining: result.MinesRemaining,
	})

	return result, nil
}

// Status returns the board's phase and counters
func (c *Controller) Status(board *model.Board) model.Status {
	if board == nil {
		return model.Status{}
	}
	return model.Status{
		Phase:          board.Phase,
		RevealedCount:  board.RevealedCount,
		FlaggedCount:   board.FlaggedCount,
		MinesRemaining: board.MinesRemaining(),
	}
}

// Disclose returns every mine and every wrong flag. It is meant for the
// loss screen but is valid in any phase once mines are placed.
func Disclose(board *model.Board) model.Disclosure {
	return model.Disclosure{
		Mines:      board.MinePositions(),
		Misflagged: board.MisflaggedPositions(),
	}
}

func (c *Controller) start(board *model.Board, origin model.Position) {
	placed := c.placer.PlaceMines(board, origin)
	minefield.ComputeAdjacency(board)
	board.Phase = model.PhaseInProgress
	board.StartedAt = c.clock.Now()

	c.logger.Info("game started",
		slog.String("game_id", string(board.ID)),
		slog.Int("mines", board.MineCount),
	)
	c.emit(board, model.EventGameStarted, model.GameStartedPayload{
		Origin:      origin,
		MinesPlaced: placed,
	})
}

// win flags every mine the player left unflagged
func (c *Controller) win(board *model.Board, result *model.RevealResult, now time.Time) {
	for _, pos := range board.MinePositions() {
		cell := board.Cell(pos)
		if cell.IsFlagged {
			continue
		}
		cell.IsFlagged = true
		board.FlaggedCount++
		result.AutoFlagged = append(result.AutoFlagged, pos)
	}
	result.FlaggedCount = board.FlaggedCount
	board.FinishedAt = now

	duration := board.Elapsed(now)
	c.logger.Info("game won",
		slog.String("game_id", string(board.ID)),
		slog.Duration("duration", duration),
	)
	c.emit(board, model.EventGameWon, model.GameWonPayload{
		AutoFlagged:  result.AutoFlagged,
		FlaggedCount: board.FlaggedCount,
		Duration:     duration,
	})
}

func (c *Controller) lose(board *model.Board, result *model.RevealResult, now time.Time) {
	board.FinishedAt = now
	result.FlaggedCount = board.FlaggedCount

	duration := board.Elapsed(now)
	c.logger.Info("game lost",
		slog.String("game_id", string(board.ID)),
		slog.Int("row", result.Detonated.Row),
		slog.Int("col", result.Detonated.Col),
		slog.Duration("duration", duration),
	)
	c.emit(board, model.EventGameLost, model.GameLostPayload{
		Detonated:  *result.Detonated,
		Mines:      result.Mines,
		Misflagged: result.Misflagged,
		Duration:   duration,
	})
}

func (c *Controller) emit(board *model.Board, eventType model.EventType, payload any) {
	if len(c.observers) == 0 {
		return
	}
	event := model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		GameID:    board.ID,
		Payload:   payload,
	}
	for _, o := range c.observers {
		o.OnEvent(event)
	}
}

func checkTarget(board *model.Board, pos model.Position) error {
	if board == nil {
		return model.ErrNilBoard
	}
	if !board.IsValidPosition(pos) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d board",
			model.ErrOutOfBounds, pos.Row, pos.Col, board.Rows, board.Cols)
	}
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(cfg model.GameConfig) (*model.Board, error)
	Reveal(board *model.Board, pos model.Position) (model.RevealResult, error)
	ToggleFlag(board *model.Board, pos model.Position) (model.FlagResult, error)
	Status(board *model.Board) model.Status
	Subscribe(observer model.Observer)
}

var _ ControllerInterface = (*Controller)(nil)
