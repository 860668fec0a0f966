package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/services/game"
	"github.com/mcoot/minesweeper/internal/storage"
)

// Controller keeps the current board for each session and records finished games
type Controller struct {
	storage        storage.Storage
	gameController game.ControllerInterface
	logger         *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	gameController game.ControllerInterface,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		gameController: gameController,
		logger:         logger.With(slog.String("component", "session-controller")),
	}
}

// NewGame replaces the session's board with a fresh one. An unfinished
// previous board is discarded without a summary.
func (c *Controller) NewGame(ctx context.Context, session model.SessionID, cfg model.GameConfig) (*model.Board, error) {
	board, err := c.gameController.NewGame(cfg)
	if err != nil {
		return nil, err
	}
	if err := c.storage.SaveBoard(ctx, session, board); err != nil {
		return nil, err
	}
	return board, nil
}

// Current returns the session's board
func (c *Controller) Current(ctx context.Context, session model.SessionID) (*model.Board, error) {
	board, err := c.storage.GetBoard(ctx, session)
	if err != nil {
		if errors.Is(err, model.ErrBoardNotFound) {
			return nil, model.ErrNoActiveGame
		}
		return nil, err
	}
	return board, nil
}

// Reveal uncovers pos on the session's board and records a summary if the game ends
func (c *Controller) Reveal(ctx context.Context, session model.SessionID, pos model.Position) (*model.Board, model.RevealResult, error) {
	board, err := c.Current(ctx, session)
	if err != nil {
		return nil, model.RevealResult{}, err
	}

	result, err := c.gameController.Reveal(board, pos)
	if err != nil {
		return board, result, err
	}

	if result.GameEnded() {
		if err := c.Record(ctx, board); err != nil {
			return board, result, err
		}
	}
	return board, result, nil
}

// ToggleFlag flips the flag at pos on the session's board
func (c *Controller) ToggleFlag(ctx context.Context, session model.SessionID, pos model.Position) (*model.Board, model.FlagResult, error) {
	board, err := c.Current(ctx, session)
	if err != nil {
		return nil, model.FlagResult{}, err
	}

	result, err := c.gameController.ToggleFlag(board, pos)
	return board, result, err
}

// Record stores a summary of a finished board. Boards still in play are ignored.
func (c *Controller) Record(ctx context.Context, board *model.Board) error {
	if board == nil || !board.IsOver() {
		return nil
	}

	summary := model.Summarize(board)
	if err := c.storage.SaveSummary(ctx, summary); err != nil {
		return err
	}

	c.logger.Debug("game recorded",
		slog.String("game_id", string(summary.ID)),
		slog.String("phase", string(summary.Phase)),
		slog.Duration("duration", summary.Duration),
	)
	return nil
}

// Stats returns aggregate results of every recorded game
func (c *Controller) Stats(ctx context.Context) (model.Stats, error) {
	return c.storage.GetStats(ctx)
}

// History returns every recorded game, oldest first
func (c *Controller) History(ctx context.Context) ([]model.GameSummary, error) {
	return c.storage.ListSummaries(ctx)
}
