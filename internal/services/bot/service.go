package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/services/game"
)

// MaxBotIterations is a safety limit for the Play loop
const MaxBotIterations = 10000

// Action records one move the bot made and what it changed
type Action struct {
	Move     Move
	Revealed int
	Outcome  model.Outcome
}

// PlayResult summarises a finished autoplay run
type PlayResult struct {
	Actions []Action
	Phase   model.Phase
}

// Service plays boards to completion using a Strategy
type Service struct {
	gameController game.ControllerInterface
	strategies     map[string]Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	gameController game.ControllerInterface,
	strategies map[string]Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		gameController: gameController,
		strategies:     strategies,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// DefaultStrategies builds the named strategies sharing one random source
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	randomStrategy := NewRandomStrategy(rnd)
	return map[string]Strategy{
		model.BotStrategyRandom:    randomStrategy,
		model.BotStrategyDeduction: NewDeductionStrategy(randomStrategy),
	}
}

// Strategy looks up a registered strategy by name
func (s *Service) Strategy(name string) (Strategy, error) {
	st, ok := s.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
	return st, nil
}

// Play applies strategy moves to board until the game ends, the strategy
// has nothing left to do, or ctx is cancelled. The actions taken so far are
// returned alongside any error.
func (s *Service) Play(ctx context.Context, board *model.Board, strategy Strategy) (PlayResult, error) {
	if board == nil {
		return PlayResult{}, model.ErrNilBoard
	}

	var result PlayResult
	for range MaxBotIterations {
		if err := ctx.Err(); err != nil {
			result.Phase = board.Phase
			return result, err
		}
		if board.IsOver() {
			break
		}

		move, ok := strategy.NextMove(board)
		if !ok {
			break
		}

		action, err := s.apply(board, move)
		if err != nil {
			result.Phase = board.Phase
			return result, err
		}
		result.Actions = append(result.Actions, action)
	}

	result.Phase = board.Phase
	if !board.IsOver() && len(result.Actions) >= MaxBotIterations {
		return result, model.ErrBotStalled
	}

	s.logger.Debug("autoplay finished",
		slog.String("game_id", string(board.ID)),
		slog.String("phase", string(board.Phase)),
		slog.Int("moves", len(result.Actions)),
	)

	return result, nil
}

func (s *Service) apply(board *model.Board, move Move) (Action, error) {
	switch move.Type {
	case MoveFlag:
		if _, err := s.gameController.ToggleFlag(board, move.Position); err != nil {
			return Action{}, err
		}
		return Action{Move: move}, nil
	default:
		revealed, err := s.gameController.Reveal(board, move.Position)
		if err != nil {
			return Action{}, err
		}
		return Action{Move: move, Revealed: len(revealed.Revealed), Outcome: revealed.Outcome}, nil
	}
}
