package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/services/game"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

// startCornerGame opens (0,0) on a 5x5 board with 5 mines. With the mock
// random returning 0 the mines land on the first candidates after the safe
// zone: (0,2) (0,3) (0,4) (1,2) (1,3). Only (1,4) stays concealed among the
// safe cells.
func (s *IntegrationSuite) startCornerGame() *model.Board {
	_, err := s.app.SessionController.NewGame(s.ctx, model.DefaultSession, model.GameConfig{Rows: 5, Cols: 5, Mines: 5})
	s.Require().NoError(err)

	board, result, err := s.app.SessionController.Reveal(s.ctx, model.DefaultSession, pos(0, 0))
	s.Require().NoError(err)
	s.Require().Equal(model.PhaseInProgress, board.Phase)
	s.Require().Len(result.Revealed, 19)
	s.Require().Equal([]model.Position{pos(0, 2), pos(0, 3), pos(0, 4), pos(1, 2), pos(1, 3)}, board.MinePositions())
	return board
}

// Test: Complete game flow from new game to loss
func (s *IntegrationSuite) TestLossFlow() {
	s.startCornerGame()

	_, flag, err := s.app.SessionController.ToggleFlag(s.ctx, model.DefaultSession, pos(0, 2))
	s.Require().NoError(err)
	s.Equal(4, flag.MinesRemaining)
	_, _, err = s.app.SessionController.ToggleFlag(s.ctx, model.DefaultSession, pos(1, 4))
	s.Require().NoError(err)

	s.app.MockClock.Advance(5 * time.Second)
	board, result, err := s.app.SessionController.Reveal(s.ctx, model.DefaultSession, pos(0, 3))
	s.Require().NoError(err)

	s.Equal(model.PhaseLost, board.Phase)
	s.Equal(model.OutcomeMineHit, result.Outcome)
	s.Equal(pos(0, 3), *result.Detonated)
	s.Len(result.Mines, 5)
	s.Equal([]model.Position{pos(1, 4)}, result.Misflagged)
	s.Equal(model.Disclosure{Mines: result.Mines, Misflagged: result.Misflagged}, game.Disclose(board))
	s.True(board.Cell(pos(0, 2)).IsFlagged, "correct flags survive the loss")

	// Further moves are ignored
	_, after, err := s.app.SessionController.Reveal(s.ctx, model.DefaultSession, pos(1, 4))
	s.Require().NoError(err)
	s.True(after.IsEmpty())

	stats, err := s.app.SessionController.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Stats{Played: 1, Lost: 1}, stats)
}

// Test: Complete game flow from new game to win
func (s *IntegrationSuite) TestWinFlow() {
	s.startCornerGame()

	s.app.MockClock.Advance(7 * time.Second)
	board, result, err := s.app.SessionController.Reveal(s.ctx, model.DefaultSession, pos(1, 4))
	s.Require().NoError(err)

	s.Equal(model.PhaseWon, board.Phase)
	s.Equal(model.OutcomeCleared, result.Outcome)
	s.Len(result.AutoFlagged, 5)
	s.Equal(5, board.FlaggedCount)
	s.Equal(0, board.MinesRemaining())
	s.Equal(20, board.RevealedCount)
	s.Equal(7*time.Second, board.Elapsed(s.app.MockClock.Now().Add(time.Hour)))

	stats, err := s.app.SessionController.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Stats{Played: 1, Won: 1, BestTime: 7 * time.Second}, stats)
}

func (s *IntegrationSuite) TestNewGameDiscardsUnfinishedBoard() {
	first := s.startCornerGame()

	second, err := s.app.SessionController.NewGame(s.ctx, model.DefaultSession, model.DefaultGameConfig())
	s.Require().NoError(err)
	s.NotEqual(first.ID, second.ID)

	current, err := s.app.SessionController.Current(s.ctx, model.DefaultSession)
	s.Require().NoError(err)
	s.Equal(second.ID, current.ID)

	history, _ := s.app.SessionController.History(s.ctx)
	s.Empty(history)
}

func (s *IntegrationSuite) TestEventsFollowLifecycle() {
	var types []model.EventType
	s.app.GameController.Subscribe(model.ObserverFunc(func(e model.Event) {
		types = append(types, e.Type)
	}))

	s.startCornerGame()
	_, _, _ = s.app.SessionController.ToggleFlag(s.ctx, model.DefaultSession, pos(0, 2))
	_, _, _ = s.app.SessionController.Reveal(s.ctx, model.DefaultSession, pos(1, 4))

	s.Equal([]model.EventType{
		model.EventGameCreated,
		model.EventGameStarted,
		model.EventCellsRevealed,
		model.EventFlagToggled,
		model.EventCellsRevealed,
		model.EventGameWon,
	}, types)
}

func (s *IntegrationSuite) TestBotFinishesSessionBoard() {
	board, err := s.app.SessionController.NewGame(s.ctx, model.DefaultSession, model.DefaultGameConfig())
	s.Require().NoError(err)

	strategy, err := s.app.BotService.Strategy(model.BotStrategyDeduction)
	s.Require().NoError(err)

	result, err := s.app.BotService.Play(s.ctx, board, strategy)
	s.Require().NoError(err)
	s.True(board.IsOver())
	s.Equal(board.Phase, result.Phase)

	s.Require().NoError(s.app.SessionController.Record(s.ctx, board))
	stats, _ := s.app.SessionController.Stats(s.ctx)
	s.Equal(1, stats.Played)
}

func (s *IntegrationSuite) TestNewAppWithSeedIsReproducible() {
	layout := func() []model.Position {
		app := New(Config{Seed: 99, UseSeed: true})
		board, err := app.GameController.NewGame(model.DefaultGameConfig())
		s.Require().NoError(err)
		_, err = app.GameController.Reveal(board, pos(4, 4))
		s.Require().NoError(err)
		return board.MinePositions()
	}

	s.Equal(layout(), layout())
}
