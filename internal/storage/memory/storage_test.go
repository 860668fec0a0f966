package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/minesweeper/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
	now     time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) summary(id string, phase model.Phase, duration time.Duration, completedOffset time.Duration) model.GameSummary {
	return model.GameSummary{
		ID:          model.GameID(id),
		Config:      model.DefaultGameConfig(),
		Phase:       phase,
		Duration:    duration,
		CompletedAt: s.now.Add(completedOffset),
	}
}

// Board tests

func (s *StorageSuite) TestSaveAndGetBoard() {
	board := model.NewBoard(9, 9, 10)

	err := s.storage.SaveBoard(s.ctx, model.DefaultSession, board)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetBoard(s.ctx, model.DefaultSession)
	s.Require().NoError(err)
	s.Same(board, retrieved)
}

func (s *StorageSuite) TestSaveBoardReplacesCurrent() {
	first := model.NewBoard(9, 9, 10)
	second := model.NewBoard(16, 16, 40)
	_ = s.storage.SaveBoard(s.ctx, model.DefaultSession, first)
	_ = s.storage.SaveBoard(s.ctx, model.DefaultSession, second)

	retrieved, err := s.storage.GetBoard(s.ctx, model.DefaultSession)
	s.Require().NoError(err)
	s.Equal(second.ID, retrieved.ID)
}

func (s *StorageSuite) TestSessionsAreIndependent() {
	a := model.NewBoard(9, 9, 10)
	_ = s.storage.SaveBoard(s.ctx, "a", a)

	_, err := s.storage.GetBoard(s.ctx, "b")
	s.ErrorIs(err, model.ErrBoardNotFound)
}

func (s *StorageSuite) TestSaveNilBoard() {
	err := s.storage.SaveBoard(s.ctx, model.DefaultSession, nil)
	s.ErrorIs(err, model.ErrNilBoard)
}

func (s *StorageSuite) TestDeleteBoard() {
	_ = s.storage.SaveBoard(s.ctx, model.DefaultSession, model.NewBoard(9, 9, 10))

	err := s.storage.DeleteBoard(s.ctx, model.DefaultSession)
	s.Require().NoError(err)

	_, err = s.storage.GetBoard(s.ctx, model.DefaultSession)
	s.ErrorIs(err, model.ErrBoardNotFound)
}

// Summary tests

func (s *StorageSuite) TestListSummariesOldestFirst() {
	_ = s.storage.SaveSummary(s.ctx, s.summary("c", model.PhaseWon, time.Second, 3*time.Minute))
	_ = s.storage.SaveSummary(s.ctx, s.summary("a", model.PhaseLost, time.Second, time.Minute))
	_ = s.storage.SaveSummary(s.ctx, s.summary("b", model.PhaseWon, time.Second, 2*time.Minute))

	summaries, err := s.storage.ListSummaries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 3)
	s.Equal(model.GameID("a"), summaries[0].ID)
	s.Equal(model.GameID("b"), summaries[1].ID)
	s.Equal(model.GameID("c"), summaries[2].ID)
}

func (s *StorageSuite) TestSaveSummaryTwiceKeepsOne() {
	_ = s.storage.SaveSummary(s.ctx, s.summary("a", model.PhaseWon, 10*time.Second, 0))
	_ = s.storage.SaveSummary(s.ctx, s.summary("a", model.PhaseWon, 10*time.Second, 0))

	summaries, _ := s.storage.ListSummaries(s.ctx)
	s.Len(summaries, 1)
}

func (s *StorageSuite) TestGetStatsEmpty() {
	stats, err := s.storage.GetStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Stats{}, stats)
	s.Zero(stats.WinRate())
}

func (s *StorageSuite) TestGetStats() {
	_ = s.storage.SaveSummary(s.ctx, s.summary("a", model.PhaseWon, 42*time.Second, time.Minute))
	_ = s.storage.SaveSummary(s.ctx, s.summary("b", model.PhaseLost, 5*time.Second, 2*time.Minute))
	_ = s.storage.SaveSummary(s.ctx, s.summary("c", model.PhaseWon, 17*time.Second, 3*time.Minute))
	_ = s.storage.SaveSummary(s.ctx, s.summary("d", model.PhaseWon, 90*time.Second, 4*time.Minute))

	stats, err := s.storage.GetStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(4, stats.Played)
	s.Equal(3, stats.Won)
	s.Equal(1, stats.Lost)
	s.Equal(17*time.Second, stats.BestTime, "lost games never count toward best time")
	s.InDelta(0.75, stats.WinRate(), 1e-9)
}

func (s *StorageSuite) TestGetStatsInstantWinIsBest() {
	_ = s.storage.SaveSummary(s.ctx, s.summary("a", model.PhaseWon, 0, time.Minute))
	_ = s.storage.SaveSummary(s.ctx, s.summary("b", model.PhaseWon, 30*time.Second, 2*time.Minute))

	stats, _ := s.storage.GetStats(s.ctx)
	s.Zero(stats.BestTime)
}
