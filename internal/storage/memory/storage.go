package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	boards    map[model.SessionID]*model.Board
	summaries map[model.GameID]model.GameSummary
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		boards:    make(map[model.SessionID]*model.Board),
		summaries: make(map[model.GameID]model.GameSummary),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Board operations

func (s *Storage) SaveBoard(ctx context.Context, session model.SessionID, board *model.Board) error {
	if board == nil {
		return model.ErrNilBoard
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[session] = board
	return nil
}

func (s *Storage) GetBoard(ctx context.Context, session model.SessionID) (*model.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	board, ok := s.boards[session]
	if !ok {
		return nil, model.ErrBoardNotFound
	}
	return board, nil
}

func (s *Storage) DeleteBoard(ctx context.Context, session model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.boards, session)
	return nil
}

// Summary operations

// SaveSummary stores a completed game. Saving the same game twice keeps the latest record.
func (s *Storage) SaveSummary(ctx context.Context, summary model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[summary.ID] = summary
	return nil
}

// ListSummaries returns completed games, oldest first
func (s *Storage) ListSummaries(ctx context.Context) ([]model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]model.GameSummary, 0, len(s.summaries))
	for _, summary := range s.summaries {
		summaries = append(summaries, summary)
	}
	slices.SortFunc(summaries, func(a, b model.GameSummary) int {
		if c := a.CompletedAt.Compare(b.CompletedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return summaries, nil
}

func (s *Storage) GetStats(ctx context.Context) (model.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats model.Stats
	hasBest := false
	for _, summary := range s.summaries {
		stats.Played++
		switch summary.Phase {
		case model.PhaseWon:
			stats.Won++
			if !hasBest || summary.Duration < stats.BestTime {
				stats.BestTime = summary.Duration
				hasBest = true
			}
		case model.PhaseLost:
			stats.Lost++
		}
	}
	return stats, nil
}
