package storage

import (
	"context"

	"github.com/mcoot/minesweeper/internal/model"
)

// Storage defines the interface for session state
type Storage interface {
	// Board operations
	SaveBoard(ctx context.Context, session model.SessionID, board *model.Board) error
	GetBoard(ctx context.Context, session model.SessionID) (*model.Board, error)
	DeleteBoard(ctx context.Context, session model.SessionID) error

	// Summary operations
	SaveSummary(ctx context.Context, summary model.GameSummary) error
	ListSummaries(ctx context.Context) ([]model.GameSummary, error)
	GetStats(ctx context.Context) (model.Stats, error)
}
