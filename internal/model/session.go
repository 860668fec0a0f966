package model

import "time"

// SessionID identifies one front-end session holding a current board
type SessionID string

// DefaultSession is the single session used by the terminal front end
const DefaultSession SessionID = "local"

// Stats aggregates completed games
type Stats struct {
	Played   int
	Won      int
	Lost     int
	BestTime time.Duration // Fastest win; zero when nothing has been won
}

// WinRate returns the fraction of played games that were won
func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// Summarize records a finished board
func Summarize(board *Board) GameSummary {
	return GameSummary{
		ID:          board.ID,
		Config:      GameConfig{Rows: board.Rows, Cols: board.Cols, Mines: board.MineCount},
		Phase:       board.Phase,
		Duration:    board.Elapsed(board.FinishedAt),
		CompletedAt: board.FinishedAt,
	}
}
