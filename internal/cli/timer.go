package cli

import (
	"fmt"
	"time"

	"github.com/mcoot/minesweeper/internal/dependencies/clock"
	"github.com/mcoot/minesweeper/internal/model"
)

// MaxCounter is the largest value a 3-digit display shows
const MaxCounter = 999

// Timer reports a board's play time against an injected clock
type Timer struct {
	clock clock.Clock
}

// NewTimer creates a Timer
func NewTimer(clk clock.Clock) *Timer {
	return &Timer{clock: clk}
}

// Seconds returns whole seconds played, capped at MaxCounter
func (t *Timer) Seconds(board *model.Board) int {
	return min(int(board.Elapsed(t.clock.Now())/time.Second), MaxCounter)
}

// Display returns the zero-padded timer field
func (t *Timer) Display(board *model.Board) string {
	return pad3(t.Seconds(board))
}

// MineCounter returns the zero-padded mines-remaining field. Over-flagging
// shows 000 rather than a negative number.
func MineCounter(board *model.Board) string {
	return pad3(board.MinesRemaining())
}

func pad3(n int) string {
	return fmt.Sprintf("%03d", clamp(n, 0, MaxCounter))
}
