package bot

import (
	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/model"
)

// RandomStrategy reveals a random concealed, unflagged cell
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// NextMove picks uniformly among the cells still in play
func (s *RandomStrategy) NextMove(board *model.Board) (Move, bool) {
	if board.IsOver() {
		return Move{}, false
	}
	candidates := concealed(board)
	if len(candidates) == 0 {
		return Move{}, false
	}
	return Move{Type: MoveReveal, Position: candidates[s.random.Intn(len(candidates))]}, true
}
