package cli

import (
	"strconv"

	"github.com/mcoot/minesweeper/internal/model"
)

// Cell symbols used by both text and json output
const (
	SymbolConcealed  = "#"
	SymbolFlag       = "F"
	SymbolEmpty      = "."
	SymbolMine       = "*"
	SymbolDetonated  = "!"
	SymbolMisflagged = "X"
)

// BoardView is the presentation model of a board
type BoardView struct {
	ID             string     `json:"id"`
	Rows           int        `json:"rows"`
	Cols           int        `json:"cols"`
	Mines          int        `json:"mines"`
	Phase          string     `json:"phase"`
	MinesRemaining int        `json:"mines_remaining"`
	MineCounter    string     `json:"mine_counter"`
	Timer          string     `json:"timer"`
	Cells          [][]string `json:"cells"`
	Message        string     `json:"message,omitempty"`
}

// NewBoardView renders board into symbols. A lost board discloses every
// mine and marks wrong flags; correct flags are kept.
func NewBoardView(board *model.Board, timer *Timer) BoardView {
	lost := board.Phase == model.PhaseLost

	cells := make([][]string, board.Rows)
	for row := range cells {
		cells[row] = make([]string, board.Cols)
		for col := range cells[row] {
			cells[row][col] = cellSymbol(board.Cells[row][col], lost)
		}
	}

	return BoardView{
		ID:             string(board.ID),
		Rows:           board.Rows,
		Cols:           board.Cols,
		Mines:          board.MineCount,
		Phase:          string(board.Phase),
		MinesRemaining: board.MinesRemaining(),
		MineCounter:    MineCounter(board),
		Timer:          timer.Display(board),
		Cells:          cells,
		Message:        phaseMessage(board.Phase),
	}
}

func cellSymbol(cell model.Cell, lost bool) string {
	switch {
	case cell.IsRevealed && cell.IsMine:
		return SymbolDetonated
	case cell.IsRevealed && cell.AdjacentMines == 0:
		return SymbolEmpty
	case cell.IsRevealed:
		return strconv.Itoa(cell.AdjacentMines)
	case lost && cell.IsFlagged && !cell.IsMine:
		return SymbolMisflagged
	case cell.IsFlagged:
		return SymbolFlag
	case lost && cell.IsMine:
		return SymbolMine
	default:
		return SymbolConcealed
	}
}

func phaseMessage(phase model.Phase) string {
	switch phase {
	case model.PhaseWon:
		return "You win!"
	case model.PhaseLost:
		return "Game over"
	default:
		return ""
	}
}

// PresetView describes a built-in board size
type PresetView struct {
	Name  string `json:"name"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Mines int    `json:"mines"`
}

// NewPresetViews lists every preset
func NewPresetViews() []PresetView {
	presets := model.Presets()
	views := make([]PresetView, 0, len(presets))
	for _, p := range presets {
		views = append(views, PresetView{Name: p.Name, Rows: p.Config.Rows, Cols: p.Config.Cols, Mines: p.Config.Mines})
	}
	return views
}

// StatsView summarises the games played in this process
type StatsView struct {
	Played      int     `json:"played"`
	Won         int     `json:"won"`
	Lost        int     `json:"lost"`
	WinRate     float64 `json:"win_rate"`
	BestSeconds *int    `json:"best_seconds,omitempty"`
}

// NewStatsView converts engine stats for display
func NewStatsView(stats model.Stats) StatsView {
	view := StatsView{
		Played:  stats.Played,
		Won:     stats.Won,
		Lost:    stats.Lost,
		WinRate: stats.WinRate(),
	}
	if stats.Won > 0 {
		best := min(int(stats.BestTime.Seconds()), MaxCounter)
		view.BestSeconds = &best
	}
	return view
}

// AutoplayReport is the outcome of an autoplay run
type AutoplayReport struct {
	Strategy string    `json:"strategy"`
	Games    int       `json:"games"`
	Moves    int       `json:"moves"`
	Stats    StatsView `json:"stats"`
}
