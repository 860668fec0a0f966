package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
	styles styles
}

type styles struct {
	label     lipgloss.Style
	value     lipgloss.Style
	concealed lipgloss.Style
	flag      lipgloss.Style
	mine      lipgloss.Style
	detonated lipgloss.Style
	empty     lipgloss.Style
	axis      lipgloss.Style
	win       lipgloss.Style
	lose      lipgloss.Style
	numbers   []lipgloss.Style
}

// NewOutput creates a new Output formatter. Styles are bound to out, so
// writers that are not terminals get plain text.
func NewOutput(format string, out, errOut io.Writer) *Output {
	r := lipgloss.NewRenderer(out)
	return &Output{
		format: format,
		out:    out,
		errOut: errOut,
		styles: styles{
			label:     r.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 1),
			value:     r.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")).Padding(0, 1),
			concealed: r.NewStyle().Foreground(lipgloss.Color("248")),
			flag:      r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			mine:      r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
			detonated: r.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true),
			empty:     r.NewStyle().Foreground(lipgloss.Color("238")),
			axis:      r.NewStyle().Foreground(lipgloss.Color("243")),
			win:       r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			lose:      r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			numbers: []lipgloss.Style{
				r.NewStyle().Foreground(lipgloss.Color("33")),  // 1
				r.NewStyle().Foreground(lipgloss.Color("41")),  // 2
				r.NewStyle().Foreground(lipgloss.Color("196")), // 3
				r.NewStyle().Foreground(lipgloss.Color("99")),  // 4
				r.NewStyle().Foreground(lipgloss.Color("160")), // 5
				r.NewStyle().Foreground(lipgloss.Color("37")),  // 6
				r.NewStyle().Foreground(lipgloss.Color("248")), // 7
				r.NewStyle().Foreground(lipgloss.Color("243")), // 8
			},
		},
	}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case BoardView:
		o.printBoard(v)
	case []PresetView:
		o.printPresets(v)
	case StatsView:
		o.printStats(v)
	case AutoplayReport:
		o.printAutoplayReport(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printBoard(b BoardView) {
	counter := lipgloss.JoinHorizontal(lipgloss.Left,
		o.styles.label.Render("MINES"),
		o.styles.value.Render(b.MineCounter),
	)
	timer := lipgloss.JoinHorizontal(lipgloss.Left,
		o.styles.label.Render("TIME"),
		o.styles.value.Render(b.Timer),
	)
	status := lipgloss.JoinHorizontal(lipgloss.Top, counter, "  ", timer)

	width := len(strconv.Itoa(max(b.Rows, b.Cols) - 1))

	var grid strings.Builder
	grid.WriteString(strings.Repeat(" ", width+1))
	for col := 0; col < b.Cols; col++ {
		grid.WriteString(o.styles.axis.Render(fmt.Sprintf(" %*d", width, col)))
	}
	grid.WriteString("\n")
	for row, cells := range b.Cells {
		grid.WriteString(o.styles.axis.Render(fmt.Sprintf("%*d ", width, row)))
		for _, symbol := range cells {
			grid.WriteString(" " + strings.Repeat(" ", width-1) + o.styleSymbol(symbol).Render(symbol))
		}
		grid.WriteString("\n")
	}

	parts := []string{status, grid.String()}
	switch b.Phase {
	case "won":
		parts = append(parts, o.styles.win.Render(b.Message))
	case "lost":
		parts = append(parts, o.styles.lose.Render(b.Message))
	}

	fmt.Fprintln(o.out, lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (o *Output) styleSymbol(symbol string) lipgloss.Style {
	switch symbol {
	case SymbolConcealed:
		return o.styles.concealed
	case SymbolFlag, SymbolMisflagged:
		return o.styles.flag
	case SymbolMine:
		return o.styles.mine
	case SymbolDetonated:
		return o.styles.detonated
	case SymbolEmpty:
		return o.styles.empty
	}
	if n, err := strconv.Atoi(symbol); err == nil && n >= 1 && n <= len(o.styles.numbers) {
		return o.styles.numbers[n-1]
	}
	return o.styles.empty
}

func (o *Output) printPresets(presets []PresetView) {
	for _, p := range presets {
		fmt.Fprintf(o.out, "%-14s %2dx%-2d  %3d mines\n", p.Name, p.Rows, p.Cols, p.Mines)
	}
}

func (o *Output) printStats(s StatsView) {
	fmt.Fprintf(o.out, "Played: %d  Won: %d  Lost: %d  Win rate: %.0f%%\n", s.Played, s.Won, s.Lost, s.WinRate*100)
	if s.BestSeconds != nil {
		fmt.Fprintf(o.out, "Best time: %ds\n", *s.BestSeconds)
	}
}

func (o *Output) printAutoplayReport(r AutoplayReport) {
	fmt.Fprintf(o.out, "Strategy: %s\n", r.Strategy)
	fmt.Fprintf(o.out, "Games: %d  Moves: %d\n", r.Games, r.Moves)
	o.printStats(r.Stats)
}
