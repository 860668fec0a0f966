package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/minesweeper/internal/model"
)

const playHelp = `Commands:
  r <row> <col>   reveal a cell
  f <row> <col>   toggle a flag
  n               new game
  s               show statistics
  h               show this help
  q               quit
Rows and columns count from 0.`

// errQuit ends the play loop without reporting an error
var errQuit = errors.New("quit")

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		Long:  "Play minesweeper by typing commands, one per line.\n\n" + playHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gameCfg, err := cfg.GameConfig()
			if err != nil {
				return err
			}

			p := &playSession{
				ctx:     cmd.Context(),
				out:     NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()),
				timer:   NewTimer(app.Clock),
				gameCfg: gameCfg,
			}
			return p.run(cmd.InOrStdin())
		},
	}
}

type playSession struct {
	ctx     context.Context
	out     *Output
	timer   *Timer
	gameCfg model.GameConfig
}

func (p *playSession) run(in io.Reader) error {
	if err := p.newGame(); err != nil {
		return err
	}
	p.out.PrintMessage(playHelp)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		err := p.handle(fields[0], fields[1:])
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			p.out.PrintError(err)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return p.printStats()
}

func (p *playSession) handle(command string, args []string) error {
	switch strings.ToLower(command) {
	case "r", "reveal":
		pos, err := parsePosition(command, args)
		if err != nil {
			return err
		}
		board, _, err := app.SessionController.Reveal(p.ctx, model.DefaultSession, pos)
		if err != nil {
			return err
		}
		p.printBoard(board)
	case "f", "flag":
		pos, err := parsePosition(command, args)
		if err != nil {
			return err
		}
		board, _, err := app.SessionController.ToggleFlag(p.ctx, model.DefaultSession, pos)
		if err != nil {
			return err
		}
		p.printBoard(board)
	case "n", "new":
		return p.newGame()
	case "s", "stats":
		return p.printStats()
	case "h", "help", "?":
		p.out.PrintMessage(playHelp)
	case "q", "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, type h for help", command)
	}
	return nil
}

func (p *playSession) newGame() error {
	board, err := app.SessionController.NewGame(p.ctx, model.DefaultSession, p.gameCfg)
	if err != nil {
		return err
	}
	p.printBoard(board)
	return nil
}

func (p *playSession) printBoard(board *model.Board) {
	p.out.Print(NewBoardView(board, p.timer))
}

func (p *playSession) printStats() error {
	stats, err := app.SessionController.Stats(p.ctx)
	if err != nil {
		return err
	}
	p.out.Print(NewStatsView(stats))
	return nil
}

func parsePosition(command string, args []string) (model.Position, error) {
	if len(args) != 2 {
		return model.Position{}, fmt.Errorf("usage: %s <row> <col>", command)
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return model.Position{}, fmt.Errorf("invalid row %q", args[0])
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return model.Position{}, fmt.Errorf("invalid column %q", args[1])
	}
	return model.Position{Row: row, Col: col}, nil
}
