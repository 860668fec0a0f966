package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/minesweeper/internal/model"
)

func newAutoplayCmd() *cobra.Command {
	var (
		strategyName string
		games        int
	)

	cmd := &cobra.Command{
		Use:   "autoplay",
		Short: "Let a bot play a run of games and report the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if games < 1 {
				return fmt.Errorf("games must be at least 1, got %d", games)
			}

			gameCfg, err := cfg.GameConfig()
			if err != nil {
				return err
			}
			strategy, err := app.BotService.Strategy(strategyName)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			moves := 0
			for range games {
				board, err := app.SessionController.NewGame(ctx, model.DefaultSession, gameCfg)
				if err != nil {
					return err
				}
				result, err := app.BotService.Play(ctx, board, strategy)
				if err != nil {
					return err
				}
				moves += len(result.Actions)
				if err := app.SessionController.Record(ctx, board); err != nil {
					return err
				}
			}

			stats, err := app.SessionController.Stats(ctx)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(AutoplayReport{
				Strategy: model.BotStrategyDisplayName(strategyName),
				Games:    games,
				Moves:    moves,
				Stats:    NewStatsView(stats),
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&strategyName, "strategy", "s", model.BotStrategyDeduction, "Bot strategy: random, deduction")
	cmd.Flags().IntVarP(&games, "games", "n", 10, "Number of games to play")

	return cmd
}
