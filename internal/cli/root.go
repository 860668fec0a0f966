package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/minesweeper/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "minesweeper",
		Short: "Terminal minesweeper",
		Long: `minesweeper plays the classic mine-clearing game in the terminal.

The first reveal of every game is always safe. Boards can be sized with
--rows, --cols and --mines or picked by name with --preset; --seed makes
mine layouts reproducible.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			app = factory.New(factory.Config{
				Logger:  logger,
				Seed:    cfg.Seed,
				UseSeed: cfg.Seed != 0,
			})
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().IntVar(&cfg.Rows, "rows", cfg.Rows, "Board rows (env: MINESWEEPER_ROWS)")
	rootCmd.PersistentFlags().IntVar(&cfg.Cols, "cols", cfg.Cols, "Board columns (env: MINESWEEPER_COLS)")
	rootCmd.PersistentFlags().IntVar(&cfg.Mines, "mines", cfg.Mines, "Mine count (env: MINESWEEPER_MINES)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Preset, "preset", "p", cfg.Preset, "Named board size, overrides rows/cols/mines (env: MINESWEEPER_PRESET)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for unseeded (env: MINESWEEPER_SEED)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: MINESWEEPER_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newPresetsCmd())
	rootCmd.AddCommand(newAutoplayCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
