package cli

import (
	"os"
	"strconv"

	"github.com/mcoot/minesweeper/internal/model"
)

// Board limits for the terminal front end
const (
	MinRows      = model.MinDimension
	MaxRows      = 40
	MinCols      = model.MinDimension
	MaxCols      = 60
	DefaultRows  = 9
	DefaultCols  = 9
	DefaultMines = 10
)

// Config holds CLI configuration
type Config struct {
	Rows    int
	Cols    int
	Mines   int
	Preset  string
	Seed    uint64 // 0 picks an unseeded random source
	Output  string
	Verbose bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Rows:    getEnvIntOrDefault("MINESWEEPER_ROWS", DefaultRows),
		Cols:    getEnvIntOrDefault("MINESWEEPER_COLS", DefaultCols),
		Mines:   getEnvIntOrDefault("MINESWEEPER_MINES", DefaultMines),
		Preset:  os.Getenv("MINESWEEPER_PRESET"),
		Seed:    uint64(getEnvIntOrDefault("MINESWEEPER_SEED", 0)),
		Output:  getEnvOrDefault("MINESWEEPER_OUTPUT", "text"),
		Verbose: false,
	}
}

// GameConfig resolves the board to play: a named preset wins over explicit sizes
func (c *Config) GameConfig() (model.GameConfig, error) {
	if c.Preset != "" {
		preset, err := model.LookupPreset(c.Preset)
		if err != nil {
			return model.GameConfig{}, err
		}
		return preset.Config, nil
	}
	return ClampConfig(c.Rows, c.Cols, c.Mines), nil
}

// ClampConfig forces user-supplied sizes into the supported range.
// Mines are kept between 1 and rows*cols-9 so the first reveal always has room.
func ClampConfig(rows, cols, mines int) model.GameConfig {
	rows = clamp(rows, MinRows, MaxRows)
	cols = clamp(cols, MinCols, MaxCols)
	cfg := model.GameConfig{Rows: rows, Cols: cols}
	cfg.Mines = clamp(mines, 1, max(1, cfg.MaxMines()))
	return cfg
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return defaultVal
	}
	return n
}
