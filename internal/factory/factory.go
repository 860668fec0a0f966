package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/minesweeper/internal/dependencies/clock"
	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/services/bot"
	"github.com/mcoot/minesweeper/internal/services/game"
	"github.com/mcoot/minesweeper/internal/services/minefield"
	"github.com/mcoot/minesweeper/internal/services/reveal"
	"github.com/mcoot/minesweeper/internal/services/session"
	"github.com/mcoot/minesweeper/internal/storage"
	"github.com/mcoot/minesweeper/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	MinefieldService  *minefield.Service
	Propagator        *reveal.Propagator
	GameController    *game.Controller
	SessionController *session.Controller
	BotService        *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Seed fixes mine layouts and bot choices when UseSeed is set
	Seed    uint64
	UseSeed bool
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var rnd random.Random = random.New()
	if cfg.UseSeed {
		rnd = random.NewSeeded(cfg.Seed)
	}

	return newWithDependencies(memory.New(), clock.New(), rnd, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	minefieldService := minefield.New(rnd, logger)
	propagator := reveal.New(logger)
	gameController := game.NewController(minefieldService, propagator, clk, logger)
	sessionController := session.NewController(store, gameController, logger)
	botService := bot.NewService(gameController, bot.DefaultStrategies(rnd), logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		MinefieldService:  minefieldService,
		Propagator:        propagator,
		GameController:    gameController,
		SessionController: sessionController,
		BotService:        botService,
	}
}
