package cli

import (
	"fmt"
	"log/slog"

	chalk "github.com/chalkdeck/chalk"
	"github.com/chalkdeck/chalk/internal/logging"
)

// createEngine initializes a Chalk engine with standard CLI
// conventions: deck loading fails loudly before any UI starts.
func createEngine(opts RunOptions, logger *slog.Logger) (*chalk.Engine, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	engine, err := chalk.New(opts.DeckPath, chalk.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("error loading deck: %w", err)
	}

	return engine, nil
}

// NewLogger builds the CLI logger. Debug mode lowers the level;
// otherwise only warnings and errors surface, keeping stdout clean for
// the presentation itself.
func NewLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}
