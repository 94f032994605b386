package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chalkdeck/chalk/internal/presentation/tui"
	"golang.org/x/term"
)

// RunPresent starts the full-screen presenter. It refuses to start
// outside a TTY; the headless run command covers that case.
func RunPresent(opts RunOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; use 'chalk run' for non-interactive output")
	}

	logger := NewLogger(opts.Debug)

	engine, err := createEngine(opts, logger)
	if err != nil {
		return err
	}

	modelOpts := []tui.ModelOption{}
	if opts.Watch {
		changes, err := engine.Watch(context.Background())
		if err != nil {
			logger.Warn("watch unavailable, hot reload disabled", "err", err)
		} else {
			modelOpts = append(modelOpts, tui.WithChanges(changes))
		}
	}

	model := tui.NewModel(engine, opts.SessionID, modelOpts...)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("presenter error: %w", err)
	}
	return nil
}
