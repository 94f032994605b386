package chalk

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/loam"
	"github.com/chalkdeck/chalk/internal/runtime"
	loamAdapter "github.com/chalkdeck/chalk/pkg/adapters/loam"
	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/chalkdeck/chalk/pkg/ports"
)

// Engine is the high-level entry point for the Chalk library.
// It wraps the internal runtime and provides a simplified API for
// hosts: load a deck once, then navigate a session cursor through it.
type Engine struct {
	runtime *runtime.Engine
	loader  ports.DeckLoader
	logger  *slog.Logger
	Name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom DeckLoader, bypassing the default Loam
// initialization.
func WithLoader(l ports.DeckLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Chalk Engine and loads the deck wholesale.
// By default it uses a Loam repository at the given deck directory.
// If the WithLoader option is provided, deckPath can be empty and
// Loam is skipped.
func New(deckPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	// Apply options first to check if a loader is provided
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if deckPath == "" {
			return nil, fmt.Errorf("deckPath is required when no custom loader is provided")
		}

		absPath, err := filepath.Abs(deckPath)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}

		eng.Name = filepath.Base(absPath)

		// Strict mode keeps frontmatter numeric types consistent;
		// ReadOnly because authored content is never mutated.
		repo, err := loam.Init(absPath,
			loam.WithStrict(true),
			loam.WithReadOnly(true),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize loam: %w", err)
		}

		typedRepo := loam.NewTypedRepository[loamAdapter.SlideMetadata](repo)
		eng.loader = loamAdapter.New(typedRepo, absPath)
	} else if deckPath != "" {
		eng.Name = filepath.Base(deckPath)
	}

	// Ensure logger is initialized so we never pass nil downstream.
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("deck", eng.Name)
	}

	eng.runtime = runtime.NewEngine(eng.loader, runtime.WithLogger(eng.logger))

	if _, err := eng.runtime.Load(context.Background()); err != nil {
		return nil, err
	}

	return eng, nil
}

// Deck returns the loaded, validated deck.
func (e *Engine) Deck() *domain.Deck {
	return e.runtime.Deck()
}

// Start creates a fresh session state at the top of the deck.
func (e *Engine) Start(sessionID string) *domain.State {
	return domain.NewState(sessionID)
}

// Advance moves the session one reveal forward, clamped at the end.
// The input state is not mutated.
func (e *Engine) Advance(state *domain.State) *domain.State {
	next := state.Clone()
	next.Visit(e.runtime.Advance(state.Cursor))
	return next
}

// Rewind moves the session one reveal backward, clamped at the start.
func (e *Engine) Rewind(state *domain.State) *domain.State {
	next := state.Clone()
	next.Visit(e.runtime.Rewind(state.Cursor))
	return next
}

// Goto jumps the session to the first step of the given slide index,
// clamped to the deck boundaries.
func (e *Engine) Goto(state *domain.State, slide int) *domain.State {
	next := state.Clone()
	next.Visit(e.runtime.Goto(slide))
	return next
}

// Frame resolves the renderable view at the session's cursor.
func (e *Engine) Frame(state *domain.State) domain.Frame {
	return e.runtime.Frame(state.Cursor)
}

// FrameAt resolves the renderable view at an arbitrary cursor.
func (e *Engine) FrameAt(c domain.Cursor) domain.Frame {
	return e.runtime.Frame(c)
}

// Reload re-reads the deck from the loader, keeping the previous deck
// if loading fails. Used by watch mode during authoring.
func (e *Engine) Reload(ctx context.Context) (*domain.Deck, error) {
	return e.runtime.Reload(ctx)
}

// Watch returns a channel that signals when the underlying deck
// changes. Returns an error if the loader does not support watching.
func (e *Engine) Watch(ctx context.Context) (<-chan string, error) {
	return e.runtime.Watch(ctx)
}

// Loader returns the underlying DeckLoader used by the engine.
func (e *Engine) Loader() ports.DeckLoader {
	return e.loader
}
