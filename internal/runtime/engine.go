package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/chalkdeck/chalk/internal/compiler"
	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/chalkdeck/chalk/pkg/ports"
)

// Engine loads a deck wholesale from a loader, validates it, and
// answers navigation queries against it. The deck is immutable after
// Load; Reload swaps it atomically for hot-reload during authoring.
type Engine struct {
	loader ports.DeckLoader
	parser *compiler.Parser
	logger *slog.Logger

	deck *domain.Deck
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger for load/reload events.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a new engine with dependencies.
func NewEngine(loader ports.DeckLoader, opts ...EngineOption) *Engine {
	e := &Engine{
		loader: loader,
		parser: compiler.NewParser(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load fetches the manifest and every slide it references, parses and
// validates them, and keeps the assembled deck. Malformed content
// fails here, loudly, before anything is presented.
func (e *Engine) Load(ctx context.Context) (*domain.Deck, error) {
	manifest, err := e.loader.Manifest()
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}

	deck := &domain.Deck{
		Title:  manifest.Title,
		Author: manifest.Author,
		Theme:  manifest.Theme,
		Slides: make([]domain.Slide, 0, len(manifest.Slides)),
	}

	for _, id := range manifest.Slides {
		raw, err := e.loader.GetSlide(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load slide '%s': %w", id, err)
		}
		slide, err := e.parser.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse slide '%s': %w", id, err)
		}
		deck.Slides = append(deck.Slides, *slide)
	}

	if err := deck.Validate(); err != nil {
		return nil, err
	}

	e.deck = deck
	e.logger.Debug("deck loaded", "title", deck.Title, "slides", len(deck.Slides))
	return deck, nil
}

// Reload re-runs Load, keeping the previous deck if loading fails.
func (e *Engine) Reload(ctx context.Context) (*domain.Deck, error) {
	prev := e.deck
	deck, err := e.Load(ctx)
	if err != nil {
		e.deck = prev
		e.logger.Warn("deck reload failed, keeping previous deck", "err", err)
		return nil, err
	}
	return deck, nil
}

// Deck returns the currently loaded deck, or nil before Load.
func (e *Engine) Deck() *domain.Deck {
	return e.deck
}

// Advance moves the cursor one reveal forward, clamped at the end.
func (e *Engine) Advance(c domain.Cursor) domain.Cursor {
	return domain.Advance(e.deck, c)
}

// Rewind moves the cursor one reveal backward, clamped at the start.
func (e *Engine) Rewind(c domain.Cursor) domain.Cursor {
	return domain.Rewind(e.deck, c)
}

// Goto jumps to the first step of the given slide index, clamped.
func (e *Engine) Goto(slide int) domain.Cursor {
	return domain.Goto(e.deck, slide)
}

// Frame resolves the renderable view at a cursor.
func (e *Engine) Frame(c domain.Cursor) domain.Frame {
	return domain.FrameAt(e.deck, c)
}

// Watch returns a channel signaling that the underlying content
// changed. Returns an error if the loader does not support watching.
func (e *Engine) Watch(ctx context.Context) (<-chan string, error) {
	if w, ok := e.loader.(ports.Watchable); ok {
		return w.Watch(ctx)
	}
	return nil, fmt.Errorf("current loader does not support watching")
}
