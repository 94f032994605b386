package ports

import (
	"context"

	"github.com/chalkdeck/chalk/pkg/domain"
)

// DeckLoader defines how the engine retrieves authored content.
// This allows the storage layer (Loam, Memory) to be decoupled.
type DeckLoader interface {
	// Manifest returns the deck metadata and the ordered slide IDs.
	Manifest() (*domain.Manifest, error)

	// GetSlide retrieves the canonical (JSON) form of a slide by ID.
	// It returns the raw bytes, which the compiler will parse, or an
	// error wrapping domain.ErrSlideNotFound.
	GetSlide(id string) ([]byte, error)
}

// Watchable defines an interface for loaders that can notify about
// backend changes. This is typically used for hot-reload during
// authoring.
type Watchable interface {
	// Watch returns a channel that receives the ID of a changed slide.
	// It abstracts away the specific event details, signaling only
	// that a reload is required.
	Watch(ctx context.Context) (<-chan string, error)
}
