package ports

import (
	"context"

	"github.com/chalkdeck/chalk/pkg/domain"
)

// CursorStore defines the interface for persisting presenter sessions.
// This enables "Stop & Resume" of a talk and lets remote surfaces
// (HTTP, MCP) share one cursor.
type CursorStore interface {
	// Save persists the state for a given session ID.
	Save(ctx context.Context, sessionID string, state *domain.State) error

	// Load retrieves the state for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.State, error)

	// Delete removes the state for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of known sessions.
	List(ctx context.Context) ([]string, error)
}
