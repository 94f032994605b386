package memory

import (
	"encoding/json"
	"fmt"

	"github.com/chalkdeck/chalk/pkg/domain"
)

// Loader implements ports.DeckLoader using an in-memory map.
// It is the loader of choice for embedding and tests.
type Loader struct {
	manifest domain.Manifest
	slides   map[string][]byte
}

// NewLoader creates a Loader from a manifest and raw slide JSON.
func NewLoader(manifest domain.Manifest, slides map[string]string) *Loader {
	raw := make(map[string][]byte, len(slides))
	for k, v := range slides {
		raw[k] = []byte(v)
	}
	return &Loader{manifest: manifest, slides: raw}
}

// NewFromDeck creates a Loader from a fully built deck. This handles
// serialization automatically, improving DX for tests and the DSL.
func NewFromDeck(deck *domain.Deck) (*Loader, error) {
	l := &Loader{
		manifest: domain.Manifest{
			Title:  deck.Title,
			Author: deck.Author,
			Theme:  deck.Theme,
		},
		slides: make(map[string][]byte, len(deck.Slides)),
	}
	for _, s := range deck.Slides {
		if s.ID == "" {
			return nil, fmt.Errorf("slide missing ID")
		}
		bytes, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal slide %s: %w", s.ID, err)
		}
		l.manifest.Slides = append(l.manifest.Slides, s.ID)
		l.slides[s.ID] = bytes
	}
	return l, nil
}

// Manifest returns the deck metadata and ordered slide IDs.
func (l *Loader) Manifest() (*domain.Manifest, error) {
	m := l.manifest
	return &m, nil
}

// GetSlide retrieves the canonical form of a slide by ID.
func (l *Loader) GetSlide(id string) ([]byte, error) {
	content, ok := l.slides[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlideNotFound, id)
	}
	return content, nil
}
