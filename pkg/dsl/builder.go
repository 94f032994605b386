package dsl

import (
	"fmt"

	"github.com/chalkdeck/chalk/pkg/adapters/memory"
	"github.com/chalkdeck/chalk/pkg/domain"
)

// Builder constructs a deck programmatically, for hosts that embed
// Chalk rather than author markdown files.
type Builder struct {
	deck   domain.Deck
	slides []*SlideBuilder
}

// New creates a new deck builder.
func New(title string) *Builder {
	return &Builder{deck: domain.Deck{Title: title}}
}

// Author sets the deck author.
func (b *Builder) Author(author string) *Builder {
	b.deck.Author = author
	return b
}

// Theme sets the deck theme.
func (b *Builder) Theme(theme string) *Builder {
	b.deck.Theme = theme
	return b
}

// Slide appends a new slide and returns its builder.
func (b *Builder) Slide(id string) *SlideBuilder {
	sb := &SlideBuilder{
		parent: b,
		slide:  domain.Slide{ID: id},
	}
	b.slides = append(b.slides, sb)
	return sb
}

// Deck assembles and validates the deck.
func (b *Builder) Deck() (*domain.Deck, error) {
	deck := b.deck
	deck.Slides = make([]domain.Slide, 0, len(b.slides))
	for _, sb := range b.slides {
		deck.Slides = append(deck.Slides, sb.build())
	}
	if err := deck.Validate(); err != nil {
		return nil, err
	}
	return &deck, nil
}

// Build compiles the deck into a memory loader, ready for chalk.New.
func (b *Builder) Build() (*memory.Loader, error) {
	deck, err := b.Deck()
	if err != nil {
		return nil, err
	}
	loader, err := memory.NewFromDeck(deck)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return loader, nil
}
