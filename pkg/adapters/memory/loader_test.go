package memory_test

import (
	"testing"

	"github.com/chalkdeck/chalk/pkg/adapters/memory"
	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromDeck_RoundTrip(t *testing.T) {
	deck := &domain.Deck{
		Title: "demo",
		Slides: []domain.Slide{
			{ID: "a", Title: "A", Steps: []domain.Step{{Body: "hi"}}},
			{ID: "b", Steps: []domain.Step{{Body: "bye"}}},
		},
	}

	loader, err := memory.NewFromDeck(deck)
	require.NoError(t, err)

	manifest, err := loader.Manifest()
	require.NoError(t, err)
	assert.Equal(t, "demo", manifest.Title)
	assert.Equal(t, []string{"a", "b"}, manifest.Slides)

	raw, err := loader.GetSlide("a")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"A"`)
}

func TestNewFromDeck_MissingID(t *testing.T) {
	_, err := memory.NewFromDeck(&domain.Deck{Slides: []domain.Slide{{}}})
	assert.Error(t, err)
}

func TestGetSlide_NotFound(t *testing.T) {
	loader := memory.NewLoader(domain.Manifest{Slides: []string{"ghost"}}, nil)
	_, err := loader.GetSlide("ghost")
	assert.ErrorIs(t, err, domain.ErrSlideNotFound)
}
