package outline

import (
	"testing"

	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func testDeck() *domain.Deck {
	return &domain.Deck{
		Title:  "Type Systems",
		Author: "ada",
		Slides: []domain.Slide{
			{ID: "intro", Title: "Welcome", Steps: []domain.Step{{Body: "hi"}}},
			{ID: "generics", Steps: []domain.Step{{Body: "a"}, {Body: "b"}}},
			{ID: "closing", Steps: []domain.Step{{Body: "bye"}}},
		},
	}
}

func TestGenerate_PlainOutline(t *testing.T) {
	out := Generate(testDeck(), nil)

	assert.Contains(t, out, "Type Systems (3 slides)")
	assert.Contains(t, out, "by ada")
	assert.Contains(t, out, "1. intro · Welcome")
	assert.Contains(t, out, "2. generics (2 steps)")
	assert.NotContains(t, out, ">")
}

func TestGenerate_OverlayMarksPosition(t *testing.T) {
	out := Generate(testDeck(), &Overlay{Current: 1, Visited: []int{0}})

	assert.Contains(t, out, "✓  1. intro")
	assert.Contains(t, out, ">  2. generics")
}
