package domain_test

import (
	"testing"

	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeSlideDeck mirrors the canonical scenario: plain slide, a slide
// with two code steps, plain slide.
func threeSlideDeck() *domain.Deck {
	return &domain.Deck{
		Title: "demo",
		Slides: []domain.Slide{
			{ID: "intro", Steps: []domain.Step{{Body: "hello"}}},
			{ID: "code", Steps: []domain.Step{
				{Body: "first reveal", Blocks: []domain.CodeBlock{{Language: "go", Source: "package main\n"}}},
				{Body: "second reveal", Blocks: []domain.CodeBlock{{Language: "go", Source: "func main() {}\n"}}},
			}},
			{ID: "outro", Steps: []domain.Step{{Body: "bye"}}},
		},
	}
}

func TestAdvance_WalksStepsThenSlides(t *testing.T) {
	deck := threeSlideDeck()

	c := domain.Cursor{}
	expected := []domain.Cursor{
		{Slide: 1, Step: 0},
		{Slide: 1, Step: 1},
		{Slide: 2, Step: 0},
		{Slide: 2, Step: 0}, // clamped at the end
	}
	for i, want := range expected {
		c = domain.Advance(deck, c)
		assert.Equal(t, want, c, "advance %d", i+1)
	}
}

func TestRewind_IsInverseOfAdvance(t *testing.T) {
	deck := threeSlideDeck()

	origin := domain.Cursor{}
	c := origin
	const n = 3 // stays inside the deck, no clamping
	for i := 0; i < n; i++ {
		c = domain.Advance(deck, c)
	}
	for i := 0; i < n; i++ {
		c = domain.Rewind(deck, c)
	}
	assert.Equal(t, origin, c)
}

func TestRewind_CrossesSlideBoundaryToLastStep(t *testing.T) {
	deck := threeSlideDeck()

	c := domain.Rewind(deck, domain.Cursor{Slide: 2, Step: 0})
	assert.Equal(t, domain.Cursor{Slide: 1, Step: 1}, c)
}

func TestRewind_ClampsAtStart(t *testing.T) {
	deck := threeSlideDeck()

	c := domain.Rewind(deck, domain.Cursor{})
	assert.Equal(t, domain.Cursor{}, c)
}

func TestGoto_Clamps(t *testing.T) {
	deck := threeSlideDeck()

	assert.Equal(t, domain.Cursor{Slide: 2}, domain.Goto(deck, 99))
	assert.Equal(t, domain.Cursor{Slide: 0}, domain.Goto(deck, -5))
	assert.Equal(t, domain.Cursor{Slide: 1}, domain.Goto(deck, 1))
}

func TestClamp_OutOfRangeStep(t *testing.T) {
	deck := threeSlideDeck()

	c := domain.Clamp(deck, domain.Cursor{Slide: 0, Step: 7})
	assert.Equal(t, domain.Cursor{Slide: 0, Step: 0}, c)
}

func TestFrameAt(t *testing.T) {
	deck := threeSlideDeck()

	f := domain.FrameAt(deck, domain.Cursor{Slide: 1, Step: 1})
	require.NotNil(t, f.Slide)
	require.NotNil(t, f.Step)
	assert.Equal(t, "code", f.Slide.ID)
	assert.Equal(t, "second reveal", f.Step.Body)
	assert.Equal(t, 3, f.SlideCount)
	assert.Equal(t, 2, f.StepCount)
	assert.False(t, f.First())
	assert.False(t, f.Last())

	assert.True(t, domain.FrameAt(deck, domain.Cursor{}).First())
	assert.True(t, domain.FrameAt(deck, domain.Cursor{Slide: 2}).Last())
}

func TestState_VisitRecordsHistory(t *testing.T) {
	deck := threeSlideDeck()
	st := domain.NewState("talk-1")

	st.Visit(domain.Advance(deck, st.Cursor))
	st.Visit(domain.Advance(deck, st.Cursor))
	assert.Len(t, st.History, 3)

	// Clamped moves are not recorded.
	at := st.Cursor
	st.Visit(at)
	assert.Len(t, st.History, 3)
}
