package runtime_test

import (
	"context"
	"testing"

	"github.com/chalkdeck/chalk/internal/runtime"
	"github.com/chalkdeck/chalk/pkg/adapters/memory"
	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoader(t *testing.T) *memory.Loader {
	t.Helper()
	loader, err := memory.NewFromDeck(&domain.Deck{
		Title: "types",
		Slides: []domain.Slide{
			{ID: "intro", Title: "Intro", Steps: []domain.Step{{Body: "welcome"}}},
			{ID: "adt", Steps: []domain.Step{
				{Body: "sum types"},
				{Body: "product types", Blocks: []domain.CodeBlock{{
					Language:   "typescript",
					Source:     "type Point = { x: number }\n",
					Highlights: []domain.LineRange{{Start: 1, End: 1}},
				}}},
			}},
		},
	})
	require.NoError(t, err)
	return loader
}

func TestEngine_LoadAndNavigate(t *testing.T) {
	eng := runtime.NewEngine(testLoader(t))

	deck, err := eng.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, deck.Slides, 2)

	c := domain.Cursor{}
	c = eng.Advance(c)
	c = eng.Advance(c)
	assert.Equal(t, domain.Cursor{Slide: 1, Step: 1}, c)

	// Clamped at the end.
	assert.Equal(t, c, eng.Advance(c))

	frame := eng.Frame(c)
	require.NotNil(t, frame.Step)
	assert.Equal(t, "product types", frame.Step.Body)
	assert.True(t, frame.Last())
}

func TestEngine_LoadRejectsMissingSlide(t *testing.T) {
	loader := memory.NewLoader(domain.Manifest{
		Title:  "broken",
		Slides: []string{"ghost"},
	}, nil)

	_, err := runtime.NewEngine(loader).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlideNotFound)
}

func TestEngine_LoadRejectsEmptyDeck(t *testing.T) {
	loader := memory.NewLoader(domain.Manifest{Title: "empty"}, nil)

	_, err := runtime.NewEngine(loader).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyDeck)
}

func TestEngine_LoadRejectsBadHighlight(t *testing.T) {
	loader := memory.NewLoader(domain.Manifest{
		Title:  "bad",
		Slides: []string{"code"},
	}, map[string]string{
		"code": `{"id":"code","steps":[{"blocks":[{"language":"go","source":"one\n","highlights":[{"start":2,"end":4}]}]}]}`,
	})

	_, err := runtime.NewEngine(loader).Load(context.Background())
	require.Error(t, err)

	var rangeErr *domain.RangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestEngine_ReloadKeepsPreviousDeckOnFailure(t *testing.T) {
	// flakyLoader serves a valid deck once, then a broken manifest.
	loader := &flakyLoader{good: testLoader(t)}
	eng := runtime.NewEngine(loader)

	_, err := eng.Load(context.Background())
	require.NoError(t, err)

	loader.broken = true
	_, err = eng.Reload(context.Background())
	require.Error(t, err)
	assert.NotNil(t, eng.Deck(), "previous deck should survive a failed reload")
	assert.Equal(t, "types", eng.Deck().Title)
}

type flakyLoader struct {
	good   *memory.Loader
	broken bool
}

func (f *flakyLoader) Manifest() (*domain.Manifest, error) {
	if f.broken {
		return &domain.Manifest{Title: "broken", Slides: []string{"ghost"}}, nil
	}
	return f.good.Manifest()
}

func (f *flakyLoader) GetSlide(id string) ([]byte, error) {
	if f.broken {
		return nil, domain.ErrSlideNotFound
	}
	return f.good.GetSlide(id)
}
