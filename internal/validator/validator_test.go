package validator_test

import (
	"context"
	"testing"

	"github.com/chalkdeck/chalk/internal/validator"
	"github.com/chalkdeck/chalk/pkg/adapters/memory"
	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/chalkdeck/chalk/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDeck_CleanDeck(t *testing.T) {
	loader, err := dsl.New("t").
		Slide("intro").Title("Hello").Step("Welcome.").
		End().Build()
	require.NoError(t, err)

	res, err := validator.ValidateDeck(context.Background(), loader)
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, "deck is valid", res.Summary())
}

func TestValidateDeck_ReportsWarnings(t *testing.T) {
	loader, err := dsl.New("t").
		Slide("weird").Code("klingon", "nuqneH\n").
		End().Build()
	require.NoError(t, err)

	res, err := validator.ValidateDeck(context.Background(), loader)
	require.NoError(t, err)
	assert.True(t, res.OK(), "warnings alone must not fail validation")
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "known-language", res.Issues[0].Rule)
	assert.Contains(t, res.Summary(), "klingon")
}

func TestValidateLoaded_SkipsLoadStep(t *testing.T) {
	deck := &domain.Deck{
		Title: "t",
		Slides: []domain.Slide{
			{ID: "weird", Steps: []domain.Step{{
				Blocks: []domain.CodeBlock{{Language: "klingon", Source: "nuqneH\n"}},
			}}},
		},
	}

	res := validator.ValidateLoaded(deck)
	assert.True(t, res.OK(), "warnings alone must not fail validation")
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "known-language", res.Issues[0].Rule)
}

func TestValidateDeck_LoadFailureIsAnError(t *testing.T) {
	// A highlight range past the end of the source must already fail
	// at load time, before any rule runs.
	loader := memory.NewLoader(
		domain.Manifest{Title: "t", Slides: []string{"bad"}},
		map[string]string{
			"bad": `{"id":"bad","steps":[{"body":"","blocks":[{"language":"go","source":"one line\n","highlights":[{"start":5,"end":9}]}]}]}`,
		},
	)

	_, err := validator.ValidateDeck(context.Background(), loader)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load")
}
