package lint_test

import (
	"testing"

	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/chalkdeck/chalk/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CleanDeck(t *testing.T) {
	deck := &domain.Deck{
		Slides: []domain.Slide{
			{ID: "a", Title: "A", Steps: []domain.Step{{Body: "hello"}}},
		},
	}
	issues := lint.Run(deck, lint.Default()...)
	assert.Empty(t, issues)
}

func TestNonEmptyRule_EmptyDeckIsError(t *testing.T) {
	issues := lint.Run(&domain.Deck{}, &lint.NonEmptyRule{})
	require.Len(t, issues, 1)
	assert.Equal(t, lint.SeverityError, issues[0].Severity)
	assert.True(t, lint.HasErrors(issues))
}

func TestHighlightBoundsRule(t *testing.T) {
	deck := &domain.Deck{
		Slides: []domain.Slide{
			{ID: "code", Steps: []domain.Step{{
				Blocks: []domain.CodeBlock{{
					Language:   "go",
					Source:     "one\ntwo\n",
					Highlights: []domain.LineRange{{Start: 1, End: 9}},
				}},
			}}},
		},
	}

	issues := lint.Run(deck, &lint.HighlightBoundsRule{})
	require.Len(t, issues, 1)
	assert.Equal(t, lint.SeverityError, issues[0].Severity)
	assert.Equal(t, "code", issues[0].SlideID)
	assert.Contains(t, issues[0].Message, "highlight range")
}

func TestKnownLanguageRule(t *testing.T) {
	deck := &domain.Deck{
		Slides: []domain.Slide{
			{ID: "weird", Steps: []domain.Step{{
				Blocks: []domain.CodeBlock{{Language: "klingon", Source: "nuqneH\n"}},
			}}},
		},
	}

	issues := lint.Run(deck, &lint.KnownLanguageRule{})
	require.Len(t, issues, 1)
	assert.Equal(t, lint.SeverityWarning, issues[0].Severity)
	assert.False(t, lint.HasErrors(issues))
}

func TestOrphanNotesRule(t *testing.T) {
	deck := &domain.Deck{
		Slides: []domain.Slide{
			{ID: "ghost", Notes: "remember to breathe", Steps: []domain.Step{{}}},
		},
	}

	issues := lint.Run(deck, &lint.OrphanNotesRule{})
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "speaker notes")
}
