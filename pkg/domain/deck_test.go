package domain_test

import (
	"testing"

	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeBlock_LineCount(t *testing.T) {
	assert.Equal(t, 0, domain.CodeBlock{Source: ""}.LineCount())
	assert.Equal(t, 1, domain.CodeBlock{Source: "one"}.LineCount())
	assert.Equal(t, 1, domain.CodeBlock{Source: "one\n"}.LineCount())
	assert.Equal(t, 3, domain.CodeBlock{Source: "a\nb\nc\n"}.LineCount())
}

func TestCodeBlock_ValidateRejectsOutOfBounds(t *testing.T) {
	block := domain.CodeBlock{
		Language:   "go",
		Source:     "a\nb\nc\n",
		Highlights: []domain.LineRange{{Start: 2, End: 5}},
	}

	err := block.Validate()
	require.Error(t, err)

	var rangeErr *domain.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 3, rangeErr.Lines)
}

func TestCodeBlock_ValidateAcceptsInBounds(t *testing.T) {
	block := domain.CodeBlock{
		Language:   "go",
		Source:     "a\nb\nc\n",
		Highlights: []domain.LineRange{{Start: 1, End: 1}, {Start: 2, End: 3}},
	}
	assert.NoError(t, block.Validate())
}

func TestCodeBlock_Highlighted(t *testing.T) {
	block := domain.CodeBlock{
		Source:     "a\nb\nc\nd\n",
		Highlights: []domain.LineRange{{Start: 2, End: 3}},
	}
	assert.False(t, block.Highlighted(1))
	assert.True(t, block.Highlighted(2))
	assert.True(t, block.Highlighted(3))
	assert.False(t, block.Highlighted(4))
}

func TestDeck_ValidateEmpty(t *testing.T) {
	deck := &domain.Deck{Title: "empty"}
	assert.ErrorIs(t, deck.Validate(), domain.ErrEmptyDeck)
}

func TestDeck_ValidateDuplicateIDs(t *testing.T) {
	deck := &domain.Deck{
		Slides: []domain.Slide{
			{ID: "a", Steps: []domain.Step{{Body: "x"}}},
			{ID: "a", Steps: []domain.Step{{Body: "y"}}},
		},
	}
	err := deck.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate slide ID")
}

func TestLineRange_String(t *testing.T) {
	assert.Equal(t, "3", domain.LineRange{Start: 3, End: 3}.String())
	assert.Equal(t, "2-5", domain.LineRange{Start: 2, End: 5}.String())
}
