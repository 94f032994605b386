package dsl_test

import (
	"testing"

	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/chalkdeck/chalk/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_AssemblesDeck(t *testing.T) {
	deck, err := dsl.New("Type Systems").
		Author("ada").
		Slide("intro").Title("Welcome").Step("Hello!").
		Slide("generics").
		Step("A constrained type parameter:").
		Code("go", "func Max[T cmp.Ordered](a, b T) T { return a }\n",
			dsl.WithCaption("generic max"),
			dsl.WithHighlight(1, 1)).
		End().Deck()

	require.NoError(t, err)
	assert.Equal(t, "Type Systems", deck.Title)
	require.Len(t, deck.Slides, 2)

	code := deck.Slides[1]
	require.Len(t, code.Steps, 1)
	require.Len(t, code.Steps[0].Blocks, 1)
	block := code.Steps[0].Blocks[0]
	assert.Equal(t, "generic max", block.Caption)
	assert.Equal(t, []domain.LineRange{{Start: 1, End: 1}}, block.Highlights)
}

func TestBuilder_CodeWithoutStepCreatesOne(t *testing.T) {
	deck, err := dsl.New("t").
		Slide("s").Code("go", "x\n").
		End().Deck()
	require.NoError(t, err)
	assert.Equal(t, 1, deck.Slides[0].StepCount())
}

func TestBuilder_ValidatesOnBuild(t *testing.T) {
	_, err := dsl.New("t").
		Slide("dup").Step("a").
		Slide("dup").Step("b").
		End().Deck()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate slide ID")
}

func TestBuilder_BuildProducesWorkingLoader(t *testing.T) {
	loader, err := dsl.New("t").
		Slide("only").Step("hi").
		End().Build()
	require.NoError(t, err)

	manifest, err := loader.Manifest()
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, manifest.Slides)
}
