package compiler

import (
	"testing"

	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileBody_SingleStep(t *testing.T) {
	steps, err := CompileBody("# Hello\n\nSome prose.")
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, "# Hello\n\nSome prose.", steps[0].Body)
	assert.Empty(t, steps[0].Blocks)
}

func TestCompileBody_SplitsOnStepMarker(t *testing.T) {
	body := "First reveal.\n<!--step-->\nSecond reveal.\n<!--step-->\nThird."
	steps, err := CompileBody(body)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, "First reveal.", steps[0].Body)
	assert.Equal(t, "Second reveal.", steps[1].Body)
	assert.Equal(t, "Third.", steps[2].Body)
}

func TestCompileBody_ExtractsFences(t *testing.T) {
	body := "Look:\n\n```go {hl=\"1\" caption=\"entry point\"}\npackage main\n\nfunc main() {}\n```\n\nDone."
	steps, err := CompileBody(body)
	require.NoError(t, err)
	require.Len(t, steps, 1)

	step := steps[0]
	assert.Equal(t, "Look:\n\n\nDone.", step.Body)
	require.Len(t, step.Blocks, 1)

	block := step.Blocks[0]
	assert.Equal(t, "go", block.Language)
	assert.Equal(t, "package main\n\nfunc main() {}\n", block.Source)
	assert.Equal(t, "entry point", block.Caption)
	assert.Equal(t, []domain.LineRange{{Start: 1, End: 1}}, block.Highlights)
}

func TestCompileBody_SingleQuotedAttributes(t *testing.T) {
	body := "```go {hl='2' caption='two words'}\nfunc a() {}\nfunc b() {}\n```"
	steps, err := CompileBody(body)
	require.NoError(t, err)
	require.Len(t, steps[0].Blocks, 1)

	block := steps[0].Blocks[0]
	assert.Equal(t, "two words", block.Caption)
	assert.Equal(t, []domain.LineRange{{Start: 2, End: 2}}, block.Highlights)
}

func TestCompileBody_MultipleBlocksKeepOrder(t *testing.T) {
	body := "```ts\ntype A = string\n```\n\n```ts\ntype B = number\n```"
	steps, err := CompileBody(body)
	require.NoError(t, err)
	require.Len(t, steps[0].Blocks, 2)
	assert.Contains(t, steps[0].Blocks[0].Source, "type A")
	assert.Contains(t, steps[0].Blocks[1].Source, "type B")
}

func TestCompileBody_UnterminatedFence(t *testing.T) {
	_, err := CompileBody("```go\nfunc main() {}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated code fence")
}

func TestCompileBody_UnknownAttribute(t *testing.T) {
	_, err := CompileBody("```go {wrap=true}\nx\n```")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown fence attribute")
}

func TestParseRanges(t *testing.T) {
	ranges, err := ParseRanges("2-4 7")
	require.NoError(t, err)
	assert.Equal(t, []domain.LineRange{{Start: 2, End: 4}, {Start: 7, End: 7}}, ranges)

	ranges, err = ParseRanges("1,3-5")
	require.NoError(t, err)
	assert.Equal(t, []domain.LineRange{{Start: 1, End: 1}, {Start: 3, End: 5}}, ranges)
}

func TestParseRanges_Invalid(t *testing.T) {
	for _, spec := range []string{"0", "4-2", "x", "2-y"} {
		_, err := ParseRanges(spec)
		assert.Error(t, err, "spec %q", spec)
	}
}

func TestParse_RejectsMissingID(t *testing.T) {
	p := NewParser()
	_, err := p.Parse([]byte(`{"title":"no id"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing ID")
}

func TestParse_DefaultsToOneStep(t *testing.T) {
	p := NewParser()
	slide, err := p.Parse([]byte(`{"id":"intro","title":"Intro"}`))
	require.NoError(t, err)
	assert.Equal(t, 1, slide.StepCount())
}

func TestParse_RejectsBadHighlight(t *testing.T) {
	p := NewParser()
	raw := `{"id":"code","steps":[{"body":"","blocks":[{"language":"go","source":"a\n","highlights":[{"start":1,"end":9}]}]}]}`
	_, err := p.Parse([]byte(raw))
	require.Error(t, err)

	var rangeErr *domain.RangeError
	assert.ErrorAs(t, err, &rangeErr)
}
