package loam

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aretw0/loam"
	"github.com/chalkdeck/chalk/internal/testutils"
	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const introSlide = `---
id: intro
title: Welcome
notes: Greet the room.
---
Hello there.

<!--step-->

Still here.
`

const codeSlide = "---\nid: code\ntitle: Code\n---\nLook:\n\n```go {hl=\"2\" caption=\"the point\"}\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n```\n"

func newTestLoader(t *testing.T) *Loader {
	t.Helper()

	dir, repo := testutils.SetupDeckDir(t)
	testutils.WriteDeckFile(t, dir, "deck.yaml", `title: Test Deck
author: ada
slides:
  - intro
  - id: code
    title: Code
`)
	testutils.WriteDeckFile(t, dir, "intro.md", introSlide)
	testutils.WriteDeckFile(t, dir, "code.md", codeSlide)

	typed := loam.NewTypedRepository[SlideMetadata](repo)
	return New(typed, dir)
}

func TestManifest_ReadsDeckYaml(t *testing.T) {
	loader := newTestLoader(t)

	manifest, err := loader.Manifest()
	require.NoError(t, err)
	assert.Equal(t, "Test Deck", manifest.Title)
	assert.Equal(t, "ada", manifest.Author)
	assert.Equal(t, []string{"intro", "code"}, manifest.Slides)
}

func TestManifest_FallsBackToListing(t *testing.T) {
	dir, repo := testutils.SetupDeckDir(t)
	testutils.WriteDeckFile(t, dir, "intro.md", introSlide)
	testutils.WriteDeckFile(t, dir, "code.md", codeSlide)

	typed := loam.NewTypedRepository[SlideMetadata](repo)
	loader := New(typed, dir)

	manifest, err := loader.Manifest()
	require.NoError(t, err)
	// Lexical order when no manifest fixes it.
	assert.Equal(t, []string{"code", "intro"}, manifest.Slides)
}

func TestGetSlide_CompilesMarkdown(t *testing.T) {
	loader := newTestLoader(t)

	raw, err := loader.GetSlide("intro")
	require.NoError(t, err)

	var slide domain.Slide
	require.NoError(t, json.Unmarshal(raw, &slide))
	assert.Equal(t, "intro", slide.ID)
	assert.Equal(t, "Welcome", slide.Title)
	assert.Equal(t, "Greet the room.", slide.Notes)
	require.Len(t, slide.Steps, 2)
	assert.Contains(t, slide.Steps[0].Body, "Hello there.")
	assert.Contains(t, slide.Steps[1].Body, "Still here.")
}

func TestGetSlide_ExtractsCodeBlocks(t *testing.T) {
	loader := newTestLoader(t)

	raw, err := loader.GetSlide("code")
	require.NoError(t, err)

	var slide domain.Slide
	require.NoError(t, json.Unmarshal(raw, &slide))
	require.Len(t, slide.Steps, 1)
	require.Len(t, slide.Steps[0].Blocks, 1)

	block := slide.Steps[0].Blocks[0]
	assert.Equal(t, "go", block.Language)
	assert.Equal(t, "the point", block.Caption)
	assert.Equal(t, []domain.LineRange{{Start: 2, End: 2}}, block.Highlights)
	assert.Contains(t, block.Source, "fmt.Println")
}

func TestWatch_SignalsOnFileChange(t *testing.T) {
	dir, repo := testutils.SetupDeckDir(t)
	testutils.WriteDeckFile(t, dir, "intro.md", introSlide)

	typed := loam.NewTypedRepository[SlideMetadata](repo)
	loader := New(typed, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := loader.Watch(ctx)
	require.NoError(t, err)

	testutils.WriteDeckFile(t, dir, "intro.md", introSlide+"\nEdited.\n")

	select {
	case id, ok := <-ch:
		require.True(t, ok)
		assert.Contains(t, id, "intro")
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for watch event")
	}
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	dir, repo := testutils.SetupDeckDir(t)
	testutils.WriteDeckFile(t, dir, "intro.md", introSlide)

	typed := loam.NewTypedRepository[SlideMetadata](repo)
	loader := New(typed, dir)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := loader.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should close after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for channel close")
	}
}

func TestGetSlide_Missing(t *testing.T) {
	loader := newTestLoader(t)

	_, err := loader.GetSlide("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlideNotFound)
}
