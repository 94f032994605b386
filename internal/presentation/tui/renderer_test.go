package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_PlainFallback(t *testing.T) {
	r := &Renderer{width: 80}

	out, err := r.Render("# Title")
	require.NoError(t, err)
	assert.Equal(t, "# Title\n", out)
}

func TestRenderer_ResizeKeepsWidthOnNoop(t *testing.T) {
	r, err := NewRenderer(80)
	require.NoError(t, err)

	r.Resize(0)
	assert.Equal(t, 80, r.Width())

	r.Resize(100)
	assert.Equal(t, 100, r.Width())
}
