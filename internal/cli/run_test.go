package cli

import (
	"strings"
	"testing"

	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestPrintFrame_PlainOutput(t *testing.T) {
	deck := &domain.Deck{
		Title: "Type Systems",
		Slides: []domain.Slide{{
			ID:    "generics",
			Title: "Generics",
			Notes: "mention type inference",
			Steps: []domain.Step{
				{Body: "A constrained parameter:"},
				{Blocks: []domain.CodeBlock{{
					Language:   "go",
					Source:     "func Max[T cmp.Ordered](a, b T) T {\n\treturn a\n}\n",
					Caption:    "still wrong",
					Highlights: []domain.LineRange{{Start: 2, End: 2}},
				}}},
			},
		}},
	}
	frame := domain.FrameAt(deck, domain.Cursor{Slide: 0, Step: 1})

	var sb strings.Builder
	printFrame(&sb, deck, frame, RunOptions{Plain: true, Notes: true})
	out := sb.String()

	// Cumulative reveal: the first step's body stays visible.
	assert.Contains(t, out, "A constrained parameter:")
	assert.Contains(t, out, "Type Systems / Generics [1/1]")
	assert.Contains(t, out, "> \treturn a")
	assert.Contains(t, out, "(still wrong)")
	assert.Contains(t, out, "mention type inference")
	assert.Contains(t, out, "step 2/2")
	assert.NotContains(t, out, "\x1b[", "plain mode must not emit escape codes")
}

func TestPrintFrame_HidesNotesByDefault(t *testing.T) {
	deck := &domain.Deck{
		Title: "t",
		Slides: []domain.Slide{{
			ID:    "s",
			Notes: "secret",
			Steps: []domain.Step{{Body: "visible"}},
		}},
	}
	frame := domain.FrameAt(deck, domain.Cursor{})

	var sb strings.Builder
	printFrame(&sb, deck, frame, RunOptions{Plain: true})

	assert.Contains(t, sb.String(), "visible")
	assert.NotContains(t, sb.String(), "secret")
}
