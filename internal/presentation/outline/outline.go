// Package outline renders a plain-text table of contents for a deck,
// used by the list command and by machine clients that want a cheap
// overview without pulling every slide.
package outline

import (
	"fmt"
	"strings"

	"github.com/chalkdeck/chalk/pkg/domain"
)

// Overlay marks dynamic session position on the outline.
type Overlay struct {
	Current int
	Visited []int
}

// Generate produces the outline. Each slide gets one line with its
// position, ID, optional title and step count; the overlay prefixes
// the current slide with a marker and visited slides with a check.
func Generate(deck *domain.Deck, overlay *Overlay) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s (%d slides)\n", deck.Title, len(deck.Slides)))
	if deck.Author != "" {
		sb.WriteString(fmt.Sprintf("by %s\n", deck.Author))
	}
	sb.WriteString("\n")

	visited := make(map[int]bool)
	if overlay != nil {
		for _, i := range overlay.Visited {
			visited[i] = true
		}
	}

	for i, slide := range deck.Slides {
		prefix := "  "
		switch {
		case overlay != nil && i == overlay.Current:
			prefix = "> "
		case visited[i]:
			prefix = "✓ "
		}

		line := fmt.Sprintf("%s%2d. %s", prefix, i+1, slide.ID)
		if slide.Title != "" {
			line += fmt.Sprintf(" · %s", slide.Title)
		}
		if n := slide.StepCount(); n > 1 {
			line += fmt.Sprintf(" (%d steps)", n)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}
