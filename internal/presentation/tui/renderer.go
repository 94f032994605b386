package tui

import (
	"github.com/charmbracelet/glamour"
)

// Renderer turns slide markdown into styled terminal output using
// glamour. It is rebuilt on terminal resize so word wrap tracks the
// window width.
type Renderer struct {
	width int
	term  *glamour.TermRenderer
}

// NewRenderer creates a markdown renderer wrapped at the given width.
// Auto style detects light/dark backgrounds at startup.
func NewRenderer(width int) (*Renderer, error) {
	if width <= 0 {
		width = 80
	}
	term, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{width: width, term: term}, nil
}

// Render renders a markdown fragment. Without a glamour renderer the
// markdown passes through unstyled.
func (r *Renderer) Render(markdown string) (string, error) {
	if r.term == nil {
		return markdown + "\n", nil
	}
	return r.term.Render(markdown)
}

// Resize rebuilds the underlying glamour renderer for a new width.
// A failed rebuild keeps the previous width.
func (r *Renderer) Resize(width int) {
	if width <= 0 || width == r.width {
		return
	}
	term, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return
	}
	r.width = width
	r.term = term
}

// Width returns the current wrap width.
func (r *Renderer) Width() int {
	return r.width
}
