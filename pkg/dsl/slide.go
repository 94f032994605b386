package dsl

import "github.com/chalkdeck/chalk/pkg/domain"

// SlideBuilder configures one slide of the deck.
type SlideBuilder struct {
	parent *Builder
	slide  domain.Slide
}

// Title sets the slide title.
func (sb *SlideBuilder) Title(title string) *SlideBuilder {
	sb.slide.Title = title
	return sb
}

// Notes sets the speaker notes.
func (sb *SlideBuilder) Notes(notes string) *SlideBuilder {
	sb.slide.Notes = notes
	return sb
}

// Step appends a reveal fragment with the given markup body.
func (sb *SlideBuilder) Step(body string) *SlideBuilder {
	sb.slide.Steps = append(sb.slide.Steps, domain.Step{Body: body})
	return sb
}

// Code appends a code block to the latest step, creating a first step
// if none exists yet.
func (sb *SlideBuilder) Code(language, source string, opts ...CodeOption) *SlideBuilder {
	block := domain.CodeBlock{Language: language, Source: source}
	for _, opt := range opts {
		opt(&block)
	}
	if len(sb.slide.Steps) == 0 {
		sb.slide.Steps = append(sb.slide.Steps, domain.Step{})
	}
	last := &sb.slide.Steps[len(sb.slide.Steps)-1]
	last.Blocks = append(last.Blocks, block)
	return sb
}

// End returns to the deck builder.
func (sb *SlideBuilder) End() *Builder {
	return sb.parent
}

// Slide starts the next slide, a convenience for fluent chains.
func (sb *SlideBuilder) Slide(id string) *SlideBuilder {
	return sb.parent.Slide(id)
}

func (sb *SlideBuilder) build() domain.Slide {
	slide := sb.slide
	if len(slide.Steps) == 0 {
		slide.Steps = []domain.Step{{}}
	}
	return slide
}

// CodeOption configures a code block.
type CodeOption func(*domain.CodeBlock)

// WithCaption sets the block caption.
func WithCaption(caption string) CodeOption {
	return func(b *domain.CodeBlock) {
		b.Caption = caption
	}
}

// WithHighlight adds an emphasized 1-based inclusive line range.
func WithHighlight(start, end int) CodeOption {
	return func(b *domain.CodeBlock) {
		b.Highlights = append(b.Highlights, domain.LineRange{Start: start, End: end})
	}
}
