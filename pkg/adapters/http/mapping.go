package http

import "github.com/chalkdeck/chalk/pkg/domain"

// Converters from the domain model to the generated API types. The
// domain stays the source of truth; the wire shape is fixed by
// api/openapi.yaml.

func cursorFromDomain(c domain.Cursor) Cursor {
	return Cursor{Slide: c.Slide, Step: c.Step}
}

func sessionFromDomain(s *domain.State) Session {
	out := Session{
		SessionId: s.SessionID,
		Cursor:    cursorFromDomain(s.Cursor),
	}
	if len(s.History) > 0 {
		history := make([]Cursor, 0, len(s.History))
		for _, c := range s.History {
			history = append(history, cursorFromDomain(c))
		}
		out.History = &history
	}
	return out
}

func blockFromDomain(b domain.CodeBlock) CodeBlock {
	out := CodeBlock{
		Language: b.Language,
		Source:   b.Source,
	}
	if b.Caption != "" {
		caption := b.Caption
		out.Caption = &caption
	}
	if len(b.Highlights) > 0 {
		ranges := make([]LineRange, 0, len(b.Highlights))
		for _, r := range b.Highlights {
			ranges = append(ranges, LineRange{Start: r.Start, End: r.End})
		}
		out.Highlights = &ranges
	}
	return out
}

func stepFromDomain(s domain.Step) Step {
	out := Step{Body: s.Body}
	if len(s.Blocks) > 0 {
		blocks := make([]CodeBlock, 0, len(s.Blocks))
		for _, b := range s.Blocks {
			blocks = append(blocks, blockFromDomain(b))
		}
		out.Blocks = &blocks
	}
	return out
}

func slideFromDomain(s domain.Slide) Slide {
	out := Slide{
		Id:    s.ID,
		Steps: make([]Step, 0, len(s.Steps)),
	}
	for _, step := range s.Steps {
		out.Steps = append(out.Steps, stepFromDomain(step))
	}
	if s.Title != "" {
		title := s.Title
		out.Title = &title
	}
	if s.Notes != "" {
		notes := s.Notes
		out.Notes = &notes
	}
	if len(s.Metadata) > 0 {
		meta := s.Metadata
		out.Metadata = &meta
	}
	return out
}

func frameFromDomain(f domain.Frame) Frame {
	out := Frame{
		SlideIndex: f.SlideIndex,
		SlideCount: f.SlideCount,
		StepIndex:  f.StepIndex,
		StepCount:  f.StepCount,
	}
	if f.Slide != nil {
		out.Slide = slideFromDomain(*f.Slide)
	}
	if f.Step != nil {
		step := stepFromDomain(*f.Step)
		out.Step = &step
	}
	return out
}

func deckSummaryFromDomain(d *domain.Deck) DeckSummary {
	out := DeckSummary{
		Title:  d.Title,
		Slides: make([]SlideSummary, 0, len(d.Slides)),
	}
	if d.Author != "" {
		author := d.Author
		out.Author = &author
	}
	if d.Theme != "" {
		theme := d.Theme
		out.Theme = &theme
	}
	for _, slide := range d.Slides {
		summary := SlideSummary{
			Id:    slide.ID,
			Steps: slide.StepCount(),
		}
		if slide.Title != "" {
			title := slide.Title
			summary.Title = &title
		}
		out.Slides = append(out.Slides, summary)
	}
	return out
}
