package domain

// Cursor is the current position in a deck: slide index and step index
// within that slide. Both are zero-based. It is the only thing that
// moves during a presentation; the deck itself is read-only.
type Cursor struct {
	Slide int `json:"slide"`
	Step  int `json:"step"`
}

// Advance returns the cursor one reveal forward: the next step of the
// current slide, or step 0 of the next slide once the slide is
// exhausted. Advancing past the end of the deck is a no-op.
func Advance(d *Deck, c Cursor) Cursor {
	c = Clamp(d, c)
	slide := d.SlideAt(c.Slide)
	if slide == nil {
		return c
	}
	if c.Step < slide.StepCount()-1 {
		c.Step++
		return c
	}
	if c.Slide < len(d.Slides)-1 {
		c.Slide++
		c.Step = 0
	}
	return c
}

// Rewind returns the cursor one reveal backward: the previous step, or
// the last step of the previous slide. Rewinding past the start of the
// deck is a no-op.
func Rewind(d *Deck, c Cursor) Cursor {
	c = Clamp(d, c)
	if c.Step > 0 {
		c.Step--
		return c
	}
	if c.Slide > 0 {
		c.Slide--
		c.Step = d.Slides[c.Slide].StepCount() - 1
	}
	return c
}

// Goto jumps to step 0 of the given slide index, clamped to the deck
// boundaries.
func Goto(d *Deck, slide int) Cursor {
	return Clamp(d, Cursor{Slide: slide})
}

// Clamp constrains a cursor to valid deck coordinates.
func Clamp(d *Deck, c Cursor) Cursor {
	if len(d.Slides) == 0 {
		return Cursor{}
	}
	if c.Slide < 0 {
		c.Slide = 0
	}
	if c.Slide > len(d.Slides)-1 {
		c.Slide = len(d.Slides) - 1
	}
	if c.Step < 0 {
		c.Step = 0
	}
	if max := d.Slides[c.Slide].StepCount() - 1; c.Step > max {
		c.Step = max
	}
	return c
}

// Frame is the renderable view of a cursor position: the slide, the
// visible step, and enough coordinates for a host to draw progress.
type Frame struct {
	Slide *Slide `json:"slide"`
	Step  *Step  `json:"step"`

	SlideIndex int `json:"slide_index"`
	SlideCount int `json:"slide_count"`
	StepIndex  int `json:"step_index"`
	StepCount  int `json:"step_count"`
}

// FrameAt resolves the frame for a cursor, clamping first.
func FrameAt(d *Deck, c Cursor) Frame {
	c = Clamp(d, c)
	slide := d.SlideAt(c.Slide)
	f := Frame{
		Slide:      slide,
		SlideIndex: c.Slide,
		SlideCount: len(d.Slides),
		StepIndex:  c.Step,
	}
	if slide != nil {
		f.StepCount = slide.StepCount()
		if c.Step < len(slide.Steps) {
			f.Step = &slide.Steps[c.Step]
		}
	}
	return f
}

// Cursor returns the clamped deck coordinates of the frame.
func (f Frame) Cursor() Cursor {
	return Cursor{Slide: f.SlideIndex, Step: f.StepIndex}
}

// First reports whether the frame is the very first reveal of the deck.
func (f Frame) First() bool { return f.SlideIndex == 0 && f.StepIndex == 0 }

// Last reports whether the frame is the final reveal of the deck.
func (f Frame) Last() bool {
	return f.SlideIndex == f.SlideCount-1 && f.StepIndex == f.StepCount-1
}
