package domain

import (
	"fmt"
	"strings"
)

// Deck is the unit of presentation: an ordered, non-empty sequence of
// slides plus authored metadata. Decks are loaded wholesale at startup
// and never mutated during a session.
type Deck struct {
	Title  string  `json:"title" yaml:"title"`
	Author string  `json:"author,omitempty" yaml:"author,omitempty"`
	Theme  string  `json:"theme,omitempty" yaml:"theme,omitempty"`
	Slides []Slide `json:"slides" yaml:"slides"`
}

// Manifest is the authored deck.yaml: deck metadata plus the ordered
// list of slide IDs. Order is presentation order and is significant.
type Manifest struct {
	Title  string   `json:"title" yaml:"title"`
	Author string   `json:"author,omitempty" yaml:"author,omitempty"`
	Theme  string   `json:"theme,omitempty" yaml:"theme,omitempty"`
	Slides []string `json:"slides" yaml:"slides"`
}

// Slide is a single visual unit. A slide always has at least one Step;
// a plain slide is a slide with exactly one step.
type Slide struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Steps are the reveal fragments shown incrementally within the
	// slide, in authored order.
	Steps []Step `json:"steps" yaml:"steps"`

	// Notes hold speaker notes. Never shown to the audience.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Metadata allows for extensible key-value pairs.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Step is one reveal fragment: markup plus the code blocks authored
// inside it.
type Step struct {
	Body   string      `json:"body" yaml:"body"`
	Blocks []CodeBlock `json:"blocks,omitempty" yaml:"blocks,omitempty"`
}

// CodeBlock is an embedded source snippet with a language tag for
// syntax highlighting, optional emphasized line ranges and an optional
// caption. Immutable once authored.
type CodeBlock struct {
	Language   string      `json:"language" yaml:"language"`
	Source     string      `json:"source" yaml:"source"`
	Caption    string      `json:"caption,omitempty" yaml:"caption,omitempty"`
	Highlights []LineRange `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// LineRange is a 1-based inclusive line interval.
type LineRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether the 1-based line n falls inside the range.
func (r LineRange) Contains(n int) bool {
	return n >= r.Start && n <= r.End
}

func (r LineRange) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// LineCount returns the number of lines in the block's source.
// A trailing newline does not count as an extra line.
func (b CodeBlock) LineCount() int {
	src := strings.TrimSuffix(b.Source, "\n")
	if src == "" {
		return 0
	}
	return strings.Count(src, "\n") + 1
}

// Highlighted reports whether the 1-based line n is inside any
// highlight range.
func (b CodeBlock) Highlighted(n int) bool {
	for _, r := range b.Highlights {
		if r.Contains(n) {
			return true
		}
	}
	return false
}

// Validate checks the block's highlight ranges against its source.
// Invalid ranges are rejected here, at load time, not at render time.
func (b CodeBlock) Validate() error {
	lines := b.LineCount()
	for _, r := range b.Highlights {
		if r.Start < 1 || r.End < r.Start || r.End > lines {
			return &RangeError{Range: r, Lines: lines}
		}
	}
	return nil
}

// StepCount returns the number of reveal fragments in the slide.
// A slide always counts at least one step.
func (s Slide) StepCount() int {
	if len(s.Steps) == 0 {
		return 1
	}
	return len(s.Steps)
}

// Validate checks slide-level invariants: an ID and valid code blocks.
func (s Slide) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("slide missing ID")
	}
	for si, step := range s.Steps {
		for bi, block := range step.Blocks {
			if err := block.Validate(); err != nil {
				return fmt.Errorf("slide %s, step %d, block %d: %w", s.ID, si, bi, err)
			}
		}
	}
	return nil
}

// Validate checks deck-level invariants: non-empty, unique slide IDs,
// valid slides.
func (d *Deck) Validate() error {
	if len(d.Slides) == 0 {
		return ErrEmptyDeck
	}
	seen := make(map[string]int, len(d.Slides))
	for i, s := range d.Slides {
		if err := s.Validate(); err != nil {
			return err
		}
		if prev, ok := seen[s.ID]; ok {
			return fmt.Errorf("duplicate slide ID '%s' (positions %d and %d)", s.ID, prev, i)
		}
		seen[s.ID] = i
	}
	return nil
}

// SlideAt returns the slide at the given index, or nil if out of range.
func (d *Deck) SlideAt(i int) *Slide {
	if i < 0 || i >= len(d.Slides) {
		return nil
	}
	return &d.Slides[i]
}
