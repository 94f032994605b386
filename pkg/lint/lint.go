package lint

import (
	"fmt"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/chalkdeck/chalk/pkg/domain"
)

// Rule defines the contract for deck checks. Implementations inspect a
// loaded deck and report issues without mutating it.
type Rule interface {
	// Name returns the short identifier of the rule (e.g. "highlight-bounds").
	Name() string
	// Check inspects the deck and returns any issues found.
	Check(deck *domain.Deck) []Issue
}

// Severity classifies an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding of a rule, pinned to a slide.
type Issue struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	SlideID  string   `json:"slide_id,omitempty"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	where := i.SlideID
	if where == "" {
		where = "deck"
	}
	return fmt.Sprintf("[%s] %s: %s (%s)", i.Severity, where, i.Message, i.Rule)
}

// Run executes the rules against the deck and aggregates findings.
func Run(deck *domain.Deck, rules ...Rule) []Issue {
	var issues []Issue
	for _, rule := range rules {
		issues = append(issues, rule.Check(deck)...)
	}
	return issues
}

// Default returns the standard rule set applied by `chalk validate`.
func Default() []Rule {
	return []Rule{
		&NonEmptyRule{},
		&HighlightBoundsRule{},
		&KnownLanguageRule{},
		&OrphanNotesRule{},
	}
}

// HasErrors reports whether any issue is severity error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// --- Built-in Rules ---

// NonEmptyRule rejects decks without slides and slides without content.
type NonEmptyRule struct{}

func (r *NonEmptyRule) Name() string { return "non-empty" }

func (r *NonEmptyRule) Check(deck *domain.Deck) []Issue {
	if len(deck.Slides) == 0 {
		return []Issue{{
			Rule:     r.Name(),
			Severity: SeverityError,
			Message:  "deck has no slides",
		}}
	}

	var issues []Issue
	for _, slide := range deck.Slides {
		empty := true
		for _, step := range slide.Steps {
			if step.Body != "" || len(step.Blocks) > 0 {
				empty = false
				break
			}
		}
		if empty && slide.Title == "" {
			issues = append(issues, Issue{
				Rule:     r.Name(),
				Severity: SeverityWarning,
				SlideID:  slide.ID,
				Message:  "slide has no title, body or code",
			})
		}
	}
	return issues
}

// HighlightBoundsRule checks every highlight range against its block's
// source. Out-of-bounds ranges are errors: the deck must fail at load
// time, not render wrong.
type HighlightBoundsRule struct{}

func (r *HighlightBoundsRule) Name() string { return "highlight-bounds" }

func (r *HighlightBoundsRule) Check(deck *domain.Deck) []Issue {
	var issues []Issue
	for _, slide := range deck.Slides {
		for si, step := range slide.Steps {
			for bi, block := range step.Blocks {
				if err := block.Validate(); err != nil {
					issues = append(issues, Issue{
						Rule:     r.Name(),
						Severity: SeverityError,
						SlideID:  slide.ID,
						Message:  fmt.Sprintf("step %d, block %d: %v", si, bi, err),
					})
				}
			}
		}
	}
	return issues
}

// KnownLanguageRule warns when a code block declares a language chroma
// has no lexer for; it will render unstyled.
type KnownLanguageRule struct{}

func (r *KnownLanguageRule) Name() string { return "known-language" }

func (r *KnownLanguageRule) Check(deck *domain.Deck) []Issue {
	var issues []Issue
	for _, slide := range deck.Slides {
		for _, step := range slide.Steps {
			for _, block := range step.Blocks {
				if block.Language == "" {
					continue
				}
				if lexers.Get(block.Language) == nil {
					issues = append(issues, Issue{
						Rule:     r.Name(),
						Severity: SeverityWarning,
						SlideID:  slide.ID,
						Message:  fmt.Sprintf("no syntax highlighter for language '%s'", block.Language),
					})
				}
			}
		}
	}
	return issues
}

// OrphanNotesRule warns about notes on slides that have no audience
// content at all; usually a sign the slide body got lost in editing.
type OrphanNotesRule struct{}

func (r *OrphanNotesRule) Name() string { return "orphan-notes" }

func (r *OrphanNotesRule) Check(deck *domain.Deck) []Issue {
	var issues []Issue
	for _, slide := range deck.Slides {
		if slide.Notes == "" {
			continue
		}
		hasContent := slide.Title != ""
		for _, step := range slide.Steps {
			if step.Body != "" || len(step.Blocks) > 0 {
				hasContent = true
			}
		}
		if !hasContent {
			issues = append(issues, Issue{
				Rule:     r.Name(),
				Severity: SeverityWarning,
				SlideID:  slide.ID,
				Message:  "slide has speaker notes but no audience content",
			})
		}
	}
	return issues
}
