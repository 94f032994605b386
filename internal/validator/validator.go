package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/chalkdeck/chalk/internal/runtime"
	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/chalkdeck/chalk/pkg/lint"
	"github.com/chalkdeck/chalk/pkg/ports"
)

// Result holds the outcome of a full deck validation run.
type Result struct {
	Deck   *domain.Deck
	Issues []lint.Issue
}

// OK reports whether the deck loaded and no rule raised an error.
// Warnings do not fail validation.
func (r *Result) OK() bool {
	return r.Deck != nil && !lint.HasErrors(r.Issues)
}

// Summary renders the findings as a human-readable block, one issue
// per line, suitable for CLI output.
func (r *Result) Summary() string {
	if len(r.Issues) == 0 {
		return "deck is valid"
	}
	lines := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		lines = append(lines, issue.String())
	}
	return strings.Join(lines, "\n")
}

// ValidateDeck loads the whole deck from the loader and runs the given
// rules against it. A deck that fails to load at all is returned as an
// error; rule findings land in the Result.
func ValidateDeck(ctx context.Context, loader ports.DeckLoader, rules ...lint.Rule) (*Result, error) {
	engine := runtime.NewEngine(loader)

	deck, err := engine.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("deck failed to load: %w", err)
	}

	return ValidateLoaded(deck, rules...), nil
}

// ValidateLoaded runs the rules against a deck that is already in
// memory, skipping the load step.
func ValidateLoaded(deck *domain.Deck, rules ...lint.Rule) *Result {
	if len(rules) == 0 {
		rules = lint.Default()
	}
	return &Result{
		Deck:   deck,
		Issues: lint.Run(deck, rules...),
	}
}
