package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyDeck is returned when a deck has no slides. A deck must be
// non-empty to be presentable.
var ErrEmptyDeck = errors.New("deck has no slides")

// ErrSlideNotFound is returned when a manifest references a slide that
// the loader cannot retrieve.
var ErrSlideNotFound = errors.New("slide not found")

// ErrSessionNotFound is returned when a session ID cannot be found in
// the store.
var ErrSessionNotFound = errors.New("session not found")

// RangeError reports a highlight range that falls outside the lines of
// its code block. It is raised at load time, never at render time.
type RangeError struct {
	Range LineRange
	Lines int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("highlight range %s outside source (1-%d)", e.Range, e.Lines)
}
