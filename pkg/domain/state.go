package domain

// State represents one presenter session: a named cursor plus the path
// taken through the deck. It is the only mutable entity in the system,
// and it never touches authored content.
type State struct {
	// SessionID names the presentation run (used as the storage key).
	SessionID string `json:"session_id"`

	// Cursor is the current (slide, step) position.
	Cursor Cursor `json:"cursor"`

	// History tracks visited positions, for resume and debugging.
	History []Cursor `json:"history,omitempty"`
}

// NewState creates a clean state at the top of the deck.
func NewState(sessionID string) *State {
	return &State{
		SessionID: sessionID,
		Cursor:    Cursor{},
		History:   []Cursor{{}},
	}
}

// Clone returns a copy with its own history slice, safe to mutate.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	next := *s
	next.History = make([]Cursor, len(s.History))
	copy(next.History, s.History)
	return &next
}

// Visit moves the state to a new cursor and records it. Recording is
// skipped when the cursor did not move (clamped at a boundary).
func (s *State) Visit(c Cursor) {
	if c == s.Cursor {
		return
	}
	s.Cursor = c
	s.History = append(s.History, c)
}
