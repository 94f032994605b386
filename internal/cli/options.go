package cli

// RunOptions contains all the configuration shared by the presenting
// commands.
type RunOptions struct {
	DeckPath  string
	SessionID string
	Debug     bool
	Watch     bool
	Plain     bool
	Notes     bool
}
