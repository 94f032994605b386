/*
Package chalk is a deck model and terminal presenter for code-heavy
talks. It loads an authored deck (markdown slides plus a deck.yaml
manifest) wholesale at startup, validates it loudly, and then drives a
clamped navigation cursor through slides and their incremental reveal
steps.

# Concept

A deck is an ordered, immutable sequence of slides. Each slide holds
markup, optional speaker notes and annotated code blocks (language tag,
emphasized line ranges, caption), and may reveal itself in steps. The
engine owns the deck and the movement rules; hosts (the bundled TUI,
the HTTP server, an MCP client) own the I/O.

# Usage

	eng, err := chalk.New("./my-deck")
	if err != nil {
		log.Fatal(err)
	}

	state := eng.Start("rehearsal")
	for {
		frame := eng.Frame(state)
		fmt.Println(frame.Slide.Title)
		if frame.Last() {
			break
		}
		state = eng.Advance(state)
	}

Decks can also be built programmatically with pkg/dsl and injected via
WithLoader.
*/
package chalk
