package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chalkdeck/chalk/internal/presentation/tui"
	"github.com/chalkdeck/chalk/pkg/domain"
)

// RunHeadless drives the deck on plain stdio: each frame is printed,
// Enter advances, "b" rewinds, "q" quits. Useful for rehearsing over
// SSH or piping a deck through a pager.
func RunHeadless(opts RunOptions, in io.Reader, out io.Writer) error {
	logger := NewLogger(opts.Debug)

	engine, err := createEngine(opts, logger)
	if err != nil {
		return err
	}

	if !opts.Plain {
		tui.PrintBanner()
	}

	state := engine.Start(opts.SessionID)
	scanner := bufio.NewScanner(in)

	for {
		frame := engine.Frame(state)
		printFrame(out, engine.Deck(), frame, opts)

		if frame.Last() {
			fmt.Fprintln(out, "(end of deck)")
			return nil
		}

		if !scanner.Scan() {
			return scanner.Err()
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "q", "quit":
			return nil
		case "b", "back":
			state = engine.Rewind(state)
		default:
			state = engine.Advance(state)
		}
	}
}

func printFrame(out io.Writer, deck *domain.Deck, frame domain.Frame, opts RunOptions) {
	fmt.Fprintf(out, "\n== %s", deck.Title)
	if frame.Slide.Title != "" {
		fmt.Fprintf(out, " / %s", frame.Slide.Title)
	}
	fmt.Fprintf(out, " [%d/%d]\n\n", frame.SlideIndex+1, frame.SlideCount)

	for i := 0; i <= frame.StepIndex && i < len(frame.Slide.Steps); i++ {
		step := frame.Slide.Steps[i]
		if step.Body != "" {
			fmt.Fprintln(out, step.Body)
		}
		for _, block := range step.Blocks {
			if opts.Plain {
				printPlainBlock(out, block)
			} else {
				fmt.Fprint(out, tui.RenderCode(block, deck.Theme))
			}
		}
	}

	if opts.Notes && frame.Slide.Notes != "" {
		fmt.Fprintf(out, "\n-- notes --\n%s\n", frame.Slide.Notes)
	}

	fmt.Fprintf(out, "\n(step %d/%d · Enter=next, b=back, q=quit)\n",
		frame.StepIndex+1, frame.StepCount)
}

// printPlainBlock renders code without any escape sequences, marking
// emphasized lines with a ">" gutter.
func printPlainBlock(out io.Writer, block domain.CodeBlock) {
	fmt.Fprintln(out)
	lines := strings.Split(strings.TrimSuffix(block.Source, "\n"), "\n")
	for i, line := range lines {
		marker := "  "
		if block.Highlighted(i + 1) {
			marker = "> "
		}
		fmt.Fprintf(out, "    %s%s\n", marker, line)
	}
	if block.Caption != "" {
		fmt.Fprintf(out, "    (%s)\n", block.Caption)
	}
}
