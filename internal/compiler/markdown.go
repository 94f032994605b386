package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chalkdeck/chalk/pkg/domain"
)

// stepMarker separates reveal fragments inside one slide body.
const stepMarker = "<!--step-->"

// CompileBody turns an authored markdown body into ordered steps.
// Fragments are split on stepMarker lines; fenced code blocks are
// lifted out of each fragment into CodeBlocks, keeping their authored
// order. A body without markers compiles to a single step.
func CompileBody(body string) ([]domain.Step, error) {
	fragments := splitSteps(body)
	steps := make([]domain.Step, 0, len(fragments))
	for i, frag := range fragments {
		step, err := compileFragment(frag)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func splitSteps(body string) []string {
	lines := strings.Split(body, "\n")
	var fragments []string
	var current []string
	for _, line := range lines {
		if strings.TrimSpace(line) == stepMarker {
			fragments = append(fragments, strings.Join(current, "\n"))
			current = current[:0]
			continue
		}
		current = append(current, line)
	}
	fragments = append(fragments, strings.Join(current, "\n"))
	return fragments
}

// compileFragment extracts fenced code blocks from one fragment.
// The remaining markup becomes the step body.
func compileFragment(frag string) (domain.Step, error) {
	var (
		step     domain.Step
		text     []string
		fence    []string
		info     string
		inFence  bool
		fenceTok string
	)

	for _, line := range strings.Split(frag, "\n") {
		trimmed := strings.TrimSpace(line)

		if !inFence && strings.HasPrefix(trimmed, "```") {
			inFence = true
			fenceTok = fenceToken(trimmed)
			info = strings.TrimPrefix(trimmed, fenceTok)
			fence = fence[:0]
			continue
		}

		if inFence {
			if trimmed == fenceTok {
				block, err := buildBlock(info, strings.Join(fence, "\n"))
				if err != nil {
					return step, err
				}
				step.Blocks = append(step.Blocks, block)
				inFence = false
				continue
			}
			fence = append(fence, line)
			continue
		}

		text = append(text, line)
	}

	if inFence {
		return step, fmt.Errorf("unterminated code fence")
	}

	step.Body = strings.TrimSpace(strings.Join(text, "\n"))
	return step, nil
}

// fenceToken returns the run of backticks opening a fence, so that
// longer fences (````) can wrap shorter ones in the source.
func fenceToken(line string) string {
	n := 0
	for n < len(line) && line[n] == '`' {
		n++
	}
	return line[:n]
}

// buildBlock assembles a CodeBlock from a fence info string and its
// source. Info strings look like:
//
//	go {hl="2-4 7" caption="Generic max"}
//
// The language tag is mandatory for highlighting but may be empty.
func buildBlock(info, source string) (domain.CodeBlock, error) {
	if source != "" {
		source += "\n"
	}
	block := domain.CodeBlock{Source: source}

	info = strings.TrimSpace(info)
	lang, attrs := info, ""
	if i := strings.IndexByte(info, '{'); i >= 0 {
		lang = strings.TrimSpace(info[:i])
		rest := info[i+1:]
		j := strings.LastIndexByte(rest, '}')
		if j < 0 {
			return block, fmt.Errorf("unterminated attribute list in fence info '%s'", info)
		}
		attrs = rest[:j]
	}
	block.Language = lang

	for _, kv := range splitAttrs(attrs) {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return block, fmt.Errorf("malformed attribute '%s' in fence info", kv)
		}
		value = strings.Trim(value, `"'`)
		switch key {
		case "hl":
			ranges, err := ParseRanges(value)
			if err != nil {
				return block, err
			}
			block.Highlights = ranges
		case "caption":
			block.Caption = value
		default:
			return block, fmt.Errorf("unknown fence attribute '%s'", key)
		}
	}

	return block, nil
}

// splitAttrs splits `hl="2-4 7" caption="..."` on spaces, respecting
// single and double quotes.
func splitAttrs(attrs string) []string {
	var out []string
	var buf strings.Builder
	var quote rune
	for _, r := range attrs {
		switch {
		case quote == 0 && (r == '"' || r == '\''):
			quote = r
			buf.WriteRune(r)
		case r == quote:
			quote = 0
			buf.WriteRune(r)
		case r == ' ' && quote == 0:
			if buf.Len() > 0 {
				out = append(out, buf.String())
				buf.Reset()
			}
		default:
			buf.WriteRune(r)
		}
	}
	if buf.Len() > 0 {
		out = append(out, buf.String())
	}
	return out
}

// ParseRanges parses a highlight spec like "2-4 7" or "2-4,7" into
// line ranges. Bounds are checked later against the block source, at
// deck validation.
func ParseRanges(spec string) ([]domain.LineRange, error) {
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ' ' || r == ','
	})
	ranges := make([]domain.LineRange, 0, len(fields))
	for _, f := range fields {
		start, end, found := strings.Cut(f, "-")
		var r domain.LineRange
		var err error
		r.Start, err = strconv.Atoi(start)
		if err != nil {
			return nil, fmt.Errorf("invalid highlight range '%s': %w", f, err)
		}
		if found {
			r.End, err = strconv.Atoi(end)
			if err != nil {
				return nil, fmt.Errorf("invalid highlight range '%s': %w", f, err)
			}
		} else {
			r.End = r.Start
		}
		if r.Start < 1 || r.End < r.Start {
			return nil, fmt.Errorf("invalid highlight range '%s'", f)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}
