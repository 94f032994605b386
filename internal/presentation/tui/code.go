package tui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/chalkdeck/chalk/pkg/domain"
)

const defaultCodeTheme = "monokai"

var (
	highlightMark = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24")).
			Render("▌ ")
	plainMark = "  "

	captionStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

// RenderCode renders a code block with chroma syntax colors and a
// gutter marker on emphasized lines. Terminal formatters cannot
// restyle individual lines, so emphasis lives in the gutter.
func RenderCode(block domain.CodeBlock, theme string) string {
	lexer := lexers.Get(block.Language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	if theme == "" {
		theme = defaultCodeTheme
	}
	style := styles.Get(theme)
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	colored := block.Source
	if iterator, err := lexer.Tokenise(nil, block.Source); err == nil {
		var buf bytes.Buffer
		if err := formatter.Format(&buf, style, iterator); err == nil {
			colored = buf.String()
		}
	}

	lines := strings.Split(strings.TrimSuffix(colored, "\n"), "\n")
	var sb strings.Builder
	for i, line := range lines {
		if block.Highlighted(i + 1) {
			sb.WriteString(highlightMark)
		} else {
			sb.WriteString(plainMark)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if block.Caption != "" {
		sb.WriteString(plainMark)
		sb.WriteString(captionStyle.Render(block.Caption))
		sb.WriteString("\n")
	}

	return sb.String()
}
