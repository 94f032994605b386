package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chalkdeck/chalk/pkg/domain"
)

// Presenter is the engine surface the TUI drives. The root chalk
// Engine satisfies it.
type Presenter interface {
	Deck() *domain.Deck
	Advance(state *domain.State) *domain.State
	Rewind(state *domain.State) *domain.State
	Goto(state *domain.State, slide int) *domain.State
	Frame(state *domain.State) domain.Frame
	Reload(ctx context.Context) (*domain.Deck, error)
}

type deckChangedMsg struct {
	id string
}

type reloadDoneMsg struct {
	err error
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#fbbf24"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
	notesStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			Italic(true).
			Border(lipgloss.NormalBorder(), true, false, false, false)
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171"))
)

// Model is the bubbletea model for live presenting. It keeps a session
// state and translates keys into cursor movement; all deck semantics
// stay in the engine. Long slides scroll inside a viewport.
type Model struct {
	presenter Presenter
	state     *domain.State
	renderer  *Renderer
	viewport  viewport.Model

	width     int
	height    int
	showNotes bool

	changes <-chan string
	loadErr error
}

// ModelOption configures the presenter model.
type ModelOption func(*Model)

// WithChanges wires a deck change channel; each signal triggers a
// reload without losing the cursor.
func WithChanges(ch <-chan string) ModelOption {
	return func(m *Model) {
		m.changes = ch
	}
}

// NewModel creates the presenter model for a fresh session.
func NewModel(p Presenter, sessionID string, opts ...ModelOption) Model {
	renderer, err := NewRenderer(80)
	if err != nil {
		// Glamour could not detect a style; fall back to plain text.
		renderer = &Renderer{width: 80}
	}
	m := Model{
		presenter: p,
		state:     domain.NewState(sessionID),
		renderer:  renderer,
		viewport:  viewport.New(80, 22),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.viewport.SetContent(m.renderBody())
	return m
}

func (m Model) Init() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return waitForChange(m.changes)
}

func waitForChange(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		id, ok := <-ch
		if !ok {
			return nil
		}
		return deckChangedMsg{id: id}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer.Resize(msg.Width - 4)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 1)
		m.viewport.SetContent(m.renderBody())
		return m, nil

	case deckChangedMsg:
		return m, tea.Batch(
			func() tea.Msg {
				_, err := m.presenter.Reload(context.Background())
				return reloadDoneMsg{err: err}
			},
			waitForChange(m.changes),
		)

	case reloadDoneMsg:
		m.loadErr = msg.err
		// The deck may have shrunk; re-resolving the frame clamps the
		// cursor back into range.
		m.state.Cursor = m.presenter.Frame(m.state).Cursor()
		m.viewport.SetContent(m.renderBody())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", " ", "enter", "j", "l":
			m.state = m.presenter.Advance(m.state)
		case "left", "h", "k":
			m.state = m.presenter.Rewind(m.state)
		case "g", "home":
			m.state = m.presenter.Goto(m.state, 0)
		case "G", "end":
			m.state = m.presenter.Goto(m.state, len(m.presenter.Deck().Slides)-1)
		case "n":
			m.showNotes = !m.showNotes
		default:
			// Everything else (up/down/pgup/pgdn) scrolls the body.
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.viewport.SetContent(m.renderBody())
		m.viewport.GotoTop()
		return m, nil
	}
	return m, nil
}

// renderBody assembles the visible slide content: every step up to
// the cursor stays on screen, code blocks follow their step's markup.
func (m Model) renderBody() string {
	frame := m.presenter.Frame(m.state)
	deck := m.presenter.Deck()

	var sb strings.Builder
	for i := 0; i <= frame.StepIndex && i < len(frame.Slide.Steps); i++ {
		step := frame.Slide.Steps[i]
		if step.Body != "" {
			body, err := m.renderer.Render(step.Body)
			if err != nil {
				body = step.Body + "\n"
			}
			sb.WriteString(body)
		}
		for _, block := range step.Blocks {
			sb.WriteString("\n")
			sb.WriteString(RenderCode(block, deck.Theme))
		}
	}

	if m.showNotes && frame.Slide.Notes != "" {
		sb.WriteString("\n")
		sb.WriteString(notesStyle.Render(frame.Slide.Notes))
		sb.WriteString("\n")
	}

	if m.loadErr != nil {
		sb.WriteString("\n")
		sb.WriteString(errStyle.Render(fmt.Sprintf("reload failed: %v", m.loadErr)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m Model) View() string {
	frame := m.presenter.Frame(m.state)
	deck := m.presenter.Deck()

	header := headerStyle.Render(deck.Title)
	if frame.Slide.Title != "" {
		header += "  " + titleStyle.Render(frame.Slide.Title)
	}

	footer := footerStyle.Render(fmt.Sprintf(
		"slide %d/%d · step %d/%d · ←/→ move · g/G jump · n notes · q quit",
		frame.SlideIndex+1, frame.SlideCount,
		frame.StepIndex+1, frame.StepCount,
	))

	return header + "\n\n" + m.viewport.View() + "\n" + footer
}
