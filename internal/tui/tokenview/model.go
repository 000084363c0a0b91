// ============================================================================
// leutils - Command line utilities
// ============================================================================
//
// Package:     tokenview
// Description: Bubbletea model that tokenises a line while it is typed
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package tokenview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwstringx "github.com/msto63/leutils/foundation/utils/stringx"
	"github.com/msto63/leutils/internal/render"
)

// historyLines is the number of committed lines shown below the live view
const historyLines = 5

// Config holds tokenview configuration
type Config struct {
	Prompt      string
	HistorySize int
	Color       bool
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Prompt:      "> ",
		HistorySize: 50,
		Color:       true,
	}
}

// Model is the main Bubbletea model for the interactive view
type Model struct {
	// State
	width    int
	height   int
	quitting bool

	// Components
	input    textinput.Model
	renderer *render.TextRenderer

	// Tokenise state
	current     render.Result
	history     []render.Result
	historySize int
	recall      int // index into history while browsing with up/down, -1 otherwise
	committed   int
	failed      int

	color bool
}

// New creates a new tokenview model
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.Placeholder = `type a command line, e.g. cp -r "My Documents" --verbose`
	if cfg.Color {
		ti.PromptStyle = PromptStyle
	}
	ti.Focus()

	historySize := cfg.HistorySize
	if historySize < 0 {
		historySize = 0
	}

	return Model{
		input:       ti,
		renderer:    render.NewTextRenderer(render.Options{Color: cfg.Color}),
		current:     render.Tokenise(""),
		history:     []render.Result{},
		historySize: historySize,
		recall:      -1,
		color:       cfg.Color,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.commit()
			return m, nil
		case "up":
			m.browse(1)
			return m, nil
		case "down":
			m.browse(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - len(m.input.Prompt) - 1; w > 0 {
			m.input.Width = w
			// Recompute the visible window of the input
			m.input.SetCursor(m.input.Position())
		}
		// Panel border and padding take four columns
		m.renderer = m.renderer.WithWidth(msg.Width - 4)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.retokenise()
	return m, cmd
}

// commit appends the current line to the history and clears the input
func (m *Model) commit() {
	if mdwstringx.IsBlank(m.input.Value()) {
		return
	}

	m.committed++
	if m.current.Failed() {
		m.failed++
	}

	if m.historySize > 0 {
		m.history = append(m.history, m.current)
		if len(m.history) > m.historySize {
			m.history = m.history[len(m.history)-m.historySize:]
		}
	}

	m.input.Reset()
	m.recall = -1
	m.retokenise()
}

// browse moves through the history; step 1 goes back, -1 forward
func (m *Model) browse(step int) {
	if len(m.history) == 0 {
		return
	}

	next := m.recall + step
	switch {
	case next < 0:
		m.recall = -1
		m.input.Reset()
	case next >= len(m.history):
		return
	default:
		m.recall = next
		m.input.SetValue(m.history[len(m.history)-1-next].Input)
		m.input.CursorEnd()
	}
	m.retokenise()
}

func (m *Model) retokenise() {
	m.current = render.Tokenise(m.input.Value())
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.style(TitleStyle, "leutils tokeniser"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	body := strings.TrimSuffix(m.renderer.RenderBody(m.current), "\n")
	if m.color {
		panel := PanelStyle
		if m.width > 4 {
			panel = panel.Width(m.width - 2)
		}
		body = panel.Render(body)
	}
	b.WriteString(body)
	b.WriteString("\n")

	if len(m.history) > 0 {
		b.WriteString("\n")
		start := len(m.history) - historyLines
		if start < 0 {
			start = 0
		}
		for i := len(m.history) - 1; i >= start; i-- {
			b.WriteString(m.historyLine(m.history[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.style(StatusStyle, fmt.Sprintf("%d committed, %d failed", m.committed, m.failed)))
	b.WriteString("\n")
	b.WriteString(m.style(HelpStyle, "enter commit • ↑/↓ history • esc quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) historyLine(res render.Result) string {
	if res.Failed() {
		return m.style(ErrorMarkStyle, "✗") + " " + m.style(HistoryStyle, res.Input)
	}
	summary := fmt.Sprintf("%s  (%d args, %d flags, %d options)",
		res.Input, len(res.Arguments), len(res.Flags), len(res.Options))
	return m.style(SuccessMarkStyle, "✓") + " " + m.style(HistoryStyle, summary)
}

func (m Model) style(s lipgloss.Style, text string) string {
	if !m.color {
		return text
	}
	return s.Render(text)
}

// Current returns the result for the line being edited
func (m Model) Current() render.Result {
	return m.current
}

// History returns the committed results, oldest first
func (m Model) History() []render.Result {
	out := make([]render.Result, len(m.history))
	copy(out, m.history)
	return out
}

// Stats returns the number of committed and failed lines
func (m Model) Stats() (committed, failed int) {
	return m.committed, m.failed
}
