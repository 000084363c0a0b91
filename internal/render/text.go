// ============================================================================
// leutils - Command line utilities
// ============================================================================
//
// Package:     render
// Description: Human readable table output for tokenise results
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/msto63/leutils/foundation/tokeniser"
)

// Color palette shared with the interactive view
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorFlag    = lipgloss.Color("#06B6D4") // Cyan
	ColorOption  = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Styles used by the text renderer
var (
	InputStyle  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	IndexStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	FlagStyle   = lipgloss.NewStyle().Foreground(ColorFlag)
	OptionStyle = lipgloss.NewStyle().Foreground(ColorOption)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
)

// Argument kinds shown in the text table
const (
	KindFlag   = "flag"
	KindOption = "option"
)

// minArgumentWidth keeps the argument column usable on narrow terminals
const minArgumentWidth = 8

// TextRenderer writes one aligned table per result
type TextRenderer struct {
	opts Options
}

// NewTextRenderer creates a text renderer
func NewTextRenderer(opts Options) *TextRenderer {
	return &TextRenderer{opts: opts}
}

// WithWidth returns a copy of the renderer using width
func (r *TextRenderer) WithWidth(width int) *TextRenderer {
	opts := r.opts
	opts.Width = width
	return &TextRenderer{opts: opts}
}

// Render implements Renderer
func (r *TextRenderer) Render(w io.Writer, results []Result) error {
	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteByte('\n')
		}
		r.writeResult(&b, res)
	}
	_, err := io.WriteString(w, b.String())
	return wrapEncodeErr(err, FormatText)
}

// RenderResult returns the text form of a single result
func (r *TextRenderer) RenderResult(res Result) string {
	var b strings.Builder
	r.writeResult(&b, res)
	return b.String()
}

// RenderBody returns the text form of a result without the input line
func (r *TextRenderer) RenderBody(res Result) string {
	var b strings.Builder
	r.writeBody(&b, res)
	return b.String()
}

func (r *TextRenderer) writeResult(b *strings.Builder, res Result) {
	b.WriteString(r.style(InputStyle, "$ "+res.Input))
	b.WriteByte('\n')
	r.writeBody(b, res)
}

func (r *TextRenderer) writeBody(b *strings.Builder, res Result) {
	if res.Failed() {
		b.WriteString("  " + r.style(ErrorStyle, "error: ") + res.Error)
		b.WriteByte('\n')
		return
	}

	if len(res.Arguments) == 0 {
		b.WriteString("  " + r.style(MutedStyle, "(no arguments)"))
		b.WriteByte('\n')
		return
	}

	indexWidth := len(strconv.Itoa(len(res.Arguments) - 1))
	argWidth := r.argumentWidth(res.Arguments, indexWidth)

	for i, arg := range res.Arguments {
		cell := Truncate(arg, argWidth)
		kind := Kind(arg)

		line := "  " + r.style(IndexStyle, fmt.Sprintf("%*d", indexWidth, i)) + "  "
		if kind == "" {
			line += cell
		} else {
			line += runewidth.FillRight(cell, argWidth) + "  " + r.kindStyle(kind)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// argumentWidth returns the width of the argument column
func (r *TextRenderer) argumentWidth(args []string, indexWidth int) int {
	widest := 0
	for _, arg := range args {
		if w := runewidth.StringWidth(arg); w > widest {
			widest = w
		}
	}

	if r.opts.Width <= 0 {
		return widest
	}

	// indent, index, gap, gap, kind column
	available := r.opts.Width - 2 - indexWidth - 2 - 2 - len(KindOption)
	if available < minArgumentWidth {
		available = minArgumentWidth
	}
	if widest > available {
		return available
	}
	return widest
}

func (r *TextRenderer) kindStyle(kind string) string {
	switch kind {
	case KindFlag:
		return r.style(FlagStyle, kind)
	case KindOption:
		return r.style(OptionStyle, kind)
	default:
		return kind
	}
}

func (r *TextRenderer) style(s lipgloss.Style, text string) string {
	if !r.opts.Color {
		return text
	}
	return s.Render(text)
}

// Kind returns "flag", "option" or "" for a plain argument
func Kind(arg string) string {
	switch {
	case tokeniser.IsFlag(arg):
		return KindFlag
	case tokeniser.IsOption(arg):
		return KindOption
	default:
		return ""
	}
}

// Truncate shortens value to width display columns, marking the cut with "..."
func Truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}

// TerminalWidth returns the column count of f, or 0 when f is not a terminal
func TerminalWidth(f *os.File) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
