// ============================================================================
// leutils - Command line utilities
// ============================================================================
//
// Package:     tokenview
// Description: Styles for the interactive tokeniser view
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package tokenview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/leutils/internal/render"
)

// Color Palette - shared with the text renderer
var (
	ColorPrimary = render.ColorPrimary
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = render.ColorError
	ColorMuted   = render.ColorMuted
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	SuccessMarkStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorMarkStyle   = lipgloss.NewStyle().Foreground(ColorError)

	HistoryStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	HelpStyle    = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
)
