// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     converter
// Description: Styles for the interactive converter TUI
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package converter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/kobraille/internal/render"
)

// Logo shown in the header
const Logo = "⠼ kobraille"

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(render.ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(render.ColorTextMuted).
			Italic(true)

	TitlePanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(render.ColorPrimary).
			Padding(0, 1)
)

// Panel styles
var (
	InputPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(render.ColorSecondary).
			Padding(0, 1)

	PreviewPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(render.ColorMuted).
				Padding(0, 1)

	HistoryPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(render.ColorMuted)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(render.ColorSecondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(render.ColorTextDim)

	ToggleOnStyle = lipgloss.NewStyle().
			Foreground(render.ColorSuccess)

	ToggleOffStyle = lipgloss.NewStyle().
			Foreground(render.ColorTextDim)
)

// RenderToggle renders a named on/off switch
func RenderToggle(name string, on bool) string {
	if on {
		return ToggleOnStyle.Render("[x] " + name)
	}
	return ToggleOffStyle.Render("[ ] " + name)
}
