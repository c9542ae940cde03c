// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     render
// Description: Styles for terminal output of conversion stages
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette - shared with the TUI
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Styles groups every style used when rendering stages and trees
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Braille  lipgloss.Style
	Dots     lipgloss.Style
	Number   lipgloss.Style
	Operator lipgloss.Style
	Group    lipgloss.Style
	Branch   lipgloss.Style
	Edge     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Rule     lipgloss.Style
}

// DefaultStyles returns the colored styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Width(11),
		Value: lipgloss.NewStyle().
			Foreground(ColorText),
		Braille: lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true),
		Dots: lipgloss.NewStyle().
			Foreground(ColorTextDim),
		Number: lipgloss.NewStyle().
			Foreground(ColorSecondary),
		Operator: lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true),
		Group: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Branch: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Edge: lipgloss.NewStyle().
			Foreground(ColorTextDim),
		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Rule: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// PlainStyles returns styles without colors or attributes, for piping and
// tests. Label keeps its width so columns stay aligned.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:    plain,
		Label:    plain.Width(11),
		Value:    plain,
		Braille:  plain,
		Dots:     plain,
		Number:   plain,
		Operator: plain,
		Group:    plain,
		Branch:   plain,
		Edge:     plain,
		Success:  plain,
		Error:    plain,
		Rule:     plain,
	}
}
