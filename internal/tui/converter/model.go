// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     converter
// Description: Bubbletea model converting expressions while typing
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package converter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/kobraille/internal/render"
	kblog "github.com/msto63/kobraille/pkg/core/log"
	"github.com/msto63/kobraille/pkg/kobraille"
)

// Config holds converter TUI configuration
type Config struct {
	Engine      *kobraille.Engine
	HistorySize int
	ShowDots    bool
	ShowTree    bool
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		HistorySize: 50,
		ShowDots:    true,
	}
}

// historyEntry is one committed conversion
type historyEntry struct {
	input  string
	result *kobraille.Result
	err    error
}

// Model is the main Bubbletea model for the converter
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Conversion state
	engine  *kobraille.Engine
	current *kobraille.Result
	err     error
	history []historyEntry

	// Display
	styles      render.Styles
	showDots    bool
	showTree    bool
	historySize int
}

// New creates a new converter model
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Ausdruck eingeben, z.B. (2 + 3) * 4"
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	engine := cfg.Engine
	if engine == nil {
		// Logging to the terminal would corrupt the alt screen
		engine, _ = kobraille.New(kobraille.Options{Logger: kblog.NewNop()})
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultConfig().HistorySize
	}

	return Model{
		input:       ti,
		engine:      engine,
		styles:      render.DefaultStyles(),
		showDots:    cfg.ShowDots,
		showTree:    cfg.ShowTree,
		historySize: cfg.HistorySize,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			m.commit()
			return m, nil

		case tea.KeyCtrlD:
			m.showDots = !m.showDots
			m.updateViewportContent()
			return m, nil

		case tea.KeyCtrlT:
			m.showTree = !m.showTree
			return m, nil

		case tea.KeyCtrlL:
			m.history = nil
			m.updateViewportContent()
			return m, nil

		case tea.KeyPgUp, tea.KeyPgDown:
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		if m.input.Value() != before {
			m.preview()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3  // Title panel
		inputHeight := 3   // Input panel
		previewHeight := 6 // Preview panel
		footerHeight := 1  // Help bar
		viewportHeight := msg.Height - headerHeight - inputHeight - previewHeight - footerHeight - 2
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - 8
		m.updateViewportContent()

	default:
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// preview converts the current input without committing it
func (m *Model) preview() {
	text := m.input.Value()
	if isBlank(text) {
		m.current, m.err = nil, nil
		return
	}
	m.current, m.err = m.engine.Convert(text)
}

// isBlank reports whether text holds nothing but delimiters and whitespace
func isBlank(text string) bool {
	return strings.TrimSpace(strings.ReplaceAll(text, "$", "")) == ""
}

// commit appends the current input to the history and clears the input
func (m *Model) commit() {
	text := m.input.Value()
	if isBlank(text) {
		return
	}
	m.preview()
	m.history = append(m.history, historyEntry{input: text, result: m.current, err: m.err})
	if len(m.history) > m.historySize {
		m.history = m.history[len(m.history)-m.historySize:]
	}

	m.input.Reset()
	m.current, m.err = nil, nil
	m.updateViewportContent()
	m.viewport.GotoBottom()
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	if len(m.history) == 0 {
		m.viewport.SetContent(HelpDescStyle.Render("Noch keine Umwandlungen. Enter übernimmt die Eingabe in den Verlauf."))
		return
	}

	lines := make([]string, 0, len(m.history))
	for i, h := range m.history {
		lines = append(lines, m.renderHistoryEntry(i+1, h))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m Model) renderHistoryEntry(n int, h historyEntry) string {
	prefix := HelpDescStyle.Render(fmt.Sprintf("%3d ", n))
	if h.err != nil {
		return prefix + h.input + "  " + m.styles.Error.Render(h.err.Error())
	}
	if h.result == nil {
		return prefix + h.input
	}
	line := prefix + h.input + "  →  " + m.styles.Braille.Render(h.result.Braille)
	if m.showDots {
		line += "  " + m.styles.Dots.Render("("+h.result.Dots+")")
	}
	return line
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade Konverter..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(InputPanelStyle.Width(m.width - 2).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(PreviewPanelStyle.Width(m.width - 2).Render(m.renderPreview()))
	b.WriteString("\n")
	b.WriteString(HistoryPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		SubHeaderStyle.Render("Korean mathematical braille"),
		strings.Repeat(" ", 3),
		RenderToggle("Punkte", m.showDots),
		" ",
		RenderToggle("Baum", m.showTree),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderPreview() string {
	switch {
	case m.err != nil:
		return render.Error(m.err, m.input.Value(), m.styles)
	case m.current == nil:
		return HelpDescStyle.Render("Die Umwandlung erscheint hier während der Eingabe.")
	}

	rows := []string{
		render.Field("Structure", m.styles.Value.Render(m.current.Structure), m.styles),
		render.Field("Braille", m.styles.Braille.Render(m.current.Braille), m.styles),
	}
	if m.showDots {
		rows = append(rows, render.Field("Dots", m.styles.Dots.Render(m.current.Dots), m.styles))
	}
	if m.showTree {
		rows = append(rows, render.Field("Tree", render.TreeString(m.current.Tree, m.styles), m.styles))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderHelpBar() string {
	keys := []struct{ key, desc string }{
		{"Enter", "übernehmen"},
		{"Ctrl+D", "Punkte"},
		{"Ctrl+T", "Baum"},
		{"Ctrl+L", "Verlauf leeren"},
		{"PgUp/PgDn", "scrollen"},
		{"Esc", "beenden"},
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = HelpKeyStyle.Render(k.key) + " " + HelpDescStyle.Render(k.desc)
	}
	return strings.Join(parts, "  ")
}

// Run starts the converter TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
