// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     render
// Description: Terminal rendering of conversion stages and errors
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	kbparser "github.com/msto63/kobraille/internal/mathexpr/parser"
	kberrors "github.com/msto63/kobraille/pkg/core/errors"
	"github.com/msto63/kobraille/pkg/kobraille"
)

// Tokens renders a token list on one line, e.g. "NUMBER(3) PLUS(+) EOF"
func Tokens(tokens []kbparser.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}

// Field renders one aligned "label value" row. Multi-line values keep
// their indentation.
func Field(label, value string, styles Styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, styles.Label.Render(label), value)
}

// Stages renders every stage of a conversion result
func Stages(res *kobraille.Result, styles Styles) string {
	rows := []string{
		Field("Input", styles.Value.Render(fmt.Sprintf("%q", res.Input)), styles),
		Field("Tokens", styles.Value.Render(Tokens(res.Tokens)), styles),
		Field("Tree", TreeString(res.Tree, styles), styles),
		Field("Structure", styles.Value.Render(res.Structure), styles),
		Field("Braille", styles.Braille.Render(res.Braille), styles),
		Field("Dots", styles.Dots.Render(res.Dots), styles),
	}
	return strings.Join(rows, "\n")
}

// Rule renders a horizontal separator
func Rule(width int, styles Styles) string {
	if width < 1 {
		width = 1
	}
	return styles.Rule.Render(strings.Repeat("━", width))
}

// Caret renders input with a marker under the rune at position
func Caret(input string, position int) string {
	runes := []rune(input)
	if position < 0 {
		position = 0
	}
	if position > len(runes) {
		position = len(runes)
	}
	return input + "\n" + strings.Repeat(" ", position) + "^"
}

// Error renders err with its code. Lexical and syntax errors also point at
// the offending position in input.
func Error(err error, input string, styles Styles) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Error.Render(fmt.Sprintf("[%s]", kberrors.CodeOf(err))))
	b.WriteString(" ")
	b.WriteString(err.Error())

	normalized := kbparser.Normalize(input)
	var lexErr *kbparser.LexicalError
	var synErr *kbparser.SyntaxError
	switch {
	case errors.As(err, &lexErr):
		b.WriteString("\n")
		b.WriteString(Caret(lexErr.Input, lexErr.Position))
	case errors.As(err, &synErr):
		b.WriteString("\n")
		b.WriteString(Caret(normalized, synErr.Position))
	}
	return b.String()
}
