// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     braille
// Description: Dot-number notation for braille cells
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package braille

import (
	"strings"
)

const (
	patternBase = 0x2800
	patternLast = 0x28FF
)

// IsCell reports whether r is a Unicode braille pattern
func IsCell(r rune) bool {
	return r >= patternBase && r <= patternLast
}

// CellDots returns the raised dots of a braille cell, e.g. "3456" for ⠼.
// The blank cell yields "0".
func CellDots(r rune) (string, bool) {
	if !IsCell(r) {
		return "", false
	}
	bits := r - patternBase
	if bits == 0 {
		return "0", true
	}
	var b strings.Builder
	for dot := 0; dot < 8; dot++ {
		if bits&(1<<dot) != 0 {
			b.WriteByte(byte('1' + dot))
		}
	}
	return b.String(), true
}

// Dots renders s in dot-number notation, one space-separated group per
// cell: "⠼⠁⠢" becomes "3456 1 26". Runes that are not braille cells are
// kept as their own group.
func Dots(s string) string {
	groups := make([]string, 0, len(s)/3)
	for _, r := range s {
		if dots, ok := CellDots(r); ok {
			groups = append(groups, dots)
		} else {
			groups = append(groups, string(r))
		}
	}
	return strings.Join(groups, " ")
}
