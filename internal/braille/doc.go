// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     braille
// Description: Korean mathematical braille symbol table and tree encoder
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package braille transcribes expression trees into Korean mathematical
// braille.
//
// Symbol table:
//
//	number indicator  ⠼ (3456)
//	0 ⠚  1 ⠁  2 ⠃  3 ⠉  4 ⠙  5 ⠑  6 ⠋  7 ⠛  8 ⠓  9 ⠊
//	+ ⠢ (26)   - ⠔ (35)   * ⠡ (16)   / ⠌⠌ (34 34)
//	( ⠦ (236)  ) ⠴ (356)
//
// A numeral run is marked with the number indicator whenever it opens a new
// numeric context: at the start of the expression, right after an operator
// and right after an opening parenthesis. The encoder threads that context
// through the tree as a value, so encoding any subtree is independent of
// every other call.
package braille
