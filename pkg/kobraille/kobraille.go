// File: kobraille.go
// Title: Single Conversion Entry Point
// Description: Composes lexer, parser and braille encoder into one pure
//              conversion function.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package kobraille

import (
	"github.com/msto63/kobraille/internal/braille"
	"github.com/msto63/kobraille/internal/mathexpr/parser"
)

// Convert transcribes text into braille. The first lexical or syntax error
// is returned unchanged and no partial output is produced.
func Convert(text string) (string, error) {
	tokens, err := parser.Tokenize(text)
	if err != nil {
		return "", err
	}
	tree, err := parser.Parse(tokens)
	if err != nil {
		return "", err
	}
	return braille.Encode(tree), nil
}

// MustConvert is like Convert but panics on error. It is intended for
// constant inputs in examples and tests.
func MustConvert(text string) string {
	out, err := Convert(text)
	if err != nil {
		panic(err)
	}
	return out
}
