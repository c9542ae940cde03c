// File: doc.go
// Title: kobraille Package Documentation
// Description: Public entry points for transcribing arithmetic expressions
//              into Korean mathematical braille.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial package

/*
Package kobraille transcribes arithmetic expressions such as "$(2+3)*4$" into
Korean mathematical braille.

The pipeline has three stages: the lexer turns text into tokens, the parser
builds an expression tree and the braille encoder walks the tree and places a
number indicator (⠼) in front of every numeral run that opens a new numeric
context.

# Basic Usage

	out, err := kobraille.Convert("2 + 3 * 4")
	// out == "⠼⠃⠢⠼⠉⠡⠼⠙"

# Engine

The Engine adds logging, an input length limit and a detailed Result with
the tokens, the tree and its structure echo:

	engine, err := kobraille.New(kobraille.Options{Logger: logger})
	if err != nil {
		return err
	}
	res, err := engine.Convert("$10 - (2 * 3)$")
	fmt.Println(res.Structure) // (10 - [(2 * 3)])

# Errors

Invalid characters yield *parser.LexicalError and grammar violations
*parser.SyntaxError. Both are returned unchanged and report their code
through errors.CodeOf.
*/
package kobraille
