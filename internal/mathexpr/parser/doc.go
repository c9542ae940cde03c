// File: doc.go
// Title: Expression Parser Package Documentation
// Description: Implements the lexical analyzer and recursive descent parser
//              that turn arithmetic expression text into an expression tree.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial lexer and parser

/*
Package parser provides lexical analysis and parsing for arithmetic
expressions made of ASCII digits, + - * /, and parentheses.

Input may be wrapped in inline-math dollar signs; every '$' is removed and
surrounding whitespace trimmed before scanning, and all positions refer to
that normalized text.

The grammar, lowest precedence first:

	expression := term ( ('+' | '-') term )*
	term       := factor ( ('*' | '/') factor )*
	factor     := NUMBER | '(' expression ')'

Both binary levels fold to the left, so "1 - 2 - 3" groups as (1 - 2) - 3.
The first error aborts: the lexer returns *LexicalError and the parser
*SyntaxError, and no partial tree is ever returned.
*/
package parser
