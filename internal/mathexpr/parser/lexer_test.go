// File: lexer_test.go
// Title: Unit Tests for the Expression Lexer
// Description: Covers token kinds, rune positions, '$' normalization and
//              lexical error reporting.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial lexer tests

package parser

import (
	"errors"
	"reflect"
	"testing"

	kberrors "github.com/msto63/kobraille/pkg/core/errors"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty input",
			input: "",
			want:  []Token{{Type: TokenEOF, Position: 0}},
		},
		{
			name:  "whitespace only",
			input: " \t\n ",
			want:  []Token{{Type: TokenEOF, Position: 0}},
		},
		{
			name:  "simple sum",
			input: "12 + 3",
			want: []Token{
				{Type: TokenNumber, Value: "12", Position: 0},
				{Type: TokenPlus, Value: "+", Position: 3},
				{Type: TokenNumber, Value: "3", Position: 5},
				{Type: TokenEOF, Position: 6},
			},
		},
		{
			name:  "dollar delimiters are stripped before positions are counted",
			input: "$ (1+2) $",
			want: []Token{
				{Type: TokenLeftParen, Value: "(", Position: 0},
				{Type: TokenNumber, Value: "1", Position: 1},
				{Type: TokenPlus, Value: "+", Position: 2},
				{Type: TokenNumber, Value: "2", Position: 3},
				{Type: TokenRightParen, Value: ")", Position: 4},
				{Type: TokenEOF, Position: 5},
			},
		},
		{
			name:  "leading zeros kept verbatim",
			input: "007",
			want: []Token{
				{Type: TokenNumber, Value: "007", Position: 0},
				{Type: TokenEOF, Position: 3},
			},
		},
		{
			name:  "all operators",
			input: "1-2*3/4",
			want: []Token{
				{Type: TokenNumber, Value: "1", Position: 0},
				{Type: TokenMinus, Value: "-", Position: 1},
				{Type: TokenNumber, Value: "2", Position: 2},
				{Type: TokenStar, Value: "*", Position: 3},
				{Type: TokenNumber, Value: "3", Position: 4},
				{Type: TokenSlash, Value: "/", Position: 5},
				{Type: TokenNumber, Value: "4", Position: 6},
				{Type: TokenEOF, Position: 7},
			},
		},
		{
			name:  "positions count runes not bytes",
			input: "1\u00a0+\u00a02",
			want: []Token{
				{Type: TokenNumber, Value: "1", Position: 0},
				{Type: TokenPlus, Value: "+", Position: 2},
				{Type: TokenNumber, Value: "2", Position: 4},
				{Type: TokenEOF, Position: 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q)\n got  %v\n want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize_LexicalErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantChar  rune
		wantPos   int
		wantInput string
	}{
		{"ampersand", "3 & 4", '&', 2, "3 & 4"},
		{"letter first", "x", 'x', 0, "x"},
		{"after dollar strip", "$1 + y$", 'y', 4, "1 + y"},
		{"non-ASCII digit", "1 + ٣", '٣', 4, "1 + ٣"},
		{"decimal point", "1.5", '.', 1, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if tokens != nil {
				t.Errorf("expected no tokens, got %v", tokens)
			}

			var lexErr *LexicalError
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected *LexicalError, got %T (%v)", err, err)
			}
			if lexErr.Char != tt.wantChar {
				t.Errorf("Char = %q, want %q", lexErr.Char, tt.wantChar)
			}
			if lexErr.Position != tt.wantPos {
				t.Errorf("Position = %d, want %d", lexErr.Position, tt.wantPos)
			}
			if lexErr.Input != tt.wantInput {
				t.Errorf("Input = %q, want %q", lexErr.Input, tt.wantInput)
			}
			if code := kberrors.CodeOf(err); code != kberrors.CodeLexical {
				t.Errorf("CodeOf = %s, want %s", code, kberrors.CodeLexical)
			}
		})
	}
}

func TestLexer_NextTokenAfterEOF(t *testing.T) {
	l := NewLexer("7")
	if _, err := l.NextToken(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Type != TokenEOF || tok.Position != 1 {
			t.Errorf("call %d: got %+v, want EOF at 1", i, tok)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"$3+4$":         "3+4",
		"  $ 3 + 4 $  ": "3 + 4",
		"3$+$4":         "3+4",
		"":              "",
		"$$":            "",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToken_String(t *testing.T) {
	if got := (Token{Type: TokenNumber, Value: "42"}).String(); got != "NUMBER(42)" {
		t.Errorf("got %q", got)
	}
	if got := (Token{Type: TokenEOF}).String(); got != "EOF" {
		t.Errorf("got %q", got)
	}
	if got := TokenType(99).String(); got != "UNKNOWN" {
		t.Errorf("got %q", got)
	}
}
