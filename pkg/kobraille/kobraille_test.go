// File: kobraille_test.go
// Title: Conversion Pipeline Tests
// Description: End-to-end tests of Convert covering output format,
//              precedence, grouping, normalization and error propagation.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial tests

package kobraille

import (
	"errors"
	"strings"
	"testing"

	"github.com/msto63/kobraille/internal/braille"
	kbast "github.com/msto63/kobraille/internal/mathexpr/ast"
	kbparser "github.com/msto63/kobraille/internal/mathexpr/parser"
	kberrors "github.com/msto63/kobraille/pkg/core/errors"
)

func TestConvert_DigitsOnly(t *testing.T) {
	for _, input := range []string{"0", "5", "42", "007", "1234567890"} {
		got, err := Convert(input)
		if err != nil {
			t.Fatalf("Convert(%q) error = %v", input, err)
		}

		want := braille.Indicator
		for _, d := range input {
			cell, _ := braille.DigitSymbol(d)
			want += cell
		}
		if got != want {
			t.Errorf("Convert(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestConvert_TwoOperands(t *testing.T) {
	tests := []struct {
		a, op, b string
	}{
		{"3", "+", "5"},
		{"10", "-", "3"},
		{"6", "*", "7"},
		{"8", "/", "2"},
		{"123", "/", "45"},
	}

	for _, tt := range tests {
		input := tt.a + " " + tt.op + " " + tt.b
		t.Run(input, func(t *testing.T) {
			got, err := Convert(input)
			if err != nil {
				t.Fatal(err)
			}
			a, _ := Convert(tt.a)
			b, _ := Convert(tt.b)
			op, _ := braille.OperatorSymbol(kbast.Operator(tt.op))
			if want := a + op + b; got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestConvert_Precedence(t *testing.T) {
	got, err := Convert("2 + 3 * 4")
	if err != nil {
		t.Fatal(err)
	}
	want := "⠼⠃" + "⠢" + "⠼⠉" + "⠡" + "⠼⠙"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if n := strings.Count(got, braille.Indicator); n != 3 {
		t.Errorf("indicator count = %d, want 3", n)
	}

	tree, err := kbparser.ParseString("2 + 3 * 4")
	if err != nil {
		t.Fatal(err)
	}
	if s := kbast.Structure(tree); s != "(2 + (3 * 4))" {
		t.Errorf("structure = %q", s)
	}
}

func TestConvert_LeftAssociativity(t *testing.T) {
	tree, err := kbparser.ParseString("1 - 2 - 3")
	if err != nil {
		t.Fatal(err)
	}
	if s := kbast.Structure(tree); s != "((1 - 2) - 3)" {
		t.Errorf("structure = %q", s)
	}
}

func TestConvert_Parenthesization(t *testing.T) {
	plain := MustConvert("2+3")
	grouped := MustConvert("(2+3)*4")

	want := braille.LeftParen + plain + braille.RightParen + "⠡⠼⠙"
	if grouped != want {
		t.Errorf("got %q, want %q", grouped, want)
	}
}

func TestConvert_NormalizationIdempotence(t *testing.T) {
	inputs := []string{"$3+5$", "3 + 5", "  3+5  ", "$ 3 + 5 $", "\t3+\n5"}
	want := MustConvert(inputs[0])
	for _, input := range inputs[1:] {
		if got := MustConvert(input); got != want {
			t.Errorf("Convert(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Run("dangling operator", func(t *testing.T) {
		out, err := Convert("3 + ")
		if out != "" {
			t.Errorf("partial output %q", out)
		}
		var synErr *kbparser.SyntaxError
		if !errors.As(err, &synErr) {
			t.Fatalf("expected *SyntaxError, got %T", err)
		}
	})

	t.Run("unsupported character", func(t *testing.T) {
		_, err := Convert("3 & 4")
		var lexErr *kbparser.LexicalError
		if !errors.As(err, &lexErr) {
			t.Fatalf("expected *LexicalError, got %T", err)
		}
		if lexErr.Char != '&' || lexErr.Position != 2 {
			t.Errorf("got %q at %d, want '&' at 2", lexErr.Char, lexErr.Position)
		}
	})

	t.Run("implicit multiplication", func(t *testing.T) {
		_, err := Convert("(3)4")
		if kberrors.CodeOf(err) != kberrors.CodeSyntax {
			t.Fatalf("expected syntax error, got %v", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Convert("$ $")
		if kberrors.CodeOf(err) != kberrors.CodeSyntax {
			t.Fatalf("expected syntax error, got %v", err)
		}
	})
}

func TestMustConvert_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustConvert("3 +")
}
