package braille

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/msto63/kobraille/internal/mathexpr/ast"
	"github.com/msto63/kobraille/internal/mathexpr/parser"
)

func mustParse(t *testing.T, input string) ast.Node {
	t.Helper()
	node, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("ParseString(%q) error = %v", input, err)
	}
	return node
}

func TestEncode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "⠼⠚"},
		{"42", "⠼⠙⠃"},
		{"1234567890", "⠼⠁⠃⠉⠙⠑⠋⠛⠓⠊⠚"},
		{"3 + 5", "⠼⠉⠢⠼⠑"},
		{"10 - 3", "⠼⠁⠚⠔⠼⠉"},
		{"6 * 7", "⠼⠋⠡⠼⠛"},
		{"8 / 2", "⠼⠓⠌⠌⠼⠃"},
		{"2 + 3 * 4", "⠼⠃⠢⠼⠉⠡⠼⠙"},
		{"(2 + 3) * 4", "⠦⠼⠃⠢⠼⠉⠴⠡⠼⠙"},
		{"((5))", "⠦⠦⠼⠑⠴⠴"},
		{"1 - 2 - 3", "⠼⠁⠔⠼⠃⠔⠼⠉"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Encode(mustParse(t, tt.input)); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncode_DigitsOnly(t *testing.T) {
	for _, input := range []string{"7", "007", "31415926535", "9876543210"} {
		got := Encode(mustParse(t, input))

		var want strings.Builder
		want.WriteString(Indicator)
		for _, d := range input {
			cell, _ := DigitSymbol(d)
			want.WriteString(cell)
		}
		if got != want.String() {
			t.Errorf("Encode(%q) = %q, want %q", input, got, want.String())
		}
	}
}

func TestEncode_BothOperandsMarked(t *testing.T) {
	operands := []string{"0", "5", "12", "999"}
	ops := []ast.Operator{ast.OpAdd, ast.OpSubtract, ast.OpMultiply, ast.OpDivide}

	for _, a := range operands {
		for _, b := range operands {
			for _, op := range ops {
				input := a + " " + op.String() + " " + b
				got := Encode(mustParse(t, input))

				opCell, _ := OperatorSymbol(op)
				want := Encode(ast.NewNumber(a)) + opCell + Encode(ast.NewNumber(b))
				if got != want {
					t.Errorf("Encode(%q) = %q, want %q", input, got, want)
				}
			}
		}
	}
}

func TestEncode_GroupAddsOnlyBrackets(t *testing.T) {
	plain := Encode(mustParse(t, "2+3"))
	grouped := Encode(mustParse(t, "(2+3)*4"))

	want := LeftParen + plain + RightParen + "⠡" + Indicator + "⠙"
	if grouped != want {
		t.Errorf("grouped = %q, want %q", grouped, want)
	}
}

func TestEncoder_EncodeWithIndicator(t *testing.T) {
	e := NewEncoder(nil)
	n := ast.NewNumber("12")

	if got := e.EncodeWithIndicator(n, false); got != "⠁⠃" {
		t.Errorf("without indicator = %q", got)
	}
	if got := e.EncodeWithIndicator(n, true); got != "⠼⠁⠃" {
		t.Errorf("with indicator = %q", got)
	}

	// The right operand and group contents always open a new context.
	tree := ast.NewBinaryOp(ast.OpAdd, ast.NewNumber("1"), ast.NewGroup(ast.NewNumber("2")))
	if got := e.EncodeWithIndicator(tree, false); got != "⠁⠢⠦⠼⠃⠴" {
		t.Errorf("tree without indicator = %q", got)
	}
}

func TestEncoder_CustomTable(t *testing.T) {
	table := *DefaultTable()
	table.Indicator = "#"
	table.Operators = map[ast.Operator]string{ast.OpAdd: "+"}

	got := NewEncoder(&table).Encode(mustParse(t, "1 + 2 * 3"))
	if got != "#⠁+#⠃*#⠉" {
		t.Errorf("got %q", got)
	}
	if DefaultTable().Indicator != Indicator {
		t.Error("custom table modified the default table")
	}
}

func TestEncode_Nil(t *testing.T) {
	if got := Encode(nil); got != "" {
		t.Errorf("Encode(nil) = %q", got)
	}
}

// checkIndicators reports whether every maximal run of digit cells is
// preceded by exactly one indicator and every indicator starts such a run.
func checkIndicators(s string) bool {
	digits := make(map[rune]bool, 10)
	for d := '0'; d <= '9'; d++ {
		cell, _ := DigitSymbol(d)
		digits[[]rune(cell)[0]] = true
	}
	indicator := []rune(Indicator)[0]

	cells := []rune(s)
	for i, r := range cells {
		switch {
		case r == indicator:
			if i+1 >= len(cells) || !digits[cells[i+1]] {
				return false
			}
		case digits[r]:
			runStart := i == 0 || !digits[cells[i-1]]
			if runStart && (i == 0 || cells[i-1] != indicator) {
				return false
			}
		}
	}
	return true
}

func randomTree(r *rand.Rand, depth int) ast.Node {
	if depth == 0 || r.Intn(3) == 0 {
		n := 1 + r.Intn(4)
		digits := make([]byte, n)
		for i := range digits {
			digits[i] = byte('0' + r.Intn(10))
		}
		return ast.NewNumber(string(digits))
	}
	if r.Intn(4) == 0 {
		return ast.NewGroup(randomTree(r, depth-1))
	}
	ops := []ast.Operator{ast.OpAdd, ast.OpSubtract, ast.OpMultiply, ast.OpDivide}
	return ast.NewBinaryOp(ops[r.Intn(len(ops))], randomTree(r, depth-1), randomTree(r, depth-1))
}

func TestEncode_IndicatorInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		tree := randomTree(r, 6)
		out := Encode(tree)
		if !checkIndicators(out) {
			t.Fatalf("indicator invariant violated for %s: %q", ast.Structure(tree), out)
		}
		if got := strings.Count(out, Indicator); got != len(ast.Numbers(tree)) {
			t.Fatalf("%s: %d indicators for %d numerals", ast.Structure(tree), got, len(ast.Numbers(tree)))
		}
	}
}

func TestEncoder_ConcurrentUse(t *testing.T) {
	e := NewEncoder(nil)
	tree := mustParse(t, "(12 + 3) * 45 / (6 - 7)")
	want := e.Encode(tree)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := e.Encode(tree); got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestTable_Validate(t *testing.T) {
	if err := DefaultTable().Validate(); err != nil {
		t.Fatalf("default table invalid: %v", err)
	}

	tests := []struct {
		name   string
		modify func(*Table)
	}{
		{"no indicator", func(tb *Table) { tb.Indicator = "" }},
		{"missing digit", func(tb *Table) { tb.Digits[7] = "" }},
		{"missing operator", func(tb *Table) { tb.Operators = map[ast.Operator]string{ast.OpAdd: "⠢"} }},
		{"missing bracket", func(tb *Table) { tb.RightParen = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := *DefaultTable()
			tt.modify(&table)
			if err := table.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
