package braille

import "testing"

func TestCellDots(t *testing.T) {
	tests := []struct {
		cell rune
		want string
	}{
		{'⠼', "3456"},
		{'⠚', "245"},
		{'⠁', "1"},
		{'⠊', "24"},
		{'⠢', "26"},
		{'⠔', "35"},
		{'⠡', "16"},
		{'⠌', "34"},
		{'⠦', "236"},
		{'⠴', "356"},
		{'⠀', "0"},
		{'⣿', "12345678"},
	}

	for _, tt := range tests {
		got, ok := CellDots(tt.cell)
		if !ok || got != tt.want {
			t.Errorf("CellDots(%q) = %q, %v; want %q", tt.cell, got, ok, tt.want)
		}
	}

	if _, ok := CellDots('a'); ok {
		t.Error("CellDots('a') reported a braille cell")
	}
}

func TestDots(t *testing.T) {
	tests := map[string]string{
		"⠼⠁⠢⠼⠃": "3456 1 26 3456 12",
		"⠌⠌":    "34 34",
		"":      "",
		"⠼x":    "3456 x",
	}
	for in, want := range tests {
		if got := Dots(in); got != want {
			t.Errorf("Dots(%q) = %q, want %q", in, got, want)
		}
	}
}
