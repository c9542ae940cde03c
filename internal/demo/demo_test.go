package demo

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msto63/kobraille/internal/render"
	kberrors "github.com/msto63/kobraille/pkg/core/errors"
	kblog "github.com/msto63/kobraille/pkg/core/log"
	"github.com/msto63/kobraille/pkg/kobraille"
)

func newRunner(t *testing.T, out *bytes.Buffer) *Runner {
	t.Helper()
	engine, err := kobraille.New(kobraille.Options{Logger: kblog.NewNop()})
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(engine, out, render.PlainStyles())
}

// TestSamples_Golden checks the built-in catalogue against the converter.
func TestSamples_Golden(t *testing.T) {
	samples := Samples()
	if len(samples) != 12 {
		t.Fatalf("got %d samples, want 12", len(samples))
	}

	for _, s := range samples {
		t.Run(s.Input, func(t *testing.T) {
			got, err := kobraille.Convert(s.Input)
			if err != nil {
				t.Fatalf("Convert(%q) error = %v", s.Input, err)
			}
			if got != s.Braille {
				t.Errorf("braille = %q, want %q", got, s.Braille)
			}
		})
	}
}

func TestRunner_Run(t *testing.T) {
	var out bytes.Buffer
	sum := newRunner(t, &out).Run(Samples())

	if !sum.OK() || sum.Passed != 12 {
		t.Errorf("summary = %+v\n%s", sum, out.String())
	}
	for _, want := range []string{
		"[precedence: multiplication binds first]",
		"(2 + (3 * 4))",
		"⠦⠼⠃⠢⠼⠉⠴⠡⠼⠙",
		"12 samples: 12 passed, 0 mismatched, 0 failed",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunner_MismatchAndFailure(t *testing.T) {
	samples := []Sample{
		{Input: "1 + 1", Description: "wrong expectation", Structure: "(1 - 1)"},
		{Input: "1 +", Description: "broken"},
		{Input: "5", Description: "no expectation"},
	}

	var out bytes.Buffer
	sum := newRunner(t, &out).Run(samples)

	want := Summary{Total: 3, Passed: 1, Mismatched: 1, Failed: 1}
	if sum != want {
		t.Errorf("summary = %+v, want %+v", sum, want)
	}
	if sum.OK() {
		t.Error("OK() = true with failures")
	}
	if !strings.Contains(out.String(), "expected structure (1 - 1)") {
		t.Errorf("missing mismatch report:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "[SYNTAX_ERROR]") {
		t.Errorf("missing error report:\n%s", out.String())
	}
}

func TestLoadSamples(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "samples.yaml")
	content := "samples:\n  - input: \"1 + 2\"\n    description: custom\n"
	if err := os.WriteFile(valid, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	samples, err := LoadSamples(valid)
	if err != nil {
		t.Fatalf("LoadSamples() error = %v", err)
	}
	if len(samples) != 1 || samples[0].Input != "1 + 2" {
		t.Errorf("samples = %+v", samples)
	}

	if _, err := LoadSamples(filepath.Join(dir, "missing.yaml")); !kberrors.HasCode(err, kberrors.CodeConfigError) {
		t.Errorf("missing file: got %v", err)
	}
}

func TestParseSamples_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":         "",
		"no samples":    "samples: []\n",
		"missing input": "samples:\n  - description: x\n",
		"unknown field": "samples:\n  - input: \"1\"\n    colour: red\n",
		"not yaml":      "samples: [",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseSamples([]byte(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
