package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"off", LevelOff, false},
		{"", LevelInfo, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("text"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(text) = %v, %v", f, err)
	}
	if f, err := ParseFormat("console"); err != nil || f != FormatConsole {
		t.Errorf("ParseFormat(console) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf, Name: "test"}).
		WithRequestID("req-1").
		WithField("component", "engine")

	logger.Debug("converted", Fields{"length": 3})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	checks := map[string]interface{}{
		"message":    "converted",
		"level":      "debug",
		"logger":     "test",
		"request_id": "req-1",
		"component":  "engine",
		"length":     float64(3),
	}
	for k, want := range checks {
		if entry[k] != want {
			t.Errorf("entry[%q] = %v, want %v", k, entry[k], want)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn should be filtered, got %q", out)
	}
	if !strings.Contains(out, "[WARN] shown") {
		t.Errorf("expected warn line, got %q", out)
	}
}

func TestLogger_DerivedLoggersAreIndependent(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{Level: LevelInfo, Format: FormatText, Output: &buf})
	child := base.WithField("a", 1)

	base.Info("base")
	child.Info("child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if strings.Contains(lines[0], "a=1") {
		t.Errorf("base logger must not see child fields: %q", lines[0])
	}
	if !strings.Contains(lines[1], "[a=1]") {
		t.Errorf("child logger should carry its field: %q", lines[1])
	}
}

func TestLogger_WarnWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatText, Output: &buf})

	logger.WarnWithErr("conversion failed", errors.New("boom"))

	if !strings.Contains(buf.String(), `error="boom"`) {
		t.Errorf("expected error in output, got %q", buf.String())
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger.GetLevel() != LevelOff {
		t.Errorf("nop logger level = %v, want off", logger.GetLevel())
	}
	logger.Error("nothing")
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatText, Output: &buf})

	timer := logger.StartTimer("parse")
	if d := timer.Stop(); d < 0 {
		t.Errorf("Stop() = %v, want non-negative", d)
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}
	if !strings.Contains(buf.String(), "parse completed") {
		t.Errorf("expected completion line, got %q", buf.String())
	}

	buf.Reset()
	logger.StartTimer("lex").WithField("cells", 4).StopWithError(errors.New("bad char"))
	out := buf.String()
	for _, want := range []string{"lex failed", "success=false", "cells=4", "operation=lex", "duration_ms="} {
		if !strings.Contains(out, want) {
			t.Errorf("failure line %q missing %q", out, want)
		}
	}
}
