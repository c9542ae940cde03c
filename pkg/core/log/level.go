package log

import (
	"fmt"
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal

	// LevelOff disables all output
	LevelOff
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	case LevelOff:
		return "off"
	default:
		return "unknown"
	}
}

// ShortString returns the four-letter tag used by the text formatters
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRAC"
	case LevelDebug:
		return "DEBU"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERRO"
	case LevelFatal:
		return "FATA"
	default:
		return "UNKN"
	}
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return minLevel != LevelOff && l >= minLevel
}

// ParseError is returned when a level or format name is not recognised
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid log %s: %q", e.Type, e.Input)
}

// ParseLevel parses a level name. "warning" is accepted as an alias of warn.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "off", "none":
		return LevelOff, nil
	default:
		return LevelInfo, &ParseError{Input: level, Type: "level"}
	}
}
