// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     log
// Description: Structured logging for the converter and its tools
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

/*
Package log provides structured logging with contextual fields.

Loggers are immutable: every With* method returns a derived logger, so a
logger can be shared between goroutines and specialised per request:

	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
	reqLogger := logger.WithRequestID(id).WithField("component", "engine")
	reqLogger.Debug("conversion started", log.Fields{"length": 7})

Entries can be rendered as JSON (default), plain text, or console text with
colored level tags.
*/
package log
