// File: engine.go
// Title: Conversion Engine
// Description: Logged, length-limited conversion returning every
//              intermediate stage together with a request ID and timing.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial engine implementation

package kobraille

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/msto63/kobraille/internal/braille"
	kbast "github.com/msto63/kobraille/internal/mathexpr/ast"
	kbparser "github.com/msto63/kobraille/internal/mathexpr/parser"
	kberrors "github.com/msto63/kobraille/pkg/core/errors"
	kblog "github.com/msto63/kobraille/pkg/core/log"
)

// DefaultMaxInputLength is used when Options.MaxInputLength is zero
const DefaultMaxInputLength = 4096

// Options configures the Engine
type Options struct {
	// Logger for conversion logging (optional, defaults to the default logger)
	Logger *kblog.Logger

	// MaxInputLength limits the input length in runes; negative disables
	// the limit (default: 4096)
	MaxInputLength int

	// Table selects the braille symbol table (default: Korean)
	Table *braille.Table
}

// Result holds every stage of one conversion
type Result struct {
	// ID identifies the conversion in logs
	ID string `json:"id"`

	// Input is the text as given
	Input string `json:"input"`

	// Normalized is the input after '$' removal and trimming
	Normalized string `json:"normalized"`

	// Tokens lists the lexer output including the final EOF token
	Tokens []kbparser.Token `json:"tokens"`

	// Tree is the parsed expression
	Tree kbast.Node `json:"-"`

	// Structure is the fully parenthesized echo of Tree
	Structure string `json:"structure"`

	// Braille is the transcription
	Braille string `json:"braille"`

	// Dots is Braille in dot-number notation
	Dots string `json:"dots"`

	// Duration is the time taken by the conversion
	Duration time.Duration `json:"duration_ns"`
}

// Engine runs conversions with logging and input limits. It is safe for
// concurrent use.
type Engine struct {
	parser         *kbparser.Parser
	encoder        *braille.Encoder
	logger         *kblog.Logger
	maxInputLength int
}

// New creates a conversion engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = kblog.GetDefault()
	}
	switch {
	case opts.MaxInputLength == 0:
		opts.MaxInputLength = DefaultMaxInputLength
	case opts.MaxInputLength < 0:
		opts.MaxInputLength = 0
	}

	if opts.Table != nil {
		if err := opts.Table.Validate(); err != nil {
			return nil, kberrors.Wrap(err, "invalid braille table").
				WithCode(kberrors.CodeInvalidConfig).
				WithOperation("kobraille.New")
		}
	}

	logger := opts.Logger.WithField("component", "kobraille-engine")

	engine := &Engine{
		parser:         kbparser.New(kbparser.Options{Logger: logger}),
		encoder:        braille.NewEncoder(opts.Table),
		logger:         logger,
		maxInputLength: opts.MaxInputLength,
	}

	logger.Debug("conversion engine initialized", kblog.Fields{
		"maxInputLength": opts.MaxInputLength,
	})

	return engine, nil
}

// MaxInputLength returns the effective input limit; zero means unlimited
func (e *Engine) MaxInputLength() int {
	return e.maxInputLength
}

// Convert runs the full pipeline on input
func (e *Engine) Convert(input string) (*Result, error) {
	id := uuid.New().String()
	n := utf8.RuneCountInString(input)
	logger := e.logger.WithRequestID(id).WithFields(kblog.Fields{
		"input_runes": n,
		"max_runes":   e.maxInputLength,
	})
	timer := logger.StartTimer("convert")

	if e.maxInputLength > 0 && n > e.maxInputLength {
		err := kberrors.Newf("input length %d exceeds maximum of %d", n, e.maxInputLength).
			WithCode(kberrors.CodeInvalidInput).
			WithOperation("kobraille.Convert").
			WithDetail("length", n).
			WithDetail("max", e.maxInputLength)
		timer.StopWithError(err)
		return nil, err
	}

	lexer := kbparser.NewLexer(input)
	tokens, err := lexer.Tokenize()
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	tree, err := e.parser.Parse(tokens)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	out := e.encoder.Encode(tree)
	res := &Result{
		ID:         id,
		Input:      input,
		Normalized: lexer.Input(),
		Tokens:     tokens,
		Tree:       tree,
		Structure:  kbast.Structure(tree),
		Braille:    out,
		Dots:       braille.Dots(out),
	}
	res.Duration = timer.WithField("cells", utf8.RuneCountInString(out)).Stop()

	return res, nil
}

// Transcribe returns only the braille output of Convert
func (e *Engine) Transcribe(input string) (string, error) {
	res, err := e.Convert(input)
	if err != nil {
		return "", err
	}
	return res.Braille, nil
}
