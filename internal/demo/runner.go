// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     demo
// Description: Runs the sample catalogue and prints every pipeline stage
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package demo

import (
	"fmt"
	"io"

	"github.com/msto63/kobraille/internal/render"
	"github.com/msto63/kobraille/pkg/kobraille"
)

const ruleWidth = 64

// Outcome of a single sample
type Outcome int

const (
	OutcomePassed   Outcome = iota // converted, matches expectations
	OutcomeMismatch                // converted, differs from expectations
	OutcomeFailed                  // conversion error
)

// Summary counts sample outcomes
type Summary struct {
	Total      int
	Passed     int
	Mismatched int
	Failed     int
}

// OK reports whether every sample converted and matched
func (s Summary) OK() bool {
	return s.Mismatched == 0 && s.Failed == 0
}

// Runner prints demo samples
type Runner struct {
	engine *kobraille.Engine
	out    io.Writer
	styles render.Styles
}

// NewRunner creates a runner writing to out
func NewRunner(engine *kobraille.Engine, out io.Writer, styles render.Styles) *Runner {
	return &Runner{engine: engine, out: out, styles: styles}
}

// Run converts every sample and prints its stages followed by a summary
func (r *Runner) Run(samples []Sample) Summary {
	var sum Summary
	for _, s := range samples {
		sum.Total++
		switch r.runSample(s) {
		case OutcomePassed:
			sum.Passed++
		case OutcomeMismatch:
			sum.Mismatched++
		case OutcomeFailed:
			sum.Failed++
		}
	}

	fmt.Fprintln(r.out, render.Rule(ruleWidth, r.styles))
	line := fmt.Sprintf("%d samples: %d passed, %d mismatched, %d failed",
		sum.Total, sum.Passed, sum.Mismatched, sum.Failed)
	if sum.OK() {
		fmt.Fprintln(r.out, r.styles.Success.Render(line))
	} else {
		fmt.Fprintln(r.out, r.styles.Error.Render(line))
	}
	return sum
}

func (r *Runner) runSample(s Sample) Outcome {
	fmt.Fprintln(r.out, render.Rule(ruleWidth, r.styles))
	fmt.Fprintln(r.out, r.styles.Title.Render(fmt.Sprintf("[%s]", s.Description)))

	res, err := r.engine.Convert(s.Input)
	if err != nil {
		fmt.Fprintln(r.out, render.Field("Input", fmt.Sprintf("%q", s.Input), r.styles))
		fmt.Fprintln(r.out, render.Error(err, s.Input, r.styles))
		return OutcomeFailed
	}
	fmt.Fprintln(r.out, render.Stages(res, r.styles))

	outcome := OutcomePassed
	if s.Structure != "" && s.Structure != res.Structure {
		fmt.Fprintln(r.out, r.styles.Error.Render(fmt.Sprintf("expected structure %s", s.Structure)))
		outcome = OutcomeMismatch
	}
	if s.Braille != "" && s.Braille != res.Braille {
		fmt.Fprintln(r.out, r.styles.Error.Render(fmt.Sprintf("expected braille %s", s.Braille)))
		outcome = OutcomeMismatch
	}
	return outcome
}
