// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     demo
// Description: Demo sample catalogue embedded as YAML
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package demo

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	kberrors "github.com/msto63/kobraille/pkg/core/errors"
)

//go:embed samples.yaml
var builtinSamples []byte

// Sample is one demo input with optional expected outputs
type Sample struct {
	Input       string `yaml:"input"`
	Description string `yaml:"description"`
	Structure   string `yaml:"structure,omitempty"`
	Braille     string `yaml:"braille,omitempty"`
}

type catalogue struct {
	Samples []Sample `yaml:"samples"`
}

// Samples returns the built-in sample catalogue
func Samples() []Sample {
	samples, err := ParseSamples(builtinSamples)
	if err != nil {
		panic("demo: invalid built-in samples: " + err.Error())
	}
	return samples
}

// LoadSamples reads a sample catalogue from a YAML file
func LoadSamples(path string) ([]Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kberrors.Wrap(err, "failed to read samples file").
			WithCode(kberrors.CodeConfigError).
			WithDetail("path", path)
	}
	samples, err := ParseSamples(data)
	if err != nil {
		return nil, kberrors.Wrap(err, "invalid samples file").
			WithCode(kberrors.CodeInvalidConfig).
			WithDetail("path", path)
	}
	return samples, nil
}

// ParseSamples decodes a YAML sample catalogue. Every sample needs an input.
func ParseSamples(data []byte) ([]Sample, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c catalogue
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if len(c.Samples) == 0 {
		return nil, kberrors.New("sample catalogue is empty").WithCode(kberrors.CodeInvalidConfig)
	}
	for i, s := range c.Samples {
		if s.Input == "" {
			return nil, kberrors.Newf("sample %d has no input", i+1).WithCode(kberrors.CodeInvalidConfig)
		}
	}
	return c.Samples, nil
}
