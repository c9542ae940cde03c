// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     version
// Description: Build version information
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Set at build time via -ldflags "-X github.com/msto63/kobraille/pkg/core/version.Version=..."
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("kobraille v%s (commit %s, built %s)", i.Version, i.GitCommit, i.BuildDate)
}
