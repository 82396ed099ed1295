// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"strings"

	"github.com/bborbe/upcoming/pkg/semver"
)

// Formatter formats a calculation for display.
//
//counterfeiter:generate -o ../../mocks/formatter.go --fake-name Formatter . Formatter
type Formatter interface {
	Format(calculation semver.Calculation) string
}

// formatter implements Formatter.
type formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() Formatter {
	return &formatter{}
}

// Format lists every commit with its bump level followed by a summary.
func (f *formatter) Format(calculation semver.Calculation) string {
	var b strings.Builder

	b.WriteString("Upcoming Version\n")

	if calculation.BaselineTag == "" {
		b.WriteString(fmt.Sprintf("  Baseline:   %s (no tag)\n", calculation.BaselineVersion))
	} else {
		b.WriteString(fmt.Sprintf("  Baseline:   %s (tag %s)\n", calculation.BaselineVersion, calculation.BaselineTag))
	}

	b.WriteString(fmt.Sprintf("  Commits:    %d\n", len(calculation.Commits)))
	for _, commit := range calculation.Commits {
		b.WriteString(fmt.Sprintf("    [%-5s] %s\n", commit.Bump, commit.Subject))
	}

	counts := countByLevel(calculation.Commits)
	b.WriteString(fmt.Sprintf(
		"  Levels:     major %d, minor %d, patch %d, none %d\n",
		counts[semver.BumpMajor],
		counts[semver.BumpMinor],
		counts[semver.BumpPatch],
		counts[semver.BumpNone],
	))

	b.WriteString(fmt.Sprintf("  Bump:       %s\n", calculation.Bump))
	b.WriteString(fmt.Sprintf("  Next:       %s\n", calculation.NextVersion))

	return b.String()
}

func countByLevel(commits []semver.ClassifiedCommit) map[semver.BumpLevel]int {
	counts := make(map[semver.BumpLevel]int, 4)
	for _, commit := range commits {
		counts[commit.Bump]++
	}
	return counts
}
