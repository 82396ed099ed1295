// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"regexp"
	"strings"
	"unicode"
)

const breakingChangeMarker = "BREAKING CHANGE:"

var (
	breakingTypeRegexp = regexp.MustCompile(`^[A-Za-z]+(\([^)]*\))?!:`)
	featRegexp         = regexp.MustCompile(`^feat(\([^)]*\))?:`)
	fixRegexp          = regexp.MustCompile(`^fix(\([^)]*\))?:`)
)

// Classify returns the bump level a single commit subject asks for.
// Matching is case-sensitive and anchored at the first non-space character.
func Classify(subject string) BumpLevel {
	trimmed := strings.TrimLeftFunc(subject, unicode.IsSpace)
	switch {
	case strings.Contains(subject, breakingChangeMarker), breakingTypeRegexp.MatchString(trimmed):
		return BumpMajor
	case featRegexp.MatchString(trimmed):
		return BumpMinor
	case fixRegexp.MatchString(trimmed):
		return BumpPatch
	default:
		return BumpNone
	}
}

// AggregateBump returns the highest bump level over all commits.
func AggregateBump(commits []string) BumpLevel {
	result := BumpNone
	for _, commit := range commits {
		result = result.Max(Classify(commit))
		if result == BumpMajor {
			break
		}
	}
	return result
}
