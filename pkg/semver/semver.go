// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultVersion is used as baseline when no tag exists yet.
const DefaultVersion = "0.0.0"

var versionRegexp = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// SemanticVersionNumber represents a parsed semantic version.
type SemanticVersionNumber struct {
	Major int
	Minor int
	Patch int
}

// InvalidVersionFormatError is returned if a baseline tag is not MAJOR.MINOR.PATCH.
type InvalidVersionFormatError struct {
	Tag string
}

func (e *InvalidVersionFormatError) Error() string {
	return fmt.Sprintf("Current tag '%s' is not semantic version format (X.Y.Z)", e.Tag)
}

// VersionOverflowError is returned if a bump would push a component past the int range.
type VersionOverflowError struct {
	Version string
	Bump    BumpLevel
}

func (e *VersionOverflowError) Error() string {
	return fmt.Sprintf("Version '%s' cannot be raised by a %s bump without overflow", e.Version, e.Bump)
}

// ParseSemanticVersionNumber parses "X.Y.Z" or "vX.Y.Z" into a SemanticVersionNumber.
// A blank tag is read as DefaultVersion.
func ParseSemanticVersionNumber(tag string) (SemanticVersionNumber, error) {
	normalized := normalizeTag(tag)
	matches := versionRegexp.FindStringSubmatch(normalized)
	if matches == nil {
		return SemanticVersionNumber{}, &InvalidVersionFormatError{Tag: tag}
	}

	var parts [3]int
	for i := range parts {
		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			// out of int range
			return SemanticVersionNumber{}, &InvalidVersionFormatError{Tag: tag}
		}
		parts[i] = n
	}

	return SemanticVersionNumber{
		Major: parts[0],
		Minor: parts[1],
		Patch: parts[2],
	}, nil
}

func normalizeTag(tag string) string {
	if strings.TrimSpace(tag) == "" {
		return DefaultVersion
	}
	if strings.HasPrefix(tag, "v") || strings.HasPrefix(tag, "V") {
		return tag[1:]
	}
	return tag
}

// String returns the "X.Y.Z" representation.
func (v SemanticVersionNumber) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bump returns the version raised by the given level.
func (v SemanticVersionNumber) Bump(level BumpLevel) SemanticVersionNumber {
	switch level {
	case BumpMajor:
		return v.BumpMajor()
	case BumpMinor:
		return v.BumpMinor()
	case BumpPatch:
		return v.BumpPatch()
	default:
		return v
	}
}

// CanBump reports whether Bump(level) stays within the int range.
func (v SemanticVersionNumber) CanBump(level BumpLevel) bool {
	switch level {
	case BumpMajor:
		return v.Major < math.MaxInt
	case BumpMinor:
		return v.Minor < math.MaxInt
	case BumpPatch:
		return v.Patch < math.MaxInt
	default:
		return true
	}
}

// BumpPatch returns a new version with patch incremented.
func (v SemanticVersionNumber) BumpPatch() SemanticVersionNumber {
	return SemanticVersionNumber{
		Major: v.Major,
		Minor: v.Minor,
		Patch: v.Patch + 1,
	}
}

// BumpMinor returns a new version with minor incremented and patch reset to 0.
func (v SemanticVersionNumber) BumpMinor() SemanticVersionNumber {
	return SemanticVersionNumber{
		Major: v.Major,
		Minor: v.Minor + 1,
		Patch: 0,
	}
}

// BumpMajor returns a new version with major incremented and minor and patch reset to 0.
func (v SemanticVersionNumber) BumpMajor() SemanticVersionNumber {
	return SemanticVersionNumber{
		Major: v.Major + 1,
		Minor: 0,
		Patch: 0,
	}
}
