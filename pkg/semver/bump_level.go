// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"encoding/json"
)

// BumpLevel is the impact of a change on the version.
// Levels are ordered: BumpNone < BumpPatch < BumpMinor < BumpMajor.
type BumpLevel int

const (
	BumpNone BumpLevel = iota
	BumpPatch
	BumpMinor
	BumpMajor
)

func (b BumpLevel) String() string {
	switch b {
	case BumpPatch:
		return "patch"
	case BumpMinor:
		return "minor"
	case BumpMajor:
		return "major"
	default:
		return "none"
	}
}

// Max returns the higher of both levels.
func (b BumpLevel) Max(other BumpLevel) BumpLevel {
	if other > b {
		return other
	}
	return b
}

// MarshalJSON encodes the level by name.
func (b BumpLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}
