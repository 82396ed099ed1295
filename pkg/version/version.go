// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package version

import "strings"

// Version is set by the release build with
// -ldflags "-X github.com/bborbe/upcoming/pkg/version.Version=<tag>".
var Version = "dev"

//counterfeiter:generate -o ../../mocks/version-getter.go --fake-name VersionGetter . Getter

// Getter reports which upcoming build is running, for the version command.
type Getter interface {
	Get() string
}

type versionGetter struct {
	version string
}

// NewGetter trims the ldflags value; a blank value means an unreleased build and reports as dev.
func NewGetter(version string) Getter {
	version = strings.TrimSpace(version)
	if version == "" {
		version = "dev"
	}
	return &versionGetter{
		version: version,
	}
}

func (v *versionGetter) Get() string {
	return v.version
}
