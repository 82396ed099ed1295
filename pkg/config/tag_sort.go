// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"

	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
)

// TagSort defines how the baseline tag is chosen.
const (
	TagSortCreatorDate TagSort = "creatordate"
	TagSortSemver      TagSort = "semver"
)

// AvailableTagSorts contains all valid tag sort values.
var AvailableTagSorts = TagSorts{TagSortCreatorDate, TagSortSemver}

// TagSort is a string-based enum for tag sort strategies.
type TagSort string

func (t TagSort) String() string {
	return string(t)
}

func (t TagSort) Validate(ctx context.Context) error {
	if !AvailableTagSorts.Contains(t) {
		return errors.Wrapf(ctx, validation.Error, "unknown tag sort '%s'", t)
	}
	return nil
}

func (t TagSort) Ptr() *TagSort {
	return &t
}

// TagSorts is a collection of TagSort values.
type TagSorts []TagSort

func (t TagSorts) Contains(tagSort TagSort) bool {
	return collection.Contains(t, tagSort)
}
