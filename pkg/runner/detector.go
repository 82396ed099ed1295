// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"context"
	"log"

	"github.com/bborbe/errors"

	"github.com/bborbe/upcoming/pkg/git"
	"github.com/bborbe/upcoming/pkg/semver"
)

// Detector determines the next version of the repository.
//
//counterfeiter:generate -o ../../mocks/detector.go --fake-name Detector . Detector
type Detector interface {
	Detect(ctx context.Context) (semver.Calculation, error)
}

// detector implements Detector.
type detector struct {
	tagResolver git.TagResolver
	commitLog   git.CommitLog
}

// NewDetector creates a new Detector.
func NewDetector(
	tagResolver git.TagResolver,
	commitLog git.CommitLog,
) Detector {
	return &detector{
		tagResolver: tagResolver,
		commitLog:   commitLog,
	}
}

// Detect resolves the latest tag, reads the commits since then and derives the next version.
func (d *detector) Detect(ctx context.Context) (semver.Calculation, error) {
	tag, err := d.tagResolver.Resolve(ctx)
	if err != nil {
		return semver.Calculation{}, errors.Wrap(ctx, err, "resolve tag")
	}

	log.Printf("upcoming: retrieving commits since tag: %s", displayTag(tag))
	commits, err := d.commitLog.SinceTag(ctx, tag)
	if err != nil {
		return semver.Calculation{}, errors.Wrap(ctx, err, "read commits")
	}

	calculation, err := semver.Calculate(tag, commits)
	if err != nil {
		return semver.Calculation{}, errors.Wrap(ctx, err, "calculate next version")
	}

	log.Printf(
		"upcoming: %d commits since %s, bump %s: %s -> %s",
		len(commits),
		displayTag(tag),
		calculation.Bump,
		calculation.BaselineVersion,
		calculation.NextVersion,
	)
	return calculation, nil
}

func displayTag(tag string) string {
	if tag == "" {
		return "<none>"
	}
	return tag
}
