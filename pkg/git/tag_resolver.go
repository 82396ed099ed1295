// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"context"
	"log"
	"strings"

	libsemver "github.com/Masterminds/semver/v3"
	"github.com/bborbe/errors"

	"github.com/bborbe/upcoming/pkg/semver"
)

// TagResolver finds the baseline tag to compute the next version from.
//
//counterfeiter:generate -o ../../mocks/tag-resolver.go --fake-name TagResolver . TagResolver
type TagResolver interface {
	// Resolve returns the latest tag or an empty string if the repository has none.
	Resolve(ctx context.Context) (string, error)
}

// NewTagResolver creates a TagResolver returning the most recently created tag.
func NewTagResolver(runner CommandRunner, fetchTags bool) TagResolver {
	return &tagResolver{
		runner:    runner,
		fetchTags: fetchTags,
		lookup:    latestByCreatorDate,
	}
}

// NewSemverTagResolver creates a TagResolver returning the highest semantic version tag.
func NewSemverTagResolver(runner CommandRunner, fetchTags bool) TagResolver {
	return &tagResolver{
		runner:    runner,
		fetchTags: fetchTags,
		lookup:    highestSemver,
	}
}

type tagLookup func(ctx context.Context, runner CommandRunner) (string, error)

// tagResolver implements TagResolver.
type tagResolver struct {
	runner    CommandRunner
	fetchTags bool
	lookup    tagLookup
}

func (t *tagResolver) Resolve(ctx context.Context) (string, error) {
	if t.fetchTags {
		log.Printf("upcoming: fetch git tags")
		if _, err := t.runner.Run(ctx, "fetch", "--tags", "--prune"); err != nil {
			return "", errors.Wrap(ctx, err, "fetch tags")
		}
	}

	tag, err := t.lookup(ctx, t.runner)
	if err != nil {
		return "", errors.Wrap(ctx, err, "lookup latest tag")
	}

	if tag == "" {
		log.Printf("upcoming: no git tag found")
	} else {
		log.Printf("upcoming: latest git tag found: %s", tag)
	}
	return tag, nil
}

func latestByCreatorDate(ctx context.Context, runner CommandRunner) (string, error) {
	lines, err := runner.Run(
		ctx,
		"for-each-ref",
		"--sort=-creatordate",
		"--count=1",
		"--format=%(refname:short)",
		"refs/tags",
	)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", nil
	}
	return strings.TrimSpace(lines[0]), nil
}

// highestSemver only considers tags the calculator accepts as baseline,
// so pre-releases like 2.0.0-rc.1 and short forms like 1.3 are skipped.
func highestSemver(ctx context.Context, runner CommandRunner) (string, error) {
	lines, err := runner.Run(ctx, "tag", "--list")
	if err != nil {
		return "", err
	}

	var latest *libsemver.Version
	latestTag := ""
	for _, line := range lines {
		tag := strings.TrimSpace(line)
		if tag == "" {
			continue
		}
		if _, err := semver.ParseSemanticVersionNumber(tag); err != nil {
			continue
		}
		version, err := libsemver.NewVersion(tag)
		if err != nil {
			continue
		}
		if latest == nil || version.GreaterThan(latest) {
			latest = version
			latestTag = tag
		}
	}
	return latestTag, nil
}
