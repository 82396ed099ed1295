// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"context"

	"github.com/bborbe/errors"
)

// CommitObserver is called for every commit subject read from the log.
type CommitObserver func(subject string)

// CommitLog reads commit subjects from the repository history.
//
//counterfeiter:generate -o ../../mocks/commit-log.go --fake-name CommitLog . CommitLog
type CommitLog interface {
	// SinceTag returns the subjects of all commits after tag up to HEAD.
	// An empty tag returns the whole history.
	SinceTag(ctx context.Context, tag string) ([]string, error)
}

// commitLog implements CommitLog.
type commitLog struct {
	runner    CommandRunner
	observers []CommitObserver
}

// NewCommitLog creates a CommitLog. Observers are notified in log order.
func NewCommitLog(runner CommandRunner, observers ...CommitObserver) CommitLog {
	return &commitLog{
		runner:    runner,
		observers: observers,
	}
}

func (c *commitLog) SinceTag(ctx context.Context, tag string) ([]string, error) {
	revision := "HEAD"
	if tag != "" {
		revision = tag + "..HEAD"
	}

	commits, err := c.runner.Run(ctx, "log", revision, "--pretty=format:%s")
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "read commits of %s", revision)
	}
	if commits == nil {
		commits = []string{}
	}

	for _, commit := range commits {
		for _, observer := range c.observers {
			observer(commit)
		}
	}
	return commits, nil
}
