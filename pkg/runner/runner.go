// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"context"

	"github.com/bborbe/errors"

	"github.com/bborbe/upcoming/pkg/publisher"
)

// Runner computes the next version once and publishes it.
//
//counterfeiter:generate -o ../../mocks/runner.go --fake-name Runner . Runner
type Runner interface {
	Run(ctx context.Context) error
}

// runner implements Runner.
type runner struct {
	detector  Detector
	publisher publisher.Publisher
}

// NewRunner creates a new Runner.
func NewRunner(
	detector Detector,
	publisher publisher.Publisher,
) Runner {
	return &runner{
		detector:  detector,
		publisher: publisher,
	}
}

// Run detects the next version and publishes it.
// Nothing is published if detection fails.
func (r *runner) Run(ctx context.Context) error {
	calculation, err := r.detector.Detect(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "detect next version")
	}

	if err := r.publisher.Publish(ctx, calculation); err != nil {
		return errors.Wrap(ctx, err, "publish next version")
	}
	return nil
}
