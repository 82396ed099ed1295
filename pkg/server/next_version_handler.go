// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"net/http"

	"github.com/bborbe/errors"
	libhttp "github.com/bborbe/http"

	"github.com/bborbe/upcoming/pkg/runner"
)

// NewNextVersionHandler creates a handler for the /api/v1/next-version endpoint.
// Every request runs a fresh detection.
func NewNextVersionHandler(detector runner.Detector) libhttp.WithError {
	return libhttp.WithErrorFunc(
		func(ctx context.Context, resp http.ResponseWriter, req *http.Request) error {
			if err := requireGet(ctx, req); err != nil {
				return err
			}

			calculation, err := detector.Detect(ctx)
			if err != nil {
				return libhttp.WrapWithStatusCode(
					errors.Wrap(ctx, err, "detect next version"),
					http.StatusInternalServerError,
				)
			}
			return writeJSON(ctx, resp, calculation)
		},
	)
}
