// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bborbe/errors"
	libhttp "github.com/bborbe/http"
)

type healthResponse struct {
	Status string `json:"status"`
}

// NewHealthHandler creates a handler for the /health endpoint.
// It never runs git.
func NewHealthHandler() libhttp.WithError {
	return libhttp.WithErrorFunc(
		func(ctx context.Context, resp http.ResponseWriter, req *http.Request) error {
			if err := requireGet(ctx, req); err != nil {
				return err
			}
			return writeJSON(ctx, resp, healthResponse{Status: "ok"})
		},
	)
}

// requireGet rejects every method except GET with 405.
func requireGet(ctx context.Context, req *http.Request) error {
	if req.Method != http.MethodGet {
		return libhttp.WrapWithStatusCode(
			errors.Errorf(ctx, "method %s not allowed", req.Method),
			http.StatusMethodNotAllowed,
		)
	}
	return nil
}

// writeJSON writes v as a compact JSON body with status 200.
func writeJSON(ctx context.Context, resp http.ResponseWriter, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(ctx, err, "marshal response")
	}
	resp.Header().Set("Content-Type", "application/json")
	resp.WriteHeader(http.StatusOK)
	_, _ = resp.Write(body)
	return nil
}
