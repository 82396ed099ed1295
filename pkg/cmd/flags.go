// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"strings"

	"github.com/bborbe/errors"

	"github.com/bborbe/upcoming/pkg/config"
)

// outputOptions holds the per-invocation overrides of the output settings.
type outputOptions struct {
	format     config.OutputFormat
	outputFile string
}

// parseOutputOptions applies --json, --format= and --output= over the configured values.
func parseOutputOptions(ctx context.Context, cfg config.Config, args []string) (outputOptions, error) {
	opts := outputOptions{
		format:     cfg.OutputFormat,
		outputFile: cfg.OutputFile,
	}
	for _, arg := range args {
		switch {
		case arg == "--json":
			opts.format = config.OutputFormatJSON
		case strings.HasPrefix(arg, "--format="):
			opts.format = config.OutputFormat(strings.TrimPrefix(arg, "--format="))
		case strings.HasPrefix(arg, "--output="):
			opts.outputFile = strings.TrimPrefix(arg, "--output=")
		default:
			return outputOptions{}, errors.Errorf(ctx, "unknown argument: %s", arg)
		}
	}
	if err := opts.format.Validate(ctx); err != nil {
		return outputOptions{}, errors.Wrap(ctx, err, "validate format")
	}
	return opts, nil
}

// hasJSONFlag reports whether --json is present.
func hasJSONFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--json" {
			return true
		}
	}
	return false
}
