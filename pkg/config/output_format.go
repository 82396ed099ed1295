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

// OutputFormat defines how the next version is published.
const (
	OutputFormatPlain OutputFormat = "plain"
	OutputFormatEnv   OutputFormat = "env"
	OutputFormatJSON  OutputFormat = "json"
)

// AvailableOutputFormats contains all valid output formats.
var AvailableOutputFormats = OutputFormats{OutputFormatPlain, OutputFormatEnv, OutputFormatJSON}

// OutputFormat is a string-based enum for output formats.
type OutputFormat string

func (o OutputFormat) String() string {
	return string(o)
}

func (o OutputFormat) Validate(ctx context.Context) error {
	if !AvailableOutputFormats.Contains(o) {
		return errors.Wrapf(ctx, validation.Error, "unknown output format '%s'", o)
	}
	return nil
}

func (o OutputFormat) Ptr() *OutputFormat {
	return &o
}

// OutputFormats is a collection of OutputFormat values.
type OutputFormats []OutputFormat

func (o OutputFormats) Contains(format OutputFormat) bool {
	return collection.Contains(o, format)
}
