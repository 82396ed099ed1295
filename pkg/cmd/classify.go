// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bborbe/errors"

	"github.com/bborbe/upcoming/pkg/report"
	"github.com/bborbe/upcoming/pkg/runner"
	"github.com/bborbe/upcoming/pkg/semver"
)

// ClassifyCommand executes the classify subcommand.
type ClassifyCommand interface {
	Run(ctx context.Context, args []string) error
}

// classifyCommand implements ClassifyCommand.
type classifyCommand struct {
	detector  runner.Detector
	formatter report.Formatter
	writer    io.Writer
}

// NewClassifyCommand creates a new ClassifyCommand.
func NewClassifyCommand(
	detector runner.Detector,
	formatter report.Formatter,
	writer io.Writer,
) ClassifyCommand {
	return &classifyCommand{
		detector:  detector,
		formatter: formatter,
		writer:    writer,
	}
}

// Run prints how every commit since the baseline tag was classified.
func (c *classifyCommand) Run(ctx context.Context, args []string) error {
	jsonOutput := hasJSONFlag(args)
	for _, arg := range args {
		if arg != "--json" {
			return errors.Errorf(ctx, "unknown argument: %s", arg)
		}
	}

	calculation, err := c.detector.Detect(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "detect next version")
	}

	if jsonOutput {
		return c.outputJSON(calculation)
	}
	return c.outputHuman(calculation)
}

// outputJSON outputs the calculation as JSON.
func (c *classifyCommand) outputJSON(calculation semver.Calculation) error {
	encoder := json.NewEncoder(c.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(calculation)
}

// outputHuman outputs the calculation in human-readable format.
func (c *classifyCommand) outputHuman(calculation semver.Calculation) error {
	_, err := fmt.Fprint(c.writer, c.formatter.Format(calculation))
	return err
}
