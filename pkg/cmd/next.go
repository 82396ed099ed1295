// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"

	"github.com/bborbe/upcoming/pkg/config"
	"github.com/bborbe/upcoming/pkg/publisher"
	"github.com/bborbe/upcoming/pkg/runner"
)

// PublisherFactory creates the Publisher for one invocation.
type PublisherFactory func(format config.OutputFormat, variableName string, outputFile string) publisher.Publisher

// NextCommand executes the next subcommand.
type NextCommand interface {
	Run(ctx context.Context, args []string) error
}

// nextCommand implements NextCommand.
type nextCommand struct {
	detector         runner.Detector
	cfg              config.Config
	publisherFactory PublisherFactory
}

// NewNextCommand creates a new NextCommand.
func NewNextCommand(
	detector runner.Detector,
	cfg config.Config,
	publisherFactory PublisherFactory,
) NextCommand {
	return &nextCommand{
		detector:         detector,
		cfg:              cfg,
		publisherFactory: publisherFactory,
	}
}

// Run detects the next version once and publishes it.
func (n *nextCommand) Run(ctx context.Context, args []string) error {
	opts, err := parseOutputOptions(ctx, n.cfg, args)
	if err != nil {
		return err
	}
	pub := n.publisherFactory(opts.format, n.cfg.VariableName, opts.outputFile)
	return runner.NewRunner(n.detector, pub).Run(ctx)
}
