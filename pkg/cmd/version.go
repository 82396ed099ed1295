// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bborbe/errors"

	"github.com/bborbe/upcoming/pkg/version"
)

// VersionCommand executes the version subcommand.
type VersionCommand interface {
	Run(ctx context.Context, args []string) error
}

// versionCommand implements VersionCommand.
type versionCommand struct {
	getter version.Getter
	writer io.Writer
}

// NewVersionCommand creates a new VersionCommand.
func NewVersionCommand(getter version.Getter, writer io.Writer) VersionCommand {
	return &versionCommand{
		getter: getter,
		writer: writer,
	}
}

// Run prints the tool's own version. It takes no arguments.
func (v *versionCommand) Run(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.Errorf(ctx, "unknown argument: %s", args[0])
	}
	_, err := fmt.Fprintf(v.writer, "upcoming %s\n", v.getter.Get())
	return err
}
