// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bborbe/errors"

	"github.com/bborbe/upcoming/pkg/config"
	"github.com/bborbe/upcoming/pkg/factory"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	name, args := splitCommand(os.Args[1:])

	// version must work outside a repository and with a broken config
	if name == "version" {
		return factory.CreateVersionCommand().Run(ctx, args)
	}

	cfg, err := config.NewLoader().Load(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "load config")
	}

	command, err := factory.CreateCommand(ctx, cfg, name)
	if err != nil {
		return err
	}
	return command.Run(ctx, args)
}

// splitCommand returns the subcommand and its arguments; flags alone select the default command.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return factory.DefaultCommand, args
	}
	return args[0], args[1:]
}
