// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bborbe/errors"
	"github.com/bborbe/run"

	"github.com/bborbe/upcoming/pkg/lock"
	"github.com/bborbe/upcoming/pkg/server"
	"github.com/bborbe/upcoming/pkg/watcher"
)

// ServeCommand executes the serve subcommand.
type ServeCommand interface {
	Run(ctx context.Context, args []string) error
}

// serveCommand implements ServeCommand.
type serveCommand struct {
	locker  lock.Locker
	server  server.Server
	watcher watcher.Watcher
}

// NewServeCommand creates a new ServeCommand.
func NewServeCommand(
	locker lock.Locker,
	server server.Server,
	watcher watcher.Watcher,
) ServeCommand {
	return &serveCommand{
		locker:  locker,
		server:  server,
		watcher: watcher,
	}
}

// Run serves the HTTP API and republishes on ref changes until SIGINT or SIGTERM.
func (s *serveCommand) Run(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.Errorf(ctx, "unknown argument: %s", args[0])
	}

	if err := s.locker.Acquire(ctx); err != nil {
		return errors.Wrap(ctx, err, "acquire lock")
	}
	defer func() {
		if err := s.locker.Release(context.Background()); err != nil {
			log.Printf("upcoming: release lock failed: %v", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Printf("upcoming: serve started")
	defer log.Printf("upcoming: serve stopped")

	return run.CancelOnFirstErrorWait(
		ctx,
		s.server.ListenAndServe,
		s.watcher.Watch,
	)
}
