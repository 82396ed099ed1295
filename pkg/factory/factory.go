// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/bborbe/errors"
	libhttp "github.com/bborbe/http"

	"github.com/bborbe/upcoming/pkg/cmd"
	"github.com/bborbe/upcoming/pkg/config"
	"github.com/bborbe/upcoming/pkg/git"
	"github.com/bborbe/upcoming/pkg/lock"
	"github.com/bborbe/upcoming/pkg/publisher"
	"github.com/bborbe/upcoming/pkg/report"
	"github.com/bborbe/upcoming/pkg/runner"
	"github.com/bborbe/upcoming/pkg/server"
	"github.com/bborbe/upcoming/pkg/version"
	"github.com/bborbe/upcoming/pkg/watcher"
)

// DefaultCommand runs when no subcommand is given.
const DefaultCommand = "next"

// Command is a runnable subcommand.
type Command interface {
	Run(ctx context.Context, args []string) error
}

// CreateCommand returns the subcommand registered under name.
func CreateCommand(ctx context.Context, cfg config.Config, name string) (Command, error) {
	switch name {
	case "next":
		return CreateNextCommand(cfg), nil
	case "classify":
		return CreateClassifyCommand(cfg), nil
	case "serve":
		return CreateServeCommand(cfg), nil
	case "version":
		return CreateVersionCommand(), nil
	default:
		return nil, errors.Errorf(ctx, "unknown command: %s", name)
	}
}

// CreateNextCommand creates the one-shot command publishing the next version.
func CreateNextCommand(cfg config.Config) cmd.NextCommand {
	return cmd.NewNextCommand(
		CreateDetector(cfg),
		cfg,
		publisher.NewPublisher,
	)
}

// CreateClassifyCommand creates the command reporting per-commit classifications.
func CreateClassifyCommand(cfg config.Config) cmd.ClassifyCommand {
	return cmd.NewClassifyCommand(
		CreateDetector(cfg),
		report.NewFormatter(),
		os.Stdout,
	)
}

// CreateServeCommand creates the command running the HTTP server and the ref watcher.
func CreateServeCommand(cfg config.Config) cmd.ServeCommand {
	return cmd.NewServeCommand(
		lock.NewLocker(gitDir(cfg)),
		CreateServer(cfg),
		CreateWatcher(cfg),
	)
}

// CreateVersionCommand creates the command printing the tool's version.
func CreateVersionCommand() cmd.VersionCommand {
	return cmd.NewVersionCommand(
		version.NewGetter(version.Version),
		os.Stdout,
	)
}

// CreateServer creates the HTTP server on the configured port.
func CreateServer(cfg config.Config) server.Server {
	return server.NewServer(
		libhttp.NewServer(
			fmt.Sprintf(":%d", cfg.ServerPort),
			server.NewRouter(CreateDetector(cfg)),
		),
	)
}

// CreateWatcher creates the watcher republishing on ref changes.
func CreateWatcher(cfg config.Config) watcher.Watcher {
	return watcher.NewWatcher(
		gitDir(cfg),
		CreateRunner(cfg),
		time.Duration(cfg.DebounceMs)*time.Millisecond,
	)
}

// CreateRunner creates a Runner publishing with the configured output settings.
func CreateRunner(cfg config.Config) runner.Runner {
	return runner.NewRunner(
		CreateDetector(cfg),
		publisher.NewPublisher(cfg.OutputFormat, cfg.VariableName, cfg.OutputFile),
	)
}

// CreateDetector wires the git collaborators for the configured working directory.
func CreateDetector(cfg config.Config) runner.Detector {
	commandRunner := git.NewCommandRunner(cfg.WorkingDir)
	return runner.NewDetector(
		CreateTagResolver(cfg, commandRunner),
		git.NewCommitLog(commandRunner, logCommit),
	)
}

// CreateTagResolver picks the tag resolver for the configured sort order.
func CreateTagResolver(cfg config.Config, commandRunner git.CommandRunner) git.TagResolver {
	if cfg.TagSort == config.TagSortSemver {
		return git.NewSemverTagResolver(commandRunner, cfg.FetchTags)
	}
	return git.NewTagResolver(commandRunner, cfg.FetchTags)
}

func gitDir(cfg config.Config) string {
	return filepath.Join(cfg.WorkingDir, ".git")
}

func logCommit(subject string) {
	log.Printf("upcoming: commit --> %s", subject)
}
