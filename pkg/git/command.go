// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"bufio"
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bborbe/errors"
)

// ErrInterrupted is returned if the context is cancelled while waiting for git.
var ErrInterrupted = stderrors.New("git operation interrupted")

// ProcessError is returned if a git process could not be started or exited non-zero.
type ProcessError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s could not be started: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s failed with exit code %d", e.Command, e.ExitCode)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// CommandRunner runs git with the given arguments and returns the output lines.
//
//counterfeiter:generate -o ../../mocks/command-runner.go --fake-name CommandRunner . CommandRunner
type CommandRunner interface {
	Run(ctx context.Context, args ...string) ([]string, error)
}

// commandRunner implements CommandRunner with os/exec.
type commandRunner struct {
	dir string
}

// NewCommandRunner creates a CommandRunner executing git inside dir.
func NewCommandRunner(dir string) CommandRunner {
	return &commandRunner{
		dir: dir,
	}
}

// Run executes git and returns stdout split into lines.
func (c *commandRunner) Run(ctx context.Context, args ...string) ([]string, error) {
	// #nosec G204 -- arguments are built by this package, tag names come from git itself
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	command := "git " + strings.Join(args, " ")
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrapf(ctx, ErrInterrupted, "%s: %v", command, ctx.Err())
		}
		processErr := &ProcessError{
			Command:  command,
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			processErr.ExitCode = exitErr.ExitCode()
		}
		return nil, processErr
	}
	return splitLines(stdout.Bytes()), nil
}

func splitLines(output []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
