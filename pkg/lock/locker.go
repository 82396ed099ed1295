// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/bborbe/errors"
)

// FileName is created in the .git directory, outside the working tree.
const FileName = "upcoming.lock"

// AlreadyRunningError reports a second "upcoming serve" against the same repository.
type AlreadyRunningError struct {
	// PID read from the lock file, 0 if the holder has not written it yet.
	PID int
}

func (e *AlreadyRunningError) Error() string {
	if e.PID > 0 {
		return fmt.Sprintf("upcoming is already serving this repository (pid %d)", e.PID)
	}
	return "upcoming is already serving this repository"
}

//counterfeiter:generate -o ../../mocks/locker.go --fake-name Locker . Locker

// Locker allows one serve process per repository.
type Locker interface {
	Acquire(ctx context.Context) error
	Release(ctx context.Context) error
}

type locker struct {
	lockPath string
	fd       *os.File
}

// NewLocker locks FileName inside gitDir, the .git directory of the configured working dir.
func NewLocker(gitDir string) Locker {
	return &locker{
		lockPath: filepath.Join(gitDir, FileName),
	}
}

// Acquire fails fast with *AlreadyRunningError instead of waiting for the other serve process.
func (l *locker) Acquire(ctx context.Context) error {
	fd, err := os.OpenFile(l.lockPath, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return errors.Wrap(ctx, err, "open lock file")
	}

	if err := syscall.Flock( //nolint:gosec // G115: File descriptor conversion is safe
		int(fd.Fd()),
		syscall.LOCK_EX|syscall.LOCK_NB,
	); err != nil {
		_ = fd.Close()
		return errors.Wrap(ctx, &AlreadyRunningError{PID: l.holderPID()}, "acquire lock")
	}

	if err := writePID(ctx, fd); err != nil {
		_ = fd.Close()
		return errors.Wrap(ctx, err, "write pid to lock file")
	}

	l.fd = fd
	return nil
}

// Release unlocks and removes the lock file. A second call is a no-op.
func (l *locker) Release(ctx context.Context) error {
	if l.fd == nil {
		return nil
	}

	if err := syscall.Flock( //nolint:gosec // G115: File descriptor conversion is safe
		int(l.fd.Fd()),
		syscall.LOCK_UN,
	); err != nil {
		return errors.Wrap(ctx, err, "unlock file")
	}

	if err := l.fd.Close(); err != nil {
		return errors.Wrap(ctx, err, "close lock file")
	}
	l.fd = nil

	if err := os.Remove(l.lockPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(ctx, err, "remove lock file")
	}
	return nil
}

func (l *locker) holderPID() int {
	data, err := os.ReadFile(l.lockPath)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return pid
}

func writePID(ctx context.Context, fd *os.File) error {
	_ = fd.Truncate(0)
	_, _ = fd.Seek(0, 0)
	if _, err := fmt.Fprintf(fd, "%d\n", os.Getpid()); err != nil {
		return errors.Wrap(ctx, err, "write pid")
	}
	return fd.Sync()
}
