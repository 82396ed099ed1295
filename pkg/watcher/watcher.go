// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watcher

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bborbe/errors"
	"github.com/fsnotify/fsnotify"

	"github.com/bborbe/upcoming/pkg/runner"
)

// Watcher watches the git metadata of a repository and republishes the next version
// whenever HEAD, a branch or a tag changes.
//
//counterfeiter:generate -o ../../mocks/watcher.go --fake-name Watcher . Watcher
type Watcher interface {
	Watch(ctx context.Context) error
}

// watcher implements Watcher.
type watcher struct {
	gitDir   string
	runner   runner.Runner
	debounce time.Duration
	runMu    sync.Mutex
}

// NewWatcher creates a new Watcher for gitDir with the specified debounce duration.
func NewWatcher(
	gitDir string,
	runner runner.Runner,
	debounce time.Duration,
) Watcher {
	return &watcher{
		gitDir:   gitDir,
		runner:   runner,
		debounce: debounce,
	}
}

// Watch publishes once on start and again after every relevant change.
// Run errors are logged and do not stop watching.
func (w *watcher) Watch(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(ctx, err, "create watcher")
	}
	defer fsWatcher.Close()

	absGitDir := w.getGitDir()
	if _, err := os.Stat(absGitDir); err != nil {
		return errors.Wrapf(ctx, err, "git dir %s", absGitDir)
	}

	for _, dir := range w.watchDirs(absGitDir) {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			log.Printf("upcoming: skip missing watch path %s", dir)
			continue
		}
		if err := fsWatcher.Add(dir); err != nil {
			return errors.Wrapf(ctx, err, "add watch path %s", dir)
		}
	}

	log.Printf("upcoming: watcher started on %s", absGitDir)

	w.runOnce(ctx)

	var debounceMu sync.Mutex
	var debounceTimer *time.Timer
	defer func() {
		debounceMu.Lock()
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		debounceMu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Printf("upcoming: watcher shutting down")
			return nil

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return errors.Errorf(ctx, "watcher error channel closed")
			}
			log.Printf("upcoming: watcher error: %v", err)
			return errors.Wrap(ctx, err, "watcher error")

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return errors.Errorf(ctx, "watcher events channel closed")
			}
			if !w.isRelevant(absGitDir, event) {
				continue
			}

			// all refs share one timer, a commit touches several files
			debounceMu.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, func() {
				w.runOnce(ctx)
			})
			debounceMu.Unlock()
		}
	}
}

// runOnce serializes runs so overlapping timers never publish concurrently.
func (w *watcher) runOnce(ctx context.Context) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	if ctx.Err() != nil {
		return
	}
	if err := w.runner.Run(ctx); err != nil {
		log.Printf("upcoming: publish next version failed: %v", err)
	}
}

func (w *watcher) watchDirs(absGitDir string) []string {
	return []string{
		absGitDir,
		filepath.Join(absGitDir, "refs", "heads"),
		filepath.Join(absGitDir, "refs", "tags"),
	}
}

// isRelevant accepts HEAD and packed-refs in the git dir and any ref below refs/.
func (w *watcher) isRelevant(absGitDir string, event fsnotify.Event) bool {
	if event.Op&fsnotify.Write == 0 && event.Op&fsnotify.Create == 0 &&
		event.Op&fsnotify.Remove == 0 && event.Op&fsnotify.Rename == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasSuffix(name, ".lock") {
		return false
	}
	if filepath.Dir(event.Name) == absGitDir {
		return name == "HEAD" || name == "packed-refs"
	}
	return true
}

// getGitDir returns the git directory as an absolute path.
func (w *watcher) getGitDir() string {
	if !filepath.IsAbs(w.gitDir) {
		cwd, err := os.Getwd()
		if err != nil {
			return w.gitDir
		}
		return filepath.Join(cwd, w.gitDir)
	}
	return filepath.Clean(w.gitDir)
}
