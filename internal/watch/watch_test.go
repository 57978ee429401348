// CLASSIFICATION: COMMUNITY
// Filename: watch_test.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-04-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package watch_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"staticd/internal/watch"
)

type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *captureLogger) Printf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *captureLogger) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestWatcherLogsWrite(t *testing.T) {
	dir := t.TempDir()
	log := &captureLogger{}
	w, err := watch.New(dir, log)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte("<h1>Hi</h1>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitFor(t, func() bool { return log.contains("index.html") })
}

func TestWatcherSeesNewDirectory(t *testing.T) {
	dir := t.TempDir()
	log := &captureLogger{}
	w, err := watch.New(dir, log)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	sub := filepath.Join(dir, "assets")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	waitFor(t, func() bool { return log.contains("assets") })

	// A file inside the new directory is picked up too.
	inner := filepath.Join(sub, "app.css")
	waitFor(t, func() bool {
		os.WriteFile(inner, []byte("body{}"), 0o644)
		return log.contains("app.css")
	})
}

func TestWatcherStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	w, err := watch.New(dir, &captureLogger{})
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("watcher did not stop")
	}
}

func TestNewMissingRootStillConstructs(t *testing.T) {
	// WalkDir tolerates the error, but fsnotify has nothing to watch;
	// the watcher still constructs and simply reports no events.
	dir := t.TempDir()
	w, err := watch.New(filepath.Join(dir, "nope"), &captureLogger{})
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	w.Close()
}
