// CLASSIFICATION: COMMUNITY
// Filename: watch.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-04-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package watch logs filesystem changes under the serving root while
// the server runs in dev mode. It never affects response semantics.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Logger abstracts logging for the watcher.
type Logger interface {
	Printf(string, ...any)
}

// Watcher reports create/write/remove/rename events under a root
// directory. fsnotify is not recursive, so every directory found under
// the root is added, and directories created later are picked up from
// their create events.
type Watcher struct {
	root string
	log  Logger
	fsw  *fsnotify.Watcher
}

// New builds a watcher over root. The caller owns Close.
func New(root string, log Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{root: root, log: log, fsw: fsw}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := fsw.Add(path); err != nil {
				log.Printf("watch %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Run logs events until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.log.Printf("changed %s %s", ev.Name, ev.Op.String())
			if ev.Op.Has(fsnotify.Create) {
				// New directories need their own watch.
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.fsw.Add(ev.Name); err != nil {
						w.log.Printf("watch %s: %v", ev.Name, err)
					}
				}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Printf("watch error: %v", err)
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
