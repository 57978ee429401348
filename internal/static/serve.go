// CLASSIFICATION: COMMUNITY
// Filename: serve.go v0.3
// Author: Lukas Bower
// Date Modified: 2026-04-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package static serves files from a single root directory. Path
// resolution is explicit: the request path is cleaned, joined to the
// root, and the result verified to still sit under the root before any
// filesystem access happens.
package static

import (
	"errors"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrTraversal signals a request path that resolves outside the root.
var ErrTraversal = errors.New("path escapes root directory")

// Handler serves files from a fixed root directory. The zero value is
// not usable; construct with NewHandler.
type Handler struct {
	root  string
	entry string
}

// NewHandler returns a handler rooted at dir. entry names the file
// served for the bare "/" path, typically index.html. dir must exist
// and be a directory.
func NewHandler(dir, entry string) (*Handler, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("root is not a directory: " + abs)
	}
	if entry == "" {
		entry = "index.html"
	}
	return &Handler{root: abs, entry: entry}, nil
}

// Root returns the absolute root directory.
func (h *Handler) Root() string { return h.root }

// Resolve maps a request path to an absolute filesystem path under the
// root. It returns ErrTraversal when the cleaned path would land
// outside the root.
func (h *Handler) Resolve(reqPath string) (string, error) {
	if strings.ContainsRune(reqPath, 0) {
		return "", ErrTraversal
	}
	name := strings.TrimPrefix(reqPath, "/")
	if name == "" {
		name = h.entry
	}
	name = path.Clean(name)
	full := filepath.Join(h.root, filepath.FromSlash(name))
	if full != h.root && !strings.HasPrefix(full, h.root+string(filepath.Separator)) {
		return "", ErrTraversal
	}
	return full, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	full, err := h.Resolve(r.URL.Path)
	if err != nil {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	f, err := os.Open(full)
	if err != nil {
		writeFSError(w, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		writeFSError(w, err)
		return
	}
	if !info.Mode().IsRegular() {
		// Directories and special files are not served; listing is
		// intentionally unsupported.
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	if ctype := mime.TypeByExtension(filepath.Ext(full)); ctype != "" {
		w.Header().Set("Content-Type", ctype)
	}
	if _, err := io.Copy(w, f); err != nil {
		// Headers are already gone; nothing left to signal.
		return
	}
}

func writeFSError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, fs.ErrPermission):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
