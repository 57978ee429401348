// CLASSIFICATION: COMMUNITY
// Filename: server.go v0.4
// Author: Lukas Bower
// Date Modified: 2026-04-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package server wires the static file handler, the operational
// endpoints and the middleware chain into one HTTP server.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"staticd/internal/api"
	"staticd/internal/static"
)

// Logger abstracts logging for the server.
type Logger interface {
	Printf(string, ...any)
}

// Config holds server configuration.
type Config struct {
	Bind    string
	Port    int
	Root    string
	Entry   string
	LogFile string
	Rate    rate.Limit // requests per second; 0 disables limiting
	Burst   int
	Dev     bool
	Logger  Logger
}

// Server wraps the HTTP server and router.
type Server struct {
	cfg     Config
	router  *chi.Mux
	metrics *api.Metrics
	files   *static.Handler
}

// New returns an initialized server or an error when the root
// directory cannot be used.
func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}
	files, err := static.NewHandler(cfg.Root, cfg.Entry)
	if err != nil {
		return nil, fmt.Errorf("static root: %w", err)
	}
	metrics := api.NewMetrics(cfg.Rate, cfg.Burst)
	s := &Server{cfg: cfg, metrics: metrics, files: files}
	s.router = routes(cfg, files, metrics, time.Now())
	return s, nil
}

// Router returns the underlying router, useful for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Metrics exposes the request counters.
func (s *Server) Metrics() *api.Metrics {
	return s.metrics
}

// Addr returns the listening address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Bind, fmt.Sprint(s.cfg.Port))
}

// Start begins serving until ctx is done, then drains for up to one
// second before returning.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr(), Handler: s.router}
	go func() {
		<-ctx.Done()
		ctxTo, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(ctxTo)
	}()
	s.cfg.Logger.Printf("staticd serving %s on %s", s.files.Root(), s.Addr())
	return srv.ListenAndServe()
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}
