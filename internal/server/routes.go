// CLASSIFICATION: COMMUNITY
// Filename: routes.go v0.3
// Author: Lukas Bower
// Date Modified: 2026-04-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package server

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"staticd/internal/api"
	"staticd/internal/static"
)

func routes(cfg Config, files *static.Handler, metrics *api.Metrics, start time.Time) *chi.Mux {
	r := chi.NewRouter()
	r.Use(requestID)
	if cfg.LogFile != "" {
		r.Use(accessLogger(cfg.LogFile, cfg.Logger))
	}
	r.Use(middleware.Recoverer)
	r.Use(countRequests(metrics))
	if cfg.Rate > 0 {
		r.Use(rateLimiter(rate.NewLimiter(cfg.Rate, cfg.Burst), metrics))
	}
	if cfg.Dev {
		r.Use(debugLogger(cfg.Logger))
	}

	r.Get("/api/status", api.Status(start, files.Root(), cfg.Dev))
	r.Get("/api/metrics", metrics.Handler())
	r.Get("/*", files.ServeHTTP)
	r.Head("/*", files.ServeHTTP)
	return r
}
