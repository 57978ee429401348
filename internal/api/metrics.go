// CLASSIFICATION: COMMUNITY
// Filename: metrics.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-04-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package api

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Metrics collects request counters for the process lifetime. All
// counters are atomic; no locking is needed on the request path.
type Metrics struct {
	start       time.Time
	limit       rate.Limit
	burst       int
	requests    atomic.Int64
	rateAllowed atomic.Int64
	rateDenied  atomic.Int64
}

// NewMetrics returns counters annotated with the configured rate limit.
// A zero limit means limiting is disabled.
func NewMetrics(limit rate.Limit, burst int) *Metrics {
	return &Metrics{start: time.Now(), limit: limit, burst: burst}
}

// IncRequest records one received request.
func (m *Metrics) IncRequest() { m.requests.Add(1) }

// IncAllowed records one request passed by the rate limiter.
func (m *Metrics) IncAllowed() { m.rateAllowed.Add(1) }

// IncDenied records one request rejected by the rate limiter.
func (m *Metrics) IncDenied() { m.rateDenied.Add(1) }

type metricsResponse struct {
	RequestsTotal    int64   `json:"requests_total"`
	StartTimeSeconds int64   `json:"start_time_seconds"`
	RateLimitPerSec  float64 `json:"rate_limit_per_second"`
	RateBurstTokens  int     `json:"rate_burst_tokens"`
	RateAllowedTotal int64   `json:"rate_allowed_total"`
	RateDeniedTotal  int64   `json:"rate_denied_total"`
}

// Handler serves the counters as JSON.
func (m *Metrics) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := metricsResponse{
			RequestsTotal:    m.requests.Load(),
			StartTimeSeconds: m.start.Unix(),
			RateLimitPerSec:  float64(m.limit),
			RateBurstTokens:  m.burst,
			RateAllowedTotal: m.rateAllowed.Load(),
			RateDeniedTotal:  m.rateDenied.Load(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
