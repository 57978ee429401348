// CLASSIFICATION: COMMUNITY
// Filename: middleware.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-04-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package server

import (
	"net/http"
	"os"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"staticd/internal/api"
)

const requestIDHeader = "X-Request-Id"

// requestID tags every request with an id, preserving one supplied by
// the caller.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func accessLogger(path string, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Printf("open access log: %v", err)
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			line := r.Header.Get(requestIDHeader) + " " + r.RemoteAddr + " " +
				r.Method + " " + r.URL.Path + " " + strconv.Itoa(rec.status) + "\n"
			f.Write([]byte(line))
		})
	}
}

func countRequests(metrics *api.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metrics.IncRequest()
			next.ServeHTTP(w, r)
		})
	}
}

func rateLimiter(limiter *rate.Limiter, metrics *api.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				metrics.IncDenied()
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			metrics.IncAllowed()
			next.ServeHTTP(w, r)
		})
	}
}

// debugLogger logs every request line when dev mode is on.
func debugLogger(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s %s", r.RemoteAddr, r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
}
