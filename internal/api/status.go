// CLASSIFICATION: COMMUNITY
// Filename: status.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-04-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// StatusResponse describes the running file server.
type StatusResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
	Root   string `json:"root"`
	Dev    bool   `json:"dev"`
}

// Status reports liveness and the serving root.
func Status(start time.Time, root string, dev bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := StatusResponse{
			Status: "ok",
			Uptime: time.Since(start).Round(time.Second).String(),
			Root:   root,
			Dev:    dev,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
