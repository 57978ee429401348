// CLASSIFICATION: COMMUNITY
// Filename: status_test.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-04-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staticd/internal/api"
)

func TestStatusFields(t *testing.T) {
	start := time.Now().Add(-90 * time.Second)
	h := api.Status(start, "/srv/public", false)
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status code: %d", rr.Code)
	}
	var resp api.StatusResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
	if resp.Root != "/srv/public" {
		t.Fatalf("unexpected root: %q", resp.Root)
	}
	if resp.Dev {
		t.Fatalf("expected dev false")
	}
	d, err := time.ParseDuration(resp.Uptime)
	if err != nil {
		t.Fatalf("parse uptime %q: %v", resp.Uptime, err)
	}
	if d < 90*time.Second {
		t.Fatalf("uptime too small: %v", d)
	}
}
