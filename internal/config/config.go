// CLASSIFICATION: COMMUNITY
// Filename: config.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-04-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package config loads staticd configuration from an optional JSON
// side file. Flags override file values; the file overrides defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config mirrors the serve command's flags.
type Config struct {
	Bind    string  `json:"bind"`
	Port    int     `json:"port"`
	Root    string  `json:"root"`
	Entry   string  `json:"entry"`
	LogFile string  `json:"log_file"`
	Rate    float64 `json:"rate"`
	Burst   int     `json:"burst"`
	Dev     bool    `json:"dev"`
}

// Default returns the reference defaults: serve ./public on
// 0.0.0.0:5000 with index.html as the entry file.
func Default() Config {
	return Config{
		Bind:  "0.0.0.0",
		Port:  5000,
		Root:  "public",
		Entry: "index.html",
		Burst: 1,
	}
}

// Load reads path on top of the defaults. Unknown fields are an
// error so typos in the file do not silently vanish.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
