// CLASSIFICATION: COMMUNITY
// Filename: main.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-04-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package main

import "staticd/internal/tooling"

func main() {
	tooling.Execute()
}
