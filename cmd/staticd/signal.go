// CLASSIFICATION: COMMUNITY
// Filename: signal.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-04-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package main

import (
	"context"
	"os/signal"
	"syscall"
)

func newSignalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}
