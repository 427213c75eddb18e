// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"time"
)

// DefaultFrameInterval is the idle wake interval for [RenderLoop],
// bounding redraw latency when no events arrive.
const DefaultFrameInterval = 16 * time.Millisecond

// RenderLoop drives rendering from window events: it wakes at least
// every interval, pumps events via pollEvents, and renders one
// frame while the window remains open. The loop has two states,
// running and closing: pollEvents returning false (close requested)
// moves it to closing and the loop returns nil; every wake in the
// running state renders. A render error stops the loop immediately
// and is returned. All other event handling is up to pollEvents;
// the loop itself does not self-schedule redraws beyond the idle
// wake.
func RenderLoop(pollEvents func() bool, render func() error, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		if !pollEvents() {
			return nil
		}
		if err := render(); err != nil {
			return err
		}
	}
	return nil
}
