// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: callout/input_callout.go
// Summary: State for the single-character preview bubble shown while a key is pressed.

package callout

import (
	"sync"
	"time"

	"github.com/framegrace/tapboard/core"
	"github.com/framegrace/tapboard/keyboard"
)

// DefaultMinimumVisibleDuration keeps fast taps legible: the bubble
// stays up at least this long even when the key is released sooner.
const DefaultMinimumVisibleDuration = 50 * time.Millisecond

// InputCalloutController owns the state of the character preview bubble.
// Only character actions show a bubble.
//
// The deferred reset fires on the scheduler's goroutine, so state is
// guarded by a mutex. Listeners run without the lock held, on whichever
// goroutine triggered the change; callers that keep all UI work on one
// goroutine should inject an after func that marshals onto it.
type InputCalloutController struct {
	mu          sync.Mutex
	action      keyboard.Action
	buttonFrame core.Rect

	minVisible time.Duration
	now        func() time.Time
	after      func(time.Duration, func())
	shownAt    time.Time

	listeners []func(active bool)
}

// NewInputCalloutController returns an inactive controller using the
// wall clock and time.AfterFunc for the delayed reset.
func NewInputCalloutController() *InputCalloutController {
	return &InputCalloutController{
		minVisible: DefaultMinimumVisibleDuration,
		now:        time.Now,
		after: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// SetMinimumVisibleDuration overrides the minimum bubble lifetime.
func (c *InputCalloutController) SetMinimumVisibleDuration(d time.Duration) {
	c.mu.Lock()
	c.minVisible = d
	c.mu.Unlock()
}

// SetClock injects the time source and scheduler. The after func decides
// which goroutine the deferred reset runs on.
func (c *InputCalloutController) SetClock(now func() time.Time, after func(time.Duration, func())) {
	c.mu.Lock()
	c.now = now
	c.after = after
	c.mu.Unlock()
}

// OnChange subscribes to activation changes.
func (c *InputCalloutController) OnChange(fn func(active bool)) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// UpdateInput shows the bubble for a character action pressed at frame.
// Non-character actions clear it instead.
func (c *InputCalloutController) UpdateInput(action keyboard.Action, frame core.Rect) {
	if !action.IsCharacter() {
		c.Reset()
		return
	}
	c.mu.Lock()
	wasActive := c.action.IsCharacter()
	c.action = action
	c.buttonFrame = frame
	c.shownAt = c.now()
	c.mu.Unlock()
	if !wasActive {
		c.emit(true)
	}
}

// Reset hides the bubble immediately. Idempotent.
func (c *InputCalloutController) Reset() {
	c.mu.Lock()
	wasActive := c.action.IsCharacter()
	c.action = keyboard.Action{}
	c.buttonFrame = core.Rect{}
	c.mu.Unlock()
	if wasActive {
		c.emit(false)
	}
}

// ResetWithDelay hides the bubble once the minimum visible duration has
// elapsed, deferring the clear when the key was released too fast.
func (c *InputCalloutController) ResetWithDelay() {
	c.mu.Lock()
	remaining := c.minVisible - c.now().Sub(c.shownAt)
	after := c.after
	c.mu.Unlock()
	if remaining <= 0 {
		c.Reset()
		return
	}
	after(remaining, c.Reset)
}

// IsActive reports whether the bubble is showing.
func (c *InputCalloutController) IsActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.action.IsCharacter()
}

// Input returns the previewed character, or "" while inactive.
func (c *InputCalloutController) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.action.Char
}

// ButtonFrame returns the pressed key's frame for the active bubble.
func (c *InputCalloutController) ButtonFrame() core.Rect {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buttonFrame
}

// emit snapshots the subscriber list and calls it unlocked, so a
// listener may query the controller.
func (c *InputCalloutController) emit(active bool) {
	c.mu.Lock()
	fns := make([]func(bool), len(c.listeners))
	copy(fns, c.listeners)
	c.mu.Unlock()
	for _, fn := range fns {
		fn(active)
	}
}
