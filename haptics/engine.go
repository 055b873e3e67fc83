// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: haptics/engine.go
// Summary: Feedback sinks that turn selection changes into audible or logged cues.
// Usage: Wired into the callout controllers as their FeedbackSink.

package haptics

import "log"

// Beeper is the backend capability needed for audible feedback.
// tcell.Screen satisfies it.
type Beeper interface {
	Beep() error
}

// Engine emits one cue per selection change. Satisfies the callout
// package's FeedbackSink contract.
type Engine struct {
	beeper  Beeper
	enabled bool
}

// NewEngine wires feedback to a beeper. A nil beeper makes the engine
// silent regardless of enabled.
func NewEngine(b Beeper, enabled bool) *Engine {
	return &Engine{beeper: b, enabled: enabled}
}

// SetEnabled toggles feedback at runtime (config reload).
func (e *Engine) SetEnabled(enabled bool) { e.enabled = enabled }

// SelectionChanged emits one cue. Failures are logged, never surfaced:
// feedback must not fail observably mid-gesture.
func (e *Engine) SelectionChanged() {
	if !e.enabled || e.beeper == nil {
		return
	}
	if err := e.beeper.Beep(); err != nil {
		log.Printf("Haptics: beep failed: %v", err)
	}
}

// Noop is a FeedbackSink that does nothing.
type Noop struct{}

// SelectionChanged implements the feedback contract.
func (Noop) SelectionChanged() {}
