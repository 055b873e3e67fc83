// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style/theme.go
// Summary: Color lookup for keyboard and callout rendering.
// Usage: Renderers call style.Get().GetColor(section, name, fallback).

package style

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Theme resolves named colors per section with a caller fallback.
type Theme struct {
	mu     sync.RWMutex
	colors map[string]map[string]tcell.Color
}

var (
	current *Theme
	once    sync.Once
)

// Get returns the process-wide theme, creating the default palette on
// first use.
func Get() *Theme {
	once.Do(func() {
		current = &Theme{colors: defaultPalette()}
	})
	return current
}

func defaultPalette() map[string]map[string]tcell.Color {
	return map[string]map[string]tcell.Color{
		"keyboard": {
			"key_bg":         tcell.ColorDarkSlateGray,
			"key_fg":         tcell.ColorWhite,
			"key_pressed_bg": tcell.ColorSteelBlue,
			"surface_bg":     tcell.ColorBlack,
		},
		"callout": {
			"bg":          tcell.ColorLightGray,
			"fg":          tcell.ColorBlack,
			"selected_bg": tcell.ColorSteelBlue,
			"selected_fg": tcell.ColorWhite,
		},
	}
}

// GetColor returns the color for section/name, or fallback when the
// theme has no entry.
func (t *Theme) GetColor(section, name string, fallback tcell.Color) tcell.Color {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if sec, ok := t.colors[section]; ok {
		if c, ok := sec[name]; ok {
			return c
		}
	}
	return fallback
}

// SetColor overrides one entry, creating the section if needed.
func (t *Theme) SetColor(section, name string, c tcell.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.colors[section] == nil {
		t.colors[section] = map[string]tcell.Color{}
	}
	t.colors[section][name] = c
}
