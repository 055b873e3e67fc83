// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: keyboard/layout.go
// Summary: Key rows and frame resolution in the shared coordinate space.
// Usage: The renderer asks the layout for key frames; gesture code asks for hit tests.

package keyboard

import "github.com/framegrace/tapboard/core"

// Key is one slot in a layout row. Width is a weight relative to the
// other keys in the same row; zero means 1.
type Key struct {
	Action Action
	Width  float64
}

func (k Key) weight() float64 {
	if k.Width <= 0 {
		return 1
	}
	return k.Width
}

// Row is an ordered run of keys, left to right.
type Row []Key

// Layout is an ordered set of rows, top to bottom.
type Layout struct {
	Rows []Row
}

// Frames resolves every key to a frame inside bounds. Rows split the
// height evenly; keys split each row's width by weight.
func (l Layout) Frames(bounds core.Rect) [][]core.Rect {
	frames := make([][]core.Rect, len(l.Rows))
	if len(l.Rows) == 0 || bounds.IsZero() {
		return frames
	}
	rowH := bounds.H / float64(len(l.Rows))
	for ri, row := range l.Rows {
		frames[ri] = make([]core.Rect, len(row))
		total := 0.0
		for _, k := range row {
			total += k.weight()
		}
		if total == 0 {
			continue
		}
		x := bounds.X
		y := bounds.Y + float64(ri)*rowH
		for ki, k := range row {
			w := bounds.W * k.weight() / total
			frames[ri][ki] = core.Rect{X: x, Y: y, W: w, H: rowH}
			x += w
		}
	}
	return frames
}

// KeyAt returns the key and frame under p, resolved against bounds.
func (l Layout) KeyAt(p core.Point, bounds core.Rect) (Key, core.Rect, bool) {
	for ri, row := range l.Frames(bounds) {
		for ki, frame := range row {
			if frame.Contains(p) {
				return l.Rows[ri][ki], frame, true
			}
		}
	}
	return Key{}, core.Rect{}, false
}

// NewQWERTY builds the standard latin letter layout with a bottom
// utility row.
func NewQWERTY() Layout {
	rows := []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}
	l := Layout{}
	for i, chars := range rows {
		row := Row{}
		if i == 2 {
			row = append(row, Key{Action: ShiftAction(), Width: 1.5})
		}
		for _, ch := range chars {
			row = append(row, Key{Action: CharacterAction(string(ch))})
		}
		if i == 2 {
			row = append(row, Key{Action: BackspaceAction(), Width: 1.5})
		}
		l.Rows = append(l.Rows, row)
	}
	l.Rows = append(l.Rows, Row{
		{Action: Action{Kind: KindSwitch}, Width: 2},
		{Action: SpaceAction(), Width: 6},
		{Action: NewlineAction(), Width: 2},
	})
	return l
}
