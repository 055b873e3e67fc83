// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/keyboard_view.go
// Summary: Draws the key grid, the pressed-key highlight and the callout overlays.
// Usage: The demo resizes it to a screen region and redraws on state changes.

package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tapboard/callout"
	"github.com/framegrace/tapboard/core"
	"github.com/framegrace/tapboard/keyboard"
	"github.com/framegrace/tapboard/style"
)

// KeyboardView renders a layout into a screen region. One terminal cell
// equals one unit of the shared coordinate space, so gesture positions
// map 1:1 onto cells.
type KeyboardView struct {
	Layout keyboard.Layout

	bounds       core.Rect
	pressedFrame core.Rect

	actionCallout *callout.ActionCalloutController
	inputCallout  *callout.InputCalloutController
}

// NewKeyboardView wires a view to the controllers whose state it draws.
// Either controller may be nil.
func NewKeyboardView(layout keyboard.Layout, ac *callout.ActionCalloutController, ic *callout.InputCalloutController) *KeyboardView {
	return &KeyboardView{Layout: layout, actionCallout: ac, inputCallout: ic}
}

// SetBounds places the keyboard inside the screen.
func (v *KeyboardView) SetBounds(r core.Rect) { v.bounds = r }

// LayoutBounds implements the callout package's BoundsProvider.
func (v *KeyboardView) LayoutBounds() core.Rect { return v.bounds }

// KeyAt resolves the key under a gesture position.
func (v *KeyboardView) KeyAt(p core.Point) (keyboard.Key, core.Rect, bool) {
	return v.Layout.KeyAt(p, v.bounds)
}

// SetPressed highlights the key at frame; a zero rect clears it.
func (v *KeyboardView) SetPressed(frame core.Rect) { v.pressedFrame = frame }

// Draw renders the keyboard and any active callout overlay.
func (v *KeyboardView) Draw(screen tcell.Screen) {
	if v.bounds.IsZero() {
		return
	}
	tm := style.Get()
	surface := tcell.StyleDefault.Background(tm.GetColor("keyboard", "surface_bg", tcell.ColorBlack))
	keySt := tcell.StyleDefault.
		Background(tm.GetColor("keyboard", "key_bg", tcell.ColorDarkSlateGray)).
		Foreground(tm.GetColor("keyboard", "key_fg", tcell.ColorWhite))
	pressedSt := keySt.Background(tm.GetColor("keyboard", "key_pressed_bg", tcell.ColorSteelBlue))

	p := NewPainter(screen, cellOf(v.bounds.X), cellOf(v.bounds.Y-2), cellOf(v.bounds.W), cellOf(v.bounds.H)+2)
	p.Fill(cellOf(v.bounds.X), cellOf(v.bounds.Y), cellOf(v.bounds.W), cellOf(v.bounds.H), ' ', surface)

	frames := v.Layout.Frames(v.bounds)
	for ri, row := range frames {
		for ki, frame := range row {
			st := keySt
			if frame == v.pressedFrame && !frame.IsZero() {
				st = pressedSt
			}
			v.drawKey(p, v.Layout.Rows[ri][ki], frame, st)
		}
	}

	if v.inputCallout != nil && v.inputCallout.IsActive() {
		v.drawInputCallout(p)
	}
	if v.actionCallout != nil && v.actionCallout.IsActive() {
		v.drawActionCallout(p)
	}
}

func (v *KeyboardView) drawKey(p *Painter, k keyboard.Key, frame core.Rect, st tcell.Style) {
	x, y := cellOf(frame.X), cellOf(frame.Y)
	w, h := cellOf(frame.W), cellOf(frame.H)
	if w < 1 || h < 1 {
		return
	}
	// One cell of gutter on the right and bottom keeps keys readable.
	if w > 1 {
		w--
	}
	if h > 1 {
		h--
	}
	p.Fill(x, y, w, h, ' ', st)
	p.DrawTextCentered(x, y+h/2, w, k.Action.Label(), st)
}

// drawActionCallout paints the choice strip one row above the pressed
// key. Index 0 sits nearest the key: at the key for Leading, at the
// right end of a leftward strip for Trailing.
func (v *KeyboardView) drawActionCallout(p *Painter) {
	tm := style.Get()
	base := tcell.StyleDefault.
		Background(tm.GetColor("callout", "bg", tcell.ColorLightGray)).
		Foreground(tm.GetColor("callout", "fg", tcell.ColorBlack))
	sel := tcell.StyleDefault.
		Background(tm.GetColor("callout", "selected_bg", tcell.ColorSteelBlue)).
		Foreground(tm.GetColor("callout", "selected_fg", tcell.ColorWhite))

	frame := v.actionCallout.ButtonFrame()
	actions := v.actionCallout.Actions()
	selIdx := v.actionCalloutSelected()
	w := cellOf(frame.W)
	if w < 1 {
		w = 1
	}
	y := cellOf(frame.Y) - 1

	for i, a := range actions {
		var x int
		if v.actionCallout.IsTrailing() {
			x = cellOf(frame.MaxX()) - (i+1)*w
		} else {
			x = cellOf(frame.X) + i*w
		}
		st := base
		if i == selIdx {
			st = sel
		}
		p.Fill(x, y, w, 1, ' ', st)
		p.DrawTextCentered(x, y, w, a.Label(), st)
	}
}

func (v *KeyboardView) actionCalloutSelected() int {
	if !v.actionCallout.HasSelection() {
		return callout.NoSelection
	}
	return v.actionCallout.SelectedIndex()
}

func (v *KeyboardView) drawInputCallout(p *Painter) {
	tm := style.Get()
	st := tcell.StyleDefault.
		Background(tm.GetColor("callout", "bg", tcell.ColorLightGray)).
		Foreground(tm.GetColor("callout", "fg", tcell.ColorBlack))
	frame := v.inputCallout.ButtonFrame()
	w := cellOf(frame.W)
	if w < 1 {
		w = 1
	}
	y := cellOf(frame.Y) - 1
	x := cellOf(frame.X)
	p.Fill(x, y, w, 1, ' ', st)
	p.DrawTextCentered(x, y, w, v.inputCallout.Input(), st)
}

func cellOf(f float64) int { return int(math.Round(f)) }
