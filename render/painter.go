// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/painter.go
// Summary: Clipped cell drawing over a tcell screen.

package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Painter draws cells into a clip region of a tcell screen.
type Painter struct {
	screen tcell.Screen
	clipX  int
	clipY  int
	clipW  int
	clipH  int
}

// NewPainter creates a painter clipped to the given cell region.
func NewPainter(screen tcell.Screen, x, y, w, h int) *Painter {
	return &Painter{screen: screen, clipX: x, clipY: y, clipW: w, clipH: h}
}

func (p *Painter) inClip(x, y int) bool {
	return x >= p.clipX && x < p.clipX+p.clipW && y >= p.clipY && y < p.clipY+p.clipH
}

// SetCell writes one rune, clipped.
func (p *Painter) SetCell(x, y int, ch rune, st tcell.Style) {
	if !p.inClip(x, y) {
		return
	}
	p.screen.SetContent(x, y, ch, nil, st)
}

// Fill fills a cell rect with ch.
func (p *Painter) Fill(x, y, w, h int, ch rune, st tcell.Style) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			p.SetCell(xx, yy, ch, st)
		}
	}
}

// DrawTextCentered draws s centered inside [x, x+w), truncating when
// the text is wider than the slot.
func (p *Painter) DrawTextCentered(x, y, w int, s string, st tcell.Style) {
	tw := runewidth.StringWidth(s)
	if tw > w {
		s = runewidth.Truncate(s, w, "")
		tw = runewidth.StringWidth(s)
	}
	cx := x + (w-tw)/2
	for _, r := range s {
		p.SetCell(cx, y, r, st)
		cx += runewidth.RuneWidth(r)
	}
}
