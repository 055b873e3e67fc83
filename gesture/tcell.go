package gesture

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tapboard/core"
)

// CellMapper converts terminal cell coordinates into the shared
// keyboard coordinate space.
type CellMapper func(x, y int) core.Point

// MouseAdapter converts tcell mouse events into drag recognizer calls.
// Button 1 press begins a gesture, motion while held moves it, release
// ends it.
type MouseAdapter struct {
	recognizer *DragRecognizer
	mapper     CellMapper
	down       bool
}

// NewMouseAdapter builds an adapter. A nil mapper uses cell coordinates
// directly.
func NewMouseAdapter(recognizer *DragRecognizer, mapper CellMapper) *MouseAdapter {
	if mapper == nil {
		mapper = func(x, y int) core.Point { return core.Point{X: float64(x), Y: float64(y)} }
	}
	return &MouseAdapter{recognizer: recognizer, mapper: mapper}
}

// HandleMouse consumes one tcell mouse event. Returns true when the
// event belonged to an active or starting gesture.
func (m *MouseAdapter) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	pos := m.mapper(x, y)
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !m.down:
		m.down = true
		m.recognizer.Begin(pos)
		return true
	case pressed && m.down:
		m.recognizer.Move(pos)
		return true
	case !pressed && m.down:
		m.down = false
		m.recognizer.Move(pos)
		m.recognizer.End()
		return true
	}
	return false
}
