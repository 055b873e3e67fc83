package render_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tapboard/callout"
	"github.com/framegrace/tapboard/core"
	"github.com/framegrace/tapboard/keyboard"
	"github.com/framegrace/tapboard/render"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func screenContains(s tcell.SimulationScreen, want rune) bool {
	cells, w, h := s.GetContents()
	for i := 0; i < w*h; i++ {
		for _, r := range cells[i].Runes {
			if r == want {
				return true
			}
		}
	}
	return false
}

func TestKeyboardViewDrawsKeyLabels(t *testing.T) {
	s := newSimScreen(t, 40, 12)
	view := render.NewKeyboardView(keyboard.NewQWERTY(), nil, nil)
	view.SetBounds(core.Rect{X: 0, Y: 2, W: 40, H: 8})

	view.Draw(s)
	s.Show()

	for _, want := range []rune{'q', 'p', 'a', 'm'} {
		if !screenContains(s, want) {
			t.Fatalf("expected key label %q on screen", want)
		}
	}
}

func TestKeyboardViewDrawsActionCalloutOverlay(t *testing.T) {
	s := newSimScreen(t, 40, 12)
	ac := callout.NewActionCalloutController(callout.NewBaseActionProvider(), nil, nil)
	view := render.NewKeyboardView(keyboard.NewQWERTY(), ac, nil)
	view.SetBounds(core.Rect{X: 0, Y: 2, W: 40, H: 8})
	ac.SetBoundsProvider(view)

	// Press 'e' on the top row and open its callout.
	key, frame, ok := view.KeyAt(core.Point{X: 9, Y: 3})
	if !ok || key.Action.Char != "e" {
		t.Fatalf("expected to hit 'e', got %+v ok=%v", key, ok)
	}
	ac.SetActionButtonSize(frame.Size())
	ac.Open(key.Action, frame)
	if !ac.IsActive() {
		t.Fatal("callout should open for 'e'")
	}

	view.Draw(s)
	s.Show()

	if !screenContains(s, 'è') {
		t.Fatal("expected accent alternates in the callout overlay")
	}
}

func TestKeyboardViewHitTestMissesGaps(t *testing.T) {
	view := render.NewKeyboardView(keyboard.NewQWERTY(), nil, nil)
	view.SetBounds(core.Rect{X: 0, Y: 2, W: 40, H: 8})
	if _, _, ok := view.KeyAt(core.Point{X: 5, Y: 0}); ok {
		t.Fatal("points above the keyboard must not hit keys")
	}
}
