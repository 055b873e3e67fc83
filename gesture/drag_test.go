package gesture_test

import (
	"testing"

	"github.com/framegrace/tapboard/core"
	"github.com/framegrace/tapboard/gesture"
)

type recordingDelegate struct {
	began        []core.Point
	translations []core.Point
	positions    []core.Point
	ended        []core.Point
	cancelled    int
}

func (d *recordingDelegate) DragBegan(p core.Point) { d.began = append(d.began, p) }
func (d *recordingDelegate) DragMoved(t, p core.Point) {
	d.translations = append(d.translations, t)
	d.positions = append(d.positions, p)
}
func (d *recordingDelegate) DragEnded(p core.Point) { d.ended = append(d.ended, p) }
func (d *recordingDelegate) DragCancelled()         { d.cancelled++ }

func TestDragReportsCumulativeTranslation(t *testing.T) {
	d := &recordingDelegate{}
	r := gesture.NewDragRecognizer(d)

	r.Begin(core.Point{X: 10, Y: 5})
	r.Move(core.Point{X: 13, Y: 5})
	r.Move(core.Point{X: 20, Y: 7})
	r.End()

	if len(d.began) != 1 || d.began[0] != (core.Point{X: 10, Y: 5}) {
		t.Fatalf("unexpected begin events: %v", d.began)
	}
	want := []core.Point{{X: 3, Y: 0}, {X: 10, Y: 2}}
	if len(d.translations) != 2 || d.translations[0] != want[0] || d.translations[1] != want[1] {
		t.Fatalf("expected translations %v, got %v", want, d.translations)
	}
	if len(d.ended) != 1 || d.ended[0] != (core.Point{X: 20, Y: 7}) {
		t.Fatalf("end should report the last position, got %v", d.ended)
	}
}

func TestMoveAndEndWithoutBeginAreNoOps(t *testing.T) {
	d := &recordingDelegate{}
	r := gesture.NewDragRecognizer(d)
	r.Move(core.Point{X: 1, Y: 1})
	r.End()
	r.Cancel()
	if len(d.translations) != 0 || len(d.ended) != 0 || d.cancelled != 0 {
		t.Fatalf("inactive recognizer must stay silent: %+v", d)
	}
}

func TestBeginWhileActiveCancelsFirstGesture(t *testing.T) {
	d := &recordingDelegate{}
	r := gesture.NewDragRecognizer(d)
	r.Begin(core.Point{X: 0, Y: 0})
	r.Begin(core.Point{X: 5, Y: 5})
	if d.cancelled != 1 {
		t.Fatalf("expected the first gesture to be cancelled, got %d", d.cancelled)
	}
	r.Move(core.Point{X: 7, Y: 5})
	if d.translations[0] != (core.Point{X: 2, Y: 0}) {
		t.Fatalf("translation should restart from the new origin, got %v", d.translations[0])
	}
}
