package haptics_test

import (
	"errors"
	"testing"

	"github.com/framegrace/tapboard/haptics"
)

type fakeBeeper struct {
	beeps int
	err   error
}

func (f *fakeBeeper) Beep() error {
	f.beeps++
	return f.err
}

func TestEngineBeepsWhenEnabled(t *testing.T) {
	b := &fakeBeeper{}
	e := haptics.NewEngine(b, true)
	e.SelectionChanged()
	e.SelectionChanged()
	if b.beeps != 2 {
		t.Fatalf("expected 2 beeps, got %d", b.beeps)
	}
}

func TestEngineStaysSilentWhenDisabled(t *testing.T) {
	b := &fakeBeeper{}
	e := haptics.NewEngine(b, false)
	e.SelectionChanged()
	if b.beeps != 0 {
		t.Fatalf("disabled engine must not beep, got %d", b.beeps)
	}
	e.SetEnabled(true)
	e.SelectionChanged()
	if b.beeps != 1 {
		t.Fatalf("re-enabled engine should beep, got %d", b.beeps)
	}
}

func TestEngineSwallowsBeeperErrors(t *testing.T) {
	b := &fakeBeeper{err: errors.New("no bell")}
	e := haptics.NewEngine(b, true)
	// Must not panic or surface the error.
	e.SelectionChanged()
	if b.beeps != 1 {
		t.Fatalf("beeper should still be called, got %d", b.beeps)
	}
}

func TestNilBeeperIsSafe(t *testing.T) {
	e := haptics.NewEngine(nil, true)
	e.SelectionChanged()
	haptics.Noop{}.SelectionChanged()
}
