package callout_test

import (
	"sync"
	"testing"
	"time"

	"github.com/framegrace/tapboard/callout"
	"github.com/framegrace/tapboard/core"
	"github.com/framegrace/tapboard/keyboard"
)

// fakeClock drives the input callout without real timers.
type fakeClock struct {
	at      time.Time
	pending []func()
	delays  []time.Duration
}

func (f *fakeClock) now() time.Time { return f.at }

func (f *fakeClock) after(d time.Duration, fn func()) {
	f.delays = append(f.delays, d)
	f.pending = append(f.pending, fn)
}

func (f *fakeClock) fire() {
	for _, fn := range f.pending {
		fn()
	}
	f.pending = nil
}

func TestInputCalloutShowsOnlyCharacters(t *testing.T) {
	c := callout.NewInputCalloutController()
	frame := core.Rect{X: 5, Y: 5, W: 10, H: 10}

	c.UpdateInput(keyboard.CharacterAction("e"), frame)
	if !c.IsActive() || c.Input() != "e" {
		t.Fatalf("expected active bubble for 'e', got active=%v input=%q", c.IsActive(), c.Input())
	}
	if c.ButtonFrame() != frame {
		t.Fatalf("bubble should track the key frame, got %+v", c.ButtonFrame())
	}

	c.UpdateInput(keyboard.BackspaceAction(), frame)
	if c.IsActive() {
		t.Fatal("non-character actions must clear the bubble")
	}
}

func TestInputCalloutResetWithDelayHonorsMinimumDuration(t *testing.T) {
	clk := &fakeClock{at: time.Unix(0, 0)}
	c := callout.NewInputCalloutController()
	c.SetClock(clk.now, clk.after)
	c.SetMinimumVisibleDuration(100 * time.Millisecond)

	c.UpdateInput(keyboard.CharacterAction("q"), core.Rect{X: 0, Y: 0, W: 5, H: 5})

	// Released after 30ms: the clear is deferred for the remaining 70ms.
	clk.at = clk.at.Add(30 * time.Millisecond)
	c.ResetWithDelay()
	if !c.IsActive() {
		t.Fatal("bubble should stay up until the minimum duration elapses")
	}
	if len(clk.delays) != 1 || clk.delays[0] != 70*time.Millisecond {
		t.Fatalf("expected one 70ms deferral, got %v", clk.delays)
	}
	clk.fire()
	if c.IsActive() {
		t.Fatal("deferred reset should clear the bubble")
	}

	// Released after the minimum: cleared immediately.
	c.UpdateInput(keyboard.CharacterAction("w"), core.Rect{X: 0, Y: 0, W: 5, H: 5})
	clk.at = clk.at.Add(200 * time.Millisecond)
	c.ResetWithDelay()
	if c.IsActive() {
		t.Fatal("slow release should clear immediately")
	}
}

func TestInputCalloutChangeNotifications(t *testing.T) {
	c := callout.NewInputCalloutController()
	var states []bool
	c.OnChange(func(active bool) { states = append(states, active) })

	frame := core.Rect{X: 0, Y: 0, W: 5, H: 5}
	c.UpdateInput(keyboard.CharacterAction("a"), frame)
	c.UpdateInput(keyboard.CharacterAction("b"), frame) // still active, no event
	c.Reset()
	c.Reset() // idempotent, no event

	want := []bool{true, false}
	if len(states) != len(want) {
		t.Fatalf("expected %v, got %v", want, states)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, states)
		}
	}
}

// The default scheduler runs deferred resets on a timer goroutine, so
// the controller must tolerate those racing the goroutine driving the
// keyboard. Run with -race.
func TestInputCalloutDeferredResetFromTimerGoroutine(t *testing.T) {
	c := callout.NewInputCalloutController()
	c.SetMinimumVisibleDuration(time.Millisecond)
	frame := core.Rect{X: 0, Y: 0, W: 5, H: 5}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.UpdateInput(keyboard.CharacterAction("e"), frame)
				c.ResetWithDelay()
				c.IsActive()
				c.Input()
				c.ButtonFrame()
			}
		}()
	}
	wg.Wait()

	time.Sleep(10 * time.Millisecond)
	c.Reset()
	if c.IsActive() {
		t.Fatal("controller should end inactive")
	}
}

func TestInputCalloutListenersMayQueryTheController(t *testing.T) {
	c := callout.NewInputCalloutController()
	var seen []bool
	c.OnChange(func(bool) { seen = append(seen, c.IsActive()) })

	frame := core.Rect{X: 0, Y: 0, W: 5, H: 5}
	c.UpdateInput(keyboard.CharacterAction("k"), frame)
	c.Reset()

	want := []bool{true, false}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("listener observed %v, want %v", seen, want)
		}
	}
}
