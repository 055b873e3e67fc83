// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/tapboard-demo/main.go
// Summary: Interactive demo wiring the keyboard, callouts, document and autocomplete.
// Usage: Run in a terminal; click keys, drag across callouts, Esc quits.

package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/tapboard/autocomplete"
	"github.com/framegrace/tapboard/callout"
	"github.com/framegrace/tapboard/config"
	"github.com/framegrace/tapboard/core"
	"github.com/framegrace/tapboard/document"
	"github.com/framegrace/tapboard/gesture"
	"github.com/framegrace/tapboard/haptics"
	"github.com/framegrace/tapboard/keyboard"
	"github.com/framegrace/tapboard/render"
)

func main() {
	configPath := flag.String("config", "tapboard.json", "path to the config file")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("tapboard-demo needs an interactive terminal")
	}

	// Log to a file; the terminal belongs to the keyboard.
	logFile, err := os.OpenFile("tapboard-demo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Println("Demo: starting")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Demo: config load failed, using defaults: %v", err)
		cfg = config.Default()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	a := newApp(screen, cfg)

	stopWatch, err := config.Watch(*configPath, func(cfg config.Config) {
		a.post(func() { a.applyConfig(cfg) })
	})
	if err != nil {
		log.Printf("Demo: config watch unavailable: %v", err)
	} else {
		defer stopWatch()
	}

	a.run()
	log.Println("Demo: stopped cleanly")
}

type app struct {
	screen tcell.Screen

	view          *render.KeyboardView
	actionCallout *callout.ActionCalloutController
	inputCallout  *callout.InputCalloutController
	feedback      *haptics.Engine
	handler       *keyboard.Handler
	buffer        *document.Buffer
	session       *document.Session

	lexicon     *autocomplete.Lexicon
	suggestions autocomplete.Provider

	adapter *gesture.MouseAdapter

	pressed keyboard.Key
}

// callbackEvent ferries deferred work from timer goroutines back onto
// the event loop, which owns all controller and screen state.
type callbackEvent struct {
	tcell.EventTime
	fn func()
}

func (a *app) post(fn func()) {
	ev := &callbackEvent{fn: fn}
	ev.SetEventTime(time.Now())
	if err := a.screen.PostEvent(ev); err != nil {
		log.Printf("Demo: event queue full, callback dropped")
	}
}

func newApp(screen tcell.Screen, cfg config.Config) *app {
	a := &app{
		screen:  screen,
		buffer:  document.NewBuffer(),
		session: document.NewSession(),
	}
	log.Printf("Demo: input session %s", a.session.ID)

	a.feedback = haptics.NewEngine(screen, cfg.HapticsEnabled)
	a.handler = keyboard.NewHandler(a.buffer, keyboard.NewContext())

	a.actionCallout = callout.NewActionCalloutController(
		callout.NewBaseActionProvider(), a.feedback, a.handler)
	a.inputCallout = callout.NewInputCalloutController()
	a.inputCallout.SetMinimumVisibleDuration(
		time.Duration(cfg.CalloutMinVisibleMs) * time.Millisecond)
	// Deferred bubble resets must not touch UI state from the timer
	// goroutine; route them through the event loop.
	a.inputCallout.SetClock(time.Now, func(d time.Duration, fn func()) {
		time.AfterFunc(d, func() { a.post(fn) })
	})

	a.view = render.NewKeyboardView(keyboard.NewQWERTY(), a.actionCallout, a.inputCallout)
	a.actionCallout.SetBoundsProvider(a.view)

	lexPath := cfg.LexiconPath
	if lexPath == "" {
		lexPath = ":memory:"
	}
	lex, err := autocomplete.OpenLexicon(lexPath)
	if err != nil {
		log.Printf("Demo: lexicon unavailable: %v", err)
	} else {
		a.lexicon = lex
		a.suggestions = autocomplete.NewLexiconProvider(lex)
	}

	recognizer := gesture.NewDragRecognizer(a)
	a.adapter = gesture.NewMouseAdapter(recognizer, nil)

	a.actionCallout.OnChange(func(callout.Event) { a.draw() })
	a.inputCallout.OnChange(func(bool) { a.draw() })
	return a
}

// applyConfig runs on the event loop; Watch callbacks arrive via post.
func (a *app) applyConfig(cfg config.Config) {
	log.Printf("Demo: config reloaded")
	a.feedback.SetEnabled(cfg.HapticsEnabled)
	a.inputCallout.SetMinimumVisibleDuration(
		time.Duration(cfg.CalloutMinVisibleMs) * time.Millisecond)
}

func (a *app) run() {
	a.layoutScreen()
	a.draw()
	for {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.layoutScreen()
			a.screen.Sync()
			a.draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				if a.lexicon != nil {
					a.lexicon.Close()
				}
				return
			}
		case *tcell.EventMouse:
			if a.adapter.HandleMouse(ev) {
				a.draw()
			}
		case *callbackEvent:
			ev.fn()
		}
	}
}

func (a *app) layoutScreen() {
	w, h := a.screen.Size()
	kbH := h / 2
	if kbH < 4 {
		kbH = h
	}
	a.view.SetBounds(core.Rect{X: 0, Y: float64(h - kbH), W: float64(w), H: float64(kbH)})
}

// DragBegan presses the key under the pointer and opens its callouts.
func (a *app) DragBegan(pos core.Point) {
	key, frame, ok := a.view.KeyAt(pos)
	if !ok {
		a.pressed = keyboard.Key{}
		return
	}
	a.pressed = key
	a.view.SetPressed(frame)
	a.inputCallout.UpdateInput(key.Action, frame)
	a.actionCallout.SetActionButtonSize(frame.Size())
	a.actionCallout.Open(key.Action, frame)
}

// DragMoved feeds the selection algorithm.
func (a *app) DragMoved(translation core.Point, pos core.Point) {
	a.actionCallout.UpdateSelection(translation, pos.X)
}

// DragEnded commits: the callout selection when one is active, the
// pressed key's own action otherwise.
func (a *app) DragEnded(core.Point) {
	a.view.SetPressed(core.Rect{})
	a.inputCallout.ResetWithDelay()
	if a.actionCallout.IsActive() {
		a.actionCallout.CommitAndReset()
	} else if !a.pressed.Action.IsNone() {
		a.handler.ActionChosen(a.pressed.Action)
	}
	a.session.RecordEdit()
	a.learnOnWordBreak()
	a.pressed = keyboard.Key{}
}

// DragCancelled abandons the press without committing anything.
func (a *app) DragCancelled() {
	a.view.SetPressed(core.Rect{})
	a.inputCallout.Reset()
	a.actionCallout.Reset()
	a.pressed = keyboard.Key{}
}

// learnOnWordBreak records the just-finished word when the cursor sits
// after a break character.
func (a *app) learnOnWordBreak() {
	if a.lexicon == nil {
		return
	}
	before := a.buffer.ContextBeforeCursor()
	if before == "" || !strings.ContainsAny(string(before[len(before)-1]), " \n") {
		return
	}
	fields := strings.Fields(before)
	if len(fields) == 0 {
		return
	}
	word := fields[len(fields)-1]
	a.session.RecordWord(word)
	if err := a.lexicon.Learn(word); err != nil {
		log.Printf("Demo: learn failed: %v", err)
	}
}

func (a *app) draw() {
	a.screen.Clear()
	w, _ := a.screen.Size()

	// Document line, then suggestions, then the keyboard.
	text := a.buffer.Text()
	st := tcell.StyleDefault
	x := 0
	for _, r := range text {
		if r == '\n' || x >= w {
			break
		}
		a.screen.SetContent(x, 0, r, nil, st)
		x++
	}
	a.screen.SetContent(x, 0, '▏', nil, st.Blink(true))

	if a.suggestions != nil {
		sugs := a.suggestions.Suggestions(a.buffer.CurrentWord(), 3)
		x := 0
		for _, s := range sugs {
			for _, r := range s.Word + "  " {
				if x >= w {
					break
				}
				a.screen.SetContent(x, 1, r, nil, st.Dim(true))
				x++
			}
		}
	}

	a.view.Draw(a.screen)
	a.screen.Show()
}
