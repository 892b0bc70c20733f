package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/audio-runner/internal/game"
	"github.com/iburimskiy/audio-runner/internal/timer"
)

// Terminals report presses and auto-repeats, never releases. A key counts as
// held until no event for it arrives within these windows: the first one
// covers the delay before auto-repeat starts, the second the repeat rate.
const (
	repeatDelay  = 550 * time.Millisecond
	repeatWindow = 150 * time.Millisecond
)

// hold tracks one key from its event stream.
type hold struct {
	last      time.Time
	seen      bool
	repeating bool
}

func (h *hold) held(now time.Time) bool {
	if !h.seen {
		return false
	}
	window := repeatDelay
	if h.repeating {
		window = repeatWindow
	}
	return now.Sub(h.last) < window
}

// press records an event and reports whether it started a new hold.
func (h *hold) press(now time.Time) bool {
	fresh := !h.held(now)
	h.repeating = !fresh
	h.last = now
	h.seen = true
	return fresh
}

// Keys turns terminal key events into the button and switch device.
type Keys struct {
	tp     timer.TimeProvider
	reset  hold
	pause  hold
	mode   hold
	simple bool
}

func NewKeys(simple bool, tp timer.TimeProvider) *Keys {
	if tp == nil {
		tp = timer.MonotonicTimeProvider{}
	}
	return &Keys{tp: tp, simple: simple}
}

func (k *Keys) ReadButtons() game.Buttons {
	now := k.tp.Now()
	var b game.Buttons
	if k.reset.held(now) {
		b |= game.ButtonReset
	}
	if k.pause.held(now) {
		b |= game.ButtonPause
	}
	return b
}

func (k *Keys) ReadModeSwitch() bool { return k.simple }

type action int

const (
	actionNone action = iota
	actionQuit
	actionImpulse
)

func (k *Keys) handle(key tcell.Key, r rune) action {
	now := k.tp.Now()
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyEnter:
		k.reset.press(now)
		return actionNone
	case tcell.KeyRune:
	default:
		return actionNone
	}

	switch r {
	case 'q', 'Q':
		return actionQuit
	case 'p', 'P':
		k.pause.press(now)
	case 'r', 'R':
		k.reset.press(now)
	case 'm', 'M':
		// A held switch key flips once.
		if k.mode.press(now) {
			k.simple = !k.simple
		}
	case ' ':
		return actionImpulse
	}
	return actionNone
}
