package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/audio-runner/internal/display"
	"github.com/iburimskiy/audio-runner/internal/game"
	"github.com/iburimskiy/audio-runner/internal/timer"
)

const frameTime = 16 * time.Millisecond

func newTestFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen, *timer.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	fb := display.Screen()
	ind := display.NewIndicators()
	tp := timer.NewMockTimeProvider(time.Unix(0, 0))
	keys := NewKeys(false, tp)
	s := game.NewSession(game.Devices{Input: keys, Indicators: ind, Display: fb}, game.Options{Seed: 5})
	loop := &game.Loop{Session: s, Display: fb, Renderer: display.NewRenderer(fb, ind)}
	return New(screen, loop, fb, keys, time.Millisecond, nil), screen, tp
}

// frame advances the mock clock by one frame and runs it.
func frame(f *Frontend, tp *timer.MockTimeProvider) {
	tp.Advance(frameTime)
	f.Frame()
}

func rowText(screen tcell.SimulationScreen, y, n int) string {
	var sb strings.Builder
	for x := 0; x < n; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestKeysHeldWhileRepeating(t *testing.T) {
	tp := timer.NewMockTimeProvider(time.Unix(0, 0))
	k := NewKeys(false, tp)
	k.handle(tcell.KeyRune, 'p')
	k.handle(tcell.KeyEnter, 0)

	if b := k.ReadButtons(); !b.Has(game.ButtonPause) || !b.Has(game.ButtonReset) {
		t.Fatalf("expected pause and reset, got %b", b)
	}

	// Auto-repeat starts after the initial delay and keeps the key held.
	tp.Advance(500 * time.Millisecond)
	if !k.ReadButtons().Has(game.ButtonPause) {
		t.Fatal("key released during the auto-repeat delay")
	}
	for i := 0; i < 10; i++ {
		k.handle(tcell.KeyRune, 'p')
		tp.Advance(100 * time.Millisecond)
		if !k.ReadButtons().Has(game.ButtonPause) {
			t.Fatalf("repeat %d: key read as released", i)
		}
	}

	tp.Advance(repeatWindow)
	if b := k.ReadButtons(); b.Has(game.ButtonPause) {
		t.Fatalf("key should release once repeats stop, got %b", b)
	}
	if b := k.ReadButtons(); b.Has(game.ButtonReset) {
		t.Fatalf("enter should have released, got %b", b)
	}
}

func TestModeKeyFlipsOncePerHold(t *testing.T) {
	tp := timer.NewMockTimeProvider(time.Unix(0, 0))
	k := NewKeys(false, tp)

	for i := 0; i < 5; i++ {
		k.handle(tcell.KeyRune, 'm')
		tp.Advance(50 * time.Millisecond)
	}
	if !k.ReadModeSwitch() {
		t.Fatal("m should flip the mode switch")
	}

	tp.Advance(time.Second)
	k.handle(tcell.KeyRune, 'm')
	if k.ReadModeSwitch() {
		t.Error("a new press should flip the switch back")
	}
	if k.handle(tcell.KeyEscape, 0) != actionQuit || k.handle(tcell.KeyRune, 'q') != actionQuit {
		t.Error("escape and q should quit")
	}
	if k.handle(tcell.KeyRune, ' ') != actionImpulse {
		t.Error("space should inject an impulse")
	}
}

func TestHeldResetDoesNotRestart(t *testing.T) {
	f, _, tp := newTestFrontend(t)
	s := f.loop.Session

	// Crash into a block one step ahead while R is held.
	p := s.Player.Pos
	s.World.Obstacles.Add(game.Obstacle{Rect: game.Rect{X: p.X - 5, Y: p.Y - 6, W: 10, H: 10}, Color: game.Green})
	f.key(tcell.KeyRune, 'r')
	frame(f, tp)
	if s.State() != game.StateGameOver {
		t.Fatalf("expected GAME_OVER, got %v", s.State())
	}

	// Initial repeat delay, then a repeat every other frame.
	for i := 0; i < 30; i++ {
		frame(f, tp)
	}
	for i := 0; i < 120; i++ {
		if i%2 == 0 {
			f.key(tcell.KeyRune, 'r')
		}
		frame(f, tp)
		if s.State() != game.StateGameOver {
			t.Fatalf("held R restarted the session at frame %d", i)
		}
	}

	// Release, then a fresh press restarts.
	for i := 0; i < 20; i++ {
		frame(f, tp)
	}
	f.key(tcell.KeyRune, 'r')
	frame(f, tp)
	if s.State() != game.StateRunning {
		t.Fatalf("expected restart after release and press, got %v", s.State())
	}
}

func TestFrameDrawsHalfBlocksAndStatus(t *testing.T) {
	f, screen, tp := newTestFrontend(t)
	frame(f, tp)
	frame(f, tp)

	r, _, style, _ := screen.GetContent(40, 12)
	if r != halfBlock {
		t.Fatalf("expected half block at center, got %q", r)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("center cell should show the red player, fg %v", fg)
	}

	status := rowText(screen, 24, 30)
	if !strings.HasPrefix(status, "SCORE 00  TIME 00.00") {
		t.Errorf("unexpected status %q", status)
	}
}

func TestPauseKeyAndStateCallback(t *testing.T) {
	f, screen, tp := newTestFrontend(t)
	var states []game.GameState
	f.StateChanged = func(s game.GameState) { states = append(states, s) }

	f.keys.handle(tcell.KeyRune, 'p')
	frame(f, tp)
	if f.loop.Session.State() != game.StatePaused {
		t.Fatalf("expected paused, got %v", f.loop.Session.State())
	}
	if len(states) != 1 || states[0] != game.StatePaused {
		t.Fatalf("state callback got %v", states)
	}
	if got := rowText(screen, 12, 80); !strings.Contains(got, "PAUSED") {
		t.Errorf("pause banner missing: %q", got)
	}

	tp.Advance(repeatDelay)
	f.Frame()
	f.keys.handle(tcell.KeyRune, 'p')
	frame(f, tp)
	if f.loop.Session.State() != game.StateRunning || len(states) != 2 {
		t.Fatalf("expected resume, state %v callbacks %v", f.loop.Session.State(), states)
	}
}

func TestImpulseAndQuitKeys(t *testing.T) {
	f, _, _ := newTestFrontend(t)
	fired := 0
	f.Impulse = func() { fired++ }

	if !f.key(tcell.KeyRune, ' ') || fired != 1 {
		t.Fatalf("space should fire the impulse hook once, got %d", fired)
	}
	if f.key(tcell.KeyEscape, 0) {
		t.Error("escape should stop the frontend")
	}
	if !f.HandleEvent(tcell.NewEventResize(100, 40)) {
		t.Error("resize must not stop the frontend")
	}
}

func TestStatusLine(t *testing.T) {
	snap := game.Snapshot{State: game.StateGameOver, Score: 7, TimeHundredths: 1234, Laps: 2, Simple: true}
	want := "SCORE 07  TIME 12.34  LAPS 2  game-over  simple  turns 0"
	if got := StatusLine(snap); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
