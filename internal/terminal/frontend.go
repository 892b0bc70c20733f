package terminal

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/audio-runner/internal/display"
	"github.com/iburimskiy/audio-runner/internal/game"
)

const halfBlock = '▀'

// Frontend hosts a game loop in a terminal, two frame buffer rows per cell.
type Frontend struct {
	screen tcell.Screen
	loop   *game.Loop
	fb     *display.FrameBuffer
	keys   *Keys
	period time.Duration
	log    *log.Logger

	// Impulse is called for the space key.
	Impulse func()
	// StateChanged is called after a frame that changed the game state.
	StateChanged func(game.GameState)

	state game.GameState
}

func New(screen tcell.Screen, loop *game.Loop, fb *display.FrameBuffer, keys *Keys, period time.Duration, logger *log.Logger) *Frontend {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Frontend{
		screen: screen,
		loop:   loop,
		fb:     fb,
		keys:   keys,
		period: period,
		log:    logger,
		state:  loop.Session.State(),
	}
}

// HandleEvent applies one terminal event and reports whether to keep running.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.key(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) key(key tcell.Key, r rune) bool {
	switch f.keys.handle(key, r) {
	case actionQuit:
		return false
	case actionImpulse:
		if f.Impulse != nil {
			f.Impulse()
		}
	}
	return true
}

// Frame runs one game frame and presents it.
func (f *Frontend) Frame() {
	f.loop.Tick()
	if st := f.loop.Session.State(); st != f.state {
		f.state = st
		if f.StateChanged != nil {
			f.StateChanged(st)
		}
	}
	f.Draw()
}

// Draw paints the front buffer scaled into all rows but the last, which
// carries the status line.
func (f *Frontend) Draw() {
	cols, rows := f.screen.Size()
	rows--
	if cols <= 0 || rows <= 0 {
		return
	}
	w, h := f.fb.Width(), f.fb.Height()
	for cy := 0; cy < rows; cy++ {
		top := (2 * cy) * h / (2 * rows)
		bottom := (2*cy + 1) * h / (2 * rows)
		for cx := 0; cx < cols; cx++ {
			x := cx * w / cols
			style := tcell.StyleDefault.
				Foreground(toTcell(f.fb.At(x, top))).
				Background(toTcell(f.fb.At(x, bottom)))
			f.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}

	snap := f.loop.Session.Snapshot()
	switch snap.State {
	case game.StatePaused:
		f.centered(rows/2, "PAUSED", tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow))
	case game.StateGameOver:
		f.centered(rows/2, "GAME OVER", tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed))
	}

	status := StatusLine(snap)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for x := 0; x < cols; x++ {
		ch := ' '
		if x < len(status) {
			ch = rune(status[x])
		}
		f.screen.SetContent(x, rows, ch, nil, style)
	}
	f.screen.Show()
}

func (f *Frontend) centered(y int, text string, style tcell.Style) {
	cols, _ := f.screen.Size()
	x := (cols - len(text)) / 2
	for i, ch := range text {
		f.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Run polls terminal events on a goroutine and steps the game on a ticker
// until a quit key arrives.
func (f *Frontend) Run() {
	ticker := time.NewTicker(f.period)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	f.log.Printf("terminal frontend running at %v per frame", f.period)
	for {
		select {
		case ev := <-eventChan:
			if !f.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			f.Frame()
		}
	}
}

// StatusLine summarizes a snapshot in one row of text.
func StatusLine(snap game.Snapshot) string {
	mode := "hard"
	if snap.Simple {
		mode = "simple"
	}
	return fmt.Sprintf("SCORE %02d  TIME %s  LAPS %d  %s  %s  turns %d",
		snap.Score, game.FormatTime(snap.TimeHundredths), snap.Laps, snap.State, mode, snap.Stats.Turns)
}

func toTcell(c game.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
