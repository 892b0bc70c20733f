package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/audio-runner/internal/audio"
	"github.com/iburimskiy/audio-runner/internal/config"
	"github.com/iburimskiy/audio-runner/internal/display"
	"github.com/iburimskiy/audio-runner/internal/game"
	"github.com/iburimskiy/audio-runner/internal/terminal"
	"github.com/iburimskiy/audio-runner/internal/timer"
)

// keyInput is the window's button and switch device.
type keyInput struct {
	simple bool
}

func (k *keyInput) ReadButtons() game.Buttons {
	var b game.Buttons
	if ebiten.IsKeyPressed(ebiten.KeyR) || ebiten.IsKeyPressed(ebiten.KeyEnter) {
		b |= game.ButtonReset
	}
	if ebiten.IsKeyPressed(ebiten.KeyP) {
		b |= game.ButtonPause
	}
	return b
}

func (k *keyInput) ReadModeSwitch() bool { return k.simple }

// app hosts one session in an ebiten window. ebiten paces Update to the
// display refresh, so every Update is one frame.
type app struct {
	settings config.Settings
	log      *log.Logger

	fifo   *audio.FIFO
	player *audio.Player
	input  *keyInput
	fb     *display.FrameBuffer
	loop   *game.Loop

	pixels []byte
	state  game.GameState
	track  string

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

func newApp(settings config.Settings, logger *log.Logger, fifo *audio.FIFO, player *audio.Player) *app {
	input := &keyInput{simple: settings.Simple}
	fb := display.Screen()
	ind := display.NewIndicators()
	clock := timer.NewTickClock(timer.MonotonicTimeProvider{}, settings.TickPeriod)

	session := game.NewSession(game.Devices{
		Clock:      clock,
		Sensor:     fifo,
		Input:      input,
		Indicators: ind,
		Display:    fb,
	}, game.OptionsFrom(settings, logger))

	return &app{
		settings: settings,
		log:      logger,
		fifo:     fifo,
		player:   player,
		input:    input,
		fb:       fb,
		loop:     &game.Loop{Session: session, Display: fb, Renderer: display.NewRenderer(fb, ind)},
		state:    session.State(),
		track:    filepath.Base(settings.AudioFile),
		prevKey:  map[ebiten.Key]bool{},
	}
}

func (a *app) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !a.prevKey[k]
		a.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.input.simple = !a.input.simple
	}
	if justPressed(ebiten.KeySpace) {
		a.fifo.Inject(config.ImpulseLevel, config.ImpulseSamples)
	}
	if justPressed(ebiten.KeyO) {
		if err := a.openFileDialog(); err != nil {
			a.lastErr = err
		}
	}

	a.loop.Tick()

	if st := a.loop.Session.State(); st != a.state {
		a.state = st
		a.player.SetPaused(st == game.StatePaused)
	}
	return nil
}

func (a *app) openFileDialog() error {
	path, err := audio.PickFile()
	if err != nil || path == "" {
		return err
	}
	if err := a.player.Load(path); err != nil {
		return err
	}
	a.track = filepath.Base(path)
	a.lastErr = nil
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	a.pixels = a.fb.RGBA(a.pixels)
	screen.WritePixels(a.pixels)

	w, h := config.ScreenWidth, config.ScreenHeight
	switch a.loop.Session.State() {
	case game.StatePaused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - P to resume", w/2-60, h/2+30)
	case game.StateGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", w/2-27, h/2-8)
		ebitenutil.DebugPrintAt(screen, "R to restart", w/2-36, h/2+8)
	}

	mode := "hard"
	if a.input.simple {
		mode = "simple"
	}
	status := fmt.Sprintf("%s | O: open audio", mode)
	if a.player.Loaded() {
		status = fmt.Sprintf("%s | %s", mode, a.track)
	}
	if a.lastErr != nil {
		status += " | " + a.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 4, h-34)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func runWindow(settings config.Settings, logger *log.Logger, fifo *audio.FIFO, player *audio.Player) error {
	ebiten.SetWindowSize(config.ScreenWidth*settings.Scale, config.ScreenHeight*settings.Scale)
	ebiten.SetWindowTitle("Audio Runner - Space/clap: turn, P: pause, R: restart, M: mode, O: open, Esc/Q: quit")

	if err := ebiten.RunGame(newApp(settings, logger, fifo, player)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runTerminal(settings config.Settings, logger *log.Logger, fifo *audio.FIFO, player *audio.Player) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	keys := terminal.NewKeys(settings.Simple, timer.MonotonicTimeProvider{})
	fb := display.Screen()
	ind := display.NewIndicators()
	clock := timer.NewTickClock(timer.MonotonicTimeProvider{}, settings.TickPeriod)
	session := game.NewSession(game.Devices{
		Clock:      clock,
		Sensor:     fifo,
		Input:      keys,
		Indicators: ind,
		Display:    fb,
	}, game.OptionsFrom(settings, logger))
	loop := &game.Loop{Session: session, Display: fb, Renderer: display.NewRenderer(fb, ind)}

	front := terminal.New(screen, loop, fb, keys, time.Second/60, logger)
	front.Impulse = func() { fifo.Inject(config.ImpulseLevel, config.ImpulseSamples) }
	front.StateChanged = func(st game.GameState) { player.SetPaused(st == game.StatePaused) }
	front.Run()
	return nil
}

func main() {
	settings := config.Load()

	var logOut io.Writer = os.Stderr
	if settings.Frontend == config.FrontendTerminal {
		// stderr shares the terminal with the game
		logOut = io.Discard
	}
	logger := log.New(logOut, "audiorun: ", log.LstdFlags)

	fifo := audio.NewFIFO(config.SensorFIFOSize)
	player := audio.NewPlayer(fifo, settings.Mute, logger)
	defer player.Close()

	if settings.AudioFile != "" {
		if err := player.Load(settings.AudioFile); err != nil {
			// Non-fatal, the space key still turns
			logger.Printf("audio: %v", err)
		}
	}

	run := runWindow
	if settings.Frontend == config.FrontendTerminal {
		run = runTerminal
	}
	if err := run(settings, logger, fifo, player); err != nil {
		log.Fatal(err)
	}
}
