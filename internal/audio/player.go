package audio

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Decode opens path and picks a decoder by extension.
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open audio: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return streamer, format, nil
}

// Player plays a looping track through the speaker while feeding a FIFO.
// The speaker goroutine is what paces samples into the sensor.
type Player struct {
	fifo *FIFO
	mute bool
	log  *log.Logger

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	initDone bool
	paused   bool
}

func NewPlayer(fifo *FIFO, mute bool, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Player{fifo: fifo, mute: mute, log: logger}
}

// Load decodes path and starts playing it on a loop, replacing any current track.
func (p *Player) Load(path string) error {
	streamer, format, err := Decode(path)
	if err != nil {
		return err
	}

	// Prepare audio chain: streamer -> tap -> ctrl -> volume
	tap := NewTap(beep.Loop(-1, streamer), p.fifo)
	ctrl := &beep.Ctrl{Streamer: tap, Paused: p.paused}
	out := &effects.Volume{Streamer: ctrl, Base: 2, Silent: p.mute}

	// (Re)initialize speaker if needed
	bufferSize := format.SampleRate.N(time.Second / 20)
	if !p.initDone || p.format.SampleRate != format.SampleRate {
		if p.initDone {
			speaker.Clear()
		}
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	} else {
		speaker.Clear()
	}

	if p.streamer != nil {
		_ = p.streamer.Close()
	}
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl

	speaker.Play(out)
	p.log.Printf("audio: playing %s (%d Hz)", filepath.Base(path), format.SampleRate)
	return nil
}

// SetPaused pauses playback, which also stops samples reaching the sensor.
func (p *Player) SetPaused(paused bool) {
	p.paused = paused
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

func (p *Player) Loaded() bool { return p.streamer != nil }

func (p *Player) Close() {
	if !p.initDone {
		return
	}
	speaker.Clear()
	speaker.Close()
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	p.initDone = false
}
