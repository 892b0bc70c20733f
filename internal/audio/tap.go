package audio

import "github.com/faiface/beep"

// Tap wraps a beep.Streamer and copies everything it streams into a FIFO
// so the frame loop can inspect what is being played.
type Tap struct {
	Source beep.Streamer
	fifo   *FIFO
}

func NewTap(src beep.Streamer, fifo *FIFO) *Tap {
	return &Tap{Source: src, fifo: fifo}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.fifo.Push(samples[:n])
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }
