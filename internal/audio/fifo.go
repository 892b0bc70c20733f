package audio

import (
	"math"
	"sync"
)

// FIFO buffers stereo samples between the audio goroutine and the frame loop.
// It implements the game's sensor: samples are read destructively as 32-bit
// amplitudes. When full, the oldest samples are overwritten.
type FIFO struct {
	mu      sync.Mutex
	buffer  [][2]float64
	head    int
	count   int
	dropped int
}

func NewFIFO(size int) *FIFO {
	if size <= 0 {
		size = 1
	}
	return &FIFO{buffer: make([][2]float64, size)}
}

// Push appends samples, overwriting the oldest on overflow.
func (f *FIFO) Push(samples [][2]float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, s := range samples {
		tail := (f.head + f.count) % len(f.buffer)
		f.buffer[tail] = s
		if f.count < len(f.buffer) {
			f.count++
			continue
		}
		// Full: tail landed on head
		f.head = (f.head + 1) % len(f.buffer)
		f.dropped++
	}
}

// Inject pushes n samples of a constant level, standing in for a clap.
func (f *FIFO) Inject(level float64, n int) {
	burst := make([][2]float64, n)
	for i := range burst {
		burst[i] = [2]float64{level, level}
	}
	f.Push(burst)
}

func (f *FIFO) PendingSamples() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}

// ReadSample pops the oldest sample. An empty FIFO reads as silence.
func (f *FIFO) ReadSample() (left, right int32) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.count == 0 {
		return 0, 0
	}
	s := f.buffer[f.head]
	f.head = (f.head + 1) % len(f.buffer)
	f.count--
	return toInt32(s[0]), toInt32(s[1])
}

// Dropped counts samples lost to overflow.
func (f *FIFO) Dropped() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dropped
}

// toInt32 scales a [-1, 1] sample to the full 32-bit range.
func toInt32(v float64) int32 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int32(v * math.MaxInt32)
}
