package game

// Deterministic devices for driving a Session frame by frame.

type fakeClock struct {
	ready bool
	acks  int
	arms  int
}

func (c *fakeClock) TickReady() bool { return c.ready }
func (c *fakeClock) Acknowledge()    { c.ready = false; c.acks++ }
func (c *fakeClock) Arm()            { c.arms++ }

// fakeSensor is a FIFO of left-channel amplitudes.
type fakeSensor struct {
	samples []int32
	reads   int
}

func (s *fakeSensor) Push(v ...int32)     { s.samples = append(s.samples, v...) }
func (s *fakeSensor) PendingSamples() int { return len(s.samples) }
func (s *fakeSensor) ReadSample() (int32, int32) {
	v := s.samples[0]
	s.samples = s.samples[1:]
	s.reads++
	return v, v
}

type fakeInput struct {
	buttons Buttons
	simple  bool
}

func (in *fakeInput) ReadButtons() Buttons { return in.buttons }
func (in *fakeInput) ReadModeSwitch() bool { return in.simple }

type recordIndicators struct {
	score      int
	time       int
	laps       uint32
	scoreCalls int
}

func (r *recordIndicators) ShowScore(v int)         { r.score = v; r.scoreCalls++ }
func (r *recordIndicators) ShowTime(v int)          { r.time = v }
func (r *recordIndicators) ShowLapBits(mask uint32) { r.laps = mask }

type recordDisplay struct {
	front  int
	back   int
	swaps  int
	clears int
}

func (d *recordDisplay) SetBackBuffer(id int) { d.back = id }
func (d *recordDisplay) SwapAndWaitVSync() int {
	d.swaps++
	d.front = 1 - d.front
	return d.front
}
func (d *recordDisplay) WritePixel(int, int, Color) {}
func (d *recordDisplay) Fill(Color)                 {}
func (d *recordDisplay) ClearBuffers()              { d.clears++ }

type rig struct {
	clock   *fakeClock
	sensor  *fakeSensor
	input   *fakeInput
	ind     *recordIndicators
	display *recordDisplay
}

func newRig(simple bool) *rig {
	return &rig{
		clock:   &fakeClock{},
		sensor:  &fakeSensor{},
		input:   &fakeInput{simple: simple},
		ind:     &recordIndicators{},
		display: &recordDisplay{},
	}
}

func (r *rig) devices() Devices {
	return Devices{
		Clock:      r.clock,
		Sensor:     r.sensor,
		Input:      r.input,
		Indicators: r.ind,
		Display:    r.display,
	}
}

func newTestSession(r *rig) *Session {
	return NewSession(r.devices(), Options{Seed: 7})
}

// loud exceeds the default threshold.
const loud int32 = 1_000_000_000
