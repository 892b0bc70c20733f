package game

type idleClock struct{}

func (idleClock) TickReady() bool { return false }
func (idleClock) Acknowledge()    {}
func (idleClock) Arm()            {}

type silentSensor struct{}

func (silentSensor) PendingSamples() int        { return 0 }
func (silentSensor) ReadSample() (int32, int32) { return 0, 0 }

type noInput struct{}

func (noInput) ReadButtons() Buttons { return 0 }
func (noInput) ReadModeSwitch() bool { return false }

type noIndicators struct{}

func (noIndicators) ShowScore(int)      {}
func (noIndicators) ShowTime(int)       {}
func (noIndicators) ShowLapBits(uint32) {}

type noDisplay struct{}

func (noDisplay) SetBackBuffer(int)          {}
func (noDisplay) SwapAndWaitVSync() int      { return 0 }
func (noDisplay) WritePixel(int, int, Color) {}
func (noDisplay) Fill(Color)                 {}
func (noDisplay) ClearBuffers()              {}

// withDefaults substitutes inert devices for missing ones.
func withDefaults(d Devices) Devices {
	if d.Clock == nil {
		d.Clock = idleClock{}
	}
	if d.Sensor == nil {
		d.Sensor = silentSensor{}
	}
	if d.Input == nil {
		d.Input = noInput{}
	}
	if d.Indicators == nil {
		d.Indicators = noIndicators{}
	}
	if d.Display == nil {
		d.Display = noDisplay{}
	}
	return d
}
