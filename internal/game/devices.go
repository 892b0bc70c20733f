package game

// Clock is the periodic interval timer. A ready tick latches until acknowledged.
type Clock interface {
	TickReady() bool
	Acknowledge()
	// Arm restarts the period from now.
	Arm()
}

// Sensor is the audio input FIFO. ReadSample is destructive.
type Sensor interface {
	PendingSamples() int
	ReadSample() (left, right int32)
}

// Input exposes pushbuttons and the difficulty switch.
type Input interface {
	ReadButtons() Buttons
	// ReadModeSwitch reports true for simple mode.
	ReadModeSwitch() bool
}

// Indicators is the digit and LED output.
type Indicators interface {
	ShowScore(score int)
	ShowTime(hundredths int)
	ShowLapBits(mask uint32)
}

// Display is a double-buffered pixel device. Writes go to the back buffer;
// out-of-bounds writes are clipped.
type Display interface {
	SetBackBuffer(id int)
	SwapAndWaitVSync() int
	WritePixel(x, y int, c Color)
	Fill(c Color)
	ClearBuffers()
}

// Renderer draws a post-step snapshot into the back buffer.
type Renderer interface {
	Render(snap Snapshot)
}

// Devices bundles the collaborators a Session polls each frame.
type Devices struct {
	Clock      Clock
	Sensor     Sensor
	Input      Input
	Indicators Indicators
	Display    Display
}
