package display

import "github.com/iburimskiy/audio-runner/internal/game"

// FrameBuffer is a pair of RGB565 pixel buffers. One is shown (front) while
// the other is drawn (back). The host paces SwapAndWaitVSync to its own
// vertical sync, so the call itself never blocks.
type FrameBuffer struct {
	width, height int
	bufs          [2][]game.Color
	front, back   int
}

func NewFrameBuffer(width, height int) *FrameBuffer {
	fb := &FrameBuffer{width: width, height: height, back: 1}
	for i := range fb.bufs {
		fb.bufs[i] = make([]game.Color, width*height)
	}
	return fb
}

func (fb *FrameBuffer) Width() int  { return fb.width }
func (fb *FrameBuffer) Height() int { return fb.height }

// SetBackBuffer selects the draw target. Selecting the front buffer is
// ignored.
func (fb *FrameBuffer) SetBackBuffer(id int) {
	if id < 0 || id > 1 || id == fb.front {
		return
	}
	fb.back = id
}

// SwapAndWaitVSync presents the back buffer and returns the new front id.
func (fb *FrameBuffer) SwapAndWaitVSync() int {
	fb.front, fb.back = fb.back, fb.front
	return fb.front
}

func (fb *FrameBuffer) WritePixel(x, y int, c game.Color) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	fb.bufs[fb.back][y*fb.width+x] = c
}

func (fb *FrameBuffer) Fill(c game.Color) {
	buf := fb.bufs[fb.back]
	for i := range buf {
		buf[i] = c
	}
}

// FillRect fills the clipped rectangle in the back buffer.
func (fb *FrameBuffer) FillRect(r game.Rect, c game.Color) {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.W, fb.width), min(r.Y+r.H, fb.height)
	buf := fb.bufs[fb.back]
	for y := y0; y < y1; y++ {
		row := buf[y*fb.width:]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
}

func (fb *FrameBuffer) ClearBuffers() {
	for _, buf := range fb.bufs {
		for i := range buf {
			buf[i] = game.Black
		}
	}
}

// At returns the displayed pixel, or black outside the screen.
func (fb *FrameBuffer) At(x, y int) game.Color {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return game.Black
	}
	return fb.bufs[fb.front][y*fb.width+x]
}

// RGBA writes the front buffer into dst as 8-bit RGBA, growing it if needed.
func (fb *FrameBuffer) RGBA(dst []byte) []byte {
	n := fb.width * fb.height * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range fb.bufs[fb.front] {
		r, g, b := c.RGB()
		dst[i*4] = r
		dst[i*4+1] = g
		dst[i*4+2] = b
		dst[i*4+3] = 0xFF
	}
	return dst
}
