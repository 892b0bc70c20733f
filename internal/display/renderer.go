package display

import (
	"github.com/iburimskiy/audio-runner/internal/config"
	"github.com/iburimskiy/audio-runner/internal/game"
)

// Pause overlay bars.
const (
	barWidth  = 4
	barHeight = 40
	barGap    = 8
)

// HUD layout.
const (
	digitWidth  = 6
	digitHeight = 11
	digitPitch  = 9
	hudMargin   = 4
	ledSize     = 4
	ledCount    = 10
)

// Renderer draws session snapshots into the back buffer of a FrameBuffer,
// with the viewport centered on the player.
type Renderer struct {
	fb  *FrameBuffer
	ind *Indicators
}

// NewRenderer returns a renderer drawing into fb. A nil ind disables the HUD.
func NewRenderer(fb *FrameBuffer, ind *Indicators) *Renderer {
	return &Renderer{fb: fb, ind: ind}
}

func (r *Renderer) Render(snap game.Snapshot) {
	switch snap.State {
	case game.StatePaused:
		r.drawPause()
	case game.StateGameOver:
		r.fb.Fill(game.Red)
		r.drawParticles(snap)
	default:
		r.drawWorld(snap)
	}
	r.drawHUD()
}

// toScreen maps a world position into the viewport around the player.
func (r *Renderer) toScreen(snap game.Snapshot, p game.Point) game.Point {
	return game.Point{
		X: p.X - snap.Player.Pos.X + r.fb.Width()/2,
		Y: p.Y - snap.Player.Pos.Y + r.fb.Height()/2,
	}
}

func (r *Renderer) rectToScreen(snap game.Snapshot, rc game.Rect) game.Rect {
	p := r.toScreen(snap, game.Point{X: rc.X, Y: rc.Y})
	return game.Rect{X: p.X, Y: p.Y, W: rc.W, H: rc.H}
}

func (r *Renderer) drawWorld(snap game.Snapshot) {
	r.fb.Fill(snap.Background)

	// Path: each turning point to the next, the last one to the player.
	for i, pt := range snap.Path {
		to := snap.Player.Pos
		if i+1 < len(snap.Path) {
			to = snap.Path[i+1].Pos
		}
		r.drawLine(r.toScreen(snap, pt.Pos), r.toScreen(snap, to), pt.Color)
	}

	for _, o := range snap.Obstacles {
		if o.Active {
			r.fb.FillRect(r.rectToScreen(snap, o.Rect), o.Color)
		}
	}
	for _, c := range snap.Collectibles {
		if c.Active {
			r.fb.FillRect(r.rectToScreen(snap, c.Rect), c.Color)
		}
	}
	r.drawParticles(snap)
	r.fb.FillRect(r.rectToScreen(snap, snap.Player.Rect()), game.Red)
}

func (r *Renderer) drawParticles(snap game.Snapshot) {
	for _, p := range snap.Particles {
		s := r.toScreen(snap, p.Pos)
		r.fb.WritePixel(s.X, s.Y, game.White)
	}
}

func (r *Renderer) drawPause() {
	r.fb.Fill(game.Yellow)
	cx, cy := r.fb.Width()/2, r.fb.Height()/2
	y := cy - barHeight/2
	r.fb.FillRect(game.Rect{X: cx - barGap/2 - barWidth, Y: y, W: barWidth, H: barHeight}, game.White)
	r.fb.FillRect(game.Rect{X: cx + barGap/2, Y: y, W: barWidth, H: barHeight}, game.White)
}

// drawLine clips axis-aligned segments to the screen before walking them;
// anything else falls back to Bresenham with per-pixel clipping.
func (r *Renderer) drawLine(a, b game.Point, c game.Color) {
	w, h := r.fb.Width(), r.fb.Height()
	switch {
	case a.Y == b.Y:
		x0, x1 := min(a.X, b.X), max(a.X, b.X)
		r.fb.FillRect(game.Rect{X: x0, Y: a.Y, W: x1 - x0 + 1, H: 1}, c)
		return
	case a.X == b.X:
		y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
		r.fb.FillRect(game.Rect{X: a.X, Y: y0, W: 1, H: y1 - y0 + 1}, c)
		return
	}

	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		if x >= 0 && y >= 0 && x < w && y < h {
			r.fb.WritePixel(x, y, c)
		}
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (r *Renderer) drawHUD() {
	if r.ind == nil {
		return
	}
	score := r.ind.ScoreWord()
	r.drawWord(hudMargin, hudMargin, score, 2)

	timeX := r.fb.Width() - hudMargin - 4*digitPitch
	r.drawWord(timeX, hudMargin, r.ind.TimeWord(), 4)

	laps := r.ind.LapBits()
	y := r.fb.Height() - hudMargin - ledSize
	for i := 0; i < ledCount; i++ {
		if laps&(1<<i) == 0 {
			continue
		}
		x := hudMargin + i*(ledSize+2)
		r.fb.FillRect(game.Rect{X: x, Y: y, W: ledSize, H: ledSize}, game.Red)
	}
}

// drawWord draws the low n bytes of word as digits, most significant first.
func (r *Renderer) drawWord(x, y int, word uint32, n int) {
	for i := 0; i < n; i++ {
		bits := uint8(word >> (8 * (n - 1 - i)))
		r.drawDigit(x+i*digitPitch, y, bits)
	}
}

func (r *Renderer) drawDigit(x, y int, bits uint8) {
	segs := [8]game.Rect{
		{X: x + 1, Y: y, W: digitWidth - 2, H: 1},                   // a
		{X: x + digitWidth - 1, Y: y + 1, W: 1, H: 4},               // b
		{X: x + digitWidth - 1, Y: y + 6, W: 1, H: 4},               // c
		{X: x + 1, Y: y + digitHeight - 1, W: digitWidth - 2, H: 1}, // d
		{X: x, Y: y + 6, W: 1, H: 4},                                // e
		{X: x, Y: y + 1, W: 1, H: 4},                                // f
		{X: x + 1, Y: y + 5, W: digitWidth - 2, H: 1},               // g
		{X: x + digitWidth + 1, Y: y + digitHeight - 1, W: 1, H: 1}, // dp
	}
	for i, s := range segs {
		if bits&(1<<i) != 0 {
			r.fb.FillRect(s, game.White)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var _ game.Renderer = (*Renderer)(nil)
var _ game.Display = (*FrameBuffer)(nil)
var _ game.Indicators = (*Indicators)(nil)

// Screen returns a frame buffer sized to the configured screen.
func Screen() *FrameBuffer {
	return NewFrameBuffer(config.ScreenWidth, config.ScreenHeight)
}
