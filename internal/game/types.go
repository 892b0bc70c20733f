package game

// Color is a 16-bit RGB565 pixel value.
type Color uint16

const (
	White  Color = 0xFFFF
	Black  Color = 0x0000
	Red    Color = 0xF800
	Green  Color = 0x07E0
	Yellow Color = 0xFFE0
	Blue   Color = 0x001F
	Orange Color = 0xFD20
)

// RGB expands the color to 8-bit channels.
func (c Color) RGB() (uint8, uint8, uint8) {
	r := uint8(c>>11) & 0x1F
	g := uint8(c>>5) & 0x3F
	b := uint8(c) & 0x1F
	return r<<3 | r>>2, g<<2 | g>>4, b<<3 | b>>2
}

// RGB565 packs 8-bit channels.
func RGB565(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// Point is a position in world space.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// Intersects reports overlap of the half-open rectangles [X, X+W) x [Y, Y+H).
// Rectangles sharing only an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// ContainsPoint uses inclusive bounds on all four sides.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Direction is the player's movement axis.
type Direction uint8

const (
	Up    Direction = iota // vertical, y decreasing
	Right                  // horizontal, x increasing
)

func (d Direction) Toggle() Direction {
	if d == Up {
		return Right
	}
	return Up
}

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "right"
}

// Buttons is the pushbutton bitmask read from the input device.
type Buttons uint32

const (
	ButtonReset Buttons = 1 << 0
	ButtonPause Buttons = 1 << 1
)

func (b Buttons) Has(mask Buttons) bool { return b&mask != 0 }
