package display

// seg7 maps a decimal digit to its segment bits (a=bit0 ... g=bit6).
var seg7 = [10]uint8{0x3F, 0x06, 0x5B, 0x4F, 0x66, 0x6D, 0x7D, 0x07, 0x7F, 0x6F}

// decimalPoint is the dp segment.
const decimalPoint = 0x80

// Encode returns the segment pattern for the low decimal digit of d.
func Encode(d int) uint8 {
	if d < 0 {
		d = -d
	}
	return seg7[d%10]
}

// Indicators holds the digit and LED registers written by the session.
type Indicators struct {
	score      int
	hundredths int
	laps       uint32
}

func NewIndicators() *Indicators { return &Indicators{} }

func (i *Indicators) ShowScore(score int)     { i.score = score }
func (i *Indicators) ShowTime(hundredths int) { i.hundredths = hundredths }
func (i *Indicators) ShowLapBits(mask uint32) { i.laps = mask }

func (i *Indicators) LapBits() uint32 { return i.laps }

// ScoreWord packs the two score digits, tens in the high byte.
func (i *Indicators) ScoreWord() uint32 {
	return uint32(Encode(i.score/10))<<8 | uint32(Encode(i.score))
}

// TimeWord packs SS.hh into four digits with the decimal point after the
// seconds' units digit.
func (i *Indicators) TimeWord() uint32 {
	v := i.hundredths
	return uint32(Encode(v/1000))<<24 |
		uint32(Encode(v/100)|decimalPoint)<<16 |
		uint32(Encode(v/10))<<8 |
		uint32(Encode(v))
}
