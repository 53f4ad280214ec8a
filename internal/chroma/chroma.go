// Package chroma implements the byte-sized HSL and RGB colour model used for
// individual traits, along with the lossy conversions between them.
package chroma

import (
	"fmt"
	"image/color"
	"math"
)

// achromaticEpsilon is the channel spread below which a colour is treated as
// a shade of gray.
const achromaticEpsilon = 1e-9

// HSL stores hue, saturation and lightness scaled to a byte each. Hue wraps
// circularly: 0 and 255 are neighbours.
type HSL struct {
	H, S, L uint8
}

// RGB stores red, green and blue channel intensities.
type RGB struct {
	R, G, B uint8
}

func byteToUnit(b uint8) float64 { return float64(b) / math.MaxUint8 }

func unitToByte(f float64) uint8 {
	v := math.Round(f * math.MaxUint8)
	if v <= 0 {
		return 0
	}
	if v >= math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(v)
}

func wrapUnit(v float64) float64 {
	if v < 0 {
		return v + 1
	}
	if v > 1 {
		return v - 1
	}
	return v
}

// HSL converts the colour using the max/min/delta formulation.
func (c RGB) HSL() HSL {
	r, g, b := byteToUnit(c.R), byteToUnit(c.G), byteToUnit(c.B)
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))

	lightness := (hi + lo) / 2
	delta := hi - lo
	if delta < achromaticEpsilon {
		return HSL{L: unitToByte(lightness)}
	}

	var saturation float64
	if lightness < 0.5 {
		saturation = delta / (hi + lo)
	} else {
		saturation = delta / (2 - hi - lo)
	}

	rd := ((hi-r)/6 + delta/2) / delta
	gd := ((hi-g)/6 + delta/2) / delta
	bd := ((hi-b)/6 + delta/2) / delta

	var hue float64
	switch hi {
	case r:
		hue = bd - gd
	case g:
		hue = 1.0/3 + rd - bd
	default:
		hue = 2.0/3 + gd - rd
	}

	return HSL{
		H: unitToByte(wrapUnit(hue)),
		S: unitToByte(saturation),
		L: unitToByte(lightness),
	}
}

// RGB converts the colour back using the upper/lower bound formulation.
func (c HSL) RGB() RGB {
	if c.S == 0 {
		return RGB{R: c.L, G: c.L, B: c.L}
	}
	h, s, l := byteToUnit(c.H), byteToUnit(c.S), byteToUnit(c.L)

	var upper float64
	if l < 0.5 {
		upper = l * (1 + s)
	} else {
		upper = l + s - l*s
	}
	lower := 2*l - upper

	return RGB{
		R: unitToByte(hueToChannel(lower, upper, h+1.0/3)),
		G: unitToByte(hueToChannel(lower, upper, h)),
		B: unitToByte(hueToChannel(lower, upper, h-1.0/3)),
	}
}

func hueToChannel(lower, upper, t float64) float64 {
	t = wrapUnit(t)
	switch {
	case t < 1.0/6:
		return lower + (upper-lower)*6*t
	case t < 1.0/2:
		return upper
	case t < 2.0/3:
		return lower + (upper-lower)*(2.0/3-t)*6
	default:
		return lower
	}
}

// HueDistance is the shorter way around the hue circle, in byte steps.
func HueDistance(a, b uint8) uint32 {
	return uint32(min(a-b, b-a))
}

// Distance is a perceptual-ish metric: circular hue distance plus saturation
// and lightness differences. Saturation is ignored when either colour sits at
// the lightness extremes, where it carries no visible information.
func Distance(a, b HSL) uint32 {
	total := HueDistance(a.H, b.H)
	if !extremeLightness(a.L) && !extremeLightness(b.L) {
		total += absDiff(a.S, b.S)
	}
	total += absDiff(a.L, b.L)
	return total
}

func extremeLightness(l uint8) bool {
	return l <= 1 || l >= math.MaxUint8-1
}

// Distance sums the absolute per-channel differences.
func (c RGB) Distance(o RGB) uint32 {
	return absDiff(c.R, o.R) + absDiff(c.G, o.G) + absDiff(c.B, o.B)
}

func absDiff(a, b uint8) uint32 {
	if a > b {
		return uint32(a - b)
	}
	return uint32(b - a)
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// RGBA implements color.Color.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

// HSLModel converts arbitrary colours into HSL.
var HSLModel = color.ModelFunc(hslModel)

func hslModel(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}.HSL()
}

func (c HSL) String() string {
	return fmt.Sprintf("[%02X][%02X][%02X]", c.H, c.S, c.L)
}

func (c RGB) String() string {
	return fmt.Sprintf("[%02X][%02X][%02X]", c.R, c.G, c.B)
}

// Degrees reports the hue as an angle in [0, 360).
func (c HSL) Degrees() float64 {
	return float64(c.H) * 360 / 256
}
