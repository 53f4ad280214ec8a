package chroma

import (
	"image/color"
	"math/rand/v2"
	"testing"
)

func TestKnownConversions(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		hsl  HSL
	}{
		{"black", RGB{0, 0, 0}, HSL{0, 0, 0}},
		{"white", RGB{255, 255, 255}, HSL{0, 0, 255}},
		{"gray", RGB{128, 128, 128}, HSL{0, 0, 128}},
		{"red", RGB{255, 0, 0}, HSL{0, 255, 128}},
		{"green", RGB{0, 255, 0}, HSL{85, 255, 128}},
		{"blue", RGB{0, 0, 255}, HSL{170, 255, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.HSL(); got != tt.hsl {
				t.Fatalf("%v.HSL() = %v, want %v", tt.rgb, got, tt.hsl)
			}
		})
	}
}

func TestGrayscaleHSLIgnoresHue(t *testing.T) {
	for _, hue := range []uint8{0, 17, 128, 255} {
		got := HSL{H: hue, S: 0, L: 77}.RGB()
		if got != (RGB{77, 77, 77}) {
			t.Fatalf("hue %d with zero saturation produced %v", hue, got)
		}
	}
}

func roundTrip(c RGB) RGB {
	return c.HSL().RGB().HSL().RGB()
}

func maxChannelError(a, b RGB) uint32 {
	return max(absDiff(a.R, b.R), absDiff(a.G, b.G), absDiff(a.B, b.B))
}

func TestRoundTripBound(t *testing.T) {
	step := 1
	if testing.Short() {
		step = 7
	}
	var total uint64
	var samples uint64
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				orig := RGB{uint8(r), uint8(g), uint8(b)}
				back := roundTrip(orig)
				if e := maxChannelError(orig, back); e > 5 {
					t.Fatalf("round trip of %v drifted to %v (channel error %d)", orig, back, e)
				}
				total += uint64(orig.Distance(back))
				samples++
			}
		}
	}
	avg := float64(total) / float64(samples)
	if avg > 1.5 {
		t.Fatalf("average round-trip error %.3f too large", avg)
	}
}

func TestDistanceSymmetricAndBounded(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 50000; i++ {
		a := HSL{uint8(rng.UintN(256)), uint8(rng.UintN(256)), uint8(rng.UintN(256))}
		b := HSL{uint8(rng.UintN(256)), uint8(rng.UintN(256)), uint8(rng.UintN(256))}
		if Distance(a, b) != Distance(b, a) {
			t.Fatalf("Distance(%v, %v) not symmetric", a, b)
		}
		if hd := HueDistance(a.H, b.H); hd > 128 {
			t.Fatalf("hue distance %d exceeds half circle", hd)
		}
	}
}

func TestHueDistanceOppositeHues(t *testing.T) {
	tests := []struct {
		a, b uint8
		want uint32
	}{
		{0, 128, 128},
		{128, 0, 128},
		{64, 192, 128},
		{0, 127, 127},
		{0, 129, 127},
		{255, 0, 1},
	}
	for _, tt := range tests {
		if got := HueDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("HueDistance(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDistanceComponents(t *testing.T) {
	tests := []struct {
		name string
		a, b HSL
		want uint32
	}{
		{"identical", HSL{10, 20, 30}, HSL{10, 20, 30}, 0},
		{"hue wraps", HSL{250, 100, 100}, HSL{5, 100, 100}, 11},
		{"saturation counted", HSL{0, 100, 100}, HSL{0, 140, 100}, 40},
		{"saturation skipped when dark", HSL{0, 0, 1}, HSL{0, 255, 1}, 0},
		{"saturation skipped when bright", HSL{0, 0, 254}, HSL{0, 255, 255}, 1},
		{"lightness counted", HSL{0, 50, 100}, HSL{0, 50, 110}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Fatalf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestColorInterfaces(t *testing.T) {
	var _ color.Color = RGB{}
	var _ color.Color = HSL{}

	got := HSLModel.Convert(color.RGBA{R: 255, A: 255})
	if got != (HSL{0, 255, 128}) {
		t.Fatalf("HSLModel.Convert(red) = %v", got)
	}
	red := HSL{0, 255, 128}
	if got := red.RGB(); got != (RGB{255, 1, 1}) {
		t.Fatalf("HSL red converts to %v", got)
	}
	r, g, b, a := red.RGBA()
	if r != 0xffff || g != 0x0101 || b != 0x0101 || a != 0xffff {
		t.Fatalf("HSL red RGBA = %x %x %x %x", r, g, b, a)
	}
}

func TestDegrees(t *testing.T) {
	for _, tt := range []struct {
		h    uint8
		want float64
	}{{0, 0}, {64, 90}, {128, 180}, {255, 358.59375}} {
		if got := (HSL{H: tt.h}).Degrees(); got != tt.want {
			t.Errorf("HSL{H: %d}.Degrees() = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	if got := (HSL{0xAB, 0x01, 0xFF}).String(); got != "[AB][01][FF]" {
		t.Fatalf("String() = %q", got)
	}
}
