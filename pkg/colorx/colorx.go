// Package colorx provides hex color parsing and weighted color blending for
// the sky engine and transitions.
package colorx

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B int
}

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// HexToRGB parses a strict 6-hex-digit color string with an optional leading '#'.
// Returns nil for anything else; callers fall back to black rather than erroring.
func HexToRGB(hex string) *RGB {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return nil
	}
	return &RGB{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}
}

// RGBToHex formats channels as a 6-hex-digit string with a leading '#'.
// Channels must already be in [0,255]; callers clamp before invoking.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Lerp linearly interpolates between a and b. t is expected in [0,1] and is not
// clamped here.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseInOutCubic applies cubic ease-in-out: 4t^3 below the midpoint, mirrored
// above it. Satisfies ease(0)=0, ease(0.5)=0.5, ease(1)=1.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// BlendColors blends two hex colors by their weights. Weights are normalized to
// sum to 1; callers must guarantee weightA+weightB > 0. Unparseable colors are
// treated as black.
func BlendColors(colorA, colorB string, weightA, weightB float64) string {
	a := rgbOrBlack(colorA)
	b := rgbOrBlack(colorB)

	total := weightA + weightB
	wa := weightA / total
	wb := weightB / total

	return RGBToHex(
		blendChannel2(a.R, b.R, wa, wb),
		blendChannel2(a.G, b.G, wa, wb),
		blendChannel2(a.B, b.B, wa, wb),
	)
}

// BlendThreeColors blends three hex colors by their weights, normalized the same
// way as BlendColors. Callers must guarantee a positive weight sum.
func BlendThreeColors(colorA, colorB, colorC string, weightA, weightB, weightC float64) string {
	a := rgbOrBlack(colorA)
	b := rgbOrBlack(colorB)
	c := rgbOrBlack(colorC)

	total := weightA + weightB + weightC
	wa := weightA / total
	wb := weightB / total
	wc := weightC / total

	round := func(x, y, z int) int {
		return int(math.Round(float64(x)*wa + float64(y)*wb + float64(z)*wc))
	}
	return RGBToHex(round(a.R, b.R, c.R), round(a.G, b.G, c.G), round(a.B, b.B, c.B))
}

// LerpColor interpolates between two hex colors channel by channel. Unlike
// BlendColors it is keyed on a single progress value; the transition scheduler
// uses it with an eased t.
func LerpColor(from, to string, t float64) string {
	a := rgbOrBlack(from)
	b := rgbOrBlack(to)
	return RGBToHex(
		int(math.Round(Lerp(float64(a.R), float64(b.R), t))),
		int(math.Round(Lerp(float64(a.G), float64(b.G), t))),
		int(math.Round(Lerp(float64(a.B), float64(b.B), t))),
	)
}

func blendChannel2(a, b int, wa, wb float64) int {
	return int(math.Round(float64(a)*wa + float64(b)*wb))
}

func rgbOrBlack(hex string) RGB {
	if c := HexToRGB(hex); c != nil {
		return *c
	}
	return RGB{}
}
