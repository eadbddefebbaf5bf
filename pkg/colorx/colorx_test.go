package colorx

import (
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in   string
		want *RGB
	}{
		{"#ff8040", &RGB{255, 128, 64}},
		{"ff8040", &RGB{255, 128, 64}},
		{"#FFFFFF", &RGB{255, 255, 255}},
		{"#000000", &RGB{0, 0, 0}},
		{"#fff", nil},
		{"#gggggg", nil},
		{"", nil},
		{"#ff8040ff", nil},
		{"not a color", nil},
	}
	for _, tt := range tests {
		got := HexToRGB(tt.in)
		if tt.want == nil {
			if got != nil {
				t.Errorf("HexToRGB(%q) = %v, want nil", tt.in, got)
			}
			continue
		}
		if got == nil || *got != *tt.want {
			t.Errorf("HexToRGB(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRGBToHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#123456", "#deadbe", "#7f7f7f"} {
		c := HexToRGB(hex)
		if c == nil {
			t.Fatalf("HexToRGB(%q) = nil", hex)
		}
		got := RGBToHex(c.R, c.G, c.B)
		if got != hex {
			t.Errorf("round trip %q = %q", hex, got)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0,10,0.5) = %v, want 5", got)
	}
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp(10,20,0) = %v, want 10", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp(10,20,1) = %v, want 20", got)
	}
}

func TestEaseInOutCubicEndpoints(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
	}
	for _, tt := range tests {
		if got := EaseInOutCubic(tt.t); got != tt.want {
			t.Errorf("EaseInOutCubic(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestEaseInOutCubicMonotonic(t *testing.T) {
	prev := EaseInOutCubic(0)
	for i := 1; i <= 100; i++ {
		x := float64(i) / 100
		cur := EaseInOutCubic(x)
		if cur < prev {
			t.Fatalf("EaseInOutCubic not monotonic at t=%v: %v < %v", x, cur, prev)
		}
		prev = cur
	}
}

func TestBlendColorsFullWeight(t *testing.T) {
	a, b := "#123456", "#abcdef"
	if got := BlendColors(a, b, 1, 0); got != a {
		t.Errorf("BlendColors(A,B,1,0) = %q, want %q", got, a)
	}
	if got := BlendColors(a, b, 0, 1); got != b {
		t.Errorf("BlendColors(A,B,0,1) = %q, want %q", got, b)
	}
}

func TestBlendColorsMidpoint(t *testing.T) {
	// 127.5 rounds half away from zero.
	got := BlendColors("#000000", "#ffffff", 1, 1)
	if got != "#808080" {
		t.Errorf("BlendColors(black, white, 1, 1) = %q, want #808080", got)
	}
}

func TestBlendColorsUnnormalizedWeights(t *testing.T) {
	// Weights 3:1 behave the same as 0.75:0.25.
	got := BlendColors("#000000", "#ffffff", 3, 1)
	want := BlendColors("#000000", "#ffffff", 0.75, 0.25)
	if got != want {
		t.Errorf("weight normalization mismatch: %q vs %q", got, want)
	}
}

func TestBlendColorsInvalidFallsBackToBlack(t *testing.T) {
	got := BlendColors("garbage", "#ffffff", 1, 1)
	want := BlendColors("#000000", "#ffffff", 1, 1)
	if got != want {
		t.Errorf("BlendColors with invalid color = %q, want %q", got, want)
	}
}

func TestBlendThreeColors(t *testing.T) {
	// Full weight on one input returns that input.
	got := BlendThreeColors("#112233", "#445566", "#778899", 0, 1, 0)
	if got != "#445566" {
		t.Errorf("BlendThreeColors full middle weight = %q, want #445566", got)
	}
	// Equal weights of black and two whites.
	got = BlendThreeColors("#000000", "#ffffff", "#ffffff", 1, 1, 1)
	if got != "#aaaaaa" {
		t.Errorf("BlendThreeColors equal thirds = %q, want #aaaaaa", got)
	}
}

func TestLerpColor(t *testing.T) {
	if got := LerpColor("#000000", "#ffffff", 0); got != "#000000" {
		t.Errorf("LerpColor t=0 = %q, want #000000", got)
	}
	if got := LerpColor("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Errorf("LerpColor t=1 = %q, want #ffffff", got)
	}
	if got := LerpColor("#000000", "#ff0000", 0.5); got != "#800000" {
		t.Errorf("LerpColor t=0.5 = %q, want #800000", got)
	}
}
