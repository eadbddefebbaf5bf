package math

import (
	stdmath "math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float64(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, -4, 2}
	got := a.Lerp(b, 0.5)
	want := Vec3{5, -2, 1}
	if got != want {
		t.Errorf("Vec3.Lerp() = %v, want %v", got, want)
	}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Vec3.Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Vec3.Lerp(1) = %v, want %v", got, b)
	}
}

func TestFromBearing(t *testing.T) {
	tests := []struct {
		degrees float64
		want    Vec2
	}{
		{0, Vec2{0, 1}},
		{90, Vec2{1, 0}},
		{180, Vec2{0, -1}},
		{270, Vec2{-1, 0}},
	}
	for _, tt := range tests {
		got := FromBearing(tt.degrees)
		if stdmath.Abs(got.X-tt.want.X) > 1e-9 || stdmath.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("FromBearing(%v) = %v, want %v", tt.degrees, got, tt.want)
		}
	}
}
