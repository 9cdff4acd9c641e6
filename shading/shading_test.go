package shading

import (
	"strings"
	"testing"

	"github.com/chewxy/math32"
)

const tolerance = 1e-4

func TestSunDisplacementOriginAtStart(t *testing.T) {
	// Both sine phases vanish at the spatial origin at t=0
	for _, cfg := range [][4]float32{
		{1, 10, 2, 0.15},
		{3, 25, 7, 0.8},
		{0, 0, 0, 1},
	} {
		if d := SunDisplacement(0, 0, 0, cfg[0], cfg[1], cfg[2], cfg[3]); d != 0 {
			t.Errorf("config %v: expected 0 at origin, got %v", cfg, d)
		}
	}
}

func TestSunDisplacementFlatWhenHeightZero(t *testing.T) {
	for _, p := range [][2]float32{{0, 0}, {0.3, -0.7}, {1, 1}} {
		if d := SunDisplacement(p[0], p[1], 1.5, 1, 10, 2, 0); d != 0 {
			t.Errorf("point %v: expected zero displacement, got %v", p, d)
		}
	}
}

func TestSunDisplacementScalesWithHeight(t *testing.T) {
	base := SunDisplacement(0.4, -0.2, 1.2, 1, 10, 2, 1)
	half := SunDisplacement(0.4, -0.2, 1.2, 1, 10, 2, 0.5)
	if math32.Abs(half-base*0.5) > tolerance {
		t.Errorf("expected %v at half height, got %v", base*0.5, half)
	}
}

func TestSunDisplacementPeriodic(t *testing.T) {
	// The large wave term repeats with period 2π/waveSpeed in time
	const waveSpeed = 1.5
	period := 2 * math32.Pi / waveSpeed
	a := SunDisplacement(0.3, 0, 0.7, waveSpeed, 10, 0, 0.15)
	b := SunDisplacement(0.3, 0, 0.7+period, waveSpeed, 10, 0, 0.15)
	if math32.Abs(a-b) > 1e-3 {
		t.Errorf("expected period %v, got %v then %v", period, a, b)
	}
}

func TestSunDisplacementBounded(t *testing.T) {
	const height = float32(0.15)
	limit := height * (0.05 + 0.03)
	for x := float32(-1); x <= 1; x += 0.25 {
		for y := float32(-1); y <= 1; y += 0.25 {
			d := SunDisplacement(x, y, 2.3, 1, 10, 2, height)
			if math32.Abs(d) > limit+tolerance {
				t.Errorf("(%v,%v): displacement %v exceeds bound %v", x, y, d, limit)
			}
		}
	}
}

func TestSunColorBlend(t *testing.T) {
	depth := [3]float32{0.7, 0.2, 0.1}
	surface := [3]float32{1, 0.8, 0}

	if got := SunColor(0, 1, depth, surface); got != depth {
		t.Errorf("v=0: expected depth color %v, got %v", depth, got)
	}
	if got := SunColor(1, 1, depth, surface); got != surface {
		t.Errorf("v=1: expected surface color %v, got %v", surface, got)
	}

	got := SunColor(0.5, 2, depth, surface)
	for i := range got {
		want := (depth[i] + surface[i]) // midpoint times multiplier 2
		if math32.Abs(got[i]-want) > tolerance {
			t.Errorf("channel %d: expected %v, got %v", i, want, got[i])
		}
	}
}

func TestCheckerParity(t *testing.T) {
	cases := []struct {
		u, v  float32
		white bool
	}{
		{0.05, 0.05, true},
		{0.15, 0.05, false},
		{0.05, 0.15, false},
		{0.15, 0.15, true},
		{0.95, 0.95, true},
	}
	for _, c := range cases {
		if got := CheckerParity(c.u, c.v); got != c.white {
			t.Errorf("(%v,%v): expected white=%v, got %v", c.u, c.v, c.white, got)
		}
	}
}

func TestRadialColor(t *testing.T) {
	center := RadialColor(0.5, 0.5)
	if center != ([3]float32{1, 0, 0}) {
		t.Errorf("center: expected pure red, got %v", center)
	}

	corner := RadialColor(0, 0)
	d := math32.Sqrt(0.5)
	if math32.Abs(corner[0]-(1-d)) > tolerance || math32.Abs(corner[1]-d) > tolerance || corner[2] != 0 {
		t.Errorf("corner: expected (%v,%v,0), got %v", 1-d, d, corner)
	}

	// Red and green always sum to 1 with blue held at 0
	for u := float32(0); u <= 1; u += 0.1 {
		for v := float32(0); v <= 1; v += 0.1 {
			c := RadialColor(u, v)
			if math32.Abs(c[0]+c[1]-1) > tolerance {
				t.Errorf("(%v,%v): red+green = %v, expected 1", u, v, c[0]+c[1])
			}
			if c[2] != 0 {
				t.Errorf("(%v,%v): blue = %v, expected 0", u, v, c[2])
			}
		}
	}
}

func TestRippleDisplacement(t *testing.T) {
	// Points at equal distance from the center displace identically
	a := RippleDisplacement(0.5, 0.8, 1.3)
	b := RippleDisplacement(0.8, 0.5, 1.3)
	if math32.Abs(a-b) > tolerance {
		t.Errorf("expected ring symmetry, got %v and %v", a, b)
	}

	// Amplitude stays within the 0.2 envelope
	for u := float32(0); u <= 1; u += 0.2 {
		for v := float32(0); v <= 1; v += 0.2 {
			if d := RippleDisplacement(u, v, 2.0); math32.Abs(d) > 0.2+tolerance {
				t.Errorf("(%v,%v): displacement %v out of range", u, v, d)
			}
		}
	}
}

func TestWaveDisplacement(t *testing.T) {
	// Symmetric in x and y by construction
	a := WaveDisplacement(0.3, 0.7, 1.1)
	b := WaveDisplacement(0.7, 0.3, 1.1)
	if math32.Abs(a-b) > tolerance {
		t.Errorf("expected x/y symmetry, got %v and %v", a, b)
	}
	if d := WaveDisplacement(0.2, -0.4, 5); math32.Abs(d) > 0.4+tolerance {
		t.Errorf("displacement %v out of range", d)
	}
}

func TestFaceSources(t *testing.T) {
	for _, f := range PyramidFaces {
		vs := f.VertexSrc()
		fs := f.FragmentSrc()
		for _, src := range []string{vs, fs} {
			if !strings.HasPrefix(src, "#version 410 core") {
				t.Errorf("face %s: missing version directive", f.Name)
			}
			if !strings.HasSuffix(src, "\x00") {
				t.Errorf("face %s: source not null terminated", f.Name)
			}
		}
		if !strings.Contains(fs, f.Color) {
			t.Errorf("face %s: color expression not spliced", f.Name)
		}
	}

	// Faces without displacement keep the surface flat
	if !strings.Contains(PyramidFaces[1].VertexSrc(), "pos.z += 0.0;") {
		t.Error("checkerboard face: expected zero displacement")
	}
}
