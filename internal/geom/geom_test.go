package geom

import (
	"errors"
	"math"
	"testing"
)

func TestToNativeScales(t *testing.T) {
	canvas := Extent{Width: 500, Height: 250}
	native := Extent{Width: 1000, Height: 500}

	p, err := ToNative(Point{X: 10, Y: 10}, canvas, native)
	if err != nil {
		t.Fatalf("ToNative failed: %v", err)
	}
	if p.X != 20 || p.Y != 20 {
		t.Errorf("expected (20,20), got (%v,%v)", p.X, p.Y)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		canvas Extent
		native Extent
		point  Point
	}{
		{"downscaled", Extent{500, 250}, Extent{1000, 500}, Point{10, 10}},
		{"anisotropic", Extent{640, 480}, Extent{1920, 1080}, Point{123.4, 56.7}},
		{"upscaled", Extent{800, 800}, Extent{100, 100}, Point{3, 97}},
		{"identity", Extent{333, 444}, Extent{333, 444}, Point{0.5, 0.25}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := ToNative(tc.point, tc.canvas, tc.native)
			if err != nil {
				t.Fatalf("ToNative failed: %v", err)
			}
			back, err := ToCanvas(n, tc.canvas, tc.native)
			if err != nil {
				t.Fatalf("ToCanvas failed: %v", err)
			}
			if math.Abs(back.X-tc.point.X) > 1e-9 || math.Abs(back.Y-tc.point.Y) > 1e-9 {
				t.Errorf("round trip drifted: got (%v,%v), want (%v,%v)", back.X, back.Y, tc.point.X, tc.point.Y)
			}
		})
	}
}

func TestLengthToNativeUsesMeanScale(t *testing.T) {
	canvas := Extent{Width: 100, Height: 200}
	native := Extent{Width: 400, Height: 400}
	// sx = 4, sy = 2, mean = 3
	v, err := LengthToNative(10, canvas, native)
	if err != nil {
		t.Fatalf("LengthToNative failed: %v", err)
	}
	if v != 30 {
		t.Errorf("expected 30, got %v", v)
	}
	back, err := LengthToCanvas(v, canvas, native)
	if err != nil {
		t.Fatalf("LengthToCanvas failed: %v", err)
	}
	// The mean scale is not exactly invertible for anisotropic extents, but it
	// must stay close for mild aspect mismatches.
	if math.Abs(back-10) > 2 {
		t.Errorf("inverse length too far off: got %v", back)
	}
}

func TestInvalidExtent(t *testing.T) {
	bad := []Extent{{0, 100}, {100, 0}, {-1, 100}, {100, -1}, {}}
	good := Extent{Width: 10, Height: 10}
	for _, e := range bad {
		if _, err := ToNative(Point{1, 1}, e, good); !errors.Is(err, ErrInvalidExtent) {
			t.Errorf("ToNative(canvas=%+v): expected ErrInvalidExtent, got %v", e, err)
		}
		if _, err := ToCanvas(Point{1, 1}, good, e); !errors.Is(err, ErrInvalidExtent) {
			t.Errorf("ToCanvas(native=%+v): expected ErrInvalidExtent, got %v", e, err)
		}
		if _, err := LengthToNative(1, e, good); !errors.Is(err, ErrInvalidExtent) {
			t.Errorf("LengthToNative(canvas=%+v): expected ErrInvalidExtent, got %v", e, err)
		}
	}
}
