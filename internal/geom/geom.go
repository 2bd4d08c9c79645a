package geom

import "errors"

// ErrInvalidExtent reports a coordinate transform attempted before the canvas
// has been laid out. It indicates a wiring bug in the caller rather than a
// recoverable runtime condition.
var ErrInvalidExtent = errors.New("geom: extent has a non-positive dimension")

// Point is a position in either canvas space or native image space. The two
// spaces are never mixed without an explicit transform.
type Point struct {
	X float64
	Y float64
}

// Extent describes the size of a coordinate space: either the on-screen
// canvas at its current rendered size or the image at full resolution.
type Extent struct {
	Width  float64
	Height float64
}

// Valid reports whether both dimensions are positive.
func (e Extent) Valid() bool {
	return e.Width > 0 && e.Height > 0
}

// ToNative projects a canvas-space point into native image space. No rounding
// occurs; callers round when committing a shape.
func ToNative(p Point, canvas, native Extent) (Point, error) {
	if !canvas.Valid() || !native.Valid() {
		return Point{}, ErrInvalidExtent
	}
	return Point{
		X: p.X * native.Width / canvas.Width,
		Y: p.Y * native.Height / canvas.Height,
	}, nil
}

// ToCanvas projects a native-space point onto the canvas.
func ToCanvas(p Point, canvas, native Extent) (Point, error) {
	if !canvas.Valid() || !native.Valid() {
		return Point{}, ErrInvalidExtent
	}
	return Point{
		X: p.X * canvas.Width / native.Width,
		Y: p.Y * canvas.Height / native.Height,
	}, nil
}

// LengthToNative scales an isotropic measure such as a circle radius from
// canvas space to native space using the arithmetic mean of the two axis
// scale factors.
func LengthToNative(v float64, canvas, native Extent) (float64, error) {
	if !canvas.Valid() || !native.Valid() {
		return 0, ErrInvalidExtent
	}
	sx := native.Width / canvas.Width
	sy := native.Height / canvas.Height
	return v * (sx + sy) / 2, nil
}

// LengthToCanvas is the inverse of LengthToNative.
func LengthToCanvas(v float64, canvas, native Extent) (float64, error) {
	if !canvas.Valid() || !native.Valid() {
		return 0, ErrInvalidExtent
	}
	sx := canvas.Width / native.Width
	sy := canvas.Height / native.Height
	return v * (sx + sy) / 2, nil
}
