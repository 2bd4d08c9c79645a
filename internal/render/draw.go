// Package render draws the annotation overlays: shape outlines, the live drag
// preview, the dashed crop marquee, numbered area badges and the checkerboard
// backdrop. Everything renders into a plain *image.RGBA frame buffer.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			px := x + dx
			py := y + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
	}
}

// Line draws a straight line between two points using Bresenham stepping.
func Line(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect draws the outline of rect.
func Rect(img *image.RGBA, rect image.Rectangle, col color.Color, thick int) {
	Line(img, rect.Min.X, rect.Min.Y, rect.Max.X-1, rect.Min.Y, col, thick)
	Line(img, rect.Max.X-1, rect.Min.Y, rect.Max.X-1, rect.Max.Y-1, col, thick)
	Line(img, rect.Max.X-1, rect.Max.Y-1, rect.Min.X, rect.Max.Y-1, col, thick)
	Line(img, rect.Min.X, rect.Max.Y-1, rect.Min.X, rect.Min.Y, col, thick)
}

func circleThin(img *image.RGBA, cx, cy, r int, col color.Color) {
	x := r
	y := 0
	err := 1 - r
	for x >= y {
		pts := [][2]int{{x, y}, {y, x}, {-y, x}, {-x, y}, {-x, -y}, {-y, -x}, {y, -x}, {x, -y}}
		for _, p := range pts {
			px := cx + p[0]
			py := cy + p[1]
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
}

// Circle draws a circle outline of the given thickness.
func Circle(img *image.RGBA, cx, cy, r int, col color.Color, thick int) {
	if thick <= 0 {
		circleThin(img, cx, cy, r, col)
		return
	}
	start := -thick / 2
	for i := 0; i < thick; i++ {
		rr := r + start + i
		if rr >= 0 {
			circleThin(img, cx, cy, rr, col)
		}
	}
}

// FilledCircle draws a solid disc.
func FilledCircle(img *image.RGBA, cx, cy, r int, col color.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				px := cx + dx
				py := cy + dy
				if image.Pt(px, py).In(img.Bounds()) {
					img.Set(px, py, col)
				}
			}
		}
	}
}

// DashedLine draws an axis-aligned line alternating between two colors every
// dash pixels. Used for the crop marquee so it stays visible on any image.
func DashedLine(img *image.RGBA, x0, y0, x1, y1, dash, thickness int, c1, c2 color.Color) {
	horiz := y0 == y1
	length := x1 - x0
	if !horiz {
		length = y1 - y0
	}
	if length < 0 {
		length = -length
	}
	for i := 0; i <= length; i += dash * 2 {
		for j := 0; j < dash && i+j <= length; j++ {
			dashPixel(img, x0, y0, i+j, thickness, horiz, x0 < x1, y0 < y1, c1)
		}
		for j := 0; j < dash && i+dash+j <= length; j++ {
			dashPixel(img, x0, y0, i+dash+j, thickness, horiz, x0 < x1, y0 < y1, c2)
		}
	}
}

func dashPixel(img *image.RGBA, x0, y0, off, thickness int, horiz, fwdX, fwdY bool, col color.Color) {
	for t := 0; t < thickness; t++ {
		var px, py int
		if horiz {
			px, py = x0+off, y0+t
			if !fwdX {
				px = x0 - off
			}
		} else {
			px, py = x0+t, y0+off
			if !fwdY {
				py = y0 - off
			}
		}
		if image.Pt(px, py).In(img.Bounds()) {
			img.Set(px, py, col)
		}
	}
}

// DashedRect draws a dashed outline around rect.
func DashedRect(img *image.RGBA, rect image.Rectangle, dash, thickness int, c1, c2 color.Color) {
	DashedLine(img, rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y, dash, thickness, c1, c2)
	DashedLine(img, rect.Max.X, rect.Min.Y, rect.Max.X, rect.Max.Y, dash, thickness, c1, c2)
	DashedLine(img, rect.Max.X, rect.Max.Y, rect.Min.X, rect.Max.Y, dash, thickness, c1, c2)
	DashedLine(img, rect.Min.X, rect.Max.Y, rect.Min.X, rect.Min.Y, dash, thickness, c1, c2)
}

// NumberBadge draws the 1-based area label: a filled disc with the number
// centred inside it. Text color is picked for contrast against the badge.
func NumberBadge(img *image.RGBA, cx, cy, num int, badge color.RGBA, text color.RGBA, size int) {
	FilledCircle(img, cx, cy, size, badge)

	textCol := text
	if text == (color.RGBA{}) {
		brightness := 0.299*float64(badge.R) + 0.587*float64(badge.G) + 0.114*float64(badge.B)
		textCol = color.RGBA{A: 255}
		if brightness < 128 {
			textCol = color.RGBA{255, 255, 255, 255}
		}
	}

	label := fmt.Sprintf("%d", num)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textCol),
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(label).Ceil()
	d.Dot = fixed.P(cx-w/2, cy+4)
	d.DrawString(label)
}

// Checkerboard fills rect of dst with a checkerboard pattern of the given
// colors. size controls the checker square size.
func Checkerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x/size)+(y/size))%2 == 0 {
				dst.Set(x, y, light)
			} else {
				dst.Set(x, y, dark)
			}
		}
	}
}
