package canvas

import (
	"image"
	"testing"
)

func TestImageRectFitsAndAnchors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1000, 500))
	r := imageRect(img, toolbarWidth+500, bottomHeight+250)
	if r.Min.X != toolbarWidth || r.Min.Y != 0 {
		t.Errorf("image must anchor next to the toolbar, got %v", r)
	}
	if r.Dx() != 500 || r.Dy() != 250 {
		t.Errorf("expected 500x250 fit, got %dx%d", r.Dx(), r.Dy())
	}
}

func TestImageRectLimitedByHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 400))
	r := imageRect(img, toolbarWidth+800, bottomHeight+200)
	if r.Dx() != 200 || r.Dy() != 200 {
		t.Errorf("zoom must follow the tighter axis, got %dx%d", r.Dx(), r.Dy())
	}
}

func TestToolbarActivateByRow(t *testing.T) {
	var hit string
	acts := toolbarActions{
		rect:   func() { hit = "rect" },
		circle: func() { hit = "circle" },
		crop:   func() { hit = "crop" },
	}
	acts.activate(buttonHeight + 3)
	if hit != "circle" {
		t.Errorf("row 1 should select the circle tool, got %q", hit)
	}
	acts.activate(buttonHeight * 20)
	if hit != "circle" {
		t.Error("out-of-range rows must be ignored")
	}
}
