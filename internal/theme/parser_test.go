package theme

import (
	"image/color"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	input := `
Name: midnight
Background: #101010
ShapeOutline: #00FF00
CropDashA: #FFFFFF80
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "midnight" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Background != (color.RGBA{0x10, 0x10, 0x10, 255}) {
		t.Errorf("Background = %+v", th.Background)
	}
	if th.ShapeOutline != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("ShapeOutline = %+v", th.ShapeOutline)
	}
	if th.CropDashA != (color.RGBA{255, 255, 255, 0x80}) {
		t.Errorf("CropDashA = %+v", th.CropDashA)
	}
	// Untouched keys keep their defaults.
	if th.CheckerDark != Default().CheckerDark {
		t.Errorf("CheckerDark should keep its default, got %+v", th.CheckerDark)
	}
}

func TestParseIgnoresUnknownKeys(t *testing.T) {
	th, err := Parse(strings.NewReader("FutureKey: #123456\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "Default" {
		t.Errorf("Name = %q", th.Name)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: red\n")); err == nil {
		t.Error("expected error for non-hex color")
	}
	if _, err := Parse(strings.NewReader("Background: #1234\n")); err == nil {
		t.Error("expected error for bad hex length")
	}
}
