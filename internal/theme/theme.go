package theme

import (
	"image/color"
)

// Theme defines the color palette for the annotator window and its overlays.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background behind the canvas
	Foreground color.RGBA // Main text color

	// Toolbar
	ToolbarBackground     color.RGBA
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Overlays
	ShapeOutline    color.RGBA // Committed rect/circle outlines
	PreviewOutline  color.RGBA // Live drag preview
	CropDashA       color.RGBA // Alternating crop marquee segments
	CropDashB       color.RGBA
	LabelText       color.RGBA // Numbered area badges
	LabelBackground color.RGBA

	// Canvas backdrop
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		ShapeOutline:          color.RGBA{220, 40, 40, 255},
		PreviewOutline:        color.RGBA{220, 40, 40, 160},
		CropDashA:             color.RGBA{255, 255, 255, 255},
		CropDashB:             color.RGBA{0, 0, 0, 255},
		LabelText:             color.RGBA{255, 255, 255, 255},
		LabelBackground:       color.RGBA{220, 40, 40, 255},
		CheckerLight:          color.RGBA{220, 220, 220, 255},
		CheckerDark:           color.RGBA{192, 192, 192, 255},
	}
}
