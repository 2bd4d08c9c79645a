// Package config loads the rc-style configuration file: root keys for the
// generator defaults, a [notify] section and optional [theme.*] palettes.
package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/imgmap/internal/theme"
)

// Notify holds notification toggles per event.
type Notify struct {
	Copy   bool
	Save   bool
	Export bool
}

// Config holds the application configuration.
type Config struct {
	Theme      string
	SaveDir    string
	Framework  string
	AltText    string
	Responsive bool
	Notify     Notify
	Themes     map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:     "", // Empty allows fallback to Env/Default
		Framework: "html",
		Themes:    make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	if c.Framework != "" {
		fmt.Fprintf(&sb, "framework = %s\n", c.Framework)
	}
	if c.AltText != "" {
		fmt.Fprintf(&sb, "alt_text = %s\n", c.AltText)
	}
	fmt.Fprintf(&sb, "responsive = %v\n", c.Responsive)
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	sb.WriteString("\n")

	// Theme sections, sorted for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		fmt.Fprintf(&sb, "Background: %s\n", toHex(t.Background))
		fmt.Fprintf(&sb, "Foreground: %s\n", toHex(t.Foreground))
		fmt.Fprintf(&sb, "ToolbarBackground: %s\n", toHex(t.ToolbarBackground))
		fmt.Fprintf(&sb, "ButtonBackground: %s\n", toHex(t.ButtonBackground))
		fmt.Fprintf(&sb, "ButtonBackgroundHover: %s\n", toHex(t.ButtonBackgroundHover))
		fmt.Fprintf(&sb, "ButtonBackgroundPress: %s\n", toHex(t.ButtonBackgroundPress))
		fmt.Fprintf(&sb, "ButtonText: %s\n", toHex(t.ButtonText))
		fmt.Fprintf(&sb, "ButtonBorder: %s\n", toHex(t.ButtonBorder))
		fmt.Fprintf(&sb, "ShapeOutline: %s\n", toHex(t.ShapeOutline))
		fmt.Fprintf(&sb, "PreviewOutline: %s\n", toHex(t.PreviewOutline))
		fmt.Fprintf(&sb, "CropDashA: %s\n", toHex(t.CropDashA))
		fmt.Fprintf(&sb, "CropDashB: %s\n", toHex(t.CropDashB))
		fmt.Fprintf(&sb, "LabelText: %s\n", toHex(t.LabelText))
		fmt.Fprintf(&sb, "LabelBackground: %s\n", toHex(t.LabelBackground))
		fmt.Fprintf(&sb, "CheckerLight: %s\n", toHex(t.CheckerLight))
		fmt.Fprintf(&sb, "CheckerDark: %s\n", toHex(t.CheckerDark))
		sb.WriteString("\n")
	}

	return sb.String()
}

func toHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
