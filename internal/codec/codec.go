// Package codec implements the crop/export commands the annotator dispatches
// once a selection is applied. The annotation core treats this boundary as
// fire-and-forget: it never blocks shape capture or markup regeneration on a
// result.
package codec

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Format selects the output encoding of a batch export.
type Format int

const (
	FormatOriginal Format = iota
	FormatWebP
	FormatAVIF
)

func (f Format) String() string {
	switch f {
	case FormatWebP:
		return "webp"
	case FormatAVIF:
		return "avif"
	default:
		return "original"
	}
}

// ParseFormat resolves an export format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "original":
		return FormatOriginal, nil
	case "webp":
		return FormatWebP, nil
	case "avif":
		return FormatAVIF, nil
	default:
		return FormatOriginal, fmt.Errorf("unknown export format %q", s)
	}
}

// CropRequest asks for a rectangle cut from the image, in native-space
// integer pixels with a top-left origin.
type CropRequest struct {
	X int
	Y int
	W int
	H int
}

// ExportRequest asks for a resized derivative of the image.
type ExportRequest struct {
	Width   int
	Height  int
	Format  Format
	Quality int // clamped to [1,100]
	Clean   bool
}

// Engine executes codec commands: one read and one write per command.
type Engine struct{}

// NewEngine returns a ready engine.
func NewEngine() *Engine { return &Engine{} }

// Crop cuts the requested rectangle out of the image at path and writes it
// next to the original with a "-cropped" suffix. It returns the written path.
func (e *Engine) Crop(path string, req CropRequest) (string, error) {
	if req.W <= 0 || req.H <= 0 {
		return "", fmt.Errorf("crop %s: non-positive size %dx%d", path, req.W, req.H)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("crop %s: %w", path, err)
	}
	cropped := imaging.Crop(img, image.Rect(req.X, req.Y, req.X+req.W, req.Y+req.H))
	out := derivativePath(path, "-cropped", "")
	if err := imaging.Save(cropped, out); err != nil {
		return "", fmt.Errorf("crop %s: %w", path, err)
	}
	return out, nil
}

// Export resizes the image at path to the requested dimensions and encodes
// it per the request. It returns the written path.
func (e *Engine) Export(path string, req ExportRequest) (string, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return "", fmt.Errorf("export %s: non-positive size %dx%d", path, req.Width, req.Height)
	}
	quality := req.Quality
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}

	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", path, err)
	}
	resized := imaging.Resize(img, req.Width, req.Height, imaging.Lanczos)

	suffix := fmt.Sprintf("-%dx%d", req.Width, req.Height)
	var out string
	switch req.Format {
	case FormatWebP:
		out = derivativePath(path, suffix, ".webp")
	case FormatAVIF:
		// None of the wired codecs encode AVIF; surface that instead of
		// silently writing another container.
		return "", fmt.Errorf("export %s: avif encoding is not supported", path)
	default:
		out = derivativePath(path, suffix, "")
	}

	if req.Clean {
		if err := os.Remove(out); err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("export %s: clean %s: %w", path, out, err)
		}
	}

	if req.Format == FormatWebP {
		f, err := os.Create(out)
		if err != nil {
			return "", fmt.Errorf("export %s: %w", path, err)
		}
		if err := webp.Encode(f, resized, &webp.Options{Quality: float32(quality)}); err != nil {
			_ = f.Close()
			_ = os.Remove(out)
			return "", fmt.Errorf("export %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("export %s: %w", path, err)
		}
		return out, nil
	}

	if err := imaging.Save(resized, out, imaging.JPEGQuality(quality)); err != nil {
		return "", fmt.Errorf("export %s: %w", path, err)
	}
	return out, nil
}

// derivativePath builds the output name: stem + suffix + extension, where an
// empty ext keeps the original extension.
func derivativePath(path, suffix, ext string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	origExt := filepath.Ext(base)
	stem := strings.TrimSuffix(base, origExt)
	if ext == "" {
		ext = origExt
	}
	return filepath.Join(dir, stem+suffix+ext)
}
