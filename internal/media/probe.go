package media

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var probeFormats = map[string]Format{
	"png":  FormatPNG,
	"jpeg": FormatJPEG,
	"gif":  FormatGIF,
	"webp": FormatWebP,
	"bmp":  FormatBMP,
	"tiff": FormatTIFF,
}

// Probe reads the image header and builds a descriptor for it. This is the
// single read the image source performs per selection. Content that none of
// the registered decoders understand yields zero dimensions and
// FormatUnknown rather than an error; downstream treats that as "unknown
// dimensions".
func Probe(path string) (Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return Descriptor{}, fmt.Errorf("probe %s: %w", path, err)
	}
	defer f.Close()

	d := Descriptor{FileName: filepath.Base(path)}
	cfg, name, err := image.DecodeConfig(f)
	if err != nil {
		return d, nil
	}
	d.Width = cfg.Width
	d.Height = cfg.Height
	if format, ok := probeFormats[name]; ok {
		d.Format = format
	}
	return d, nil
}
