package media

import "github.com/example/imgmap/internal/geom"

// Format identifies the raster container of a loaded image.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatWebP
	FormatBMP
	FormatTIFF
)

var formatNames = map[Format]string{
	FormatUnknown: "unknown",
	FormatPNG:     "png",
	FormatJPEG:    "jpeg",
	FormatGIF:     "gif",
	FormatWebP:    "webp",
	FormatBMP:     "bmp",
	FormatTIFF:    "tiff",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// MIME returns the media type for the format, defaulting to image/png for
// unknown content so favicon snippets stay well-formed.
func (f Format) MIME() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatGIF:
		return "image/gif"
	case FormatWebP:
		return "image/webp"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	default:
		return "image/png"
	}
}

// Descriptor holds the immutable facts about the loaded image. It is replaced
// wholesale when a new image is selected and is read-only everywhere else.
type Descriptor struct {
	FileName string
	Width    int
	Height   int
	Format   Format
}

// HasDimensions reports whether both native dimensions are known. Zero means
// the image source could not read them (they are omitted from markup, with a
// fill-layout fallback for the next dialect).
func (d Descriptor) HasDimensions() bool {
	return d.Width > 0 && d.Height > 0
}

// NativeExtent returns the image's native pixel extent.
func (d Descriptor) NativeExtent() geom.Extent {
	return geom.Extent{Width: float64(d.Width), Height: float64(d.Height)}
}
