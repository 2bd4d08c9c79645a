package codec

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/disintegration/imaging"
)

func writeTestPNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	path := filepath.Join(dir, "source.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return path
}

func TestEngineCrop(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, 100, 80)

	out, err := NewEngine().Crop(path, CropRequest{X: 10, Y: 20, W: 40, H: 30})
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if filepath.Base(out) != "source-cropped.png" {
		t.Errorf("unexpected output name %q", out)
	}
	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("cropped size = %dx%d, want 40x30", b.Dx(), b.Dy())
	}
}

func TestEngineCropRejectsEmptyRect(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, 10, 10)
	if _, err := NewEngine().Crop(path, CropRequest{X: 0, Y: 0, W: 0, H: 5}); err == nil {
		t.Error("expected error for zero-width crop")
	}
}

func TestEngineExportOriginalFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, 100, 80)

	out, err := NewEngine().Export(path, ExportRequest{Width: 50, Height: 40, Quality: 80})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if filepath.Base(out) != "source-50x40.png" {
		t.Errorf("unexpected output name %q", out)
	}
	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 40 {
		t.Errorf("exported size = %dx%d, want 50x40", b.Dx(), b.Dy())
	}
}

func TestEngineExportWebP(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, 60, 60)

	out, err := NewEngine().Export(path, ExportRequest{Width: 30, Height: 30, Format: FormatWebP, Quality: 500})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasSuffix(out, "source-30x30.webp") {
		t.Errorf("unexpected output name %q", out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("stat output: %v", err)
	}
}

func TestEngineExportAVIFUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, 10, 10)
	if _, err := NewEngine().Export(path, ExportRequest{Width: 5, Height: 5, Format: FormatAVIF}); err == nil {
		t.Error("expected error for avif export")
	}
}

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Format
		ok   bool
	}{
		{"", FormatOriginal, true},
		{"original", FormatOriginal, true},
		{"WebP", FormatWebP, true},
		{" avif ", FormatAVIF, true},
		{"jpeg2000", FormatOriginal, false},
	} {
		got, err := ParseFormat(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseFormat(%q) error = %v", tc.in, err)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDispatcherRunsCommandsAsync(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, 40, 40)

	var mu sync.Mutex
	var done []string
	d := NewDispatcher(nil)
	d.Done = func(p string) {
		mu.Lock()
		done = append(done, p)
		mu.Unlock()
	}
	d.DispatchCrop(path, CropRequest{X: 0, Y: 0, W: 20, H: 20})
	d.DispatchExport(path, ExportRequest{Width: 10, Height: 10, Quality: 90})
	d.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(done) != 2 {
		t.Fatalf("expected 2 completions, got %d (%v)", len(done), done)
	}
	for _, p := range done {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("reported output missing: %v", err)
		}
	}
}
