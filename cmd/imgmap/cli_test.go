package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/imgmap/internal/codec"
	"github.com/example/imgmap/internal/markup"
)

func writeTempPNG(t *testing.T, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return path
}

func TestGenerateWritesFragment(t *testing.T) {
	path := writeTempPNG(t, "logo.png", 100, 50)
	var buf bytes.Buffer
	cmd := &generateCmd{
		root:      &root{},
		file:      path,
		framework: "html",
		out:       &buf,
		rects:     rectList{{10, 10, 60, 40}},
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `src="./logo.png"`) {
		t.Errorf("missing src attribute:\n%s", got)
	}
	if !strings.Contains(got, `width="100" height="50"`) {
		t.Errorf("missing probed dimensions:\n%s", got)
	}
	if !strings.Contains(got, `coords="10,10,60,40"`) {
		t.Errorf("missing area coords:\n%s", got)
	}
}

func TestGenerateUnknownFramework(t *testing.T) {
	path := writeTempPNG(t, "logo.png", 10, 10)
	cmd := &generateCmd{root: &root{}, file: path, framework: "svelte", out: &bytes.Buffer{}}
	err := cmd.Run()
	if err == nil || !strings.Contains(err.Error(), "unknown framework") {
		t.Fatalf("expected unknown framework error, got %v", err)
	}
}

func TestGenerateRejectsTinyRect(t *testing.T) {
	path := writeTempPNG(t, "logo.png", 10, 10)
	cmd := &generateCmd{
		root:      &root{},
		file:      path,
		framework: "html",
		out:       &bytes.Buffer{},
		rects:     rectList{{0, 0, 2, 2}},
	}
	err := cmd.Run()
	if err == nil || !strings.Contains(err.Error(), "below the minimum size") {
		t.Fatalf("expected threshold error, got %v", err)
	}
}

func TestParseGenerateRequiresFile(t *testing.T) {
	r := &root{program: "imgmap"}
	_, err := parseGenerateCmd(nil, r)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
}

func TestFaviconOutput(t *testing.T) {
	path := writeTempPNG(t, "icon.png", 32, 32)
	var buf bytes.Buffer
	cmd := &faviconCmd{root: &root{}, file: path, out: &buf}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := `<link rel="icon" type="image/png" href="./icon.png">` + "\n"
	if buf.String() != want {
		t.Errorf("favicon output = %q, want %q", buf.String(), want)
	}
}

func TestCropMissingFile(t *testing.T) {
	cmd := &cropCmd{root: &root{}, file: "missing.png", w: 10, h: 10, out: &bytes.Buffer{}}
	cmd.engine = codec.NewEngine()
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "crop missing.png") {
		t.Fatalf("expected crop error context, got %v", err)
	}
}

func TestExportBadFormat(t *testing.T) {
	cmd := &exportCmd{root: &root{}, file: "x.png", format: "jpegxl", out: &bytes.Buffer{}}
	cmd.engine = codec.NewEngine()
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "unknown export format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestRectFlagParsing(t *testing.T) {
	var l rectList
	if err := l.Set("1,2,3,4"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := l.Set("1,2,3"); err == nil {
		t.Error("expected error for three values")
	}
	if err := l.Set("a,b,c,d"); err == nil {
		t.Error("expected error for non-integers")
	}
	if len(l) != 1 || l[0] != [4]int{1, 2, 3, 4} {
		t.Errorf("unexpected list %v", l)
	}
}

func TestResolveGeneratorDefaultsFromEnv(t *testing.T) {
	t.Setenv("IMGMAP_FRAMEWORK", "astro")
	t.Setenv("IMGMAP_ALT_TEXT", "hero")
	r := newRoot()
	r.resolveGeneratorDefaults()
	if r.framework != markup.Astro {
		t.Errorf("framework = %v, want astro", r.framework)
	}
	if r.altText != "hero" {
		t.Errorf("altText = %q", r.altText)
	}
}
