package markup

import (
	"strings"
	"testing"

	"github.com/example/imgmap/internal/media"
	"github.com/example/imgmap/internal/shapes"
)

func testImage() media.Descriptor {
	return media.Descriptor{FileName: "file.ext", Width: 1000, Height: 500, Format: media.FormatPNG}
}

func oneRect() []shapes.Shape {
	return []shapes.Shape{shapes.Rect{ID: 1, X1: 20, Y1: 20, X2: 120, Y2: 70}}
}

func TestGenerateHTML(t *testing.T) {
	got := Generate(testImage(), oneRect(), Options{Framework: HTML})
	want := `<img src="./file.ext" alt="description" width="1000" height="500" usemap="#file-map" loading="lazy">
<map name="file-map">
  <area shape="rect" coords="20,20,120,70" href="#" alt="Area 1">
</map>`
	if got != want {
		t.Errorf("html output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateReactResponsive(t *testing.T) {
	got := Generate(testImage(), oneRect(), Options{Framework: React, AltText: "logo", Responsive: true})
	want := `<picture>
  <source media="(max-width: 768px)" srcSet="./file-mobile.ext" />
  <img src="./file.ext" alt="logo" width={1000} height={500} useMap="#file-map" loading="lazy" />
</picture>
<map name="file-map">
  <area shape="rect" coords="20,20,120,70" href="#" alt="Area 1" />
</map>`
	if got != want {
		t.Errorf("react output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateVueWrapsTemplate(t *testing.T) {
	got := Generate(testImage(), nil, Options{Framework: Vue})
	want := `<template>
  <img src="./file.ext" alt="description" width="1000" height="500" loading="lazy">
</template>`
	if got != want {
		t.Errorf("vue output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateNuxtIgnoresResponsive(t *testing.T) {
	img := testImage()
	plain := Generate(img, oneRect(), Options{Framework: Nuxt, Responsive: false})
	responsive := Generate(img, oneRect(), Options{Framework: Nuxt, Responsive: true})
	if plain != responsive {
		t.Errorf("nuxt output must not change with the responsive flag:\nfalse:\n%s\ntrue:\n%s", plain, responsive)
	}
	want := `<template>
  <NuxtImg src="./file.ext" alt="description" width="1000" height="500" usemap="#file-map" sizes="sm:100vw md:50vw lg:1024px" loading="lazy">
  <map name="file-map">
    <area shape="rect" coords="20,20,120,70" href="#" alt="Area 1">
  </map>
</template>`
	if plain != want {
		t.Errorf("nuxt output mismatch:\ngot:\n%s\nwant:\n%s", plain, want)
	}
}

func TestGenerateNextFillFallback(t *testing.T) {
	img := media.Descriptor{FileName: "banner.png", Format: media.FormatPNG}
	got := Generate(img, nil, Options{Framework: Next})
	want := "import Image from \"next/image\";\n\n" +
		`<Image src="./banner.png" alt="description" fill loading="lazy" />`
	if got != want {
		t.Errorf("next fill output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateNextWithDimensions(t *testing.T) {
	got := Generate(testImage(), nil, Options{Framework: Next, AltText: "logo"})
	if !strings.Contains(got, "width={1000} height={500}") {
		t.Errorf("expected expression-style dimensions, got:\n%s", got)
	}
	if strings.Contains(got, " fill") {
		t.Errorf("fill fragment must not appear when dimensions are known:\n%s", got)
	}
}

func TestGenerateAstro(t *testing.T) {
	circle := []shapes.Shape{shapes.Circle{ID: 1, CX: 40, CY: 40, R: 12}}
	got := Generate(testImage(), circle, Options{Framework: Astro, AltText: "hero", Responsive: true})
	want := `---
import { Picture } from "astro:assets";
import embedImage from "./file.ext";
---
<Picture src={embedImage} formats={["avif", "webp"]} alt="hero" width={1000} height={500} useMap="#file-map" />
<map name="file-map">
  <area shape="circle" coords="40,40,12" href="#" alt="Area 1" />
</map>`
	if got != want {
		t.Errorf("astro responsive mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	plain := Generate(testImage(), nil, Options{Framework: Astro})
	if !strings.Contains(plain, "import { Image } from \"astro:assets\";") {
		t.Errorf("non-responsive astro should import Image:\n%s", plain)
	}
	if !strings.Contains(plain, "<Image src={embedImage}") {
		t.Errorf("astro src must bind the imported identifier:\n%s", plain)
	}
}

func TestGenerateAngular(t *testing.T) {
	got := Generate(testImage(), oneRect(), Options{Framework: Angular})
	want := `<div>
  <img ngSrc="./file.ext" alt="description" width="1000" height="500" usemap="#file-map" loading="lazy">
  <map name="file-map">
    <area shape="rect" coords="20,20,120,70" href="#" alt="Area 1">
  </map>
</div>`
	if got != want {
		t.Errorf("angular output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateUnknownFrameworkFallsBack(t *testing.T) {
	got := Generate(testImage(), nil, Options{Framework: Framework(99)})
	want := Generate(testImage(), nil, Options{Framework: HTML})
	if got != want {
		t.Errorf("unknown framework must render as html:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, f := range Frameworks() {
		opts := Options{Framework: f, AltText: "a", Responsive: true}
		first := Generate(testImage(), oneRect(), opts)
		second := Generate(testImage(), oneRect(), opts)
		if first != second {
			t.Errorf("%s: generate is not deterministic", f)
		}
	}
}

func TestMobileName(t *testing.T) {
	cases := map[string]string{
		"file.ext":     "file-mobile.ext",
		"a.b.c":        "a-mobile.b.c",
		"noextension":  "noextension-mobile",
		"logo.svg.png": "logo-mobile.svg.png",
	}
	for in, want := range cases {
		if got := mobileName(in); got != want {
			t.Errorf("mobileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseFramework(t *testing.T) {
	if f, ok := ParseFramework("React"); !ok || f != React {
		t.Errorf("ParseFramework(React) = %v, %v", f, ok)
	}
	if _, ok := ParseFramework("svelte"); ok {
		t.Error("svelte should not parse")
	}
}

func TestFaviconLink(t *testing.T) {
	img := media.Descriptor{FileName: "icon.png", Format: media.FormatPNG}
	want := `<link rel="icon" type="image/png" href="./icon.png">`
	if got := FaviconLink(img); got != want {
		t.Errorf("favicon link mismatch: %s", got)
	}
}
