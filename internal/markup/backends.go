package markup

import "fmt"

// backend captures the handful of fragments that vary per dialect; the
// shared map-block and attribute helpers live in markup.go so they stay
// single-sourced.
type backend struct {
	jsx       bool
	container string
	preamble  func(in input) string
	element   func(in input) string
}

var backends = map[Framework]backend{
	HTML:    {element: plainImage},
	React:   {jsx: true, element: plainImage},
	Next:    {jsx: true, preamble: nextPreamble, element: nextImage},
	Vue:     {container: "template", element: plainImage},
	Nuxt:    {container: "template", element: nuxtImage},
	Angular: {container: "div", element: angularImage},
	Astro:   {jsx: true, preamble: astroPreamble, element: astroImage},
}

// plainImage assembles the <img> element shared by the html, react and vue
// dialects, honoring the responsive picture wrapper.
func plainImage(in input) string {
	img := fmt.Sprintf("<img src=%q alt=%q%s%s loading=\"lazy\"%s",
		in.src, in.alt, in.dims(), in.mapRef(), in.elementClose())
	if in.opts.Responsive {
		return pictureWrap(in, img)
	}
	return img
}

func nextPreamble(in input) string {
	return "import Image from \"next/image\";\n\n"
}

// nextImage emits the next/image component. When the native dimensions are
// unknown it switches to the fill layout instead of omitting sizing, which
// next/image would reject.
func nextImage(in input) string {
	sizing := in.dims()
	if sizing == "" {
		sizing = " fill"
	}
	img := fmt.Sprintf("<Image src=%q alt=%q%s%s loading=\"lazy\" />",
		in.src, in.alt, sizing, in.mapRef())
	if in.opts.Responsive {
		return pictureWrap(in, img)
	}
	return img
}

// nuxtImage emits the self-contained <NuxtImg> component. It never honors the
// responsive flag: the component carries its own sizes attribute, so toggling
// the flag leaves the output unchanged. Retained source behavior.
func nuxtImage(in input) string {
	return fmt.Sprintf("<NuxtImg src=%q alt=%q%s%s sizes=\"sm:100vw md:50vw lg:1024px\" loading=\"lazy\">",
		in.src, in.alt, in.dims(), in.mapRef())
}

// angularImage emits an NgOptimizedImage-style element.
func angularImage(in input) string {
	img := fmt.Sprintf("<img ngSrc=%q alt=%q%s%s loading=\"lazy\">",
		in.src, in.alt, in.dims(), in.mapRef())
	if in.opts.Responsive {
		return pictureWrap(in, img)
	}
	return img
}

// astroPreamble builds the front-matter block importing the asset component
// and the local image module. src binds to the imported identifier.
func astroPreamble(in input) string {
	component := "Image"
	if in.opts.Responsive {
		component = "Picture"
	}
	return fmt.Sprintf("---\nimport { %s } from \"astro:assets\";\nimport embedImage from %q;\n---\n", component, in.src)
}

// astroImage emits the astro:assets component. The responsive variant uses
// <Picture> with a formats list instead of a literal <source>.
func astroImage(in input) string {
	if in.opts.Responsive {
		return fmt.Sprintf("<Picture src={embedImage} formats={[\"avif\", \"webp\"]} alt=%q%s%s />",
			in.alt, in.dims(), in.mapRef())
	}
	return fmt.Sprintf("<Image src={embedImage} alt=%q%s%s loading=\"lazy\" />",
		in.alt, in.dims(), in.mapRef())
}
