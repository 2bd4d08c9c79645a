// Package markup turns an image descriptor plus its captured shapes into
// embed markup for a fixed set of framework dialects. Generation is a pure
// function of its inputs so the preview can be re-rendered on every change
// and the exact output can be pinned by tests.
package markup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/imgmap/internal/media"
	"github.com/example/imgmap/internal/shapes"
)

// Framework selects the code-generation target.
type Framework int

const (
	HTML Framework = iota
	React
	Next
	Vue
	Nuxt
	Angular
	Astro
)

var frameworkNames = []string{"html", "react", "next", "vue", "nuxt", "angular", "astro"}

func (f Framework) String() string {
	if f < 0 || int(f) >= len(frameworkNames) {
		return "html"
	}
	return frameworkNames[f]
}

// ParseFramework resolves a framework name. Unknown names report false; the
// generator itself falls back to HTML for out-of-range values.
func ParseFramework(s string) (Framework, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range frameworkNames {
		if n == name {
			return Framework(i), true
		}
	}
	return HTML, false
}

// Frameworks lists every supported target in display order.
func Frameworks() []Framework {
	out := make([]Framework, len(frameworkNames))
	for i := range out {
		out[i] = Framework(i)
	}
	return out
}

// Options carries the generation settings owned by the UI layer. It is
// passed by value on every change.
type Options struct {
	Framework  Framework
	AltText    string
	Responsive bool
}

// mobileBreakpoint is the fixed max-width media query used by responsive
// variants, in CSS pixels.
const mobileBreakpoint = 768

const defaultAltText = "description"

// input bundles the shared fragments the backends assemble from.
type input struct {
	img       media.Descriptor
	shapes    []shapes.Shape
	opts      Options
	jsx       bool
	alt       string
	src       string
	mobileSrc string
	mapName   string
}

// Generate renders the embed markup for img with the captured shapes
// serialized as an HTML image map. Identical inputs always produce identical
// output text.
func Generate(img media.Descriptor, list []shapes.Shape, opts Options) string {
	b, ok := backends[opts.Framework]
	if !ok {
		b = backends[HTML]
	}

	alt := opts.AltText
	if alt == "" {
		alt = defaultAltText
	}
	in := input{
		img:       img,
		shapes:    list,
		opts:      opts,
		jsx:       b.jsx,
		alt:       alt,
		src:       "./" + img.FileName,
		mobileSrc: "./" + mobileName(img.FileName),
		mapName:   mapName(img.FileName),
	}

	fragment := b.element(in) + mapBlock(in)
	if b.container != "" {
		fragment = wrapContainer(b.container, fragment)
	}
	if b.preamble != nil {
		return b.preamble(in) + fragment
	}
	return fragment
}

// mobileName derives the small-screen asset name by splicing "-mobile" in at
// the file name's first dot.
func mobileName(fileName string) string {
	if i := strings.Index(fileName, "."); i >= 0 {
		return fileName[:i] + "-mobile." + fileName[i+1:]
	}
	return fileName + "-mobile"
}

// mapName derives the image-map name from the file name's first segment.
func mapName(fileName string) string {
	if i := strings.Index(fileName, "."); i >= 0 {
		return fileName[:i] + "-map"
	}
	return fileName + "-map"
}

// dims renders the dimension attribute fragment, empty when either native
// dimension is unknown.
func (in input) dims() string {
	if !in.img.HasDimensions() {
		return ""
	}
	if in.jsx {
		return fmt.Sprintf(" width={%d} height={%d}", in.img.Width, in.img.Height)
	}
	return fmt.Sprintf(" width=%q height=%q", strconv.Itoa(in.img.Width), strconv.Itoa(in.img.Height))
}

// mapRef renders the map-reference attribute, empty when there is no map
// block to reference.
func (in input) mapRef() string {
	if len(in.shapes) == 0 {
		return ""
	}
	if in.jsx {
		return fmt.Sprintf(" useMap=%q", "#"+in.mapName)
	}
	return fmt.Sprintf(" usemap=%q", "#"+in.mapName)
}

// elementClose terminates a media element per dialect.
func (in input) elementClose() string {
	if in.jsx {
		return " />"
	}
	return ">"
}

// mapBlock serializes the shapes as a <map> container with one <area> per
// shape, or empty text when no shapes were captured.
func mapBlock(in input) string {
	if len(in.shapes) == 0 {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n<map name=%q>", in.mapName)
	for i, sh := range in.shapes {
		coords := make([]string, 0, 4)
		for _, c := range sh.Coords() {
			coords = append(coords, strconv.Itoa(c))
		}
		fmt.Fprintf(&sb, "\n  <area shape=%q coords=%q href=\"#\" alt=\"Area %d\"%s",
			string(sh.Kind()), strings.Join(coords, ","), i+1, in.elementClose())
	}
	sb.WriteString("\n</map>")
	return sb.String()
}

// pictureWrap surrounds a media element with the responsive two-source
// picture/source pair.
func pictureWrap(in input, element string) string {
	srcset := "srcset"
	if in.jsx {
		srcset = "srcSet"
	}
	var sb strings.Builder
	sb.WriteString("<picture>\n")
	fmt.Fprintf(&sb, "  <source media=\"(max-width: %dpx)\" %s=%q%s\n", mobileBreakpoint, srcset, in.mobileSrc, in.elementClose())
	sb.WriteString("  " + element + "\n")
	sb.WriteString("</picture>")
	return sb.String()
}

// wrapContainer puts the whole fragment inside a single root element,
// indenting each inner line by two spaces.
func wrapContainer(name, fragment string) string {
	var sb strings.Builder
	sb.WriteString("<" + name + ">\n")
	for _, line := range strings.Split(fragment, "\n") {
		if line == "" {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString("  " + line + "\n")
	}
	sb.WriteString("</" + name + ">")
	return sb.String()
}
