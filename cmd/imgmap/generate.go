package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/imgmap/internal/markup"
	"github.com/example/imgmap/internal/media"
	"github.com/example/imgmap/internal/shapes"
)

// generateCmd emits embed markup for an image and a set of areas without
// opening a window.
type generateCmd struct {
	*root
	fs *flag.FlagSet

	file       string
	framework  string
	alt        string
	responsive bool
	output     string
	rects      rectList
	circles    circleList

	out io.Writer
}

func (g *generateCmd) FlagSet() *flag.FlagSet {
	return g.fs
}

func parseGenerateCmd(args []string, r *root) (*generateCmd, error) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	g := &generateCmd{root: r, fs: fs, out: os.Stdout}
	fs.StringVar(&g.file, "file", "", "image file to generate markup for")
	fs.StringVar(&g.framework, "framework", r.framework.String(), "target framework (html, react, next, vue, nuxt, angular, astro)")
	fs.StringVar(&g.alt, "alt", r.altText, "alt text for the image element")
	fs.BoolVar(&g.responsive, "responsive", r.responsive, "emit a responsive picture variant where the target supports it")
	fs.StringVar(&g.output, "output", "", "write the fragment to a file instead of stdout")
	fs.Var(&g.rects, "rect", "rectangular area as x1,y1,x2,y2 in image pixels (repeatable)")
	fs.Var(&g.circles, "circle", "circular area as cx,cy,r in image pixels (repeatable)")
	fs.Usage = usageFunc(g)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if g.file == "" {
		return nil, &UsageError{of: g}
	}
	return g, nil
}

func (g *generateCmd) Run() error {
	desc, err := media.Probe(g.file)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	f, ok := markup.ParseFramework(g.framework)
	if !ok {
		return fmt.Errorf("generate: unknown framework %q (one of %s)", g.framework, frameworkNames())
	}

	store := shapes.NewStore()
	for _, r := range g.rects {
		if _, ok := store.AddRect(r[0], r[1], r[2], r[3]); !ok {
			return fmt.Errorf("generate: rect %d,%d,%d,%d is below the minimum size", r[0], r[1], r[2], r[3])
		}
	}
	for _, c := range g.circles {
		if _, ok := store.AddCircle(c[0], c[1], c[2]); !ok {
			return fmt.Errorf("generate: circle %d,%d,%d is below the minimum radius", c[0], c[1], c[2])
		}
	}

	fragment := markup.Generate(desc, store.List(), markup.Options{
		Framework:  f,
		AltText:    g.alt,
		Responsive: g.responsive,
	})

	if g.output == "" {
		fmt.Fprintln(g.out, fragment)
		return nil
	}
	if err := os.WriteFile(g.output, []byte(fragment+"\n"), 0644); err != nil {
		return fmt.Errorf("generate: write %s: %w", g.output, err)
	}
	if g.notifier != nil {
		g.notifier.Save(g.output)
	}
	return nil
}

func frameworkNames() string {
	all := markup.Frameworks()
	names := make([]string, len(all))
	for i, f := range all {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
