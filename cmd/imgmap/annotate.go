package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/example/imgmap/internal/canvas"
	"github.com/example/imgmap/internal/codec"
	"github.com/example/imgmap/internal/media"
)

// annotateCmd opens the interactive annotator window for an image file.
type annotateCmd struct {
	*root
	fs   *flag.FlagSet
	file string
}

func (a *annotateCmd) FlagSet() *flag.FlagSet {
	return a.fs
}

func parseAnnotateCmd(args []string, r *root) (*annotateCmd, error) {
	fs := flag.NewFlagSet("annotate", flag.ExitOnError)
	a := &annotateCmd{root: r, fs: fs}
	fs.StringVar(&a.file, "file", "", "image file to annotate")
	fs.Usage = usageFunc(a)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if a.file == "" && fs.NArg() > 0 {
		a.file = fs.Arg(0)
	}
	if a.file == "" {
		return nil, &UsageError{of: a}
	}
	return a, nil
}

func (a *annotateCmd) Run() error {
	desc, err := media.Probe(a.file)
	if err != nil {
		return fmt.Errorf("annotate: %w", err)
	}
	if !desc.HasDimensions() {
		return fmt.Errorf("annotate: %s could not be decoded", a.file)
	}

	f, err := os.Open(a.file)
	if err != nil {
		return fmt.Errorf("annotate: %w", err)
	}
	defer f.Close()
	dec, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("annotate: decode %s: %w", a.file, err)
	}
	rgba := image.NewRGBA(dec.Bounds())
	draw.Draw(rgba, rgba.Bounds(), dec, dec.Bounds().Min, draw.Src)

	dispatcher := codec.NewDispatcher(nil)
	dispatcher.Done = func(path string) {
		if a.notifier != nil {
			a.notifier.Export(path)
		}
	}
	defer dispatcher.Close()

	ann := canvas.New(rgba, desc, a.file,
		canvas.WithTheme(a.activeTheme),
		canvas.WithNotifier(a.notifier),
		canvas.WithDispatcher(dispatcher),
		canvas.WithFramework(a.framework),
		canvas.WithAltText(a.altText),
		canvas.WithResponsive(a.responsive),
	)
	ann.Run()
	return nil
}
