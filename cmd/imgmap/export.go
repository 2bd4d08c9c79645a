package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/imgmap/internal/codec"
)

// exportCmd writes a resized derivative of an image file.
type exportCmd struct {
	*root
	fs *flag.FlagSet

	file    string
	width   int
	height  int
	format  string
	quality int
	clean   bool

	engine *codec.Engine
	out    io.Writer
}

func (e *exportCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseExportCmd(args []string, r *root) (*exportCmd, error) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	e := &exportCmd{root: r, fs: fs, engine: codec.NewEngine(), out: os.Stdout}
	fs.StringVar(&e.file, "file", "", "image file to export")
	fs.IntVar(&e.width, "width", 0, "output width in pixels")
	fs.IntVar(&e.height, "height", 0, "output height in pixels")
	fs.StringVar(&e.format, "format", "original", "output format (original, webp)")
	fs.IntVar(&e.quality, "quality", 85, "encoding quality from 1 to 100")
	fs.BoolVar(&e.clean, "clean", false, "remove an existing output file before writing")
	fs.Usage = usageFunc(e)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if e.file == "" {
		return nil, &UsageError{of: e}
	}
	return e, nil
}

func (e *exportCmd) Run() error {
	format, err := codec.ParseFormat(e.format)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	out, err := e.engine.Export(e.file, codec.ExportRequest{
		Width:   e.width,
		Height:  e.height,
		Format:  format,
		Quality: e.quality,
		Clean:   e.clean,
	})
	if err != nil {
		return err
	}
	if e.notifier != nil {
		e.notifier.Export(out)
	}
	fmt.Fprintln(e.out, out)
	return nil
}
