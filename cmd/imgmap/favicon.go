package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/imgmap/internal/markup"
	"github.com/example/imgmap/internal/media"
)

// faviconCmd emits a favicon link tag for an image.
type faviconCmd struct {
	*root
	fs   *flag.FlagSet
	file string
	out  io.Writer
}

func (f *faviconCmd) FlagSet() *flag.FlagSet {
	return f.fs
}

func parseFaviconCmd(args []string, r *root) (*faviconCmd, error) {
	fs := flag.NewFlagSet("favicon", flag.ExitOnError)
	f := &faviconCmd{root: r, fs: fs, out: os.Stdout}
	fs.StringVar(&f.file, "file", "", "image file to link as favicon")
	fs.Usage = usageFunc(f)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if f.file == "" {
		return nil, &UsageError{of: f}
	}
	return f, nil
}

func (f *faviconCmd) Run() error {
	desc, err := media.Probe(f.file)
	if err != nil {
		return fmt.Errorf("favicon: %w", err)
	}
	fmt.Fprintln(f.out, markup.FaviconLink(desc))
	return nil
}
