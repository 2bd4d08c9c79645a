package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/imgmap/internal/codec"
)

// cropCmd cuts a rectangle out of an image file without opening a window.
type cropCmd struct {
	*root
	fs *flag.FlagSet

	file string
	x    int
	y    int
	w    int
	h    int

	engine *codec.Engine
	out    io.Writer
}

func (c *cropCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseCropCmd(args []string, r *root) (*cropCmd, error) {
	fs := flag.NewFlagSet("crop", flag.ExitOnError)
	c := &cropCmd{root: r, fs: fs, engine: codec.NewEngine(), out: os.Stdout}
	fs.StringVar(&c.file, "file", "", "image file to crop")
	fs.IntVar(&c.x, "x", 0, "left edge of the crop in image pixels")
	fs.IntVar(&c.y, "y", 0, "top edge of the crop in image pixels")
	fs.IntVar(&c.w, "w", 0, "crop width in image pixels")
	fs.IntVar(&c.h, "h", 0, "crop height in image pixels")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.file == "" {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *cropCmd) Run() error {
	out, err := c.engine.Crop(c.file, codec.CropRequest{X: c.x, Y: c.y, W: c.w, H: c.h})
	if err != nil {
		return err
	}
	if c.notifier != nil {
		c.notifier.Export(out)
	}
	fmt.Fprintln(c.out, out)
	return nil
}
