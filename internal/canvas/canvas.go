// Package canvas runs the interactive annotator window: the image is scaled
// to fit, drags are routed to the drawing session and the generated markup is
// kept in sync with the committed shapes.
package canvas

import (
	"fmt"
	"image"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/imgmap/internal/clipboard"
	"github.com/example/imgmap/internal/codec"
	"github.com/example/imgmap/internal/geom"
	"github.com/example/imgmap/internal/markup"
	"github.com/example/imgmap/internal/media"
	"github.com/example/imgmap/internal/notify"
	"github.com/example/imgmap/internal/session"
	"github.com/example/imgmap/internal/shapes"
	"github.com/example/imgmap/internal/theme"
)

const (
	toolbarWidth = 96
	bottomHeight = 24
	maxWindowW   = 1280
	maxWindowH   = 840
)

// Annotator holds the state of one annotation window.
type Annotator struct {
	img        *image.RGBA
	desc       media.Descriptor
	sourcePath string

	sess *session.Session
	opts markup.Options

	theme      *theme.Theme
	notifier   *notify.Notifier
	dispatcher *codec.Dispatcher
	onClose    func()
}

// Option modifies an Annotator during creation.
type Option func(*Annotator)

// WithTheme sets the window palette.
func WithTheme(t *theme.Theme) Option { return func(a *Annotator) { a.theme = t } }

// WithNotifier sets the desktop notifier.
func WithNotifier(n *notify.Notifier) Option { return func(a *Annotator) { a.notifier = n } }

// WithDispatcher sets the codec dispatcher used when a crop is applied.
func WithDispatcher(d *codec.Dispatcher) Option { return func(a *Annotator) { a.dispatcher = d } }

// WithFramework sets the initial markup target.
func WithFramework(f markup.Framework) Option {
	return func(a *Annotator) { a.opts.Framework = f }
}

// WithAltText sets the alt text used in generated markup.
func WithAltText(alt string) Option { return func(a *Annotator) { a.opts.AltText = alt } }

// WithResponsive sets the initial responsive flag.
func WithResponsive(r bool) Option { return func(a *Annotator) { a.opts.Responsive = r } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *Annotator) { a.onClose = fn } }

// New creates an annotator for the decoded image and its descriptor.
// sourcePath is the on-disk file crops are applied to.
func New(img *image.RGBA, desc media.Descriptor, sourcePath string, opts ...Option) *Annotator {
	a := &Annotator{
		img:        img,
		desc:       desc,
		sourcePath: sourcePath,
		sess:       session.New(desc.NativeExtent(), shapes.NewStore()),
		theme:      theme.Default(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Markup regenerates the embed fragment for the current shapes.
func (a *Annotator) Markup() string {
	return markup.Generate(a.desc, a.sess.Store().List(), a.opts)
}

// Run executes the UI loop using shiny's driver.
func (a *Annotator) Run() { driver.Main(a.main) }

func (a *Annotator) main(s screen.Screen) {
	winW := a.img.Bounds().Dx() + toolbarWidth
	winH := a.img.Bounds().Dy() + bottomHeight
	if winW > maxWindowW {
		winW = maxWindowW
	}
	if winH > maxWindowH {
		winH = maxWindowH
	}

	w, err := s.NewWindow(&screen.NewWindowOptions{Width: winW, Height: winH, Title: "ImgMap"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	if a.onClose != nil {
		defer a.onClose()
	}

	var (
		width, height = winW, winH
		preview       *session.Preview
		message       string
		messageUntil  time.Time
	)

	snack := func(format string, args ...any) {
		message = fmt.Sprintf(format, args...)
		messageUntil = time.Now().Add(2 * time.Second)
		w.Send(paint.Event{})
	}

	selectTool := func(t session.Tool) {
		dst := imageRect(a.img, width, height)
		canvas := geom.Extent{Width: float64(dst.Dx()), Height: float64(dst.Dy())}
		if err := a.sess.SelectTool(t, canvas); err != nil {
			snack("image not laid out yet")
			return
		}
		preview = nil
		w.Send(paint.Event{})
	}

	copyMarkup := func() {
		fragment := a.Markup()
		if err := clipboard.WriteText(fragment); err != nil {
			log.Printf("copy markup: %v", err)
			snack("copy failed")
			return
		}
		a.notifier.Copy(a.opts.Framework.String())
		snack("copied %s markup", a.opts.Framework)
	}

	applyCrop := func() {
		c := a.sess.TakeCrop()
		if c == nil {
			snack("no crop selected")
			return
		}
		if a.dispatcher != nil {
			a.dispatcher.DispatchCrop(a.sourcePath, codec.CropRequest{X: c.X, Y: c.Y, W: c.W, H: c.H})
		}
		snack("cropping %dx%d", c.W, c.H)
	}

	cycleFramework := func() {
		all := markup.Frameworks()
		for i, f := range all {
			if f == a.opts.Framework {
				a.opts.Framework = all[(i+1)%len(all)]
				break
			}
		}
		snack("target: %s", a.opts.Framework)
	}

	clearAreas := func() {
		a.sess.ClearAreas()
		preview = nil
		snack("areas cleared")
	}

	toolbar := toolbarActions{
		rect:        func() { selectTool(session.ToolMapRect) },
		circle:      func() { selectTool(session.ToolMapCircle) },
		crop:        func() { selectTool(session.ToolCrop) },
		clearAreas:  clearAreas,
		cycleTarget: cycleFramework,
		copyMarkup:  copyMarkup,
		applyCrop:   applyCrop,
	}

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			dst := imageRect(a.img, width, height)
			a.sess.Layout(geom.Extent{Width: float64(dst.Dx()), Height: float64(dst.Dy())})
			w.Send(paint.Event{})
		case paint.Event:
			a.drawFrame(s, w, frameState{
				width:        width,
				height:       height,
				preview:      preview,
				message:      message,
				messageUntil: messageUntil,
			})
		case mouse.Event:
			p := image.Pt(int(e.X), int(e.Y))
			if p.X < toolbarWidth {
				if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
					toolbar.activate(p.Y)
				}
				continue
			}
			dst := imageRect(a.img, width, height)
			cp := geom.Point{X: float64(p.X - dst.Min.X), Y: float64(p.Y - dst.Min.Y)}
			switch e.Direction {
			case mouse.DirPress:
				if e.Button == mouse.ButtonLeft && p.In(dst) && a.sess.PointerDown(cp) {
					preview = nil
					w.Send(paint.Event{})
				}
			case mouse.DirNone:
				if pv, ok := a.sess.PointerMove(cp); ok {
					preview = &pv
					w.Send(paint.Event{})
				}
			case mouse.DirRelease:
				if e.Button != mouse.ButtonLeft {
					continue
				}
				commit, ok := a.sess.PointerUp(cp)
				if !ok {
					continue
				}
				preview = nil
				switch {
				case commit.Discarded:
					snack("too small, discarded")
				case commit.Shape != nil:
					snack("area %d added", commit.Shape.Label())
				case commit.Crop != nil:
					snack("crop selected, ctrl+enter to apply")
				}
				w.Send(paint.Event{})
			}
		case key.Event:
			if e.Direction == key.DirRelease {
				continue
			}
			if e.Modifiers&key.ModControl != 0 {
				switch e.Code {
				case key.CodeC:
					copyMarkup()
				case key.CodeReturnEnter:
					applyCrop()
				}
				continue
			}
			switch e.Rune {
			case 'x', 'X':
				selectTool(session.ToolMapRect)
			case 'o', 'O':
				selectTool(session.ToolMapCircle)
			case 'r', 'R':
				selectTool(session.ToolCrop)
			case 'f', 'F':
				cycleFramework()
			case 'm', 'M':
				a.opts.Responsive = !a.opts.Responsive
				snack("responsive: %v", a.opts.Responsive)
			case 'd', 'D':
				clearAreas()
			case 'q', 'Q':
				return
			}
			if e.Code == key.CodeEscape {
				selectTool(session.ToolOff)
			}
		}
	}
}
