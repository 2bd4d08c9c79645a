package canvas

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"math"
	"time"

	"golang.org/x/exp/shiny/screen"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/imgmap/internal/geom"
	"github.com/example/imgmap/internal/render"
	"github.com/example/imgmap/internal/session"
	"github.com/example/imgmap/internal/shapes"
)

const buttonHeight = 24

var toolButtons = []string{
	"X:Rect",
	"O:Circle",
	"R:Crop",
	"D:Clear",
	"F:Target",
	"^C:Copy",
	"^En:Apply",
}

type toolbarActions struct {
	rect        func()
	circle      func()
	crop        func()
	clearAreas  func()
	cycleTarget func()
	copyMarkup  func()
	applyCrop   func()
}

func (t toolbarActions) activate(y int) {
	fns := []func(){t.rect, t.circle, t.crop, t.clearAreas, t.cycleTarget, t.copyMarkup, t.applyCrop}
	idx := y / buttonHeight
	if idx >= 0 && idx < len(fns) && fns[idx] != nil {
		fns[idx]()
	}
}

type frameState struct {
	width        int
	height       int
	preview      *session.Preview
	message      string
	messageUntil time.Time
}

// imageRect returns the destination rectangle for the scaled image. The
// canvas origin is anchored right of the toolbar so shape positions stay
// stable while the window resizes.
func imageRect(img *image.RGBA, winW, winH int) image.Rectangle {
	availW := winW - toolbarWidth
	availH := winH - bottomHeight
	zx := float64(availW) / float64(img.Bounds().Dx())
	zy := float64(availH) / float64(img.Bounds().Dy())
	zoom := zx
	if zy < zx {
		zoom = zy
	}
	w := int(float64(img.Bounds().Dx()) * zoom)
	h := int(float64(img.Bounds().Dy()) * zoom)
	return image.Rect(toolbarWidth, 0, toolbarWidth+w, h)
}

func (a *Annotator) drawFrame(s screen.Screen, w screen.Window, st frameState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	dst := b.RGBA()

	draw.Draw(dst, dst.Bounds(), &image.Uniform{a.theme.Background}, image.Point{}, draw.Src)

	imgRect := imageRect(a.img, st.width, st.height)
	backdrop := image.Rect(toolbarWidth, 0, st.width, st.height-bottomHeight)
	render.Checkerboard(dst, backdrop, 8, a.theme.CheckerLight, a.theme.CheckerDark)
	xdraw.NearestNeighbor.Scale(dst, imgRect, a.img, a.img.Bounds(), draw.Over, nil)

	a.drawShapes(dst, imgRect)
	a.drawCrop(dst, imgRect, st.preview)
	if st.preview != nil && st.preview.Tool != session.ToolCrop {
		a.drawPreview(dst, imgRect, *st.preview)
	}

	a.drawToolbar(dst, st.height)
	a.drawStatusBar(dst, st.width, st.height)

	if st.message != "" && time.Now().Before(st.messageUntil) {
		a.drawSnackbar(dst, st.width, st.message)
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// drawShapes renders committed shapes projected back into canvas space, each
// with its numbered badge.
func (a *Annotator) drawShapes(dst *image.RGBA, imgRect image.Rectangle) {
	canvas := geom.Extent{Width: float64(imgRect.Dx()), Height: float64(imgRect.Dy())}
	native := a.desc.NativeExtent()
	if !canvas.Valid() || !native.Valid() {
		return
	}
	for _, sh := range a.sess.Store().List() {
		switch v := sh.(type) {
		case shapes.Rect:
			min, err1 := geom.ToCanvas(geom.Point{X: float64(v.X1), Y: float64(v.Y1)}, canvas, native)
			max, err2 := geom.ToCanvas(geom.Point{X: float64(v.X2), Y: float64(v.Y2)}, canvas, native)
			if err1 != nil || err2 != nil {
				continue
			}
			r := image.Rect(
				imgRect.Min.X+int(min.X), imgRect.Min.Y+int(min.Y),
				imgRect.Min.X+int(max.X), imgRect.Min.Y+int(max.Y),
			)
			render.Rect(dst, r, a.theme.ShapeOutline, 2)
			render.NumberBadge(dst, r.Min.X, r.Min.Y, v.Label(), a.theme.LabelBackground, a.theme.LabelText, 9)
		case shapes.Circle:
			c, err1 := geom.ToCanvas(geom.Point{X: float64(v.CX), Y: float64(v.CY)}, canvas, native)
			r, err2 := geom.LengthToCanvas(float64(v.R), canvas, native)
			if err1 != nil || err2 != nil {
				continue
			}
			cx := imgRect.Min.X + int(c.X)
			cy := imgRect.Min.Y + int(c.Y)
			render.Circle(dst, cx, cy, int(r), a.theme.ShapeOutline, 2)
			render.NumberBadge(dst, cx, cy, v.Label(), a.theme.LabelBackground, a.theme.LabelText, 9)
		}
	}
}

// drawCrop renders the dashed marquee for the pending crop, or the live crop
// drag when one is in progress.
func (a *Annotator) drawCrop(dst *image.RGBA, imgRect image.Rectangle, preview *session.Preview) {
	if preview != nil && preview.Tool == session.ToolCrop {
		r := image.Rect(
			imgRect.Min.X+int(preview.Start.X), imgRect.Min.Y+int(preview.Start.Y),
			imgRect.Min.X+int(preview.End.X), imgRect.Min.Y+int(preview.End.Y),
		).Canon()
		render.DashedRect(dst, r, 4, 2, a.theme.CropDashA, a.theme.CropDashB)
		return
	}
	c := a.sess.Crop()
	if c == nil {
		return
	}
	r := image.Rect(
		imgRect.Min.X+int(c.DrawX), imgRect.Min.Y+int(c.DrawY),
		imgRect.Min.X+int(c.DrawX+c.DrawW), imgRect.Min.Y+int(c.DrawY+c.DrawH),
	)
	render.DashedRect(dst, r, 4, 2, a.theme.CropDashA, a.theme.CropDashB)
}

func (a *Annotator) drawPreview(dst *image.RGBA, imgRect image.Rectangle, pv session.Preview) {
	switch pv.Tool {
	case session.ToolMapRect:
		r := image.Rect(
			imgRect.Min.X+int(pv.Start.X), imgRect.Min.Y+int(pv.Start.Y),
			imgRect.Min.X+int(pv.End.X), imgRect.Min.Y+int(pv.End.Y),
		).Canon()
		render.Rect(dst, r, a.theme.PreviewOutline, 1)
	case session.ToolMapCircle:
		cx := imgRect.Min.X + int(pv.Start.X)
		cy := imgRect.Min.Y + int(pv.Start.Y)
		render.Circle(dst, cx, cy, int(math.Round(pv.Radius)), a.theme.PreviewOutline, 1)
	}
}

func (a *Annotator) drawToolbar(dst *image.RGBA, height int) {
	bar := image.Rect(0, 0, toolbarWidth, height)
	draw.Draw(dst, bar, &image.Uniform{a.theme.ToolbarBackground}, image.Point{}, draw.Src)

	active := -1
	switch a.sess.Tool() {
	case session.ToolMapRect:
		active = 0
	case session.ToolMapCircle:
		active = 1
	case session.ToolCrop:
		active = 2
	}

	d := &font.Drawer{Dst: dst, Face: basicfont.Face7x13}
	for i, label := range toolButtons {
		r := image.Rect(2, i*buttonHeight+2, toolbarWidth-2, (i+1)*buttonHeight-2)
		bg := a.theme.ButtonBackground
		if i == active {
			bg = a.theme.ButtonBackgroundPress
		}
		draw.Draw(dst, r, &image.Uniform{bg}, image.Point{}, draw.Src)
		render.Rect(dst, r, a.theme.ButtonBorder, 1)
		d.Src = image.NewUniform(a.theme.ButtonText)
		d.Dot = fixed.P(r.Min.X+6, r.Min.Y+14)
		d.DrawString(label)
	}
}

func (a *Annotator) drawStatusBar(dst *image.RGBA, width, height int) {
	bar := image.Rect(0, height-bottomHeight, width, height)
	draw.Draw(dst, bar, &image.Uniform{a.theme.ToolbarBackground}, image.Point{}, draw.Src)

	responsive := "off"
	if a.opts.Responsive {
		responsive = "on"
	}
	status := fmt.Sprintf("target:%s  responsive:%s  areas:%d", a.opts.Framework, responsive, a.sess.Store().Len())
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(a.theme.Foreground),
		Face: basicfont.Face7x13,
	}
	d.Dot = fixed.P(6, height-8)
	d.DrawString(status)
}

func (a *Annotator) drawSnackbar(dst *image.RGBA, width int, message string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(a.theme.Foreground),
		Face: basicfont.Face7x13,
	}
	wmsg := d.MeasureString(message).Ceil()
	px := (width - wmsg) / 2
	py := 20
	box := image.Rect(px-8, py-14, px+wmsg+8, py+8)
	draw.Draw(dst, box, &image.Uniform{a.theme.ToolbarBackground}, image.Point{}, draw.Over)
	render.Rect(dst, box, a.theme.ButtonBorder, 1)
	d.Dot = fixed.P(px, py)
	d.DrawString(message)
}
