// Package session drives pointer-drag capture. It owns the active tool and
// the Idle/Armed/Dragging machine so that invalid event sequences (a release
// with no matching press, nested drags) cannot corrupt the shape store.
package session

import (
	"math"

	"github.com/example/imgmap/internal/geom"
	"github.com/example/imgmap/internal/shapes"
)

// Tool selects how a completed drag is interpreted.
type Tool int

const (
	ToolOff Tool = iota
	ToolMapRect
	ToolMapCircle
	ToolCrop
)

func (t Tool) String() string {
	switch t {
	case ToolMapRect:
		return "rect"
	case ToolMapCircle:
		return "circle"
	case ToolCrop:
		return "crop"
	default:
		return "off"
	}
}

// State is the drag-capture phase.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateDragging
)

// Preview describes the in-progress drag in canvas space for live rendering.
// Preview values are never rounded; only committed shapes hold integers.
type Preview struct {
	Tool   Tool
	Start  geom.Point
	End    geom.Point
	Radius float64
}

// Commit reports the outcome of a completed drag.
type Commit struct {
	// Shape is the stored annotation, nil for crop drags and discarded drags.
	Shape shapes.Shape
	// Crop is the replaced crop rectangle, nil unless the crop tool committed.
	Crop *shapes.CropRect
	// Discarded is set when the drag fell below the minimum size threshold.
	Discarded bool
}

// Session is the single owner of drag state. All methods are called from one
// event loop; no locking.
type Session struct {
	state  State
	tool   Tool
	start  geom.Point
	canvas geom.Extent
	native geom.Extent
	store  *shapes.Store
	crop   *shapes.CropRect
}

// New creates a session for an image with the given native extent.
func New(native geom.Extent, store *shapes.Store) *Session {
	if store == nil {
		store = shapes.NewStore()
	}
	return &Session{native: native, store: store}
}

func (s *Session) State() State              { return s.state }
func (s *Session) Tool() Tool                { return s.tool }
func (s *Session) Store() *shapes.Store      { return s.store }
func (s *Session) Crop() *shapes.CropRect    { return s.crop }
func (s *Session) CanvasExtent() geom.Extent { return s.canvas }

// SelectTool arms a tool. Switching away from ToolOff requires a laid-out
// canvas; transforms before layout would produce garbage coordinates.
// Leaving the crop tool clears the pending crop rectangle. An in-progress
// drag is discarded immediately.
func (s *Session) SelectTool(t Tool, canvas geom.Extent) error {
	if t == ToolOff {
		if s.tool == ToolCrop {
			s.crop = nil
		}
		s.tool = ToolOff
		s.state = StateIdle
		return nil
	}
	if !canvas.Valid() {
		return geom.ErrInvalidExtent
	}
	if s.tool == ToolCrop && t != ToolCrop {
		s.crop = nil
	}
	s.canvas = canvas
	s.tool = t
	s.state = StateArmed
	return nil
}

// Layout records the canvas extent after a resize. A drag in progress keeps
// its canvas-space start point; projection happens at release time against
// the latest extent.
func (s *Session) Layout(canvas geom.Extent) {
	if canvas.Valid() {
		s.canvas = canvas
	}
}

// PointerDown begins a drag. Presses while already dragging or without an
// armed tool are ignored.
func (s *Session) PointerDown(p geom.Point) bool {
	if s.state != StateArmed || s.tool == ToolOff {
		return false
	}
	s.start = p
	s.state = StateDragging
	return true
}

// PointerMove reports the live preview while dragging. It never mutates the
// store.
func (s *Session) PointerMove(p geom.Point) (Preview, bool) {
	if s.state != StateDragging {
		return Preview{}, false
	}
	return Preview{
		Tool:   s.tool,
		Start:  s.start,
		End:    p,
		Radius: distance(s.start, p),
	}, true
}

// PointerUp completes the drag: both endpoints are projected into native
// space, rounded to integer pixels and committed. The session returns to
// Armed with the same tool.
func (s *Session) PointerUp(p geom.Point) (Commit, bool) {
	if s.state != StateDragging {
		return Commit{}, false
	}
	s.state = StateArmed

	startN, err := geom.ToNative(s.start, s.canvas, s.native)
	if err != nil {
		return Commit{Discarded: true}, true
	}
	endN, err := geom.ToNative(p, s.canvas, s.native)
	if err != nil {
		return Commit{Discarded: true}, true
	}

	switch s.tool {
	case ToolMapRect:
		r, ok := s.store.AddRect(round(startN.X), round(startN.Y), round(endN.X), round(endN.Y))
		if !ok {
			return Commit{Discarded: true}, true
		}
		return Commit{Shape: r}, true
	case ToolMapCircle:
		radius, err := geom.LengthToNative(distance(s.start, p), s.canvas, s.native)
		if err != nil {
			return Commit{Discarded: true}, true
		}
		c, ok := s.store.AddCircle(round(startN.X), round(startN.Y), round(radius))
		if !ok {
			return Commit{Discarded: true}, true
		}
		return Commit{Shape: c}, true
	case ToolCrop:
		return s.commitCrop(p, startN, endN), true
	default:
		return Commit{Discarded: true}, true
	}
}

// commitCrop replaces the single pending crop rectangle. Sub-threshold drags
// leave any previous selection in place.
func (s *Session) commitCrop(end geom.Point, startN, endN geom.Point) Commit {
	x1, x2 := startN.X, endN.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := startN.Y, endN.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	w := round(x2 - x1)
	h := round(y2 - y1)
	if w <= shapes.MinCropSpan || h <= shapes.MinCropSpan {
		return Commit{Discarded: true}
	}

	dx1, dx2 := s.start.X, end.X
	if dx1 > dx2 {
		dx1, dx2 = dx2, dx1
	}
	dy1, dy2 := s.start.Y, end.Y
	if dy1 > dy2 {
		dy1, dy2 = dy2, dy1
	}
	s.crop = &shapes.CropRect{
		X: round(x1), Y: round(y1), W: w, H: h,
		DrawX: dx1, DrawY: dy1, DrawW: dx2 - dx1, DrawH: dy2 - dy1,
	}
	return Commit{Crop: s.crop}
}

// TakeCrop returns the pending crop rectangle and clears it, for handing off
// to the export collaborator once a crop is applied.
func (s *Session) TakeCrop() *shapes.CropRect {
	c := s.crop
	s.crop = nil
	return c
}

// ClearAreas drops every committed shape, the pending crop and any
// in-progress drag. The current tool is kept.
func (s *Session) ClearAreas() {
	s.store.Clear()
	s.crop = nil
	if s.state == StateDragging {
		s.state = StateArmed
	}
}

// Reset prepares the session for a replacement image: stores cleared, tool
// disarmed, new native extent recorded.
func (s *Session) Reset(native geom.Extent) {
	s.store.Clear()
	s.crop = nil
	s.native = native
	s.tool = ToolOff
	s.state = StateIdle
}

func distance(a, b geom.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func round(v float64) int {
	return int(math.Round(v))
}
