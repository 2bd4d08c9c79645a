package shapes

// Kind names the serialization rule of a committed shape. The values match
// the HTML image-map "shape" attribute.
type Kind string

const (
	KindRect   Kind = "rect"
	KindCircle Kind = "circle"
)

// Shape is a committed annotation stored in native pixel space. Committed
// shapes always hold integer coordinates.
type Shape interface {
	// Kind reports the image-map shape attribute value.
	Kind() Kind
	// Coords returns the comma-joinable coordinate list in serialization
	// order: x1,y1,x2,y2 for rectangles and cx,cy,r for circles.
	Coords() []int
	// Label returns the 1-based sequence number used for on-canvas labels.
	Label() int
}

// Rect is an axis-aligned rectangle with X1 <= X2 and Y1 <= Y2.
type Rect struct {
	ID int
	X1 int
	Y1 int
	X2 int
	Y2 int
}

func (r Rect) Kind() Kind    { return KindRect }
func (r Rect) Coords() []int { return []int{r.X1, r.Y1, r.X2, r.Y2} }
func (r Rect) Label() int    { return r.ID }

// Circle is a circle annotation centred at (CX, CY).
type Circle struct {
	ID int
	CX int
	CY int
	R  int
}

func (c Circle) Kind() Kind    { return KindCircle }
func (c Circle) Coords() []int { return []int{c.CX, c.CY, c.R} }
func (c Circle) Label() int    { return c.ID }

// CropRect is the single pending crop selection. X/Y/W/H are native-space
// integers with a top-left origin; the Draw fields mirror the selection in
// canvas space so it can be rendered without re-projecting.
type CropRect struct {
	X int
	Y int
	W int
	H int

	DrawX float64
	DrawY float64
	DrawW float64
	DrawH float64
}
