package shapes

// Minimum native-space sizes for committed shapes. Drags below these are
// treated as accidental micro-drags and dropped without error.
const (
	MinRectSpan     = 5
	MinCircleRadius = 5
	MinCropSpan     = 10
)

// Store is the ordered collection of committed annotation shapes. Insertion
// order is stable and determines the 1-based label used in generated alt text.
type Store struct {
	shapes []Shape
	nextID int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// AddRect normalizes the corner order and commits a rectangle. It reports
// false without storing anything when either native span is below
// MinRectSpan.
func (s *Store) AddRect(x1, y1, x2, y2 int) (Rect, bool) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if x2-x1 < MinRectSpan || y2-y1 < MinRectSpan {
		return Rect{}, false
	}
	r := Rect{ID: s.nextID, X1: x1, Y1: y1, X2: x2, Y2: y2}
	s.shapes = append(s.shapes, r)
	s.nextID++
	return r, true
}

// AddCircle commits a circle annotation. It reports false without storing
// anything when the native radius is below MinCircleRadius.
func (s *Store) AddCircle(cx, cy, r int) (Circle, bool) {
	if r < MinCircleRadius {
		return Circle{}, false
	}
	c := Circle{ID: s.nextID, CX: cx, CY: cy, R: r}
	s.shapes = append(s.shapes, c)
	s.nextID++
	return c, true
}

// Clear removes all shapes. Calling it on an empty store is a no-op.
func (s *Store) Clear() {
	s.shapes = nil
	s.nextID = 1
}

// List returns the committed shapes in insertion order.
func (s *Store) List() []Shape {
	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Len reports the number of committed shapes.
func (s *Store) Len() int { return len(s.shapes) }
