package shapes

import "testing"

func TestAddRectNormalizesCorners(t *testing.T) {
	s := NewStore()
	r, ok := s.AddRect(120, 70, 20, 20)
	if !ok {
		t.Fatal("expected rect to commit")
	}
	if r.X1 != 20 || r.Y1 != 20 || r.X2 != 120 || r.Y2 != 70 {
		t.Errorf("unexpected normalized rect: %+v", r)
	}
	if r.X1 > r.X2 || r.Y1 > r.Y2 {
		t.Errorf("corner invariant violated: %+v", r)
	}
}

func TestAddRectThreshold(t *testing.T) {
	cases := []struct {
		name           string
		x1, y1, x2, y2 int
		want           bool
	}{
		{"both spans above", 0, 0, 5, 5, true},
		{"width below", 0, 0, 4, 100, false},
		{"height below", 0, 0, 100, 4, false},
		{"degenerate", 10, 10, 10, 10, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore()
			if _, ok := s.AddRect(tc.x1, tc.y1, tc.x2, tc.y2); ok != tc.want {
				t.Errorf("AddRect(%d,%d,%d,%d) committed=%v, want %v", tc.x1, tc.y1, tc.x2, tc.y2, ok, tc.want)
			}
			if tc.want && s.Len() != 1 {
				t.Errorf("expected 1 stored shape, got %d", s.Len())
			}
			if !tc.want && s.Len() != 0 {
				t.Errorf("discarded drag must not be stored, got %d shapes", s.Len())
			}
		})
	}
}

func TestAddCircleThreshold(t *testing.T) {
	s := NewStore()
	if _, ok := s.AddCircle(50, 50, 4); ok {
		t.Error("radius 4 should be discarded")
	}
	c, ok := s.AddCircle(50, 50, 5)
	if !ok {
		t.Fatal("radius 5 should commit")
	}
	if got := c.Coords(); got[0] != 50 || got[1] != 50 || got[2] != 5 {
		t.Errorf("unexpected circle coords: %v", got)
	}
}

func TestListOrderAndLabels(t *testing.T) {
	s := NewStore()
	s.AddRect(0, 0, 10, 10)
	s.AddCircle(5, 5, 6)
	s.AddRect(1, 1, 20, 20)

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 shapes, got %d", len(list))
	}
	for i, sh := range list {
		if sh.Label() != i+1 {
			t.Errorf("shape %d has label %d", i, sh.Label())
		}
	}
	if list[0].Kind() != KindRect || list[1].Kind() != KindCircle || list[2].Kind() != KindRect {
		t.Errorf("insertion order not preserved: %v %v %v", list[0].Kind(), list[1].Kind(), list[2].Kind())
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.AddRect(0, 0, 10, 10)
	s.Clear()
	if len(s.List()) != 0 {
		t.Error("expected empty list after Clear")
	}
	s.Clear() // idempotent

	r, ok := s.AddRect(0, 0, 10, 10)
	if !ok || r.ID != 1 {
		t.Errorf("labels should restart after Clear, got id %d", r.ID)
	}
}
