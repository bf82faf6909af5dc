package slot

import "testing"

func mustSlot(t *testing.T, dlX, dlY, urX, urY int, cap ResourceVector) *Slot {
	t.Helper()
	s, err := New(dlX, dlY, urX, urY, cap)
	if err != nil {
		t.Fatalf("New(%d,%d,%d,%d) unexpected error: %v", dlX, dlY, urX, urY, err)
	}
	return s
}

func TestNew_RejectsDegenerateRectangle(t *testing.T) {
	cases := []struct {
		name                   string
		dlX, dlY, urX, urY int
	}{
		{"zero width", 0, 0, 0, 4},
		{"zero height", 0, 0, 4, 0},
		{"inverted x", 4, 0, 0, 4},
		{"inverted y", 0, 4, 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.dlX, tc.dlY, tc.urX, tc.urY, nil); err != ErrInvalidRectangle {
				t.Errorf("New(%d,%d,%d,%d) error = %v; want %v", tc.dlX, tc.dlY, tc.urX, tc.urY, err, ErrInvalidRectangle)
			}
		})
	}
}

func TestContainsChildSlot(t *testing.T) {
	parent := mustSlot(t, 0, 0, 8, 8, nil)
	child := mustSlot(t, 2, 2, 4, 4, nil)
	sibling := mustSlot(t, 6, 6, 9, 9, nil)

	if !parent.ContainsChildSlot(child) {
		t.Errorf("expected parent to contain child")
	}
	if !parent.ContainsChildSlot(parent) {
		t.Errorf("a slot must contain itself")
	}
	if parent.ContainsChildSlot(sibling) {
		t.Errorf("sibling extends outside parent; should not be contained")
	}
	if child.ContainsChildSlot(parent) {
		t.Errorf("child must not contain its ancestor")
	}
}

func TestResourceVector_AddAndScale(t *testing.T) {
	a := ResourceVector{LUT: 100, FF: 200}
	b := ResourceVector{LUT: 50, BRAM: 10}

	sum := a.Add(b)
	if sum.Get(LUT) != 150 || sum.Get(FF) != 200 || sum.Get(BRAM) != 10 || sum.Get(DSP) != 0 {
		t.Errorf("Add produced unexpected vector: %v", sum)
	}

	scaled := a.Scale(0.5)
	if scaled.Get(LUT) != 50 || scaled.Get(FF) != 100 {
		t.Errorf("Scale(0.5) produced unexpected vector: %v", scaled)
	}
}

func TestSlotEqual(t *testing.T) {
	s1 := mustSlot(t, 0, 0, 4, 4, nil)
	s2 := mustSlot(t, 0, 0, 4, 4, ResourceVector{LUT: 1})
	s3 := mustSlot(t, 0, 0, 4, 5, nil)

	if !s1.Equal(s2) {
		t.Errorf("slots with identical coordinates but different capacity should compare equal")
	}
	if s1.Equal(s3) {
		t.Errorf("slots with different coordinates should not compare equal")
	}
}
