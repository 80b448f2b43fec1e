package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 4, true},
		{"last cell", 5, 4, true},
		{"right edge excluded", 6, 4, false},
		{"bottom edge excluded", 4, 5, false},
		{"left of rect", 1, 3, false},
		{"above rect", 2, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(1, 2, 10, 5)
	if r.Right() != 11 {
		t.Errorf("Right() = %d, expected 11", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}
}

func TestRectCenterIn(t *testing.T) {
	tests := []struct {
		name     string
		inner    Rect
		outer    Rect
		expected Rect
	}{
		{"even fit", NewRect(0, 0, 4, 2), NewRect(0, 0, 10, 6), NewRect(3, 2, 4, 2)},
		{"odd slack rounds down", NewRect(0, 0, 3, 3), NewRect(0, 0, 10, 10), NewRect(3, 3, 3, 3)},
		{"offset outer", NewRect(5, 5, 2, 2), NewRect(10, 20, 6, 4), NewRect(12, 21, 2, 2)},
		{"larger than outer", NewRect(0, 0, 12, 4), NewRect(0, 0, 10, 4), NewRect(-1, 0, 12, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.inner.CenterIn(tc.outer); got != tc.expected {
				t.Errorf("CenterIn() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
