package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 || r.Bottom() != 25 {
		t.Fatalf("edges = (%d, %d), want (25, 25)", r.Right(), r.Bottom())
	}

	tests := []struct {
		x, y int
		want bool
	}{
		{5, 10, true},
		{24, 24, true},
		{25, 10, false}, // right edge is exclusive
		{5, 25, false},
		{4, 12, false},
		{10, 9, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b RectF
		want bool
	}{
		{"bullet inside enemy", NewRectF(10, 10, 5, 10), NewRectF(5, 5, 30, 30), true},
		{"touching edges", NewRectF(0, 0, 10, 10), NewRectF(10, 0, 10, 10), false},
		{"touching rows", NewRectF(0, 0, 10, 10), NewRectF(0, 10, 10, 10), false},
		{"fractional overlap", NewRectF(0, 0, 10.5, 10), NewRectF(10, 0, 10, 10), true},
		{"far apart", NewRectF(0, 0, 5, 5), NewRectF(100, 100, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("a.Intersects(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("b.Intersects(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	paddle := NewRectF(350, 580, 100, 10)
	if paddle.Right() != 450 {
		t.Errorf("Right() = %v, want 450", paddle.Right())
	}
	if paddle.Bottom() != 590 {
		t.Errorf("Bottom() = %v, want 590", paddle.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5.5, 0, 10, 5.5},
		{-5.5, 0, 10, 0},
		{15.5, 0, 10, 10},
		{700, 0, 700, 700},
	}
	for _, tt := range tests {
		if got := ClampF(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
