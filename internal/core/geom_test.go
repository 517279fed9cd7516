package core

import "testing"

func TestPointArithmetic(t *testing.T) {
	a := P(2, -1)
	b := P(-3, 4)

	if got := a.Add(b); got != P(-1, 3) {
		t.Errorf("Add() = %v, expected (-1,3)", got)
	}
	if got := a.Sub(b); got != P(5, -5) {
		t.Errorf("Sub() = %v, expected (5,-5)", got)
	}
	if got := a.Add(Down); got != P(2, -2) {
		t.Errorf("Add(Down) = %v, expected (2,-2)", got)
	}
	if a.String() != "(2,-1)" {
		t.Errorf("String() = %q, expected (2,-1)", a.String())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 3, 3)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", P(0, 0), true},
		{"top-right cell", P(2, 2), true},
		{"right edge (exclusive)", P(3, 0), false},
		{"top edge (exclusive)", P(0, 3), false},
		{"negative x", P(-1, 0), false},
		{"negative y", P(0, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Top() != 25 {
		t.Errorf("Top() = %d, expected 25", r.Top())
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name     string
		points   []Point
		expected Rect
	}{
		{"empty", nil, Rect{}},
		{"single", []Point{P(1, 1)}, NewRect(1, 1, 1, 1)},
		{"bar", []Point{P(-2, 0), P(-1, 0), P(0, 0), P(1, 0)}, NewRect(-2, 0, 4, 1)},
		{"ell", []Point{P(1, 1), P(-1, 0), P(0, 0), P(1, 0)}, NewRect(-1, 0, 3, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Bounds(tc.points); got != tc.expected {
				t.Errorf("Bounds() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		a, b     Rect
		expected Rect
	}{
		{NewRect(0, 0, 1, 1), NewRect(2, 3, 1, 1), NewRect(0, 0, 3, 4)},
		{NewRect(-2, 0, 4, 1), NewRect(0, 0, 1, 1), NewRect(-2, 0, 4, 1)},
		{Rect{}, NewRect(1, 1, 2, 2), NewRect(1, 1, 2, 2)},
		{NewRect(1, 1, 2, 2), Rect{}, NewRect(1, 1, 2, 2)},
	}

	for _, tt := range tests {
		if got := tt.a.Union(tt.b); got != tt.expected {
			t.Errorf("%+v.Union(%+v) = %+v, expected %+v", tt.a, tt.b, got, tt.expected)
		}
	}
}
