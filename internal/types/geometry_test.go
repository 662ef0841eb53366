package types

import (
	"math"
	"testing"
)

func TestRectContainsPoint(t *testing.T) {
	r := Rect{X: 100, Y: 100, Width: 200, Height: 100}

	tests := []struct {
		point    Point
		expected bool
	}{
		{Point{X: 100, Y: 100}, true},  // top-left edge is inside
		{Point{X: 299, Y: 199}, true},  // last inside pixel
		{Point{X: 300, Y: 150}, false}, // right edge is outside
		{Point{X: 150, Y: 200}, false}, // bottom edge is outside
		{Point{X: 99, Y: 150}, false},
		{Point{X: 150, Y: 150}, true},
	}

	for _, tt := range tests {
		if got := r.ContainsPoint(tt.point); got != tt.expected {
			t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.expected)
		}
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 200, Height: 200}
	center := r.Center()
	if center.X != 100 || center.Y != 100 {
		t.Errorf("expected (100, 100), got %v", center)
	}
}

func TestRectDistanceToPoint(t *testing.T) {
	r := Rect{X: 100, Y: 100, Width: 100, Height: 100}

	// Inside: zero distance.
	if d := r.DistanceToPoint(Point{X: 150, Y: 150}); d != 0 {
		t.Errorf("expected 0 for an inside point, got %f", d)
	}

	// Directly left of the rect.
	if d := r.DistanceToPoint(Point{X: 90, Y: 150}); d != 10 {
		t.Errorf("expected 10, got %f", d)
	}

	// Diagonal from the top-left corner: 3-4-5 triangle.
	if d := r.DistanceToPoint(Point{X: 97, Y: 96}); d != 5 {
		t.Errorf("expected 5, got %f", d)
	}
}

func TestMinPointSortsFirst(t *testing.T) {
	min := MinPoint()
	if min.X != math.MinInt32 || min.Y != math.MinInt32 {
		t.Fatalf("unexpected sentinel: %v", min)
	}
	real := Point{X: -100000, Y: -100000}
	if !(min.X < real.X && min.Y < real.Y) {
		t.Error("sentinel should sort before all real positions")
	}
}

func TestDirectionInverse(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Direction
	}{
		{DirLeft, DirRight},
		{DirRight, DirLeft},
		{DirUp, DirDown},
		{DirDown, DirUp},
	}
	for _, tt := range tests {
		if got := tt.dir.Inverse(); got != tt.expected {
			t.Errorf("%s.Inverse() = %s, want %s", tt.dir, got, tt.expected)
		}
	}
}

func TestDirectionAxis(t *testing.T) {
	if DirLeft.Axis() != TilingHorizontal || DirRight.Axis() != TilingHorizontal {
		t.Error("left/right should map to horizontal")
	}
	if DirUp.Axis() != TilingVertical || DirDown.Axis() != TilingVertical {
		t.Error("up/down should map to vertical")
	}
}

func TestTilingDirectionInverse(t *testing.T) {
	if TilingHorizontal.Inverse() != TilingVertical {
		t.Error("expected vertical")
	}
	if TilingVertical.Inverse() != TilingHorizontal {
		t.Error("expected horizontal")
	}
}

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection("left"); !ok || d != DirLeft {
		t.Errorf("ParseDirection(left) = %v, %v", d, ok)
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("expected parse failure")
	}
}
