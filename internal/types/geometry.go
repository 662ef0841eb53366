package types

import (
	"fmt"
	"math"
)

// Point represents a 2D screen coordinate.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// MinPoint returns the sentinel "no known position" point. It sorts before
// every real screen position on both axes.
func MinPoint() Point {
	return Point{X: math.MinInt32, Y: math.MinInt32}
}

// String returns a compact "(x, y)" representation.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rect represents pixel bounds on screen.
type Rect struct {
	X      int `yaml:"x" json:"x"`
	Y      int `yaml:"y" json:"y"`
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Center returns the center point of the rect.
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// ContainsPoint checks whether a point is inside the rect. Edges follow the
// half-open convention: the left/top edges are inside, right/bottom are not,
// so adjacent monitors never both claim a shared edge.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X < r.Right() &&
		p.Y >= r.Y && p.Y < r.Bottom()
}

// DistanceToPoint returns the Euclidean distance from the point to the
// nearest edge or corner of the rect. A point inside the rect has
// distance zero.
func (r Rect) DistanceToPoint(p Point) float64 {
	dx := 0
	if p.X < r.X {
		dx = r.X - p.X
	} else if p.X > r.Right() {
		dx = p.X - r.Right()
	}

	dy := 0
	if p.Y < r.Y {
		dy = r.Y - p.Y
	} else if p.Y > r.Bottom() {
		dy = p.Y - r.Bottom()
	}

	return math.Sqrt(float64(dx*dx + dy*dy))
}

// TopLeft returns the rect's top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// String returns a compact "WxH @ (x, y)" representation.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d @ (%d, %d)", r.Width, r.Height, r.X, r.Y)
}
