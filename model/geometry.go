package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Point represents a 2D point in PDF coordinate space
type Point struct {
	X, Y decimal.Decimal
}

// NewPoint creates a point from decimal coordinates
func NewPoint(x, y decimal.Decimal) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Equal reports whether both coordinates are exactly equal
func (p Point) Equal(other Point) bool {
	return p.X.Equal(other.X) && p.Y.Equal(other.Y)
}

// Vector represents a 2D displacement
type Vector struct {
	X, Y decimal.Decimal
}

// NewVector creates a vector from decimal components
func NewVector(x, y decimal.Decimal) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%s, %s)", v.X, v.Y)
}

// Line represents a line segment between two points
type Line struct {
	Point1, Point2 Point
}

// NewLine creates a line segment between two points
func NewLine(p1, p2 Point) Line {
	return Line{Point1: p1, Point2: p2}
}

// Length returns the Euclidean length of the segment
func (l Line) Length() float64 {
	return Euclidean(l.Point1, l.Point2)
}

// Rectangle represents an axis-aligned rectangle stored as its four corners.
// The derived edge accessors use PDF's bottom-origin convention, so
// Left <= Right and Bottom <= Top regardless of corner order.
type Rectangle struct {
	TopLeft     Point
	TopRight    Point
	BottomLeft  Point
	BottomRight Point
}

// NewRectangle creates a rectangle from its bottom-left and top-right corners
func NewRectangle(bottomLeft, topRight Point) Rectangle {
	return Rectangle{
		TopLeft:     Point{X: bottomLeft.X, Y: topRight.Y},
		TopRight:    topRight,
		BottomLeft:  bottomLeft,
		BottomRight: Point{X: topRight.X, Y: bottomLeft.Y},
	}
}

// NewRectangleFromCorners creates a rectangle from four explicit corners.
// The corners are kept as given; the edge accessors re-derive the
// axis-aligned extent.
func NewRectangleFromCorners(topLeft, topRight, bottomLeft, bottomRight Point) Rectangle {
	return Rectangle{
		TopLeft:     topLeft,
		TopRight:    topRight,
		BottomLeft:  bottomLeft,
		BottomRight: bottomRight,
	}
}

// Left returns the left edge X coordinate
func (r Rectangle) Left() decimal.Decimal {
	return decimal.Min(r.BottomLeft.X, r.TopLeft.X, r.BottomRight.X, r.TopRight.X)
}

// Right returns the right edge X coordinate
func (r Rectangle) Right() decimal.Decimal {
	return decimal.Max(r.BottomRight.X, r.TopRight.X, r.BottomLeft.X, r.TopLeft.X)
}

// Bottom returns the bottom edge Y coordinate
func (r Rectangle) Bottom() decimal.Decimal {
	return decimal.Min(r.BottomLeft.Y, r.BottomRight.Y, r.TopLeft.Y, r.TopRight.Y)
}

// Top returns the top edge Y coordinate
func (r Rectangle) Top() decimal.Decimal {
	return decimal.Max(r.TopLeft.Y, r.TopRight.Y, r.BottomLeft.Y, r.BottomRight.Y)
}

// Width returns the horizontal extent
func (r Rectangle) Width() decimal.Decimal {
	return r.Right().Sub(r.Left())
}

// Height returns the vertical extent
func (r Rectangle) Height() decimal.Decimal {
	return r.Top().Sub(r.Bottom())
}

// Centroid returns the center point of the axis-aligned extent
func (r Rectangle) Centroid() Point {
	two := decimal.NewFromInt(2)
	return Point{
		X: r.Left().Add(r.Right()).Div(two),
		Y: r.Bottom().Add(r.Top()).Div(two),
	}
}

// Union returns the smallest axis-aligned rectangle covering both rectangles
func (r Rectangle) Union(other Rectangle) Rectangle {
	return NewRectangle(
		Point{X: decimal.Min(r.Left(), other.Left()), Y: decimal.Min(r.Bottom(), other.Bottom())},
		Point{X: decimal.Max(r.Right(), other.Right()), Y: decimal.Max(r.Top(), other.Top())},
	)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("[%s, %s, %s, %s]", r.Left(), r.Bottom(), r.Right(), r.Top())
}
