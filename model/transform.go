package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// TransformationMatrix represents the 3x3 homogeneous transformation matrix
// used by PDF content streams:
//
//	[ A B r1 ]
//	[ C D r2 ]
//	[ E F r3 ]
//
// (A, C, E) is column 0, (B, D, F) is column 1. The third column is (0, 0, 1)
// for every affine PDF transform and is retained only for composition with
// non-affine matrices. The matrix is an immutable value; every operation
// returns a new matrix.
type TransformationMatrix struct {
	A, B, C, D, E, F decimal.Decimal

	row1, row2, row3 decimal.Decimal
}

// Identity returns the identity matrix
func Identity() TransformationMatrix {
	one := decimal.NewFromInt(1)
	return TransformationMatrix{A: one, D: one, row3: one}
}

// NewTransformationMatrix creates a matrix from all nine entries in the
// layout A, B, r1 / C, D, r2 / E, F, r3.
func NewTransformationMatrix(a, b, row1, c, d, row2, e, f, row3 decimal.Decimal) TransformationMatrix {
	return TransformationMatrix{
		A: a, B: b, row1: row1,
		C: c, D: d, row2: row2,
		E: e, F: f, row3: row3,
	}
}

// NewMatrix creates a matrix from the canonical PDF 6-tuple (a, b, c, d, e, f).
// The third column is (0, 0, 1).
func NewMatrix(a, b, c, d, e, f decimal.Decimal) TransformationMatrix {
	return TransformationMatrix{
		A: a, B: b,
		C: c, D: d,
		E: e, F: f,
		row3: decimal.NewFromInt(1),
	}
}

// NewMatrixNoTranslation creates a matrix from the linear part (a, b, c, d)
// with zero translation.
func NewMatrixNoTranslation(a, b, c, d decimal.Decimal) TransformationMatrix {
	return NewMatrix(a, b, c, d, decimal.Zero, decimal.Zero)
}

// NewMatrixFromArray creates a matrix from 9, 6 or 4 values, interpreted as
// the full matrix, the PDF 6-tuple, or the linear part respectively.
func NewMatrixFromArray(values []decimal.Decimal) (TransformationMatrix, error) {
	switch len(values) {
	case 9:
		return NewTransformationMatrix(
			values[0], values[1], values[2],
			values[3], values[4], values[5],
			values[6], values[7], values[8]), nil
	case 6:
		return NewMatrix(values[0], values[1], values[2], values[3], values[4], values[5]), nil
	case 4:
		return NewMatrixNoTranslation(values[0], values[1], values[2], values[3]), nil
	default:
		return TransformationMatrix{}, fmt.Errorf("matrix: need 4, 6 or 9 values, got %d", len(values))
	}
}

// Translation returns the identity matrix with translation (x, y)
func Translation(x, y decimal.Decimal) TransformationMatrix {
	m := Identity()
	m.E = x
	m.F = y
	return m
}

// At returns the entry at the given row and column, in the layout
// A, B, r1 / C, D, r2 / E, F, r3. It panics when row or col is outside [0, 3).
func (m TransformationMatrix) At(row, col int) decimal.Decimal {
	if row < 0 || row >= 3 {
		panic(fmt.Sprintf("matrix: row index %d out of range [0, 3)", row))
	}
	if col < 0 || col >= 3 {
		panic(fmt.Sprintf("matrix: column index %d out of range [0, 3)", col))
	}
	switch row*3 + col {
	case 0:
		return m.A
	case 1:
		return m.B
	case 2:
		return m.row1
	case 3:
		return m.C
	case 4:
		return m.D
	case 5:
		return m.row2
	case 6:
		return m.E
	case 7:
		return m.F
	default:
		return m.row3
	}
}

// Transform maps a point through the matrix:
// (A*x + C*y + E, B*x + D*y + F).
func (m TransformationMatrix) Transform(p Point) Point {
	return Point{
		X: m.A.Mul(p.X).Add(m.C.Mul(p.Y)).Add(m.E),
		Y: m.B.Mul(p.X).Add(m.D.Mul(p.Y)).Add(m.F),
	}
}

// TransformVector maps a vector through the matrix using the same formula as
// Transform, translation included. Mathematically a direction should be
// invariant under translation; the translation terms are kept for
// compatibility with existing consumers.
func (m TransformationMatrix) TransformVector(v Vector) Vector {
	return Vector{
		X: m.A.Mul(v.X).Add(m.C.Mul(v.Y)).Add(m.E),
		Y: m.B.Mul(v.X).Add(m.D.Mul(v.Y)).Add(m.F),
	}
}

// TransformRectangle transforms all four corners independently and rebuilds
// the rectangle from them
func (m TransformationMatrix) TransformRectangle(r Rectangle) Rectangle {
	return NewRectangleFromCorners(
		m.Transform(r.TopLeft),
		m.Transform(r.TopRight),
		m.Transform(r.BottomLeft),
		m.Transform(r.BottomRight),
	)
}

// TransformX maps a horizontal coordinate through the matrix with y = 0
func (m TransformationMatrix) TransformX(x decimal.Decimal) decimal.Decimal {
	return m.A.Mul(x).Add(m.E)
}

// Translate returns a copy of the matrix translated by (x, y). Only the
// bottom row changes:
//
//	E' = x*A + y*C + E
//	F' = x*B + y*D + F
//	r3' = x*r1 + y*r2 + r3
func (m TransformationMatrix) Translate(x, y decimal.Decimal) TransformationMatrix {
	out := m
	out.E = x.Mul(m.A).Add(y.Mul(m.C)).Add(m.E)
	out.F = x.Mul(m.B).Add(y.Mul(m.D)).Add(m.F)
	out.row3 = x.Mul(m.row1).Add(y.Mul(m.row2)).Add(m.row3)
	return out
}

// Multiply returns the matrix product m * other
func (m TransformationMatrix) Multiply(other TransformationMatrix) TransformationMatrix {
	var out [9]decimal.Decimal
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sum := decimal.Zero
			for k := 0; k < 3; k++ {
				sum = sum.Add(m.At(row, k).Mul(other.At(k, col)))
			}
			out[row*3+col] = sum
		}
	}
	return NewTransformationMatrix(
		out[0], out[1], out[2],
		out[3], out[4], out[5],
		out[6], out[7], out[8])
}

// MultiplyScalar returns the matrix with every entry multiplied by s
func (m TransformationMatrix) MultiplyScalar(s decimal.Decimal) TransformationMatrix {
	return NewTransformationMatrix(
		m.A.Mul(s), m.B.Mul(s), m.row1.Mul(s),
		m.C.Mul(s), m.D.Mul(s), m.row2.Mul(s),
		m.E.Mul(s), m.F.Mul(s), m.row3.Mul(s))
}

// ScalingFactorX returns the horizontal scaling factor. For a matrix without
// rotation or shear (B == 0 and C == 0) this is A, sign included. Otherwise
// the matrix is treated as a rotation followed by a scale, giving
// sqrt(A^2 + B^2) as a non-negative magnitude; the square root is computed
// in float64 and converted back.
func (m TransformationMatrix) ScalingFactorX() decimal.Decimal {
	if m.B.IsZero() && m.C.IsZero() {
		return m.A
	}
	a := m.A.InexactFloat64()
	b := m.B.InexactFloat64()
	return decimal.NewFromFloat(math.Sqrt(a*a + b*b))
}

// Equal reports whether all nine entries are exactly equal
func (m TransformationMatrix) Equal(other TransformationMatrix) bool {
	return m.A.Equal(other.A) && m.B.Equal(other.B) && m.row1.Equal(other.row1) &&
		m.C.Equal(other.C) && m.D.Equal(other.D) && m.row2.Equal(other.row2) &&
		m.E.Equal(other.E) && m.F.Equal(other.F) && m.row3.Equal(other.row3)
}

func (m TransformationMatrix) String() string {
	return fmt.Sprintf("%s, %s, %s\r\n%s, %s, %s\r\n%s, %s, %s",
		m.A, m.B, m.row1,
		m.C, m.D, m.row2,
		m.E, m.F, m.row3)
}
