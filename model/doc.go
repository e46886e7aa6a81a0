// Package model provides the geometric and textual primitives shared by the
// page segmentation components.
//
// All coordinates use exact decimal arithmetic ([decimal.Decimal]) because
// PDF coordinate math is decimal, not binary. Only the distance measures,
// the angle computation, and [TransformationMatrix.ScalingFactorX] fall back
// to IEEE-754 floats, where a square root or arc tangent is unavoidable.
//
// # Geometry
//
//   - [Point], [Vector] - immutable 2D coordinates
//   - [Line] - a line segment between two points
//   - [Rectangle] - an axis-aligned rectangle stored as its four corners,
//     using PDF's bottom-origin convention (Bottom <= Top)
//
// # Transformation Matrix
//
// [TransformationMatrix] is the 3x3 homogeneous matrix used by PDF content
// streams, constructed from the canonical 6-tuple (a, b, c, d, e, f):
//
//	m := model.NewMatrix(a, b, c, d, e, f)
//	p2 := m.Transform(p)
//
// # Content
//
// [Letter], [Word], [TextLine] and [TextBlock] represent recognized page
// content. The segmenter consumes words and produces blocks; letters supply
// the glyph dimensions that drive its adaptive gap thresholds.
//
// # Distances
//
// Stateless distance measures ([Euclidean], [Manhattan], ...) and the
// generic nearest-index search [FindIndexNearest] support neighbor lookups
// over arbitrary collections via projection functions.
package model
