// Package geom provides the small value types used by the tesseract pipeline.
//
//   - [Vector4]: a point in 4D space
//   - [Vector3]: the intermediate result of the first perspective stage
//   - [ScreenPoint]: a point in pixel space
//   - [Matrix4]: a 4×4 transform applied with the row-vector convention
//   - [Plane]: one of the six 4D rotation planes
//   - [Rect] and [ClipSegment]: pixel-space clipping for line drawing
//
// # Rotations
//
// A 4D rotation happens in a plane spanned by two axes while the other two
// axes stay fixed. [PlaneRotation] builds one such transform and [Compose]
// chains several of them left to right:
//
//	m := geom.Compose(geom.PlaneRotation(geom.ZW, a), geom.PlaneRotation(geom.XW, b))
//	rotated := geom.Apply(m, vertices)
//
// Composition is not commutative; ZW then XW differs from XW then ZW.
package geom
