// Package vect provides 2D and 3D Euclidean vector types for Go.
//
// Vect is a pure computation library with game-engine-style ergonomics:
// two double-precision value types, Vector2 and Vector3, sharing one
// capability contract (the generic Vector interface) that covers the
// standard vector-algebra surface — addition, scaling, dot product,
// normalization, interpolation, projection and reflection — plus the
// 3D-only cross product and spherical interpolation.
//
// # Quick Start
//
//	v := vect.NewVector2(3, 4)
//	v.Magnitude()               // 5
//	v.Normalized()              // Vector2{0.6, 0.8}
//	v.Reflect(vect.Vector2Up()) // Vector2{3, -4}
//
//	a := vect.NewVector3(3, -3, 1)
//	b := vect.NewVector3(4, 9, 2)
//	a.Cross(b)                  // Vector3{-15, -2, 39}
//
// # Value Semantics
//
// Both types are plain value types. Operations return new values and never
// mutate their operands; the mutating counterparts are explicitly named
// (AddInPlace, Normalize, ...) and take pointer receivers. Copies are cheap
// and every operation is safe to call concurrently without coordination.
//
// # Degenerate Inputs
//
// There is no error type. Degenerate inputs degrade to NaN or ±Inf under
// ordinary IEEE-754 arithmetic instead of panicking:
//
//	vect.Vector2{}.Normalized()       // Vector2{NaN, NaN}
//	v.Angle(vect.Vector2{})           // NaN
//	v.MoveTowards(v, 1)               // Vector2{NaN, NaN}
//
// Callers that care must validate inputs (non-zero vectors, unit-length
// normals) before the call.
//
// # Key Features
//
//   - One capability contract, two conforming types
//   - Unity-style operation surface (Lerp, Slerp, MoveTowards, ClampMagnitude)
//   - Named axis and infinity constructors
//   - Lossless Vector2 -> Vector3 widening, lossy narrowing back
//   - No dependencies outside the test suite
package vect
