package vect

import "math"

// Vector2 is an ordered pair of double-precision components. The zero value
// is the additive identity.
type Vector2 struct {
	X, Y Scalar
}

// NewVector2 creates a new Vector2 from its components.
func NewVector2(x, y Scalar) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2FromArray creates a new Vector2 from a fixed-size array.
func Vector2FromArray(a [2]Scalar) Vector2 {
	return Vector2{X: a[0], Y: a[1]}
}

// Vector2Up is shorthand for Vector2{X: 0, Y: 1}.
func Vector2Up() Vector2 { return Vector2{Y: 1} }

// Vector2Down is shorthand for Vector2{X: 0, Y: -1}.
func Vector2Down() Vector2 { return Vector2{Y: -1} }

// Vector2Left is shorthand for Vector2{X: -1, Y: 0}.
func Vector2Left() Vector2 { return Vector2{X: -1} }

// Vector2Right is shorthand for Vector2{X: 1, Y: 0}.
func Vector2Right() Vector2 { return Vector2{X: 1} }

// Vector2PositiveInfinity returns a vector with both components at +Inf.
func Vector2PositiveInfinity() Vector2 {
	return Vector2{X: math.Inf(1), Y: math.Inf(1)}
}

// Vector2NegativeInfinity returns a vector with both components at -Inf.
func Vector2NegativeInfinity() Vector2 {
	return Vector2{X: math.Inf(-1), Y: math.Inf(-1)}
}

// Array returns the components as a fixed-size array.
func (v Vector2) Array() [2]Scalar { return [2]Scalar{v.X, v.Y} }

// XY returns the components as a pair.
func (v Vector2) XY() (x, y Scalar) { return v.X, v.Y }

// Vector3 widens v to three dimensions with Z = 0. Narrowing back via
// Vector3.Vector2 recovers v exactly.
func (v Vector2) Vector3() Vector3 {
	return Vector3{X: v.X, Y: v.Y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns v scaled by s. Scalar multiplication commutes, so this also
// covers the scalar-on-left form s * v.
func (v Vector2) Mul(s Scalar) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div returns v divided by s.
func (v Vector2) Div(s Scalar) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// RDiv returns s divided component-wise by v: Vector2{s/v.X, s/v.Y}.
// This is the scalar-on-left division s / v.
func (v Vector2) RDiv(s Scalar) Vector2 {
	return Vector2{X: s / v.X, Y: s / v.Y}
}

// AddInPlace adds o to v.
func (v *Vector2) AddInPlace(o Vector2) { *v = v.Add(o) }

// SubInPlace subtracts o from v.
func (v *Vector2) SubInPlace(o Vector2) { *v = v.Sub(o) }

// MulInPlace scales v by s.
func (v *Vector2) MulInPlace(s Scalar) { *v = v.Mul(s) }

// DivInPlace divides v by s.
func (v *Vector2) DivInPlace(s Scalar) { *v = v.Div(s) }

// ScaleInPlace multiplies v component-wise by o.
func (v *Vector2) ScaleInPlace(o Vector2) { *v = v.Scale(o) }

// Magnitude returns the Euclidean norm of v. It never fails: a NaN
// component yields NaN, an infinite component yields +Inf.
func (v Vector2) Magnitude() Scalar {
	return math.Sqrt(v.SqrMagnitude())
}

// SqrMagnitude returns the squared Euclidean norm of v.
func (v Vector2) SqrMagnitude() Scalar {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the Euclidean distance between v and o.
func (v Vector2) Distance(o Vector2) Scalar {
	return v.Sub(o).Magnitude()
}

// Normalized returns v scaled to magnitude 1. The division is not guarded:
// normalizing the zero vector yields NaN components.
func (v Vector2) Normalized() Vector2 {
	return v.Div(v.Magnitude())
}

// Normalize overwrites v with its normalized value.
func (v *Vector2) Normalize() { *v = v.Normalized() }

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) Scalar {
	return v.X*o.X + v.Y*o.Y
}

// Angle returns the angle between v and o in radians, in [0, π]. The result
// is NaN when either vector has zero length, or when rounding pushes the
// cosine slightly outside the acos domain.
func (v Vector2) Angle(o Vector2) Scalar {
	return math.Acos(v.Dot(o) / (v.Magnitude() * o.Magnitude()))
}

// Scale returns the Hadamard (component-wise) product of v and o.
func (v Vector2) Scale(o Vector2) Vector2 {
	return Vector2{X: v.X * o.X, Y: v.Y * o.Y}
}

// ClampMagnitude returns a copy of v with its magnitude clamped to maxLen,
// preserving direction. Vectors no longer than maxLen are returned
// unchanged.
func (v Vector2) ClampMagnitude(maxLen Scalar) Vector2 {
	if mag := v.Magnitude(); mag > maxLen {
		return v.Mul(maxLen / mag)
	}
	return v
}

// Lerp linearly interpolates between v and o with t clamped to [0, 1]:
// t <= 0 returns v exactly, t >= 1 returns o exactly.
func (v Vector2) Lerp(o Vector2, t Scalar) Vector2 {
	switch {
	case t <= 0:
		return v
	case t >= 1:
		return o
	default:
		return v.LerpUnclamped(o, t)
	}
}

// LerpUnclamped computes (1-t)·v + t·o without clamping t, extrapolating
// outside [0, 1].
func (v Vector2) LerpUnclamped(o Vector2, t Scalar) Vector2 {
	return v.Mul(1 - t).Add(o.Mul(t))
}

// MoveTowards steps from v towards target by maxDistanceDelta. The step is
// not clamped to the remaining distance: a larger delta overshoots the
// target and a negative delta moves away from it. When v equals target the
// internal division by zero yields NaN components.
func (v Vector2) MoveTowards(target Vector2, maxDistanceDelta Scalar) Vector2 {
	fraction := maxDistanceDelta / v.Distance(target)
	return v.LerpUnclamped(target, fraction)
}

// Reflect mirrors v across the line described by normal, computing
// v - 2·(v·n)·n. The normal must have unit length; it is not normalized
// internally and a non-unit normal gives incorrect results.
func (v Vector2) Reflect(normal Vector2) Vector2 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// Project projects v onto o. The result has NaN components when o is the
// zero vector.
func (v Vector2) Project(o Vector2) Vector2 {
	return o.Mul(v.Dot(o) / o.Dot(o))
}

// Max returns v when v is lexicographically greater than or equal to o,
// otherwise o. Comparisons involving NaN are undecided and fall through
// to o.
func (v Vector2) Max(o Vector2) Vector2 {
	if v.GreaterEq(o) {
		return v
	}
	return o
}

// Min returns v when v is lexicographically less than or equal to o,
// otherwise o. Comparisons involving NaN are undecided and fall through
// to o.
func (v Vector2) Min(o Vector2) Vector2 {
	if v.LessEq(o) {
		return v
	}
	return o
}

// Equal reports whether v and o have exactly equal components. NaN
// components compare unequal to everything, including themselves.
func (v Vector2) Equal(o Vector2) bool {
	return v == o
}

// LessEq reports whether v precedes or equals o in the lexicographic
// component order. The order is partial: any comparison involving NaN is
// false.
func (v Vector2) LessEq(o Vector2) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	return v.Y <= o.Y
}

// GreaterEq reports whether v follows or equals o in the lexicographic
// component order. The order is partial: any comparison involving NaN is
// false.
func (v Vector2) GreaterEq(o Vector2) bool {
	if v.X != o.X {
		return v.X > o.X
	}
	return v.Y >= o.Y
}
