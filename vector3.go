package vect

import "math"

// Vector3 is an ordered triple of double-precision components. The zero
// value is the additive identity.
type Vector3 struct {
	X, Y, Z Scalar
}

// NewVector3 creates a new Vector3 from its components.
func NewVector3(x, y, z Scalar) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Up is shorthand for Vector3{X: 0, Y: 1, Z: 0}.
func Vector3Up() Vector3 { return Vector3{Y: 1} }

// Vector3Down is shorthand for Vector3{X: 0, Y: -1, Z: 0}.
func Vector3Down() Vector3 { return Vector3{Y: -1} }

// Vector3Left is shorthand for Vector3{X: -1, Y: 0, Z: 0}.
func Vector3Left() Vector3 { return Vector3{X: -1} }

// Vector3Right is shorthand for Vector3{X: 1, Y: 0, Z: 0}.
func Vector3Right() Vector3 { return Vector3{X: 1} }

// Vector3Forward is shorthand for Vector3{X: 0, Y: 0, Z: 1}.
func Vector3Forward() Vector3 { return Vector3{Z: 1} }

// Vector3Back is shorthand for Vector3{X: 0, Y: 0, Z: -1}.
func Vector3Back() Vector3 { return Vector3{Z: -1} }

// Vector2 narrows v to two dimensions, discarding the Z component.
func (v Vector3) Vector2() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Mul returns v scaled by s. Scalar multiplication commutes, so this also
// covers the scalar-on-left form s * v.
func (v Vector3) Mul(s Scalar) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns v divided by s.
func (v Vector3) Div(s Scalar) Vector3 {
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// RDiv returns s divided component-wise by v: Vector3{s/v.X, s/v.Y, s/v.Z}.
// This is the scalar-on-left division s / v.
func (v Vector3) RDiv(s Scalar) Vector3 {
	return Vector3{X: s / v.X, Y: s / v.Y, Z: s / v.Z}
}

// AddInPlace adds o to v.
func (v *Vector3) AddInPlace(o Vector3) { *v = v.Add(o) }

// SubInPlace subtracts o from v.
func (v *Vector3) SubInPlace(o Vector3) { *v = v.Sub(o) }

// MulInPlace scales v by s.
func (v *Vector3) MulInPlace(s Scalar) { *v = v.Mul(s) }

// DivInPlace divides v by s.
func (v *Vector3) DivInPlace(s Scalar) { *v = v.Div(s) }

// ScaleInPlace multiplies v component-wise by o.
func (v *Vector3) ScaleInPlace(o Vector3) { *v = v.Scale(o) }

// Magnitude returns the Euclidean norm of v. It never fails: a NaN
// component yields NaN, an infinite component yields +Inf.
func (v Vector3) Magnitude() Scalar {
	return math.Sqrt(v.SqrMagnitude())
}

// SqrMagnitude returns the squared Euclidean norm of v.
func (v Vector3) SqrMagnitude() Scalar {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the Euclidean distance between v and o.
func (v Vector3) Distance(o Vector3) Scalar {
	return v.Sub(o).Magnitude()
}

// Normalized returns v scaled to magnitude 1. The division is not guarded:
// normalizing the zero vector yields NaN components.
func (v Vector3) Normalized() Vector3 {
	return v.Div(v.Magnitude())
}

// Normalize overwrites v with its normalized value.
func (v *Vector3) Normalize() { *v = v.Normalized() }

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) Scalar {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o. It is anti-commutative and
// zero when v and o are parallel.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Angle returns the angle between v and o in radians, in [0, π]. The result
// is NaN when either vector has zero length, or when rounding pushes the
// cosine slightly outside the acos domain.
func (v Vector3) Angle(o Vector3) Scalar {
	return math.Acos(v.Dot(o) / (v.Magnitude() * o.Magnitude()))
}

// Scale returns the Hadamard (component-wise) product of v and o.
func (v Vector3) Scale(o Vector3) Vector3 {
	return Vector3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// ClampMagnitude returns a copy of v with its magnitude clamped to maxLen,
// preserving direction. Vectors no longer than maxLen are returned
// unchanged.
func (v Vector3) ClampMagnitude(maxLen Scalar) Vector3 {
	if mag := v.Magnitude(); mag > maxLen {
		return v.Mul(maxLen / mag)
	}
	return v
}

// Lerp linearly interpolates between v and o with t clamped to [0, 1]:
// t <= 0 returns v exactly, t >= 1 returns o exactly.
func (v Vector3) Lerp(o Vector3, t Scalar) Vector3 {
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
func (v Vector3) LerpUnclamped(o Vector3, t Scalar) Vector3 {
	return v.Mul(1 - t).Add(o.Mul(t))
}

// Slerp spherically interpolates between v and o, which are expected to be
// unit vectors. t is clamped to [0, 1]: t <= 0 returns v exactly, t >= 1
// returns o exactly.
func (v Vector3) Slerp(o Vector3, t Scalar) Vector3 {
	switch {
	case t <= 0:
		return v
	case t >= 1:
		return o
	default:
		return v.SlerpUnclamped(o, t)
	}
}

// SlerpUnclamped spherically interpolates between the unit vectors v and o
// without clamping t. With ω = acos(v·o) the result is
//
//	sin((1-t)·ω)/sin(ω) · v + sin(t·ω)/sin(ω) · o
//
// which degenerates to NaN when v and o coincide and blows up when they are
// antiparallel, since sin(ω) vanishes at ω = 0 and ω = π.
func (v Vector3) SlerpUnclamped(o Vector3, t Scalar) Vector3 {
	omega := math.Acos(v.Dot(o))
	sinOmega := math.Sin(omega)

	lhs := v.Mul(math.Sin((1 - t) * omega) / sinOmega)
	rhs := o.Mul(math.Sin(t*omega) / sinOmega)

	return lhs.Add(rhs)
}

// MoveTowards steps from v towards target by maxDistanceDelta. The step is
// not clamped to the remaining distance: a larger delta overshoots the
// target and a negative delta moves away from it. When v equals target the
// internal division by zero yields NaN components.
func (v Vector3) MoveTowards(target Vector3, maxDistanceDelta Scalar) Vector3 {
	fraction := maxDistanceDelta / v.Distance(target)
	return v.LerpUnclamped(target, fraction)
}

// Reflect mirrors v across the plane described by normal, computing
// v - 2·(v·n)·n. The normal must have unit length; it is not normalized
// internally and a non-unit normal gives incorrect results.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// Project projects v onto o. The result has NaN components when o is the
// zero vector.
func (v Vector3) Project(o Vector3) Vector3 {
	return o.Mul(v.Dot(o) / o.Dot(o))
}

// Max returns v when v is lexicographically greater than or equal to o,
// otherwise o. Comparisons involving NaN are undecided and fall through
// to o.
func (v Vector3) Max(o Vector3) Vector3 {
	if v.GreaterEq(o) {
		return v
	}
	return o
}

// Min returns v when v is lexicographically less than or equal to o,
// otherwise o. Comparisons involving NaN are undecided and fall through
// to o.
func (v Vector3) Min(o Vector3) Vector3 {
	if v.LessEq(o) {
		return v
	}
	return o
}

// Equal reports whether v and o have exactly equal components. NaN
// components compare unequal to everything, including themselves.
func (v Vector3) Equal(o Vector3) bool {
	return v == o
}

// LessEq reports whether v precedes or equals o in the lexicographic
// component order. The order is partial: any comparison involving NaN is
// false.
func (v Vector3) LessEq(o Vector3) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.Z <= o.Z
}

// GreaterEq reports whether v follows or equals o in the lexicographic
// component order. The order is partial: any comparison involving NaN is
// false.
func (v Vector3) GreaterEq(o Vector3) bool {
	if v.X != o.X {
		return v.X > o.X
	}
	if v.Y != o.Y {
		return v.Y > o.Y
	}
	return v.Z >= o.Z
}
