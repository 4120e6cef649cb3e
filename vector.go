package vect

// Scalar is the component type shared by every vector type in this package.
type Scalar = float64

// Vector is the capability contract satisfied by every fixed-dimension
// Euclidean vector type in this package. The type parameter V is the
// implementing type itself, so the surface stays fully typed: Vector2
// methods take and return Vector2, never a boxed interface value.
//
// All operations are pure and return new values. Degenerate inputs
// (zero-length operands, non-unit normals) are not guarded; results degrade
// to NaN or ±Inf per IEEE-754. The mutating variants (AddInPlace,
// Normalize, ...) take pointer receivers and are not part of the contract.
type Vector[V any] interface {
	// Add returns the component-wise sum.
	Add(o V) V
	// Sub returns the component-wise difference.
	Sub(o V) V
	// Mul returns the vector scaled by s.
	Mul(s Scalar) V
	// Div returns the vector divided by s.
	Div(s Scalar) V
	// RDiv returns s divided component-wise by the vector.
	RDiv(s Scalar) V

	// Magnitude returns the Euclidean norm.
	Magnitude() Scalar
	// SqrMagnitude returns the squared norm, avoiding the square root.
	SqrMagnitude() Scalar
	// Distance returns the Euclidean distance to o.
	Distance(o V) Scalar
	// Normalized returns the vector scaled to magnitude 1.
	Normalized() V

	// Dot returns the dot product.
	Dot(o V) Scalar
	// Angle returns the angle to o in radians, in [0, π].
	Angle(o V) Scalar
	// Scale returns the Hadamard (component-wise) product.
	Scale(o V) V
	// ClampMagnitude returns the vector with its magnitude clamped to maxLen.
	ClampMagnitude(maxLen Scalar) V

	// Lerp linearly interpolates towards o with t clamped to [0, 1].
	Lerp(o V, t Scalar) V
	// LerpUnclamped linearly interpolates towards o without clamping t.
	LerpUnclamped(o V, t Scalar) V
	// MoveTowards steps towards target by maxDistanceDelta.
	MoveTowards(target V, maxDistanceDelta Scalar) V

	// Reflect mirrors the vector across the unit-length normal.
	Reflect(normal V) V
	// Project projects the vector onto o.
	Project(o V) V

	// Max returns the lexicographically larger of the two vectors.
	Max(o V) V
	// Min returns the lexicographically smaller of the two vectors.
	Min(o V) V

	// Equal reports exact component equality.
	Equal(o V) bool
	// LessEq reports whether the vector precedes or equals o in the
	// lexicographic component order.
	LessEq(o V) bool
	// GreaterEq reports whether the vector follows or equals o in the
	// lexicographic component order.
	GreaterEq(o V) bool
}

var (
	_ Vector[Vector2] = Vector2{}
	_ Vector[Vector3] = Vector3{}
)
