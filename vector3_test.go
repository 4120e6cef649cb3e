package vect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector3_Constructors(t *testing.T) {
	assert.Equal(t, Vector3{X: 1, Y: 2, Z: 3}, NewVector3(1, 2, 3))

	assert.Equal(t, Vector3{Y: 1}, Vector3Up())
	assert.Equal(t, Vector3{Y: -1}, Vector3Down())
	assert.Equal(t, Vector3{X: -1}, Vector3Left())
	assert.Equal(t, Vector3{X: 1}, Vector3Right())
	assert.Equal(t, Vector3{Z: 1}, Vector3Forward())
	assert.Equal(t, Vector3{Z: -1}, Vector3Back())
}

func TestVector3_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       func(Vector3) Vector3
		in       Vector3
		expected Vector3
	}{
		{"Add", func(v Vector3) Vector3 { return v.Add(NewVector3(4, 5, 6)) }, NewVector3(1, 2, 3), NewVector3(5, 7, 9)},
		{"Sub", func(v Vector3) Vector3 { return v.Sub(NewVector3(1, 1, 1)) }, NewVector3(5, 7, 9), NewVector3(4, 6, 8)},
		{"Mul", func(v Vector3) Vector3 { return v.Mul(2) }, NewVector3(1, -2, 3), NewVector3(2, -4, 6)},
		{"Div", func(v Vector3) Vector3 { return v.Div(2) }, NewVector3(2, -4, 6), NewVector3(1, -2, 3)},
		{"RDiv", func(v Vector3) Vector3 { return v.RDiv(12) }, NewVector3(2, 3, 4), NewVector3(6, 4, 3)},
		{"Scale", func(v Vector3) Vector3 { return v.Scale(NewVector3(2, 3, -1)) }, NewVector3(1, 2, 3), NewVector3(2, 6, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(tt.in)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestVector3_InPlace(t *testing.T) {
	v := NewVector3(1, 2, 3)
	v.AddInPlace(NewVector3(1, 1, 1))
	assert.Equal(t, NewVector3(2, 3, 4), v)

	v.SubInPlace(NewVector3(2, 3, 4))
	assert.Equal(t, Vector3{}, v)

	v = NewVector3(1, -2, 4)
	v.MulInPlace(3)
	assert.Equal(t, NewVector3(3, -6, 12), v)

	v.DivInPlace(3)
	assert.Equal(t, NewVector3(1, -2, 4), v)

	v.ScaleInPlace(NewVector3(2, 2, 0.5))
	assert.Equal(t, NewVector3(2, -4, 2), v)
}

func TestVector3_Magnitude(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector3
		expected Scalar
	}{
		{"Simple", NewVector3(2, 3, 6), 7},
		{"Zero", Vector3{}, 0},
		{"Unit", Vector3Forward(), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.v.Magnitude(), 1e-12)
			assert.InDelta(t, tt.expected*tt.expected, tt.v.SqrMagnitude(), 1e-12)
		})
	}
}

func TestVector3_Distance(t *testing.T) {
	a := NewVector3(1, 1, 1)
	b := NewVector3(3, 4, 7)

	assert.InDelta(t, 7, a.Distance(b), 1e-12)
	assert.InDelta(t, a.Distance(b), b.Distance(a), 1e-12)
}

func TestVector3_Normalized(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		n := NewVector3(2, 3, 6).Normalized()
		assert.InDelta(t, 1, n.Magnitude(), 1e-12)
		assert.InDelta(t, 2.0/7, n.X, 1e-12)
	})

	t.Run("Zero vector", func(t *testing.T) {
		n := Vector3{}.Normalized()
		assert.True(t, math.IsNaN(n.X))
		assert.True(t, math.IsNaN(n.Y))
		assert.True(t, math.IsNaN(n.Z))
	})

	t.Run("InPlace", func(t *testing.T) {
		v := NewVector3(0, 0, -4)
		v.Normalize()
		assert.Equal(t, NewVector3(0, 0, -1), v)
	})
}

func TestVector3_Dot(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	// All three component products contribute.
	assert.InDelta(t, 32, a.Dot(b), 1e-12)
	assert.InDelta(t, a.Dot(b), b.Dot(a), 1e-12)
	assert.InDelta(t, 1, Vector3Forward().Dot(NewVector3(0, 0, 1)), 1e-12)
}

func TestVector3_Cross(t *testing.T) {
	a := NewVector3(3, -3, 1)
	b := NewVector3(4, 9, 2)

	t.Run("Known product", func(t *testing.T) {
		assert.Equal(t, NewVector3(-15, -2, 39), a.Cross(b))
	})

	t.Run("Anti-commutative", func(t *testing.T) {
		assert.Equal(t, a.Cross(b).Mul(-1), b.Cross(a))
	})

	t.Run("Self cross is zero", func(t *testing.T) {
		assert.Equal(t, Vector3{}, a.Cross(a))
	})

	t.Run("Axis products", func(t *testing.T) {
		assert.Equal(t, Vector3Forward(), Vector3Right().Cross(Vector3Up()))
		assert.Equal(t, Vector3Back(), Vector3Up().Cross(Vector3Right()))
	})

	t.Run("Orthogonal to operands", func(t *testing.T) {
		c := a.Cross(b)
		assert.InDelta(t, 0, c.Dot(a), 1e-12)
		assert.InDelta(t, 0, c.Dot(b), 1e-12)
	})
}

func TestVector3_Angle(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Vector3Right().Angle(Vector3Up()), 1e-9)
	assert.InDelta(t, math.Pi, Vector3Forward().Angle(Vector3Back()), 1e-9)
	assert.True(t, math.IsNaN(Vector3Up().Angle(Vector3{})))
}

func TestVector3_Project(t *testing.T) {
	p := NewVector3(2, 3, 4).Project(Vector3Forward())
	assert.Equal(t, NewVector3(0, 0, 4), p)

	p = NewVector3(2, 3, 4).Project(Vector3{})
	assert.True(t, math.IsNaN(p.X))
}

func TestVector3_ClampMagnitude(t *testing.T) {
	t.Run("Over limit", func(t *testing.T) {
		c := NewVector3(2, 3, 6).ClampMagnitude(3.5)
		assert.InDelta(t, 3.5, c.Magnitude(), 1e-12)
		assert.InDelta(t, 1, c.X, 1e-12)
	})

	t.Run("Under limit", func(t *testing.T) {
		v := NewVector3(2, 3, 6)
		assert.Equal(t, v, v.ClampMagnitude(10))
	})
}

func TestVector3_Lerp(t *testing.T) {
	a := NewVector3(0, 0, 0)
	b := NewVector3(10, 20, 30)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, NewVector3(5, 10, 15), a.Lerp(b, 0.5))
	assert.Equal(t, a, a.Lerp(b, -1))
	assert.Equal(t, b, a.Lerp(b, 2))

	assert.Equal(t, NewVector3(20, 40, 60), a.LerpUnclamped(b, 2))
}

func TestVector3_Slerp(t *testing.T) {
	a := Vector3Right()
	b := Vector3Up()

	t.Run("Endpoints exact", func(t *testing.T) {
		assert.Equal(t, a, a.Slerp(b, 0))
		assert.Equal(t, b, a.Slerp(b, 1))
		assert.Equal(t, a, a.Slerp(b, -0.5))
		assert.Equal(t, b, a.Slerp(b, 1.5))
	})

	t.Run("Halfway along great circle", func(t *testing.T) {
		got := a.Slerp(b, 0.5)
		want := math.Sqrt2 / 2
		assert.InDelta(t, want, got.X, 1e-12)
		assert.InDelta(t, want, got.Y, 1e-12)
		assert.InDelta(t, 0, got.Z, 1e-12)
		assert.InDelta(t, 1, got.Magnitude(), 1e-12)
	})

	t.Run("Quarter keeps unit magnitude", func(t *testing.T) {
		got := a.Slerp(b, 0.25)
		assert.InDelta(t, 1, got.Magnitude(), 1e-12)
		assert.InDelta(t, math.Pi/8, a.Angle(got), 1e-9)
	})

	// sin(ω) = 0 for coincident unit vectors, so the unclamped form has
	// nothing to divide by and degrades to NaN.
	t.Run("Coincident degenerates", func(t *testing.T) {
		got := a.SlerpUnclamped(a, 0.5)
		assert.True(t, math.IsNaN(got.X))
	})
}

func TestVector3_MoveTowards(t *testing.T) {
	a := NewVector3(0, 0, 0)
	b := NewVector3(0, 0, 10)

	got := a.MoveTowards(b, 4)
	assert.InDelta(t, 4, got.Z, 1e-12)

	got = a.MoveTowards(b, 15)
	assert.InDelta(t, 15, got.Z, 1e-12)

	got = a.MoveTowards(a, 1)
	assert.True(t, math.IsNaN(got.Z))
}

func TestVector3_Reflect(t *testing.T) {
	assert.Equal(t, NewVector3(1, -2, 0), NewVector3(1, 2, 0).Reflect(Vector3Up()))
	assert.Equal(t, NewVector3(1, 2, -3), NewVector3(1, 2, 3).Reflect(Vector3Forward()))
}

func TestVector3_MaxMinOrdering(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(1, 2, 5)

	require.True(t, a.LessEq(b))
	require.False(t, a.GreaterEq(b))

	assert.Equal(t, b, a.Max(b))
	assert.Equal(t, a, a.Min(b))
	assert.Equal(t, a, a.Max(a))

	nan := NewVector3(1, math.NaN(), 0)
	assert.False(t, nan.LessEq(a))
	assert.False(t, nan.GreaterEq(a))
	assert.Equal(t, a, nan.Max(a))
}

func TestVector3_Equal(t *testing.T) {
	assert.True(t, NewVector3(1, 2, 3).Equal(NewVector3(1, 2, 3)))
	assert.False(t, NewVector3(1, 2, 3).Equal(NewVector3(1, 2, 4)))

	nan := NewVector3(math.NaN(), 0, 0)
	assert.False(t, nan.Equal(nan))
}

func TestVector3_Narrowing(t *testing.T) {
	v := NewVector3(1, 2, 3)

	t.Run("Drops Z", func(t *testing.T) {
		assert.Equal(t, NewVector2(1, 2), v.Vector2())
	})

	// Narrow-then-widen is lossy: the original Z is replaced with 0.
	t.Run("Round trip loses Z", func(t *testing.T) {
		back := v.Vector2().Vector3()
		assert.Equal(t, NewVector3(1, 2, 0), back)
		assert.NotEqual(t, v, back)
	})
}
