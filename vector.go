package golftraj

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vector3 is a 3-component real vector in meters, meters/second, or
// newtons depending on context. It is a plain struct (not a slice) so
// that the integrator's hot loop never allocates for vector algebra.
type Vector3 struct {
	X, Y, Z float64
}

// Zero3 is the zero vector.
var Zero3 = Vector3{}

func (v Vector3) String() string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// Add returns v+w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v-w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v*s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the inner product of v and w.
func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns v×w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean norm of v.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns the unit vector of v, or the zero vector if v is (near)
// zero length.
func (v Vector3) Unit() Vector3 {
	n := v.Norm()
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		return Zero3
	}
	return v.Scale(1 / n)
}

// IsFinite reports whether every component of v is finite.
func (v Vector3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// EqualWithinAbs reports whether v and w are equal within an absolute
// tolerance on every component.
func (v Vector3) EqualWithinAbs(w Vector3, tol float64) bool {
	return floats.EqualWithinAbs(v.X, w.X, tol) &&
		floats.EqualWithinAbs(v.Y, w.Y, tol) &&
		floats.EqualWithinAbs(v.Z, w.Z, tol)
}

// Sign returns -1, 0, or 1, treating values within 1e-12 of zero as
// exactly zero rather than positive.
func Sign(v float64) float64 {
	switch {
	case floats.EqualWithinAbs(v, 0, 1e-12):
		return 0
	case v < 0:
		return -1
	default:
		return 1
	}
}

const (
	deg2rad = math.Pi / 180
	rad2deg = 1 / deg2rad
)

// Deg2rad converts degrees to radians.
func Deg2rad(deg float64) float64 { return deg * deg2rad }

// Rad2deg converts radians to degrees.
func Rad2deg(rad float64) float64 { return rad * rad2deg }
