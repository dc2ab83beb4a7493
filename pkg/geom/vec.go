// Package geom provides the 2D primitives shared by the layout engine:
// vectors in simulation/screen space and axis-aligned bounding rectangles.
//
// Vec is defined over gonum's r2.Vec, adding the method set the rest of
// the engine wants for chained arithmetic. The helpers exist for the
// cases gonum leaves undefined: Normalize returns the zero vector for
// zero input instead of NaN, which the physics engine relies on.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a 2D vector. Simulation positions, velocities, forces, pan
// offsets, and pointer coordinates are all Vecs.
type Vec r2.Vec

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

// Add returns the vector sum v + u.
func (v Vec) Add(u Vec) Vec { return Vec(r2.Add(r2.Vec(v), r2.Vec(u))) }

// Sub returns the vector difference v - u.
func (v Vec) Sub(u Vec) Vec { return Vec(r2.Sub(r2.Vec(v), r2.Vec(u))) }

// Scale returns v scaled by f.
func (v Vec) Scale(f float64) Vec { return Vec(r2.Scale(f, r2.Vec(v))) }

// Length returns the Euclidean magnitude of v.
func Length(v Vec) float64 { return r2.Norm(r2.Vec(v)) }

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec) float64 { return Length(a.Sub(b)) }

// Normalize returns the unit vector colinear to v.
// Unlike r2.Unit, the zero vector maps to the zero vector rather than NaN.
func Normalize(v Vec) Vec {
	n := Length(v)
	if n == 0 {
		return Vec{}
	}
	return v.Scale(1 / n)
}

// Mid returns the midpoint of a and b.
func Mid(a, b Vec) Vec { return a.Add(b).Scale(0.5) }

// IsFinite reports whether both components are finite numbers.
func IsFinite(v Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
