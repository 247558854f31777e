// Package source provides magnetic sources: concrete magnet and current
// geometries bound to a rigid-body pose, and collections that group them.
//
// Every source owns a geometry.Transform relating its local frame (where
// the field formulas live) to the parent frame, and evaluates the world
// field by mapping the query point inward, applying its formula, and
// rotating the resulting vector outward. Sources are single-owner values:
// a source belongs to at most one collection and poses are mutated in
// place through the embedded transform.
package source

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidGeometry reports ill-formed shape parameters at construction.
var ErrInvalidGeometry = errors.New("invalid source geometry")

// Interface is the evaluation capability shared by every source and by
// collections of sources.
type Interface interface {
	// FieldAt computes the B-field (T) at a parent-frame point.
	FieldAt(point mgl64.Vec3) (mgl64.Vec3, error)

	// Pose mutation, provided by the embedded geometry.Transform.
	Translate(delta mgl64.Vec3)
	Rotate(q mgl64.Quat)
	RotateAxis(axis mgl64.Vec3, angle float64)
	RotateAnchor(q mgl64.Quat, anchor mgl64.Vec3)
}

// Potential is implemented by sources that also expose the scalar magnetic
// potential (A), defined by H = -grad(phi).
type Potential interface {
	Interface
	PotentialAt(point mgl64.Vec3) (float64, error)
}
