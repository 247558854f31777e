package geometry

import "github.com/go-gl/mathgl/mgl64"

// Transform is a rigid-body pose: a rotation followed by a translation,
// relating an object's local frame to its parent frame.
//
// ApplyPoint(p) = Rotation*p + Position. Composition is fixed as
// T.Compose(o).ApplyPoint(p) == T.ApplyPoint(o.ApplyPoint(p)), i.e. the
// receiver is the outer frame.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// ApplyPoint maps a point from the local frame to the parent frame.
func (t Transform) ApplyPoint(p mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(p).Add(t.Position)
}

// ApplyVector maps a free vector (field, magnetization) from the local
// frame to the parent frame. Rotation only, no translation.
func (t Transform) ApplyVector(v mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(v)
}

// ToLocal maps a point from the parent frame into the local frame.
// Exact inverse of ApplyPoint.
func (t Transform) ToLocal(p mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Inverse().Rotate(p.Sub(t.Position))
}

// ToLocalVector maps a free vector from the parent frame into the local frame.
func (t Transform) ToLocalVector(v mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Inverse().Rotate(v)
}

// Compose chains two transforms, receiver outermost. The rotation is
// renormalized so repeated composition cannot drift off the unit sphere.
func (t Transform) Compose(o Transform) Transform {
	return Transform{
		Position: t.Rotation.Rotate(o.Position).Add(t.Position),
		Rotation: t.Rotation.Mul(o.Rotation).Normalize(),
	}
}

// Inverse returns the transform undoing t: t.Inverse().Compose(t) is
// identity up to floating tolerance.
func (t Transform) Inverse() Transform {
	inv := t.Rotation.Inverse().Normalize()
	return Transform{
		Position: inv.Rotate(t.Position).Mul(-1),
		Rotation: inv,
	}
}

// Translate shifts the pose by delta, expressed in the parent frame.
func (t *Transform) Translate(delta mgl64.Vec3) {
	t.Position = t.Position.Add(delta)
}

// Rotate rotates the pose about its own origin. The rotation axes are
// those of the parent frame (q pre-multiplies the orientation); the
// position is unchanged.
func (t *Transform) Rotate(q mgl64.Quat) {
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// RotateAxis rotates the pose about its own origin around the given
// parent-frame axis by angle radians.
func (t *Transform) RotateAxis(axis mgl64.Vec3, angle float64) {
	t.Rotate(mgl64.QuatRotate(angle, axis.Normalize()))
}

// RotateAnchor rotates the pose around an anchor point in the parent frame,
// moving the position along the arc.
func (t *Transform) RotateAnchor(q mgl64.Quat, anchor mgl64.Vec3) {
	t.Position = q.Rotate(t.Position.Sub(anchor)).Add(anchor)
	t.Rotation = q.Mul(t.Rotation).Normalize()
}
