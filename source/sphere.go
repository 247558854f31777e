package source

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/magwerk/lodestone/field"
	"github.com/magwerk/lodestone/geometry"
)

// Sphere is a spherical magnet with uniform polarization, centered on the
// origin in its local frame.
type Sphere struct {
	geometry.Transform
	Polarization mgl64.Vec3

	Radius float64
}

// NewSphere creates a sphere magnet at the identity pose.
func NewSphere(radius float64, polarization mgl64.Vec3) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: sphere radius must be positive, got %v",
			ErrInvalidGeometry, radius)
	}
	return &Sphere{
		Transform:    geometry.NewTransform(),
		Polarization: polarization,
		Radius:       radius,
	}, nil
}

func (s *Sphere) FieldAt(point mgl64.Vec3) (mgl64.Vec3, error) {
	local := s.Transform.ToLocal(point)
	b, err := field.SphereB(local, s.Radius, s.Polarization)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("sphere magnet: %w", err)
	}
	return s.Transform.ApplyVector(b), nil
}

// PotentialAt computes the scalar magnetic potential (A) at a parent-frame
// point. The potential is a rotation-invariant scalar, so only the inward
// point mapping is needed.
func (s *Sphere) PotentialAt(point mgl64.Vec3) (float64, error) {
	local := s.Transform.ToLocal(point)
	phi, err := field.SpherePotential(local, s.Radius, s.Polarization)
	if err != nil {
		return 0, fmt.Errorf("sphere magnet: %w", err)
	}
	return phi, nil
}
