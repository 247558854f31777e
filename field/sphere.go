package field

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SphereB computes the B-field of a uniformly polarized sphere magnet
// centered on the origin at a local-frame point. radius in meters, pol in
// tesla.
//
// Inside the sphere the field is the uniform 2J/3; outside it is exactly
// the field of a point dipole of moment pol*V/mu0 at the origin. There is
// no singular configuration.
func SphereB(point mgl64.Vec3, radius float64, pol mgl64.Vec3) (mgl64.Vec3, error) {
	r2 := point.Dot(point)
	if r2 < radius*radius {
		return pol.Mul(2.0 / 3.0), nil
	}

	r := math.Sqrt(r2)
	rHat := point.Mul(1 / r)
	scale := radius * radius * radius / (3 * r2 * r)
	return rHat.Mul(3 * pol.Dot(rHat)).Sub(pol).Mul(scale), nil
}

// SpherePotential computes the scalar magnetic potential phi (A) of the
// sphere magnet, defined by H = -grad(phi). Continuous across the surface.
func SpherePotential(point mgl64.Vec3, radius float64, pol mgl64.Vec3) (float64, error) {
	r2 := point.Dot(point)
	if r2 < radius*radius {
		return pol.Dot(point) / (3 * Mu0), nil
	}

	r := math.Sqrt(r2)
	return radius * radius * radius * pol.Dot(point) / (3 * Mu0 * r2 * r), nil
}
