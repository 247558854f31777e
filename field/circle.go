package field

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/magwerk/lodestone/geometry"
	"github.com/magwerk/lodestone/special"
)

// Relative radial distance below which the loop field switches to the
// on-axis closed form. Off axis but below this threshold the elliptic
// expressions cancel catastrophically in the radial component.
const circleAxisTol = 1e-6

// CircleB computes the B-field of a circular current loop at a local-frame
// point. The loop of the given radius lies in the z = 0 plane centered on
// the origin, carrying current (A) counterclockwise about +z.
//
// A query on the wire itself is a true singularity and returns
// ErrDegenerate. On the axis the exact limiting closed form is used.
func CircleB(point mgl64.Vec3, radius, current float64) (mgl64.Vec3, error) {
	if current == 0 {
		return mgl64.Vec3{}, nil
	}

	r, phi := geometry.CartToCyl(point.X(), point.Y())
	z := point.Z()

	// Distance to the wire, squared.
	dr := r - radius
	d2 := dr*dr + z*z
	if d2 <= 1e-28*radius*radius {
		return mgl64.Vec3{}, fmt.Errorf("%w: on current loop wire", ErrDegenerate)
	}

	if r <= circleAxisTol*radius {
		// On-axis limit: B = mu0*I*R^2 / (2*(R^2+z^2)^(3/2)) along z.
		den := radius*radius + z*z
		bz := Mu0 * current * radius * radius / (2 * den * math.Sqrt(den))
		return mgl64.Vec3{0, 0, bz}, nil
	}

	sum := radius + r
	q2 := sum*sum + z*z
	q := math.Sqrt(q2)
	m := 4 * radius * r / q2

	ellk, err := special.CompleteK(m)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	elle, err := special.CompleteE(m)
	if err != nil {
		return mgl64.Vec3{}, err
	}

	pre := Mu0 * current / (2 * math.Pi)
	rr := radius * radius
	br := pre * z / (r * q) * ((rr+r*r+z*z)/d2*elle - ellk)
	bz := pre / q * ((rr-r*r-z*z)/d2*elle + ellk)

	if err := finiteOrDegenerate(br, bz); err != nil {
		return mgl64.Vec3{}, fmt.Errorf("%w: on current loop wire", ErrDegenerate)
	}

	bx, by := geometry.VecCylToCart(br, 0, phi)
	return mgl64.Vec3{bx, by, bz}, nil
}
