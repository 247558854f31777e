package field

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// cuboidAxisB computes the mu0*H field of a cuboid magnet polarized with
// unit strength along the local w-axis, at the point (u, v, w) with
// half-extents (a, b, c) on the (u, v, w) axes. u and v are the tangential
// axes of the charged faces, w the normal one.
//
// Face-charge closed form (Engel-Herbert & Hesjedal, 2005): eight corner
// terms with alternating signs, log terms for the tangential components and
// an arctan solid-angle sum for the normal component.
func cuboidAxisB(u, v, w, a, b, c float64) (bu, bv, bw float64) {
	signs := [2]float64{1, -1}
	for i, su := range signs {
		for j, sv := range signs {
			for k, sw := range signs {
				// su=+1 pairs u with the corner at +a, and so on.
				uu := u - su*a
				vv := v - sv*b
				ww := w - sw*c
				rr := math.Sqrt(uu*uu + vv*vv + ww*ww)

				sign := 1.0
				if (i+j+k)%2 == 1 {
					sign = -1
				}

				bu += sign * math.Log(-vv+rr)
				bv += sign * math.Log(-uu+rr)
				// Plain Atan keeps each corner term in (-pi/2, pi/2);
				// ww == 0 relies on IEEE division to +-Inf.
				bw += sign * math.Atan(uu*vv/(ww*rr))
			}
		}
	}
	return bu / (4 * math.Pi), bv / (4 * math.Pi), bw / (4 * math.Pi)
}

// CuboidB computes the B-field of a rectangular prism magnet at a
// local-frame point. The cuboid is centered on the origin with faces normal
// to the axes, dim holds the full side lengths, pol the uniform
// polarization in tesla.
//
// On the lines extending the cuboid edges the log terms are singular and
// ErrDegenerate is returned.
func CuboidB(point mgl64.Vec3, dim mgl64.Vec3, pol mgl64.Vec3) (mgl64.Vec3, error) {
	x, y, z := point.X(), point.Y(), point.Z()
	a, b, c := dim.X()/2, dim.Y()/2, dim.Z()/2

	var bx, by, bz float64

	// One face-charge evaluation per polarization component, with the
	// coordinates cycled so the polarized axis is the face normal.
	if pol.X() != 0 {
		bxx, byx, bzx := cuboidAxisB(y, z, x, b, c, a)
		bx += pol.X() * bzx
		by += pol.X() * bxx
		bz += pol.X() * byx
	}
	if pol.Y() != 0 {
		bxy, byy, bzy := cuboidAxisB(z, x, y, c, a, b)
		bx += pol.Y() * byy
		by += pol.Y() * bzy
		bz += pol.Y() * bxy
	}
	if pol.Z() != 0 {
		bxz, byz, bzz := cuboidAxisB(x, y, z, a, b, c)
		bx += pol.Z() * bxz
		by += pol.Z() * byz
		bz += pol.Z() * bzz
	}

	if err := finiteOrDegenerate(bx, by, bz); err != nil {
		return mgl64.Vec3{}, fmt.Errorf("%w: on cuboid edge line", ErrDegenerate)
	}

	// Inside the magnet B = mu0*H + J.
	if math.Abs(x) < a && math.Abs(y) < b && math.Abs(z) < c {
		return mgl64.Vec3{bx + pol.X(), by + pol.Y(), bz + pol.Z()}, nil
	}

	return mgl64.Vec3{bx, by, bz}, nil
}
