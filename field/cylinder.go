package field

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/magwerk/lodestone/geometry"
	"github.com/magwerk/lodestone/special"
)

// unitAxialCylB computes the B-field of a cylinder with unit axial (z)
// polarization at (r, z) in cylindrical coordinates, all lengths scaled by
// the cylinder radius. z0 is half the height over the radius.
//
// Derby & Olbert, 2010.
func unitAxialCylB(r, z, z0 float64) (br, bz float64, err error) {
	zp, zm := z+z0, z-z0
	rp, rm := 1.0+r, 1.0-r

	zp2, zm2 := zp*zp, zm*zm
	rp2, rm2 := rp*rp, rm*rm

	sq0 := math.Sqrt(zm2 + rp2)
	sq1 := math.Sqrt(zp2 + rp2)

	kp := math.Sqrt((zp2 + rm2) / (zp2 + rp2))
	km := math.Sqrt((zm2 + rm2) / (zm2 + rp2))

	gamma := rm / rp
	gamma2 := gamma * gamma

	celP, err := special.Cel(kp, 1, 1, -1)
	if err != nil {
		return 0, 0, err
	}
	celM, err := special.Cel(km, 1, 1, -1)
	if err != nil {
		return 0, 0, err
	}
	br = (celP/sq1 - celM/sq0) / math.Pi

	celZP, err := special.Cel(kp, gamma2, 1, gamma)
	if err != nil {
		return 0, 0, err
	}
	celZM, err := special.Cel(km, gamma2, 1, gamma)
	if err != nil {
		return 0, 0, err
	}
	bz = (zp*celZP/sq1 - zm*celZM/sq0) / (rp * math.Pi)

	return br, bz, nil
}

// unitDiametricCylB computes the B-field of a cylinder with unit diametral
// (x-axis) polarization at (r, phi, z) in cylindrical coordinates, lengths
// scaled by the cylinder radius. z0 is half the height over the radius.
//
// Caciagli et al., 2018. For small r the elliptic expressions cancel
// catastrophically, so a Taylor expansion in r is used instead.
func unitDiametricCylB(r, phi, z, z0 float64) (br, bphi, bz float64, err error) {
	zp, zm := z+z0, z-z0
	zp2, zm2 := zp*zp, zm*zm
	r2 := r * r

	if r < 5e-2 {
		zp4, zm4 := zp2*zp2, zm2*zm2
		zpp, zmm := zp2+1, zm2+1
		zpp2, zmm2 := zpp*zpp, zmm*zmm
		zpp3, zmm3 := zpp2*zpp, zmm2*zmm
		zpp4, zmm4 := zpp3*zpp, zmm3*zmm
		zpp5, zmm5 := zpp4*zpp, zmm4*zmm
		sqrtP, sqrtM := math.Sqrt(zpp), math.Sqrt(zmm)
		frac1, frac2 := zp/sqrtP, zm/sqrtM

		r3 := r2 * r
		r4 := r3 * r
		r5 := r4 * r

		term1 := frac1 - frac2
		term2 := (frac1/zpp2 - frac2/zmm2) * r2 / 8
		term3 := ((3-4*zp2)*frac1/zpp4 - (3-4*zm2)*frac2/zmm4) / 64 * r4

		br = -math.Cos(phi) / 4 * (term1 + 9*term2 + 25*term3)
		bphi = math.Sin(phi) / 4 * (term1 + 3*term2 + 5*term3)
		bz = -math.Cos(phi) / 4 *
			(r*(1/zpp/sqrtP-1/zmm/sqrtM) +
				3.0/8.0*r3*((1-4*zp2)/zpp3/sqrtP-(1-4*zm2)/zmm3/sqrtM) +
				15.0/64.0*r5*((1-12*zp2+8*zp4)/zpp5/sqrtP-(1-12*zm2+8*zm4)/zmm5/sqrtM))
		return br, bphi, bz, nil
	}

	rp, rm := r+1, r-1
	rp2, rm2 := rp*rp, rm*rm

	ap2, am2 := zp2+rm2, zm2+rm2
	ap, am := math.Sqrt(ap2), math.Sqrt(am2)

	argp, argm := -4*r/ap2, -4*r/am2

	// r == 1 puts the characteristic at its pole; the third-kind integrals
	// stay finite because their prefactor carries 1/rm -> 0.
	argc := -4 * r / rm2
	oneOverRm := 1 / rm
	if rm == 0 {
		argc = 1e16
		oneOverRm = 0
	}

	ellkP, err := special.CompleteK(argp)
	if err != nil {
		return 0, 0, 0, err
	}
	ellkM, err := special.CompleteK(argm)
	if err != nil {
		return 0, 0, 0, err
	}
	elleP, err := special.CompleteE(argp)
	if err != nil {
		return 0, 0, 0, err
	}
	elleM, err := special.CompleteE(argm)
	if err != nil {
		return 0, 0, 0, err
	}
	ellpiP, err := special.Cel(math.Sqrt(1-argp), 1-argc, 1, 1)
	if err != nil {
		return 0, 0, 0, err
	}
	ellpiM, err := special.Cel(math.Sqrt(1-argm), 1-argc, 1, 1)
	if err != nil {
		return 0, 0, 0, err
	}

	br = -math.Cos(phi) / (4 * math.Pi * r2) *
		(-zm*am*elleM + zp*ap*elleP + zm/am*(2+zm2)*ellkM -
			zp/ap*(2+zp2)*ellkP +
			(zm/am*ellpiM-zp/ap*ellpiP)*rp*(r2+1)*oneOverRm)

	bphi = math.Sin(phi) / (4 * math.Pi * r2) *
		(zm*am*elleM - zp*ap*elleP - zm/am*(2+zm2+2*r2)*ellkM +
			zp/ap*(2+zp2+2*r2)*ellkP +
			zm/am*rp2*ellpiM -
			zp/ap*rp2*ellpiP)

	bz = -math.Cos(phi) / (2 * math.Pi * r) *
		(am*elleM - ap*elleP - (1+zm2+r2)/am*ellkM +
			(1+zp2+r2)/ap*ellkP)

	return br, bphi, bz, nil
}

// cylB computes the B-field of a cylindrical magnet at (r, phi, z) in
// cylindrical coordinates. The polarization is decomposed into an axial
// part polZ and a diametral part polR along phi = 0.
func cylB(r, phi, z, radius, height, polR, polZ float64) (mgl64.Vec3, error) {
	// Scale invariance: work in units of the radius.
	r = r / radius
	z = z / radius
	z0 := (height / 2) / radius

	// The rim edge is a true singularity of both formulas.
	if isClose(r, 1, 1e-15) && isClose(math.Abs(z), z0, 1e-15) {
		return mgl64.Vec3{}, fmt.Errorf("%w: on cylinder rim edge", ErrDegenerate)
	}

	var b mgl64.Vec3
	if polZ != 0 {
		br, bz, err := unitAxialCylB(r, z, z0)
		if err != nil {
			return mgl64.Vec3{}, err
		}
		b = b.Add(mgl64.Vec3{br, 0, bz}.Mul(polZ))
	}

	if polR != 0 {
		br, bphi, bz, err := unitDiametricCylB(r, phi, z, z0)
		if err != nil {
			return mgl64.Vec3{}, err
		}
		b = b.Add(mgl64.Vec3{br, bphi, bz}.Mul(polR))
	}

	return b, nil
}

// CylinderB computes the B-field of a cylindrical magnet at a local-frame
// point. The cylinder is centered on the origin with its axis along z,
// radius and height in meters, pol the uniform polarization vector in tesla.
func CylinderB(point mgl64.Vec3, radius, height float64, pol mgl64.Vec3) (mgl64.Vec3, error) {
	r, phi := geometry.CartToCyl(point.X(), point.Y())
	polR, theta := geometry.CartToCyl(pol.X(), pol.Y())

	bCyl, err := cylB(r, phi-theta, point.Z(), radius, height, polR, pol.Z())
	if err != nil {
		return mgl64.Vec3{}, err
	}

	bx, by := geometry.VecCylToCart(bCyl.X(), bCyl.Y(), phi)
	if err := finiteOrDegenerate(bx, by, bCyl.Z()); err != nil {
		return mgl64.Vec3{}, err
	}

	// Inside the magnet B = mu0*H + J.
	if r <= radius && math.Abs(point.Z()) <= height/2 {
		return mgl64.Vec3{bx + pol.X(), by + pol.Y(), bCyl.Z()}, nil
	}

	return mgl64.Vec3{bx, by, bCyl.Z()}, nil
}
