package geometry

import "math"

// CartToCyl converts Cartesian (x, y) to cylindrical (r, phi).
func CartToCyl(x, y float64) (r, phi float64) {
	return math.Hypot(x, y), math.Atan2(y, x)
}

// VecCylToCart converts a vector with cylindrical components (br, bphi),
// attached at azimuth phi, to Cartesian components (bx, by).
func VecCylToCart(br, bphi, phi float64) (bx, by float64) {
	sin, cos := math.Sincos(phi)
	return br*cos - bphi*sin, br*sin + bphi*cos
}
