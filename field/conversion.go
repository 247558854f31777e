package field

import "github.com/go-gl/mathgl/mgl64"

// BToH converts a B-field (T) to an H-field (A/m).
func BToH(b mgl64.Vec3) mgl64.Vec3 {
	return b.Mul(1 / Mu0)
}

// HToB converts an H-field (A/m) to a B-field (T).
func HToB(h mgl64.Vec3) mgl64.Vec3 {
	return h.Mul(Mu0)
}

// MagToPol converts a magnetization M (A/m) to a polarization J (T).
func MagToPol(mag mgl64.Vec3) mgl64.Vec3 {
	return mag.Mul(Mu0)
}

// PolToMag converts a polarization J (T) to a magnetization M (A/m).
func PolToMag(pol mgl64.Vec3) mgl64.Vec3 {
	return pol.Mul(1 / Mu0)
}
