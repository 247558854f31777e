package field

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestConversionRoundTrips(t *testing.T) {
	b := mgl64.Vec3{0.2, -0.1, 0.5}
	if !vec3ApproxEqual(HToB(BToH(b)), b, 1e-15) {
		t.Errorf("HToB(BToH(b)) != b")
	}

	mag := mgl64.Vec3{8e5, 0, -1e5}
	if !vec3ApproxEqual(PolToMag(MagToPol(mag)), mag, 1e-9) {
		t.Errorf("PolToMag(MagToPol(m)) != m")
	}

	// 1 T of polarization corresponds to 1/mu0 A/m of magnetization.
	m := PolToMag(mgl64.Vec3{1, 0, 0})
	if !vec3ApproxEqual(m, mgl64.Vec3{1 / Mu0, 0, 0}, 1e-9) {
		t.Errorf("PolToMag(1 T) = %v, want %v A/m", m, 1/Mu0)
	}
}
