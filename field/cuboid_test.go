package field

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// TestCuboidBCubeCenter: a cube has demagnetizing factor exactly 1/3, so
// the field at its center is 2J/3.
func TestCuboidBCubeCenter(t *testing.T) {
	tests := []struct {
		name string
		pol  mgl64.Vec3
	}{
		{"axial_z", mgl64.Vec3{0, 0, 1}},
		{"axial_x", mgl64.Vec3{0.5, 0, 0}},
		{"oblique", mgl64.Vec3{0.3, -0.2, 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CuboidB(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 2}, tt.pol)
			if err != nil {
				t.Fatalf("CuboidB: %v", err)
			}
			want := tt.pol.Mul(2.0 / 3.0)
			if !vec3ApproxEqual(got, want, 1e-12) {
				t.Errorf("cube center = %v, want %v", got, want)
			}
		})
	}
}

func TestCuboidBAxisSymmetry(t *testing.T) {
	// On the axis of a z-polarized cuboid the transverse components vanish
	// and the field points along +z.
	got, err := CuboidB(mgl64.Vec3{0, 0, 2}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 0, 1})
	if err != nil {
		t.Fatalf("CuboidB: %v", err)
	}
	if math.Abs(got.X()) > 1e-15 || math.Abs(got.Y()) > 1e-15 {
		t.Errorf("transverse components on axis: %v", got)
	}
	if got.Z() <= 0 {
		t.Errorf("axis field should be positive above the magnet, got %v", got.Z())
	}
}

func TestCuboidBMirrorSymmetry(t *testing.T) {
	dim := mgl64.Vec3{1, 2, 0.5}
	pol := mgl64.Vec3{0, 0, 0.7}
	p := mgl64.Vec3{0.4, 0.6, 0.8}

	bp, err := CuboidB(p, dim, pol)
	if err != nil {
		t.Fatal(err)
	}
	bm, err := CuboidB(mgl64.Vec3{-p.X(), p.Y(), p.Z()}, dim, pol)
	if err != nil {
		t.Fatal(err)
	}

	// Mirror in x: Bx flips, By and Bz are even.
	want := mgl64.Vec3{-bp.X(), bp.Y(), bp.Z()}
	if !vec3ApproxEqual(bm, want, 1e-13) {
		t.Errorf("mirror field = %v, want %v", bm, want)
	}
}

func TestCuboidBFarField(t *testing.T) {
	dim := mgl64.Vec3{0.4, 0.6, 0.8}
	pol := mgl64.Vec3{1, 0.5, -0.25}
	m := pol.Mul(dim.X() * dim.Y() * dim.Z() / Mu0)

	for _, dir := range []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, -1, 2}} {
		p := dir.Normalize().Mul(15)
		got, err := CuboidB(p, dim, pol)
		if err != nil {
			t.Fatalf("far field at %v: %v", p, err)
		}
		want := dipoleB(p, m)
		if !vec3CloseRel(got, want, 1e-3) {
			t.Errorf("far field at %v = %v, dipole limit %v", p, got, want)
		}
	}
}

func TestCuboidBEdgeDegenerate(t *testing.T) {
	// Midpoint of a horizontal edge of the cube: log singularity.
	_, err := CuboidB(mgl64.Vec3{1, 0, 1}, mgl64.Vec3{2, 2, 2}, mgl64.Vec3{0, 0, 1})
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("edge query error = %v, want ErrDegenerate", err)
	}
}

func TestCuboidBZeroPol(t *testing.T) {
	got, err := CuboidB(mgl64.Vec3{0.1, 0.2, 0.3}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{})
	if err != nil {
		t.Fatalf("zero pol: %v", err)
	}
	if got != (mgl64.Vec3{}) {
		t.Errorf("zero pol = %v, want zero", got)
	}
}
