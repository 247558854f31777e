package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func vec3ApproxEqual(a, b mgl64.Vec3, epsilon float64) bool {
	return a.ApproxEqualThreshold(b, epsilon)
}

func buildTransform(position mgl64.Vec3, axis mgl64.Vec3, angle float64) Transform {
	t := NewTransform()
	t.Translate(position)
	t.RotateAxis(axis, angle)
	return t
}

func TestApplyPointRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		transform Transform
		point     mgl64.Vec3
	}{
		{
			name:      "identity",
			transform: NewTransform(),
			point:     mgl64.Vec3{1, 2, 3},
		},
		{
			name:      "pure_translation",
			transform: buildTransform(mgl64.Vec3{1, -2, 0.5}, mgl64.Vec3{0, 0, 1}, 0),
			point:     mgl64.Vec3{-4, 0, 7},
		},
		{
			name:      "translation_and_rotation",
			transform: buildTransform(mgl64.Vec3{0.3, 0.1, -0.2}, mgl64.Vec3{1, 1, 0}, math.Pi/3),
			point:     mgl64.Vec3{0.5, -0.5, 2},
		},
		{
			name:      "large_angle",
			transform: buildTransform(mgl64.Vec3{10, 20, 30}, mgl64.Vec3{1, -2, 4}, 2.9),
			point:     mgl64.Vec3{-1, -1, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := tt.transform.ApplyPoint(tt.point)
			back := tt.transform.ToLocal(world)
			if !vec3ApproxEqual(back, tt.point, 1e-12) {
				t.Errorf("ToLocal(ApplyPoint(p)) = %v, want %v", back, tt.point)
			}

			inv := tt.transform.Inverse()
			if !vec3ApproxEqual(inv.ApplyPoint(world), tt.point, 1e-12) {
				t.Errorf("Inverse().ApplyPoint = %v, want %v", inv.ApplyPoint(world), tt.point)
			}
		})
	}
}

func TestInverseComposeIsIdentity(t *testing.T) {
	tr := buildTransform(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0.2, -1, 0.4}, 1.234)
	id := tr.Inverse().Compose(tr)

	points := []mgl64.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{-3, 5, 0.5},
		{100, -200, 300},
	}
	for _, p := range points {
		if !vec3ApproxEqual(id.ApplyPoint(p), p, 1e-9) {
			t.Errorf("inverse-compose moved %v to %v", p, id.ApplyPoint(p))
		}
	}
}

func TestComposeOrder(t *testing.T) {
	outer := buildTransform(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}, math.Pi/2)
	inner := buildTransform(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, math.Pi/4)

	p := mgl64.Vec3{0.5, 0.25, -1}
	sequential := outer.ApplyPoint(inner.ApplyPoint(p))
	composed := outer.Compose(inner).ApplyPoint(p)

	if !vec3ApproxEqual(sequential, composed, 1e-12) {
		t.Errorf("Compose order mismatch: sequential %v, composed %v", sequential, composed)
	}
}

func TestRotateAboutOwnOrigin(t *testing.T) {
	tr := NewTransform()
	tr.Translate(mgl64.Vec3{2, 0, 0})
	tr.RotateAxis(mgl64.Vec3{0, 0, 1}, math.Pi/2)

	// Rotation must not move the position.
	if !vec3ApproxEqual(tr.Position, mgl64.Vec3{2, 0, 0}, 1e-15) {
		t.Errorf("Rotate moved position to %v", tr.Position)
	}

	// Local +x now maps to parent +y.
	got := tr.ApplyVector(mgl64.Vec3{1, 0, 0})
	if !vec3ApproxEqual(got, mgl64.Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("ApplyVector(+x) = %v, want +y", got)
	}
}

func TestRotateAnchor(t *testing.T) {
	tr := NewTransform()
	tr.Translate(mgl64.Vec3{1, 0, 0})

	q := mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 0, 1})
	tr.RotateAnchor(q, mgl64.Vec3{0, 0, 0})

	if !vec3ApproxEqual(tr.Position, mgl64.Vec3{-1, 0, 0}, 1e-12) {
		t.Errorf("RotateAnchor position = %v, want (-1,0,0)", tr.Position)
	}
}

// TestRotationStaysOrthonormal applies many incremental rotations and checks
// the quaternion has not drifted off the unit sphere.
func TestRotationStaysOrthonormal(t *testing.T) {
	tr := NewTransform()
	q := mgl64.QuatRotate(0.013, mgl64.Vec3{0.3, 0.9, -0.1}.Normalize())
	for i := 0; i < 10000; i++ {
		tr.Rotate(q)
	}

	norm := tr.Rotation.Len()
	if math.Abs(norm-1.0) > 1e-12 {
		t.Errorf("rotation norm drifted to %v", norm)
	}

	v := mgl64.Vec3{1, 2, 2}
	if math.Abs(tr.ApplyVector(v).Len()-3.0) > 1e-9 {
		t.Errorf("rotation no longer preserves length: |Rv| = %v", tr.ApplyVector(v).Len())
	}
}

func TestCartToCyl(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		r, phi  float64
	}{
		{"origin", 0, 0, 0, 0},
		{"positive_x", 2, 0, 2, 0},
		{"positive_y", 0, 3, 3, math.Pi / 2},
		{"diagonal", 1, 1, math.Sqrt2, math.Pi / 4},
		{"negative_x", -1, 0, 1, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, phi := CartToCyl(tt.x, tt.y)
			if math.Abs(r-tt.r) > 1e-15 || math.Abs(phi-tt.phi) > 1e-15 {
				t.Errorf("CartToCyl(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, r, phi, tt.r, tt.phi)
			}
		})
	}
}

func TestVecCylToCartRoundTrip(t *testing.T) {
	phi := 0.7
	br, bphi := 1.3, -0.4
	bx, by := VecCylToCart(br, bphi, phi)

	// Rotate back by -phi.
	gotR, gotPhi := VecCylToCart(bx, by, -phi)
	if math.Abs(gotR-br) > 1e-15 || math.Abs(gotPhi-bphi) > 1e-15 {
		t.Errorf("round trip = (%v, %v), want (%v, %v)", gotR, gotPhi, br, bphi)
	}
}
