package field

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// segmentB computes the B-field of a straight finite current segment from
// a to b carrying current (A), using the exact Biot-Savart closed form
//
//	B = mu0*I/(4*pi*d) * (cos(theta1) - cos(theta2)) * n
//
// with d the perpendicular distance and n the unit azimuthal direction.
// A point on the segment is singular; a point on the carrying line outside
// the segment has an exact zero field.
func segmentB(point, a, b mgl64.Vec3, current float64) (mgl64.Vec3, error) {
	e := b.Sub(a)
	length := e.Len()
	r1 := point.Sub(a)
	r2 := point.Sub(b)

	n := e.Cross(r1)
	nLen := n.Len()
	if nLen <= 1e-14*length*math.Max(r1.Len(), length) {
		// On the carrying line. Between the endpoints the field diverges;
		// on the extension it vanishes by symmetry.
		t := r1.Dot(e) / (length * length)
		if t >= 0 && t <= 1 {
			return mgl64.Vec3{}, fmt.Errorf("%w: on current segment", ErrDegenerate)
		}
		return mgl64.Vec3{}, nil
	}

	d := nLen / length
	cos1 := e.Dot(r1) / (length * r1.Len())
	cos2 := e.Dot(r2) / (length * r2.Len())

	mag := Mu0 * current / (4 * math.Pi * d) * (cos1 - cos2)
	return n.Mul(mag / nLen), nil
}

// PolylineB computes the B-field of a current path made of straight
// segments through the given local-frame vertices, carrying the current (A)
// from the first vertex towards the last. Contributions are summed in
// segment order.
func PolylineB(point mgl64.Vec3, vertices []mgl64.Vec3, current float64) (mgl64.Vec3, error) {
	if current == 0 {
		return mgl64.Vec3{}, nil
	}

	var b mgl64.Vec3
	for i := 0; i+1 < len(vertices); i++ {
		seg, err := segmentB(point, vertices[i], vertices[i+1], current)
		if err != nil {
			return mgl64.Vec3{}, err
		}
		b = b.Add(seg)
	}
	return b, nil
}
