package field

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// prismFace is one planar charged face of the prism: a polygon with unit
// outward normal and the face charge density sigma = pol . normal (T).
type prismFace struct {
	// Vertices ordered counterclockwise about the outward normal.
	vertices []mgl64.Vec3
	normal   mgl64.Vec3
	sigma    float64
}

// solidAngle computes the solid angle subtended by the face at point,
// signed positive on the side the outward normal points to.
// Fan triangulation with the Van Oosterom-Strackee formula per triangle.
func (f prismFace) solidAngle(point mgl64.Vec3) (float64, error) {
	var omega float64
	v0 := f.vertices[0].Sub(point)
	for i := 1; i+1 < len(f.vertices); i++ {
		v1 := f.vertices[i].Sub(point)
		v2 := f.vertices[i+1].Sub(point)

		l0, l1, l2 := v0.Len(), v1.Len(), v2.Len()
		num := v0.Dot(v1.Cross(v2))
		den := l0*l1*l2 + v0.Dot(v1)*l2 + v0.Dot(v2)*l1 + v1.Dot(v2)*l0

		// num ~ 0 with den < 0 means the point sits in the triangle's
		// plane inside it: the subtended angle jumps between -2pi and
		// +2pi there and the charged-face field is undefined.
		if den < 0 && math.Abs(num) < 1e-12*l0*l1*l2 {
			return 0, fmt.Errorf("%w: on prism face", ErrDegenerate)
		}
		omega += 2 * math.Atan2(num, den)
	}
	// Van Oosterom-Strackee is negative for a viewer on the normal side of
	// a counterclockwise-ordered triangle.
	return -omega, nil
}

// fieldAt computes the face's mu0*H contribution at point:
//
//	sigma/(4*pi) * ( omega*n + sum_edges (e x n) * ln((R1+R2+L)/(R1+R2-L)) )
//
// The log term diverges on the edges; the solid angle is discontinuous on
// the face interior. Both report ErrDegenerate.
func (f prismFace) fieldAt(point mgl64.Vec3) (mgl64.Vec3, error) {
	n := len(f.vertices)
	omega, err := f.solidAngle(point)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	sum := f.normal.Mul(omega)

	for i := 0; i < n; i++ {
		a := f.vertices[i]
		b := f.vertices[(i+1)%n]
		e := b.Sub(a)
		length := e.Len()

		r1 := point.Sub(a).Len()
		r2 := point.Sub(b).Len()

		den := r1 + r2 - length
		if den <= 1e-14*length {
			return mgl64.Vec3{}, fmt.Errorf("%w: on prism face edge", ErrDegenerate)
		}
		ln := math.Log((r1 + r2 + length) / den)

		sum = sum.Add(e.Mul(1 / length).Cross(f.normal).Mul(ln))
	}

	return sum.Mul(f.sigma / (4 * math.Pi)), nil
}

// pointInPolygon reports whether (x, y) lies strictly inside the polygon
// by the even-odd crossing rule.
func pointInPolygon(x, y float64, polygon []mgl64.Vec2) bool {
	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := polygon[i].X(), polygon[i].Y()
		xj, yj := polygon[j].X(), polygon[j].Y()
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// PrismB computes the B-field of a prism magnet with an arbitrary simple
// polygon cross-section at a local-frame point. The base polygon lies in
// the xy-plane (vertices counterclockwise), extruded from -height/2 to
// +height/2 along z; pol is the uniform polarization in tesla.
//
// The field is assembled from the magnetic surface charges sigma = pol . n
// on each face. Queries on a face or an edge return ErrDegenerate.
func PrismB(point mgl64.Vec3, base []mgl64.Vec2, height float64, pol mgl64.Vec3) (mgl64.Vec3, error) {
	h := height / 2
	n := len(base)

	onFacePlane := math.Abs(math.Abs(point.Z())-h) < 1e-14*height
	if onFacePlane && pointInPolygon(point.X(), point.Y(), base) {
		return mgl64.Vec3{}, fmt.Errorf("%w: on prism face", ErrDegenerate)
	}

	faces := make([]prismFace, 0, n+2)

	top := prismFace{normal: mgl64.Vec3{0, 0, 1}, vertices: make([]mgl64.Vec3, n)}
	bottom := prismFace{normal: mgl64.Vec3{0, 0, -1}, vertices: make([]mgl64.Vec3, n)}
	for i, v := range base {
		top.vertices[i] = mgl64.Vec3{v.X(), v.Y(), h}
		// Reversed order keeps the bottom face counterclockwise about -z.
		bottom.vertices[n-1-i] = mgl64.Vec3{v.X(), v.Y(), -h}
	}
	faces = append(faces, top, bottom)

	for i := 0; i < n; i++ {
		va := base[i]
		vb := base[(i+1)%n]
		edge := mgl64.Vec3{vb.X() - va.X(), vb.Y() - va.Y(), 0}
		normal := edge.Cross(mgl64.Vec3{0, 0, 1}).Normalize()
		faces = append(faces, prismFace{
			vertices: []mgl64.Vec3{
				{va.X(), va.Y(), -h},
				{vb.X(), vb.Y(), -h},
				{vb.X(), vb.Y(), h},
				{va.X(), va.Y(), h},
			},
			normal: normal,
		})
	}

	var b mgl64.Vec3
	for i := range faces {
		faces[i].sigma = pol.Dot(faces[i].normal)
		if faces[i].sigma == 0 {
			continue
		}
		contrib, err := faces[i].fieldAt(point)
		if err != nil {
			return mgl64.Vec3{}, err
		}
		b = b.Add(contrib)
	}

	if err := finiteOrDegenerate(b.X(), b.Y(), b.Z()); err != nil {
		return mgl64.Vec3{}, fmt.Errorf("%w: on prism boundary", ErrDegenerate)
	}

	// Inside the magnet B = mu0*H + J.
	if math.Abs(point.Z()) < h && pointInPolygon(point.X(), point.Y(), base) {
		b = b.Add(pol)
	}

	return b, nil
}
