package source

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/magwerk/lodestone/field"
	"github.com/magwerk/lodestone/geometry"
)

// Polyline is a current path made of straight segments through the given
// local-frame vertices, carrying the current from the first vertex towards
// the last.
type Polyline struct {
	geometry.Transform

	Vertices []mgl64.Vec3
	Current  float64
}

// NewPolyline creates a segmented current path at the identity pose. At
// least two vertices are required and consecutive vertices must not
// coincide.
func NewPolyline(vertices []mgl64.Vec3, current float64) (*Polyline, error) {
	if len(vertices) < 2 {
		return nil, fmt.Errorf("%w: polyline needs at least 2 vertices, got %d",
			ErrInvalidGeometry, len(vertices))
	}
	for i := 0; i+1 < len(vertices); i++ {
		if vertices[i] == vertices[i+1] {
			return nil, fmt.Errorf("%w: polyline has zero-length segment at index %d",
				ErrInvalidGeometry, i)
		}
	}

	owned := make([]mgl64.Vec3, len(vertices))
	copy(owned, vertices)
	return &Polyline{
		Transform: geometry.NewTransform(),
		Vertices:  owned,
		Current:   current,
	}, nil
}

func (p *Polyline) FieldAt(point mgl64.Vec3) (mgl64.Vec3, error) {
	local := p.Transform.ToLocal(point)
	b, err := field.PolylineB(local, p.Vertices, p.Current)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("current polyline: %w", err)
	}
	return p.Transform.ApplyVector(b), nil
}
