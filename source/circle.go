package source

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/magwerk/lodestone/field"
	"github.com/magwerk/lodestone/geometry"
)

// Circle is a circular current loop. In its local frame the loop lies in
// the z = 0 plane centered on the origin, carrying the current
// counterclockwise about +z.
type Circle struct {
	geometry.Transform

	Radius  float64
	Current float64
}

// NewCircle creates a circular loop at the identity pose. Radius in
// meters, current in amperes.
func NewCircle(radius, current float64) (*Circle, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: loop radius must be positive, got %v",
			ErrInvalidGeometry, radius)
	}
	return &Circle{
		Transform: geometry.NewTransform(),
		Radius:    radius,
		Current:   current,
	}, nil
}

func (c *Circle) FieldAt(point mgl64.Vec3) (mgl64.Vec3, error) {
	local := c.Transform.ToLocal(point)
	b, err := field.CircleB(local, c.Radius, c.Current)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("circular loop: %w", err)
	}
	return c.Transform.ApplyVector(b), nil
}
