package source

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/magwerk/lodestone/field"
	"github.com/magwerk/lodestone/geometry"
)

// Cuboid is a rectangular prism magnet with uniform polarization, centered
// on the origin in its local frame with faces normal to the axes.
type Cuboid struct {
	geometry.Transform
	Polarization mgl64.Vec3

	// Full side lengths along the local axes.
	Dimension mgl64.Vec3
}

// NewCuboid creates a cuboid magnet at the identity pose. Dimension holds
// the full side lengths in meters, polarization in tesla.
func NewCuboid(dimension mgl64.Vec3, polarization mgl64.Vec3) (*Cuboid, error) {
	if dimension.X() <= 0 || dimension.Y() <= 0 || dimension.Z() <= 0 {
		return nil, fmt.Errorf("%w: cuboid dimensions must be positive, got %v",
			ErrInvalidGeometry, dimension)
	}
	return &Cuboid{
		Transform:    geometry.NewTransform(),
		Polarization: polarization,
		Dimension:    dimension,
	}, nil
}

func (c *Cuboid) FieldAt(point mgl64.Vec3) (mgl64.Vec3, error) {
	local := c.Transform.ToLocal(point)
	b, err := field.CuboidB(local, c.Dimension, c.Polarization)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("cuboid magnet: %w", err)
	}
	return c.Transform.ApplyVector(b), nil
}
