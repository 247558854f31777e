package source

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/magwerk/lodestone/field"
	"github.com/magwerk/lodestone/geometry"
)

// Cylinder is a cylindrical magnet with uniform polarization. In its local
// frame the cylinder is centered on the origin with its axis along z.
type Cylinder struct {
	geometry.Transform
	Polarization mgl64.Vec3

	Radius float64
	Height float64
}

// NewCylinder creates a cylinder magnet at the identity pose.
// Polarization in tesla, dimensions in meters.
func NewCylinder(radius, height float64, polarization mgl64.Vec3) (*Cylinder, error) {
	if radius <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: cylinder radius and height must be positive, got r=%v h=%v",
			ErrInvalidGeometry, radius, height)
	}
	return &Cylinder{
		Transform:    geometry.NewTransform(),
		Polarization: polarization,
		Radius:       radius,
		Height:       height,
	}, nil
}

func (c *Cylinder) FieldAt(point mgl64.Vec3) (mgl64.Vec3, error) {
	local := c.Transform.ToLocal(point)
	b, err := field.CylinderB(local, c.Radius, c.Height, c.Polarization)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("cylinder magnet: %w", err)
	}
	return c.Transform.ApplyVector(b), nil
}
