package source

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/magwerk/lodestone/field"
	"github.com/magwerk/lodestone/geometry"
)

// Prism is a magnet with an arbitrary simple polygon cross-section,
// extruded symmetrically along the local z axis.
type Prism struct {
	geometry.Transform
	Polarization mgl64.Vec3

	// Base polygon in the local xy-plane, counterclockwise.
	Base   []mgl64.Vec2
	Height float64
}

// NewPrism creates a polygon-base prism magnet at the identity pose. The
// base must be a simple polygon with at least 3 vertices and nonzero area;
// clockwise input is reversed to the counterclockwise form the field
// assembly expects.
func NewPrism(base []mgl64.Vec2, height float64, polarization mgl64.Vec3) (*Prism, error) {
	if len(base) < 3 {
		return nil, fmt.Errorf("%w: prism base needs at least 3 vertices, got %d",
			ErrInvalidGeometry, len(base))
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: prism height must be positive, got %v",
			ErrInvalidGeometry, height)
	}
	for i := range base {
		if base[i] == base[(i+1)%len(base)] {
			return nil, fmt.Errorf("%w: prism base has repeated vertex at index %d",
				ErrInvalidGeometry, i)
		}
	}

	area := signedArea(base)
	if area == 0 {
		return nil, fmt.Errorf("%w: prism base polygon has zero area", ErrInvalidGeometry)
	}

	owned := make([]mgl64.Vec2, len(base))
	copy(owned, base)
	if area < 0 {
		for i, j := 0, len(owned)-1; i < j; i, j = i+1, j-1 {
			owned[i], owned[j] = owned[j], owned[i]
		}
	}

	return &Prism{
		Transform:    geometry.NewTransform(),
		Polarization: polarization,
		Base:         owned,
		Height:       height,
	}, nil
}

// signedArea is positive for counterclockwise polygons (shoelace formula).
func signedArea(polygon []mgl64.Vec2) float64 {
	var sum float64
	n := len(polygon)
	for i := 0; i < n; i++ {
		a, b := polygon[i], polygon[(i+1)%n]
		sum += a.X()*b.Y() - b.X()*a.Y()
	}
	return sum / 2
}

func (p *Prism) FieldAt(point mgl64.Vec3) (mgl64.Vec3, error) {
	local := p.Transform.ToLocal(point)
	b, err := field.PrismB(local, p.Base, p.Height, p.Polarization)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("prism magnet: %w", err)
	}
	return p.Transform.ApplyVector(b), nil
}
