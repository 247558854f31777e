package source

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/magwerk/lodestone/geometry"
)

// Collection groups sources (or nested collections) and sums their field
// contributions. It satisfies Interface itself, so collections compose.
//
// The collection owns a transform applied on top of its children: child
// poses are expressed relative to the collection's frame. Evaluation maps
// the query point into the collection frame once, sums the children in
// container order (fixed, for floating-point reproducibility), and rotates
// the sum back out.
//
// Children are exclusively owned: adding a source to two collections, or
// mutating the tree while a batch evaluation is in flight, is a caller
// error. If any child fails at a point the whole point fails; skipping a
// child would silently corrupt the superposition.
type Collection struct {
	geometry.Transform

	children []Interface
}

// NewCollection creates an empty collection at the identity pose.
func NewCollection() *Collection {
	return &Collection{Transform: geometry.NewTransform()}
}

// Add appends children. Insertion order is evaluation and summation order.
func (c *Collection) Add(children ...Interface) {
	c.children = append(c.children, children...)
}

// Remove deletes the child at index, keeping the order of the others.
func (c *Collection) Remove(index int) error {
	if index < 0 || index >= len(c.children) {
		return fmt.Errorf("collection: remove index %d out of range [0, %d)", index, len(c.children))
	}
	c.children = append(c.children[:index], c.children[index+1:]...)
	return nil
}

// Len returns the number of direct children.
func (c *Collection) Len() int {
	return len(c.children)
}

// Child returns the direct child at index.
func (c *Collection) Child(index int) Interface {
	return c.children[index]
}

func (c *Collection) FieldAt(point mgl64.Vec3) (mgl64.Vec3, error) {
	local := c.Transform.ToLocal(point)

	var sum mgl64.Vec3
	for i, child := range c.children {
		b, err := child.FieldAt(local)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("collection child %d: %w", i, err)
		}
		sum = sum.Add(b)
	}

	return c.Transform.ApplyVector(sum), nil
}

// PotentialAt sums the scalar potential of the children. Every child must
// implement Potential; a child without potential support fails the point.
func (c *Collection) PotentialAt(point mgl64.Vec3) (float64, error) {
	local := c.Transform.ToLocal(point)

	var sum float64
	for i, child := range c.children {
		p, ok := child.(Potential)
		if !ok {
			return 0, fmt.Errorf("collection child %d: %T does not support potential", i, child)
		}
		phi, err := p.PotentialAt(local)
		if err != nil {
			return 0, fmt.Errorf("collection child %d: %w", i, err)
		}
		sum += phi
	}

	return sum, nil
}
