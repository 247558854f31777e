// Package lodestone computes magnetostatic fields of idealized sources in
// closed form: cylinder, cuboid, sphere and polygonal prism magnets, circular
// loops and polyline currents, grouped into rigidly-posed collections.
//
// The root package evaluates sources over batches of points, optionally in
// parallel; the shapes themselves live in the source package and the
// underlying formulas in the field package.
package lodestone

import (
	"runtime"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/magwerk/lodestone/source"
)

// Result is one B-field sample of a batch. Exactly one of B and Err is
// meaningful.
type Result struct {
	B   mgl64.Vec3
	Err error
}

// ScalarResult is one scalar potential sample of a batch.
type ScalarResult struct {
	V   float64
	Err error
}

// FieldAt computes the B-field (T) of src at a single world point.
func FieldAt(src source.Interface, point mgl64.Vec3) (mgl64.Vec3, error) {
	return src.FieldAt(point)
}

// Evaluator runs batch evaluations over a fixed worker count. The zero value
// evaluates serially.
//
// The source tree must not be mutated while a batch is running.
type Evaluator struct {
	Workers int
}

// FieldAtMany evaluates src at every point, one result per point in input
// order. A failing point fills its own slot and never aborts the batch.
func (e Evaluator) FieldAtMany(src source.Interface, points []mgl64.Vec3) []Result {
	results := make([]Result, len(points))
	task(e.Workers, len(points), func(i int) {
		results[i].B, results[i].Err = src.FieldAt(points[i])
	})
	return results
}

// PotentialAtMany evaluates the scalar potential of src at every point,
// with the same slot-per-point contract as FieldAtMany.
func (e Evaluator) PotentialAtMany(src source.Potential, points []mgl64.Vec3) []ScalarResult {
	results := make([]ScalarResult, len(points))
	task(e.Workers, len(points), func(i int) {
		results[i].V, results[i].Err = src.PotentialAt(points[i])
	})
	return results
}

// FieldAtMany evaluates src at every point, on one goroutine per CPU when
// parallel is set.
func FieldAtMany(src source.Interface, points []mgl64.Vec3, parallel bool) []Result {
	workers := 1
	if parallel {
		workers = runtime.NumCPU()
	}
	return Evaluator{Workers: workers}.FieldAtMany(src, points)
}
