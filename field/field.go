// Package field implements the closed-form magnetostatic field formulas,
// one per source geometry. Every function here works purely in the
// geometry's local frame: the magnet or current path sits in its canonical
// position (centered on the origin, cylinder/prism axis along z) and the
// query point, polarization and returned field are all local-frame values.
// Posing the geometry in space is the source package's job.
//
// Units are SI throughout: lengths in meters, magnet strength as
// polarization J = Mu0*M in tesla, currents in amperes, B fields in tesla.
package field

import (
	"errors"
	"math"
)

// Mu0 is the vacuum magnetic permeability (T*m/A).
const Mu0 = 4e-7 * math.Pi

// ErrDegenerate reports a query point that coincides with a mathematical
// singularity of the closed-form expression (on a current wire, on a magnet
// edge), where no finite field value exists.
var ErrDegenerate = errors.New("degenerate query point")

// isClose reports |a-b| within rtol relative to b.
func isClose(a, b, rtol float64) bool {
	return math.Abs(a-b) <= rtol*math.Abs(b)
}

// finiteOrDegenerate converts a non-finite computed component into
// ErrDegenerate so singular evaluations never leak NaN or Inf.
func finiteOrDegenerate(components ...float64) error {
	for _, c := range components {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrDegenerate
		}
	}
	return nil
}
