// Package special adapts the external elliptic-integral primitives to the
// single argument convention used by the field formulas: the parameter
// m = k² may be any value below 1, negative included. Out-of-domain or
// non-convergent inputs are reported as ErrDomain, never as NaN.
package special

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
)

// ErrDomain reports an elliptic-integral argument outside the valid range.
var ErrDomain = errors.New("elliptic integral argument out of domain")

// CompleteK computes the complete elliptic integral of the first kind K(m)
// for m < 1. Negative parameters are mapped into the [0,1) domain of the
// underlying library with the imaginary-modulus transformation
// K(m) = K(m/(m-1)) / sqrt(1-m).
func CompleteK(m float64) (float64, error) {
	if m >= 1 || math.IsNaN(m) {
		return 0, fmt.Errorf("%w: K(m) requires m < 1, got %v", ErrDomain, m)
	}
	if m < 0 {
		return mathext.CompleteK(m/(m-1)) / math.Sqrt(1-m), nil
	}
	v := mathext.CompleteK(m)
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: K(%v)", ErrDomain, m)
	}
	return v, nil
}

// CompleteE computes the complete elliptic integral of the second kind E(m)
// for m <= 1. Negative parameters use E(m) = sqrt(1-m) * E(m/(m-1)).
func CompleteE(m float64) (float64, error) {
	if m > 1 || math.IsNaN(m) {
		return 0, fmt.Errorf("%w: E(m) requires m <= 1, got %v", ErrDomain, m)
	}
	if m < 0 {
		return math.Sqrt(1-m) * mathext.CompleteE(m/(m-1)), nil
	}
	v := mathext.CompleteE(m)
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: E(%v)", ErrDomain, m)
	}
	return v, nil
}
