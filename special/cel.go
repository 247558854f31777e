package special

import (
	"fmt"
	"math"
)

// Convergence tolerance of the cel iteration.
const errtol = 1e-6

// Cel computes Bulirsch's general complete elliptic integral
// cel(kc, p, c, s), using the reduced iteration from Derby & Olbert, 2010.
// kc is the complementary modulus and must be nonzero.
func Cel(kc, p, c, s float64) (float64, error) {
	if kc == 0 {
		return 0, fmt.Errorf("%w: cel requires kc != 0", ErrDomain)
	}

	k := math.Abs(kc)
	var cc, pp, ss float64

	if p > 0 {
		cc = c
		pp = math.Sqrt(p)
		ss = s / pp
	} else {
		f := kc * kc
		q := (1 - f) * (s - c*p)
		g := 1 - p
		h := f - p
		pp = math.Sqrt(h / g)
		cc = (c - s) / g
		ss = -q/(g*g*pp) + cc*pp
	}

	em := 1.0
	f := cc
	cc = cc + ss/pp
	g := k / pp
	ss = 2 * (ss + f*g)
	pp = g + pp
	g = em
	em = k + em
	kk := k

	for math.Abs(g-k) > g*errtol {
		k = 2 * math.Sqrt(kk)
		kk = k * em
		f = cc
		cc = cc + ss/pp
		g = kk / pp
		ss = 2 * (ss + f*g)
		pp = g + pp
		g = em
		em = k + em
	}

	return (math.Pi / 2) * (ss + cc*em) / (em * (em + pp)), nil
}
