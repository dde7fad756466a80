package polynomial

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Interval is an open interval (Low, High) that, by construction of the
// isolator, contains exactly one real root. Low == High marks a root
// found exactly on a branch boundary.
type Interval struct {
	Low  float64
	High float64
}

// TaylorShift returns the coefficients of p(x + shift), expanded term
// by term with binomial coefficients in O(n^2).
func TaylorShift(p Polynomial, shift float64) Polynomial {
	out := make(Polynomial, len(p))
	for i, c := range p {
		if c == 0 {
			continue
		}
		for k := 0; k <= i; k++ {
			out[k] += c * Binomial(i, k) * math.Pow(shift, float64(i-k))
		}
	}
	return out
}

// TaylorShiftBy1 returns the coefficients of p(x + 1). The power term
// of the general shift is always 1, so it drops out.
func TaylorShiftBy1(p Polynomial) Polynomial {
	out := make(Polynomial, len(p))
	for i, c := range p {
		if c == 0 {
			continue
		}
		for k := 0; k <= i; k++ {
			out[k] += c * Binomial(i, k)
		}
	}
	return out
}

// ScaleInput returns the coefficients of p(s*x): coefficient i is
// multiplied by s^i.
func ScaleInput(p Polynomial, s float64) Polynomial {
	out := make(Polynomial, len(p))
	factor := 1.0
	for i, c := range p {
		out[i] = c * factor
		factor *= s
	}
	return out
}

// ScaleInputReversed returns the coefficients of s^deg * p(x/s):
// coefficient i is multiplied by s^(deg-i).
func ScaleInputReversed(p Polynomial, s float64) Polynomial {
	out := make(Polynomial, len(p))
	factor := 1.0
	for i := len(p) - 1; i >= 0; i-- {
		out[i] = p[i] * factor
		factor *= s
	}
	return out
}

// Reversed returns the coefficients in reverse order, representing
// x^deg * p(1/x).
func Reversed(p Polynomial) Polynomial {
	out := make(Polynomial, len(p))
	copy(out, p)
	floats.Reverse(out)
	return out
}

// MapIntervalToPositiveReals returns a polynomial whose roots in
// (0, +inf) correspond to the roots of p in (iv.Low, iv.High): shift to
// the interval start, scale to unit width, reverse, shift by 1.
func MapIntervalToPositiveReals(p Polynomial, iv Interval) Polynomial {
	q := TaylorShift(p, iv.Low)
	q = ScaleInput(q, iv.High-iv.Low)
	return TaylorShiftBy1(Reversed(q))
}

// MapUnitIntervalToPositiveReals is the iv = (0,1) specialization: the
// substitution x -> 1/(x+1) sends roots in (0,1) to (0, +inf).
func MapUnitIntervalToPositiveReals(p Polynomial) Polynomial {
	return TaylorShiftBy1(Reversed(p))
}

// TransformedForLowerInterval returns (x+1)^deg * p(s/(x+1)), the
// polynomial used when recursing into the branch of roots below s.
func TransformedForLowerInterval(p Polynomial, s float64) Polynomial {
	return TaylorShiftBy1(Reversed(ScaleInput(p, s)))
}
