// Package polynomial implements real-root isolation and refinement for
// univariate polynomials with real coefficients. Roots are isolated with
// the Vincent–Collins–Akritas continued-fraction method and refined by
// interval bisection.
package polynomial

import "math"

// Polynomial holds coefficients in ascending degree order: index i is
// the coefficient of x^i. The degree is len(p)-1. Functions in this
// package never modify their input; transforms return fresh slices.
type Polynomial []float64

// Degree returns the index of the highest nonzero coefficient, or -1
// for the zero (or empty) polynomial.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// Trimmed returns p with trailing zero coefficients removed.
func (p Polynomial) Trimmed() Polynomial {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}
	out := make(Polynomial, n)
	copy(out, p[:n])
	return out
}

// Evaluate computes p(x) by Horner's method.
func Evaluate(p Polynomial, x float64) float64 {
	if len(p) == 0 {
		return 0
	}
	v := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		v = v*x + p[i]
	}
	return v
}

// Derivative returns the first derivative of p.
func Derivative(p Polynomial) Polynomial {
	if len(p) <= 1 {
		return Polynomial{}
	}
	out := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = float64(i) * p[i]
	}
	return out
}

// signVariations counts sign changes between consecutive nonzero
// coefficients. By Descartes' rule of signs this bounds the number of
// strictly positive roots from above, exactly when the count is 0 or 1.
func signVariations(p Polynomial) int {
	variations := 0
	prev := 0
	for _, c := range p {
		var s int
		switch {
		case c > 0:
			s = 1
		case c < 0:
			s = -1
		default:
			continue
		}
		if prev != 0 && s != prev {
			variations++
		}
		prev = s
	}
	return variations
}

// rootUpperBound returns a Cauchy bound B such that every positive root
// of p is strictly less than B.
func rootUpperBound(p Polynomial) float64 {
	q := p.Trimmed()
	n := len(q) - 1
	if n < 1 {
		return 1
	}
	maxRatio := 0.0
	for i := 0; i < n; i++ {
		if r := math.Abs(q[i] / q[n]); r > maxRatio {
			maxRatio = r
		}
	}
	return 1 + maxRatio
}

// positiveRootUpperBound returns Kioustelidis' local-max bound on the
// strictly positive roots of p: twice the largest (|a_k|/|a_n|)^(1/(n-k))
// over coefficients opposing the leading sign. Unlike the Cauchy bound
// it is not pinned above 1, which matters when it is taken on a
// reversed polynomial whose roots are all tiny.
func positiveRootUpperBound(p Polynomial) float64 {
	q := p.Trimmed()
	n := len(q) - 1
	if n < 1 {
		return 1
	}
	bound := 0.0
	for k := 0; k < n; k++ {
		if q[k] == 0 || (q[k] > 0) == (q[n] > 0) {
			continue
		}
		if t := math.Pow(math.Abs(q[k]/q[n]), 1/float64(n-k)); t > bound {
			bound = t
		}
	}
	if bound == 0 {
		// Every coefficient shares the leading sign: no positive roots.
		return 1
	}
	return 2 * bound
}

// smallestPositiveRootLowerBound returns a positive number no larger
// than the smallest positive root of p. The roots of the reversed
// polynomial are the reciprocals of the roots of p, so the reciprocal
// of its positive-root upper bound works.
func smallestPositiveRootLowerBound(p Polynomial) float64 {
	return 1 / positiveRootUpperBound(Reversed(p.Trimmed()))
}
