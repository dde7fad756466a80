package polynomial

import "math"

// gcdEps is the cutoff below which a remainder is considered zero
// during the Euclidean GCD. Coefficients are normalized each step, so a
// fixed tolerance is safe.
const gcdEps = 1e-9

// HasStrictlyPositiveRoots reports whether p can have a root greater
// than zero, by Descartes' rule applied to p. A zero sign-variation
// count rules positive roots out exactly.
func HasStrictlyPositiveRoots(p Polynomial) bool {
	return signVariations(p) > 0
}

// HasStrictlyNegativeRoots reports whether p can have a root less than
// zero, by Descartes' rule applied to p(-x).
func HasStrictlyNegativeRoots(p Polynomial) bool {
	return signVariations(ScaleInput(p, -1)) > 0
}

// MakeSquareFree returns a polynomial with the same root locations as p
// but every multiplicity reduced to one, by dividing out gcd(p, p').
// The isolator requires simple roots for its interval counts to hold.
func MakeSquareFree(p Polynomial) Polynomial {
	q := p.Trimmed()
	if len(q) <= 2 {
		return q
	}
	g := polyGCD(q, Derivative(q))
	if g.Degree() < 1 {
		return q
	}
	quot, _ := polyDivide(q, g)
	return quot.Trimmed()
}

// polyGCD computes the (monic) greatest common divisor of a and b by
// the Euclidean algorithm, normalizing each remainder to keep the float
// tolerance meaningful.
func polyGCD(a, b Polynomial) Polynomial {
	a = normalized(a.Trimmed())
	b = normalized(b.Trimmed())
	for b.Degree() >= 0 {
		_, r := polyDivide(a, b)
		r = r.Trimmed()
		if maxAbsCoeff(r) < gcdEps {
			return b
		}
		a, b = b, normalized(r)
	}
	return a
}

// polyDivide performs polynomial long division of a by b, returning
// quotient and remainder. b must be nonzero after trimming.
func polyDivide(a, b Polynomial) (quot, rem Polynomial) {
	b = b.Trimmed()
	db := b.Degree()
	rem = a.Trimmed()
	da := rem.Degree()
	if da < db {
		return Polynomial{}, rem
	}
	quot = make(Polynomial, da-db+1)
	work := make(Polynomial, len(rem))
	copy(work, rem)
	for d := da; d >= db; d-- {
		c := work[d] / b[db]
		quot[d-db] = c
		if c == 0 {
			continue
		}
		for i := 0; i <= db; i++ {
			work[d-db+i] -= c * b[i]
		}
		work[d] = 0
	}
	return quot, work[:db].Trimmed()
}

// normalized divides all coefficients by the leading one.
func normalized(p Polynomial) Polynomial {
	d := p.Degree()
	if d < 0 {
		return p
	}
	out := make(Polynomial, d+1)
	lead := p[d]
	for i := 0; i <= d; i++ {
		out[i] = p[i] / lead
	}
	return out
}

func maxAbsCoeff(p Polynomial) float64 {
	m := 0.0
	for _, c := range p {
		if a := math.Abs(c); a > m {
			m = a
		}
	}
	return m
}
