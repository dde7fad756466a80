package polynomial

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultPrecision is the root precision used when callers do not ask
// for one.
const DefaultPrecision = 1e-5

// FindAllRealRoots returns every real root of p exactly once, sorted
// ascending and deduplicated within the precision-derived tolerance.
// Multiplicity is discarded by the square-free reduction. An empty or
// identically zero polynomial is an invalid input.
func FindAllRealRoots(p Polynomial, precision float64) ([]float64, error) {
	const op = "find_all_real_roots"
	if len(p) == 0 {
		return nil, NewInvalidInputError(op, "empty polynomial")
	}
	work := p.Trimmed()
	if len(work) == 0 {
		return nil, NewInvalidInputError(op, "zero polynomial has no isolated roots")
	}

	// A zero constant term signals a root at exactly 0; divide the x
	// factor out before isolating the rest.
	hasZeroRoot := false
	for len(work) > 1 && work[0] == 0 {
		hasZeroRoot = true
		work = work[1:]
	}

	eps := refinementEps(precision)
	decimals := decimalPlaces(precision)
	tol := dedupTolerance(precision)

	q := MakeSquareFree(work)

	roots := []float64{}
	if hasZeroRoot {
		roots = insertRoot(roots, 0, tol)
	}

	if HasStrictlyNegativeRoots(q) {
		negated := ScaleInput(q, -1)
		found, err := RefinePositiveRoots(negated, eps)
		if err != nil {
			return nil, err
		}
		for _, r := range found {
			roots = insertRoot(roots, roundToPlaces(-r, decimals), tol)
		}
	}

	if HasStrictlyPositiveRoots(q) {
		found, err := RefinePositiveRoots(q, eps)
		if err != nil {
			return nil, err
		}
		for _, r := range found {
			roots = insertRoot(roots, roundToPlaces(r, decimals), tol)
		}
	}

	return roots, nil
}

// FindStrictlyPositiveRoots returns the roots of p greater than zero,
// sorted ascending.
func FindStrictlyPositiveRoots(p Polynomial, precision float64) ([]float64, error) {
	if len(p) == 0 {
		return nil, NewInvalidInputError("find_strictly_positive_roots", "empty polynomial")
	}
	work := p.Trimmed()
	for len(work) > 1 && work[0] == 0 {
		work = work[1:]
	}
	q := MakeSquareFree(work)
	if !HasStrictlyPositiveRoots(q) {
		return []float64{}, nil
	}

	found, err := RefinePositiveRoots(q, refinementEps(precision))
	if err != nil {
		return nil, err
	}
	decimals := decimalPlaces(precision)
	tol := dedupTolerance(precision)
	roots := []float64{}
	for _, r := range found {
		roots = insertRoot(roots, roundToPlaces(r, decimals), tol)
	}
	return roots, nil
}

// FindStrictlyNegativeRoots returns the roots of p less than zero,
// sorted ascending, already sign-corrected. Negative roots of p are the
// negated positive roots of p(-x).
func FindStrictlyNegativeRoots(p Polynomial, precision float64) ([]float64, error) {
	if len(p) == 0 {
		return nil, NewInvalidInputError("find_strictly_negative_roots", "empty polynomial")
	}
	positive, err := FindStrictlyPositiveRoots(ScaleInput(p, -1), precision)
	if err != nil {
		return nil, err
	}
	tol := dedupTolerance(precision)
	roots := []float64{}
	for _, r := range positive {
		roots = insertRoot(roots, -r, tol)
	}
	return roots, nil
}

// refinementEps is the bisection stopping width. Non-positive precision
// is a caller programming error and falls back to the default rather
// than failing or spinning.
func refinementEps(precision float64) float64 {
	if precision <= 0 {
		return DefaultPrecision
	}
	return precision
}

// dedupTolerance is the spacing below which two computed roots count as
// one.
func dedupTolerance(precision float64) float64 {
	if precision <= 0 {
		return DefaultPrecision
	}
	return precision
}

// decimalPlaces derives the rounding precision: -floor(log10(eps)), so
// 1e-5 rounds to 5 decimal places. Non-positive precision is defused to
// zero places.
func decimalPlaces(precision float64) int {
	if precision <= 0 {
		return 0
	}
	d := -math.Floor(math.Log10(precision))
	if d < 0 {
		return 0
	}
	return int(d)
}

// roundToPlaces rounds v to the given number of decimal places. A value
// already at that precision comes back unchanged.
func roundToPlaces(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// insertRoot splices r into the ascending list, skipping the insertion
// when an existing entry lies within tol. The scan is linear and
// first-computed wins: a later near-duplicate is dropped, never
// replaces the earlier entry.
func insertRoot(roots []float64, r, tol float64) []float64 {
	i := 0
	for ; i < len(roots); i++ {
		if scalar.EqualWithinAbs(roots[i], r, tol) {
			return roots
		}
		if roots[i] > r {
			break
		}
	}
	roots = append(roots, 0)
	copy(roots[i+1:], roots[i:])
	roots[i] = r
	return roots
}
