package polynomial

import "math"

// endpointNoiseRel is the relative magnitude below which an endpoint
// evaluation counts as numerically zero. Isolating intervals are open,
// so an endpoint may sit exactly on a root of a neighboring branch;
// there Horner evaluation yields either zero or rounding noise of
// arbitrary sign.
const endpointNoiseRel = 1e-10

// Refine narrows an isolating interval down to a single estimate within
// eps by bisection, keeping whichever half brackets the sign change. A
// zero-width interval marks an exact root and is returned as is. An
// interval that genuinely does not bracket a sign change violates the
// isolator's contract and yields a precondition error.
func Refine(f func(float64) float64, iv Interval, eps float64) (float64, error) {
	lo, hi := iv.Low, iv.High
	width := hi - lo
	if width <= 0 {
		return lo, nil
	}

	flo, fhi := f(lo), f(hi)
	if flo == 0 && fhi == 0 {
		return (lo + hi) / 2, nil
	}

	// Repair a suspect endpoint by probing geometrically inward for a
	// point on the far side of the interior root. Probes start near the
	// endpoint and back off toward the midpoint.
	if suspectEndpoint(fhi, flo) {
		repaired := false
		for k := 30; k >= 1; k-- {
			x := hi - width/float64(int64(1)<<k)
			if fx := f(x); fx != 0 && sign(fx) != sign(flo) {
				hi, fhi = x, fx
				repaired = true
				break
			}
		}
		if !repaired {
			// The interior root is numerically indistinguishable from
			// the endpoint.
			return hi, nil
		}
	}
	if suspectEndpoint(flo, fhi) {
		repaired := false
		for k := 30; k >= 1; k-- {
			x := lo + width/float64(int64(1)<<k)
			if fx := f(x); fx != 0 && sign(fx) != sign(fhi) {
				lo, flo = x, fx
				repaired = true
				break
			}
		}
		if !repaired {
			return lo, nil
		}
	}

	if sign(flo) == sign(fhi) {
		return 0, NewPreconditionError("refine", "interval (%g, %g) does not bracket a sign change", iv.Low, iv.High)
	}

	for hi-lo > eps {
		mid := (lo + hi) / 2
		fm := f(mid)
		if fm == 0 {
			return mid, nil
		}
		if sign(fm) == sign(flo) {
			lo, flo = mid, fm
		} else {
			hi, fhi = mid, fm
		}
	}
	return (lo + hi) / 2, nil
}

// suspectEndpoint reports whether the endpoint value fv fails to
// establish a bracket against the opposite endpoint value fother:
// exactly zero, or same-signed but down at evaluation-noise level.
func suspectEndpoint(fv, fother float64) bool {
	if fv == 0 {
		return true
	}
	if fother == 0 || sign(fv) != sign(fother) {
		return false
	}
	return math.Abs(fv) <= endpointNoiseRel*math.Max(1, math.Abs(fother))
}

// sign returns -1, 0 or +1.
func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
