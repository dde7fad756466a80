package polynomial

// mobius tracks the accumulated substitution of a continued-fraction
// node as M(x) = (a*x + b) / (c*x + d). A root t > 0 of the node's
// working polynomial corresponds to the root M(t) of the original.
type mobius struct {
	a, b, c, d float64
}

func identityMobius() mobius {
	return mobius{a: 1, b: 0, c: 0, d: 1}
}

// at evaluates M(x). Compositions keep d >= 1, so the division is safe.
func (m mobius) at(x float64) float64 {
	return (m.a*x + m.b) / (m.c*x + m.d)
}

// atInfinity is the image of +inf, finite only when c != 0.
func (m mobius) atInfinity() (float64, bool) {
	if m.c == 0 {
		return 0, false
	}
	return m.a / m.c, true
}

// shiftedBy1 composes with x -> x+1.
func (m mobius) shiftedBy1() mobius {
	return mobius{a: m.a, b: m.a + m.b, c: m.c, d: m.c + m.d}
}

// scaled composes with x -> s*x.
func (m mobius) scaled(s float64) mobius {
	return mobius{a: m.a * s, b: m.b, c: m.c * s, d: m.d}
}

// inverted composes with x -> 1/(x+1), the unit-interval map.
func (m mobius) inverted() mobius {
	return mobius{a: m.b, b: m.a + m.b, c: m.d, d: m.c + m.d}
}

// isolationNode is one continued-fraction tree node: a working
// polynomial together with the substitution that produced it. Each node
// owns its coefficient slice.
type isolationNode struct {
	poly Polynomial
	m    mobius
}

// maxIsolationNodes caps the work list against float-degenerate inputs
// that would otherwise branch forever. Square-free polynomials finish
// far below it. A variable so tests can exercise the budget path.
var maxIsolationNodes = 1 << 16

// IsolatePositiveRoots returns disjoint open intervals in (0, +inf),
// each containing exactly one strictly positive root of the square-free
// polynomial p. Roots hit exactly on a branch boundary come back as
// zero-width intervals. The walk is an explicit depth-first work list
// over (polynomial, substitution) nodes rather than native recursion.
// Exhausting the node budget means the result would be incomplete, so
// it is reported as an error rather than a truncated interval list.
func IsolatePositiveRoots(p Polynomial) ([]Interval, error) {
	p = p.Trimmed()
	if p.Degree() < 1 {
		return nil, nil
	}

	var intervals []Interval
	stack := []isolationNode{{poly: p, m: identityMobius()}}

	for steps := 0; len(stack) > 0; steps++ {
		if steps >= maxIsolationNodes {
			return nil, NewPreconditionError("isolate_positive_roots",
				"work list exceeded %d nodes without converging", maxIsolationNodes)
		}
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := signVariations(node.poly); {
		case v == 0:
			continue
		case v == 1:
			intervals = append(intervals, node.isolatingInterval())
			continue
		}

		q, m := node.poly, node.m

		// Scaling by a lower bound on the smallest positive root moves
		// the split point near the smallest root and shortens the walk.
		if lb := smallestPositiveRootLowerBound(q); lb >= 1 {
			q = ScaleInput(q, lb)
			m = m.scaled(lb)
		}

		// Roots in (1, +inf): substitute x -> x+1.
		far := TaylorShiftBy1(q)
		if far[0] == 0 {
			// A root sits exactly on the boundary x = 1. Attribute it
			// here, as an exact point, and deflate so neither branch
			// sees it again.
			r := m.at(1)
			intervals = append(intervals, Interval{Low: r, High: r})
			far = far[1:].Trimmed()
		}
		if signVariations(far) > 0 {
			stack = append(stack, isolationNode{poly: far, m: m.shiftedBy1()})
		}

		// Roots in (0, 1): substitute x -> 1/(x+1).
		near := MapUnitIntervalToPositiveReals(q)
		if signVariations(near) > 0 {
			stack = append(stack, isolationNode{poly: near, m: m.inverted()})
		}
	}

	return intervals, nil
}

// isolatingInterval maps the node's full positive axis back through the
// accumulated substitution. When the image of +inf is unbounded, a
// Cauchy bound on the node polynomial stands in for it.
func (n isolationNode) isolatingInterval() Interval {
	lo := n.m.at(0)
	hi, ok := n.m.atInfinity()
	if !ok {
		hi = n.m.at(rootUpperBound(n.poly))
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return Interval{Low: lo, High: hi}
}

// RefinePositiveRoots isolates and then bisects every strictly positive
// root of the square-free polynomial p down to eps.
func RefinePositiveRoots(p Polynomial, eps float64) ([]float64, error) {
	intervals, err := IsolatePositiveRoots(p)
	if err != nil {
		return nil, err
	}
	if len(intervals) == 0 {
		return nil, nil
	}
	f := func(x float64) float64 { return Evaluate(p, x) }
	roots := make([]float64, 0, len(intervals))
	for _, iv := range intervals {
		r, err := Refine(f, iv, eps)
		if err != nil {
			return nil, err
		}
		roots = append(roots, r)
	}
	return roots, nil
}
