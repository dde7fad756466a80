package polynomial

import (
	"math"
	"testing"
)

func TestRefine(t *testing.T) {
	tests := []struct {
		name     string
		p        Polynomial
		iv       Interval
		eps      float64
		expected float64
	}{
		{
			name:     "sqrt2",
			p:        Polynomial{-2, 0, 1},
			iv:       Interval{Low: 1, High: 2},
			eps:      1e-10,
			expected: math.Sqrt2,
		},
		{
			name:     "descending bracket",
			p:        Polynomial{2, 0, -1}, // 2 - x^2, decreasing over the bracket
			iv:       Interval{Low: 1, High: 2},
			eps:      1e-10,
			expected: math.Sqrt2,
		},
		{
			name:     "midpoint lands on root",
			p:        Polynomial{-1, 1},
			iv:       Interval{Low: 0, High: 2},
			eps:      1e-10,
			expected: 1,
		},
		{
			name:     "zero width returns the point",
			p:        Polynomial{-1, 1},
			iv:       Interval{Low: 1, High: 1},
			eps:      1e-10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := func(x float64) float64 { return Evaluate(tt.p, x) }
			got, err := Refine(f, tt.iv, tt.eps)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.expected) > tt.eps*2 {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRefineEndpointRoot(t *testing.T) {
	// An isolating interval whose lower endpoint coincides with a root
	// of a neighboring branch: the refiner must step past it and find
	// the interior root.
	p := Polynomial{-6, 11, -6, 1} // (x-1)(x-2)(x-3)
	f := func(x float64) float64 { return Evaluate(p, x) }
	got, err := Refine(f, Interval{Low: 2, High: 4}, 1e-8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-3) > 1e-6 {
		t.Errorf("expected the interior root 3, got %v", got)
	}
}

func TestRefineNonBracketing(t *testing.T) {
	f := func(x float64) float64 { return Evaluate(Polynomial{1, 0, 1}, x) }
	_, err := Refine(f, Interval{Low: 0, High: 1}, 1e-8)
	if err == nil {
		t.Fatal("expected a precondition error for a non-bracketing interval")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != KindPreconditionViolation {
		t.Errorf("expected a precondition violation, got %v", err)
	}
}
