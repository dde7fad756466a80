package polynomial

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTaylorShiftRoundTrip(t *testing.T) {
	// Shifting by s and back by -s must reproduce the same function
	// values within floating tolerance.
	tests := []struct {
		name  string
		p     Polynomial
		shift float64
	}{
		{name: "cubic shift 1", p: Polynomial{-6, 11, -6, 1}, shift: 1},
		{name: "cubic fractional shift", p: Polynomial{-6, 11, -6, 1}, shift: 2.5},
		{name: "quadratic negative shift", p: Polynomial{1, 0, 1}, shift: -3},
		{name: "linear", p: Polynomial{4, -2}, shift: 0.125},
	}

	samples := []float64{-2, -0.5, 0, 0.5, 1, 3}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back := TaylorShift(TaylorShift(tt.p, tt.shift), -tt.shift)
			for _, x := range samples {
				want := Evaluate(tt.p, x)
				got := Evaluate(back, x)
				if math.Abs(got-want) > 1e-9 {
					t.Errorf("at x=%v: expected %v, got %v", x, want, got)
				}
			}
		})
	}
}

func TestTaylorShiftKnownValues(t *testing.T) {
	// p(x) = x^2, p(x+1) = x^2 + 2x + 1
	got := TaylorShift(Polynomial{0, 0, 1}, 1)
	want := Polynomial{1, 2, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected coefficients (-want +got):\n%s", diff)
	}
}

func TestTaylorShiftBy1MatchesGeneralShift(t *testing.T) {
	p := Polynomial{-6, 11, -6, 1}
	if diff := cmp.Diff(TaylorShift(p, 1), TaylorShiftBy1(p)); diff != "" {
		t.Errorf("specialization diverges from general shift:\n%s", diff)
	}
}

func TestScaleInput(t *testing.T) {
	tests := []struct {
		name     string
		p        Polynomial
		s        float64
		expected Polynomial
	}{
		{
			name:     "scale by 2",
			p:        Polynomial{1, 2, 3},
			s:        2,
			expected: Polynomial{1, 4, 12},
		},
		{
			name:     "negate input",
			p:        Polynomial{1, 1, 1, 1},
			s:        -1,
			expected: Polynomial{1, -1, 1, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, ScaleInput(tt.p, tt.s)); diff != "" {
				t.Errorf("unexpected coefficients (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScaleInputReversed(t *testing.T) {
	// Coefficient i carries s^(deg-i).
	got := ScaleInputReversed(Polynomial{1, 2, 3}, 2)
	want := Polynomial{4, 4, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected coefficients (-want +got):\n%s", diff)
	}
}

func TestReversedInvolution(t *testing.T) {
	tests := []struct {
		name string
		p    Polynomial
	}{
		{name: "cubic", p: Polynomial{-6, 11, -6, 1}},
		{name: "with zeros", p: Polynomial{0, 1, 0, 2}},
		{name: "single", p: Polynomial{3}},
		{name: "empty", p: Polynomial{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.p, Reversed(Reversed(tt.p))); diff != "" {
				t.Errorf("double reversal changed coefficients:\n%s", diff)
			}
		})
	}
}

func TestMapUnitIntervalToPositiveReals(t *testing.T) {
	// p(x) = 2x - 1 has its root 0.5 inside (0,1); the substitution
	// x -> 1/(x+1) sends it to 1.
	got := MapUnitIntervalToPositiveReals(Polynomial{-1, 2})
	want := Polynomial{1, -1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected coefficients (-want +got):\n%s", diff)
	}
	if v := Evaluate(got, 1); v != 0 {
		t.Errorf("expected a root at 1, evaluated to %v", v)
	}
}

func TestTransformedForLowerInterval(t *testing.T) {
	// Root 0.5 of 2x - 1 under x -> s/(x+1) with s = 0.8 lands at 0.6.
	got := TransformedForLowerInterval(Polynomial{-1, 2}, 0.8)
	if v := Evaluate(got, 0.6); math.Abs(v) > 1e-12 {
		t.Errorf("expected a root at 0.6, evaluated to %v", v)
	}
}

func TestMapIntervalToPositiveReals(t *testing.T) {
	// p(x) = x - 2.5 has its root inside (2,3); the mapped polynomial
	// must have exactly one positive root.
	p := Polynomial{-2.5, 1}
	mapped := MapIntervalToPositiveReals(p, Interval{Low: 2, High: 3})
	if v := signVariations(mapped); v != 1 {
		t.Errorf("expected 1 sign variation after mapping, got %d", v)
	}
	// Root 2.5 sits at the interval midpoint, so the composed map
	// (shift, unit scale, reverse, shift by 1) places it at 1.
	if v := Evaluate(mapped, 1); math.Abs(v) > 1e-12 {
		t.Errorf("expected a root at 1, evaluated to %v", v)
	}
}
