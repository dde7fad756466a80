package polynomial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestFindAllRealRoots(t *testing.T) {
	tests := []struct {
		name      string
		p         Polynomial
		precision float64
		expected  []float64
	}{
		{
			name:      "three positive roots",
			p:         Polynomial{-6, 11, -6, 1}, // (x-1)(x-2)(x-3)
			precision: 1e-5,
			expected:  []float64{1, 2, 3},
		},
		{
			name:      "zero root with symmetric pair",
			p:         Polynomial{0, -1, 0, 1}, // x^3 - x
			precision: 1e-5,
			expected:  []float64{-1, 0, 1},
		},
		{
			name:      "no real roots",
			p:         Polynomial{1, 0, 1}, // x^2 + 1
			precision: 1e-5,
			expected:  []float64{},
		},
		{
			name:      "irrational roots",
			p:         Polynomial{6, 0, -5, 0, 1}, // (x^2-2)(x^2-3)
			precision: 1e-5,
			expected:  []float64{-math.Sqrt(3), -math.Sqrt2, math.Sqrt2, math.Sqrt(3)},
		},
		{
			name:      "repeated root reported once",
			p:         Polynomial{2, -3, 0, 1}, // (x-1)^2 (x+2)
			precision: 1e-5,
			expected:  []float64{-2, 1},
		},
		{
			name:      "only negative roots",
			p:         Polynomial{2, 3, 1}, // (x+1)(x+2)
			precision: 1e-5,
			expected:  []float64{-2, -1},
		},
		{
			name:      "pure power of x",
			p:         Polynomial{0, 0, 0, 1}, // x^3
			precision: 1e-5,
			expected:  []float64{0},
		},
		{
			name:      "large well-separated roots",
			p:         Polynomial{4900070000, -140001, 1}, // (x-70000)(x-70001)
			precision: 1e-5,
			expected:  []float64{70000, 70001},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots, err := FindAllRealRoots(tt.p, tt.precision)
			require.NoError(t, err)
			require.Len(t, roots, len(tt.expected))
			for i := range tt.expected {
				assert.InDelta(t, tt.expected[i], roots[i], 1e-4, "root %d", i)
			}
			// Ascending with no near-duplicates.
			for i := 1; i < len(roots); i++ {
				assert.Greater(t, roots[i]-roots[i-1], tt.precision)
			}
		})
	}
}

func TestFindAllRealRootsEmptyInput(t *testing.T) {
	_, err := FindAllRealRoots(Polynomial{}, 1e-5)
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))

	_, err = FindAllRealRoots(Polynomial{0, 0}, 1e-5)
	require.Error(t, err, "the zero polynomial has no isolated roots")
}

func TestFindAllRealRootsDegeneratePrecision(t *testing.T) {
	// Non-positive precision is defused to zero decimal places instead
	// of failing.
	roots, err := FindAllRealRoots(Polynomial{-2, 0, 1}, 0) // x^2 - 2
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, []float64{-1, 1}, roots) // sqrt2 rounded to 0 places
}

func TestFindStrictlyPositiveRoots(t *testing.T) {
	roots, err := FindStrictlyPositiveRoots(Polynomial{-6, -7, 0, 1}, 1e-5) // (x+1)(x+2)(x-3)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.InDelta(t, 3, roots[0], 1e-4)

	none, err := FindStrictlyPositiveRoots(Polynomial{2, 3, 1}, 1e-5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindStrictlyNegativeRoots(t *testing.T) {
	roots, err := FindStrictlyNegativeRoots(Polynomial{-6, -7, 0, 1}, 1e-5) // (x+1)(x+2)(x-3)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.InDelta(t, -2, roots[0], 1e-4)
	assert.InDelta(t, -1, roots[1], 1e-4)
}

func TestSignSymmetry(t *testing.T) {
	// Negative roots of p are the negated positive roots of p(-x).
	polys := []Polynomial{
		{-6, -7, 0, 1},
		{2, 3, 1},
		{0, -1, 0, 1},
		{6, 0, -5, 0, 1},
	}

	for _, p := range polys {
		neg, err := FindStrictlyNegativeRoots(p, 1e-5)
		require.NoError(t, err)

		pos, err := FindStrictlyPositiveRoots(ScaleInput(p, -1), 1e-5)
		require.NoError(t, err)

		require.Len(t, neg, len(pos))
		for i := range pos {
			// pos is ascending, its negation is descending.
			assert.InDelta(t, -pos[len(pos)-1-i], neg[i], 1e-4)
		}
	}
}

func TestRoundToPlacesIdempotent(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		places int
	}{
		{name: "already exact", v: 1.25, places: 5},
		{name: "integer", v: 3, places: 5},
		{name: "zero places", v: 2, places: 0},
		{name: "negative value", v: -1.73205, places: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := roundToPlaces(tt.v, tt.places)
			assert.Equal(t, once, roundToPlaces(once, tt.places))
			assert.Equal(t, tt.v, once, "value already at target precision must not move")
		})
	}
}

func TestDecimalPlaces(t *testing.T) {
	assert.Equal(t, 5, decimalPlaces(1e-5))
	assert.Equal(t, 1, decimalPlaces(0.5))
	assert.Equal(t, 0, decimalPlaces(0))
	assert.Equal(t, 0, decimalPlaces(-1))
	assert.Equal(t, 0, decimalPlaces(2))
}

func TestInsertRootDeduplicates(t *testing.T) {
	tol := 1e-5

	roots := insertRoot(nil, 2.0000001, tol)
	roots = insertRoot(roots, 2.0000002, tol)
	require.Len(t, roots, 1)
	// First-computed wins.
	assert.Equal(t, 2.0000001, roots[0])

	roots = insertRoot(roots, 1, tol)
	roots = insertRoot(roots, 3, tol)
	require.Len(t, roots, 3)
	assert.True(t, floats.EqualApprox([]float64{1, 2.0000001, 3}, roots, 1e-12))
}
