package polynomial

import "sync"

// pascalTable holds C(n,k) for n <= 10, enough for the polynomial
// degrees seen in typical use without touching the cache.
var pascalTable = [][]float64{
	{1},
	{1, 1},
	{1, 2, 1},
	{1, 3, 3, 1},
	{1, 4, 6, 4, 1},
	{1, 5, 10, 10, 5, 1},
	{1, 6, 15, 20, 15, 6, 1},
	{1, 7, 21, 35, 35, 21, 7, 1},
	{1, 8, 28, 56, 70, 56, 28, 8, 1},
	{1, 9, 36, 84, 126, 126, 84, 36, 9, 1},
	{1, 10, 45, 120, 210, 252, 210, 120, 45, 10, 1},
}

type binomialKey struct {
	n, k int
}

// binomialCache memoizes coefficients above the table range. Entries
// are written at most once per key and recomputation is idempotent, so
// sync.Map needs no further coordination across concurrent callers.
var binomialCache sync.Map

// Binomial returns the binomial coefficient C(n,k) as a float64.
// Out-of-range requests (k < 0 or k > n) return 0.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	if n < len(pascalTable) {
		return pascalTable[n][k]
	}
	if v, ok := binomialCache.Load(binomialKey{n, k}); ok {
		return v.(float64)
	}
	v := Binomial(n-1, k-1) + Binomial(n-1, k)
	binomialCache.Store(binomialKey{n, k}, v)
	return v
}
