package utils

import "math/rand"

// Sample picks n distinct elements of items uniformly at random using a
// partial Fisher-Yates shuffle over a copy. The caller checks n <= len(items).
func Sample[T any](rng *rand.Rand, items []T, n int) []T {
	pool := make([]T, len(items))
	copy(pool, items)

	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
