package common

import (
	"cmp"
	"slices"
)

// SortedKeys returns the keys of the map in ascending order.
// Map iteration order is randomized; every place that walks a map and needs
// deterministic output (validation, year listings) goes through this.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
