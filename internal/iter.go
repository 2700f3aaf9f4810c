package internal

import (
	"iter"
)

// Permutations yields every ordering of items, in place. The yielded
// slice is reused between iterations; copy it to retain.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		perm := append([]T{}, items...)

		var recurse func(k int) bool
		recurse = func(k int) bool {
			if k == len(perm) {
				return yield(perm)
			}
			for i := k; i < len(perm); i++ {
				perm[k], perm[i] = perm[i], perm[k]
				if !recurse(k + 1) {
					return false
				}
				perm[k], perm[i] = perm[i], perm[k]
			}
			return true
		}
		recurse(0)
	}
}
