package mathx

import "golang.org/x/exp/constraints"

// Wrap maps i into [0, n) with wraparound in both directions.
// n <= 0 yields 0.
func Wrap[T constraints.Signed](i, n T) T {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Step moves index i by delta within a ring of n entries.
func Step[T constraints.Signed](i, delta, n T) T { return Wrap(i+delta, n) }
