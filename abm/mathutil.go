package abm

import (
	"golang.org/x/exp/constraints"
)

// Generic absolute value
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Returns the largest value in vec and the index where it first occurs.
// An empty slice returns the zero value and -1.
func Peak[S ~[]E, E constraints.Ordered](vec S) (E, int) {
	var best E
	index := -1
	for i, v := range vec {
		if index < 0 || v > best {
			best = v
			index = i
		}
	}
	return best, index
}
