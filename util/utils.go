package util

import (
	"cmp"
	"slices"

	"golang.org/x/exp/maps"
)

/*
General purpose utilities.
*/

////////////////////////////////////////////////////////////////////////////////

// Okeys returns the keys of a map in sorted order.
func Okeys[T cmp.Ordered, K any](m map[T]K) []T {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// When returns a if cond is true, otherwise b.
func When[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
