package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Min returns the smaller value between two numbers.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger value between two numbers.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts x to the [lo, hi] interval.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Max(lo, Min(x, hi))
}

// AtLeastOne rounds v half away from zero and never returns less than one.
// It keeps scaled stroke widths visible on the smallest icons.
func AtLeastOne(v float64) float64 {
	return Max(1, math.Round(v))
}
