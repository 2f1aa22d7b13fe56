package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Between reports lo <= v && v <= hi.
func Between[T constraints.Ordered](v, lo, hi T) bool {
	return v >= lo && v <= hi
}

// HalfOpen reports lo <= v && v < hi. NaN is never inside.
func HalfOpen[T constraints.Ordered](v, lo, hi T) bool {
	return v >= lo && v < hi
}

// AboveUpTo reports lo < v && v <= hi, the shape of a frequency ceiling check.
func AboveUpTo[T constraints.Ordered](v, lo, hi T) bool {
	return v > lo && v <= hi
}
