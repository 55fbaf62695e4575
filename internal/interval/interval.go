// Package interval locates the run of elements in a sorted slice whose
// keys fall inside a half-open interval.
//
// The search runs in two phases. A coarse bisection narrows the window
// from both ends at once until it either empties or finds a split point
// whose key lies inside the interval. Two plain bisections then pin the
// run's endpoints on either side of the split. The slice is only ever
// read through the key function, so callers search structs by any
// ordered field without copying keys out.
package interval

import (
	"cmp"
	"errors"
)

var (
	// ErrReversedBounds indicates key bounds with xl > xr.
	ErrReversedBounds = errors.New("interval: reversed key bounds")

	// ErrInvalidWindow indicates a search window with endpoints outside
	// the slice or in reverse order.
	ErrInvalidWindow = errors.New("interval: invalid search window")
)

// Bounds returns the pair (l, r) delimiting the run of elements of s whose
// keys fall inside the half-open interval [xl, xr). s must be sorted
// ascending by key. The result satisfies:
//
//	key(v) <  xl        for every v in s[:l]
//	xl <= key(v) < xr   for every v in s[l:r]
//	key(v) >= xr        for every v in s[r:]
//
// A key equal to xr lands outside the run, so adjacent intervals share an
// endpoint without sharing elements. When no key falls inside the
// interval, l == r at the insertion point. Bounds returns
// ErrReversedBounds when xl > xr.
func Bounds[E any, K cmp.Ordered](s []E, xl, xr K, key func(E) K) (int, int, error) {
	return BoundsWithin(s, xl, xr, 0, len(s), key)
}

// Keys is Bounds for a slice that is its own key.
func Keys[K cmp.Ordered](s []K, xl, xr K) (int, int, error) {
	return Bounds(s, xl, xr, func(k K) K { return k })
}

// BoundsWithin is Bounds restricted to the window s[lo:hi). Elements
// outside the window are never examined and the returned pair stays
// inside [lo, hi]. BoundsWithin returns ErrInvalidWindow unless
// 0 <= lo <= hi <= len(s).
func BoundsWithin[E any, K cmp.Ordered](s []E, xl, xr K, lo, hi int, key func(E) K) (int, int, error) {
	if lo < 0 || hi > len(s) || lo > hi {
		return 0, 0, ErrInvalidWindow
	}
	if xl > xr {
		return 0, 0, ErrReversedBounds
	}
	if lo == hi {
		return lo, hi, nil
	}

	// Narrow the window from both ends at once. Everything below lo
	// stays < xl and everything at or above hi stays >= xr. The loop
	// body runs at least once because lo < hi here.
	var mid int
	for lo < hi {
		mid = lo + (hi-lo)/2
		v := key(s[mid])
		if v >= xr {
			hi = mid
		} else if v < xl {
			lo = mid + 1
		} else {
			// xl <= v < xr: mid splits the rest into two plain
			// bisections.
			break
		}
	}

	// When the loop drained the window, no key lies inside [xl, xr):
	// either lo == hi == mid (last move was hi = mid) or
	// lo == hi == mid+1 (last move was lo = mid+1). Either way the
	// bisections below settle on l == r == lo.
	llo, lhi := lo, mid
	rlo, rhi := mid, hi

	// Leftmost index at or above llo whose key is >= xl.
	for llo < lhi {
		m := llo + (lhi-llo)/2
		if key(s[m]) < xl {
			llo = m + 1
		} else {
			lhi = m
		}
	}

	// Leftmost index at or above rlo whose key is >= xr.
	for rlo < rhi {
		m := rlo + (rhi-rlo)/2
		if key(s[m]) >= xr {
			rhi = m
		} else {
			rlo = m + 1
		}
	}

	return llo, rlo, nil
}
