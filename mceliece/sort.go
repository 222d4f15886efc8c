// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mceliece

// minmax64 is a branchless compare-and-swap on 63-bit values.
func minmax64(x, y *uint64) {
	xi := *x
	yi := *y
	c := yi - xi
	c >>= 63
	c = -c
	c &= xi ^ yi
	*x = xi ^ c
	*y = yi ^ c
}

// sortUint64 sorts 63-bit values with a merge-exchange network; the
// comparison sequence is data-independent.
func sortUint64(x []uint64) {
	n := len(x)
	if n < 2 {
		return
	}
	top := 1
	for top < n-top {
		top += top
	}
	for p := top; p > 0; p >>= 1 {
		for i := 0; i < n-p; i++ {
			if i&p == 0 {
				minmax64(&x[i], &x[i+p])
			}
		}
		for q := top; q > p; q >>= 1 {
			for i := 0; i < n-q; i++ {
				if i&p == 0 {
					minmax64(&x[i+p], &x[i+q])
				}
			}
		}
	}
}
