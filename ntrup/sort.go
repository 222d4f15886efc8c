// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ntrup

// minmax is a branchless compare-and-swap on signed 32-bit values.
func minmax(x, y *int32) {
	xi := uint32(*x)
	yi := uint32(*y)
	xy := xi ^ yi
	c := yi - xi
	c ^= xy & (c ^ yi)
	c >>= 31
	c = -c
	c &= xy
	*x = int32(xi ^ c)
	*y = int32(yi ^ c)
}

// sortInt32 sorts in place with a Batcher-style merge-exchange network; the
// sequence of comparisons is independent of the data.
func sortInt32(x []int32) {
	n := int32(len(x))
	if n < 2 {
		return
	}
	top := int32(1)
	for top < n-top {
		top += top
	}
	for pp := top; pp > 0; pp >>= 1 {
		for i := int32(0); i < n-pp; i++ {
			if i&pp == 0 {
				minmax(&x[i], &x[i+pp])
			}
		}
		for qq := top; qq > pp; qq >>= 1 {
			for i := int32(0); i < n-qq; i++ {
				if i&pp == 0 {
					minmax(&x[i+pp], &x[i+qq])
				}
			}
		}
	}
}
