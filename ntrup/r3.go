// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ntrup

// r3Mult multiplies two ternary ring elements in GF(3)[x]/(x^p - x - 1).
func r3Mult(h *[p]int8, f *[p]int8, g *[p]int8) {
	var fg [2*p - 1]int32

	for i := 0; i < p; i++ {
		var result int32
		for j := 0; j <= i; j++ {
			result += int32(f[j]) * int32(g[i-j])
		}
		fg[i] = result
	}
	for i := p; i < 2*p-1; i++ {
		var result int32
		for j := i - p + 1; j < p; j++ {
			result += int32(f[j]) * int32(g[i-j])
		}
		fg[i] = result
	}

	for i := 2*p - 2; i >= p; i-- {
		fg[i-p] += fg[i]
		fg[i-p+1] += fg[i]
	}

	for i := 0; i < p; i++ {
		h[i] = mod3Freeze(fg[i])
	}
}

// r3Weight counts the nonzero coefficients.
func r3Weight(f *[p]int8) int {
	wt := 0
	for i := 0; i < p; i++ {
		wt += int(f[i] & 1)
	}
	return wt
}
