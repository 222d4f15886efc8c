// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dilithium

// power2Round splits a into a1*2^d + a0 with the centralized remainder a0
// stored as q + a0.
func power2Round(a uint32, a0 *uint32) uint32 {
	t := int32(a & ((1 << d) - 1))
	t -= (1 << (d - 1)) + 1
	t += (t >> 31) & (1 << d)
	t -= (1 << (d - 1)) - 1
	*a0 = uint32(int32(q) + t)
	return (a - uint32(t)) >> d
}

// decompose splits a into a1*alpha + a0 with |a0| <= alpha/2, the border
// case folding a1 to 0. a must be below q. a0 is stored as q + a0.
func decompose(a uint32, a0 *uint32) uint32 {
	// Centralized remainder mod alpha.
	t := int32(a & 0x7FFFF)
	t += int32(a>>19) << 9
	t -= alpha/2 + 1
	t += (t >> 31) & alpha
	t -= alpha/2 - 1
	a -= uint32(t)

	// Divide by alpha.
	u := int32(a) - 1
	u >>= 31
	a = (a >> 19) + 1
	a -= uint32(u & 1)

	*a0 = uint32(int32(q) + t - int32(a>>4))
	return a & 0x0F
}

// makeHint reports whether adding a0 to a value with high bits a1 flips the
// high bits.
func makeHint(a0, a1 uint32) uint32 {
	if a0 <= gamma2 || a0 > q-gamma2 || (a0 == q-gamma2 && a1 == 0) {
		return 0
	}
	return 1
}

// useHint recovers the high bits of a using the hint.
func useHint(a, hint uint32) uint32 {
	var a0 uint32
	a1 := decompose(a, &a0)
	if hint == 0 {
		return a1
	}
	if a0 > q {
		return (a1 + 1) & 0x0F
	}
	return (a1 - 1) & 0x0F
}
