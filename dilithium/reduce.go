// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dilithium

// montgomeryReduce maps a < q*2^32 to a*2^-32 mod q, with result < 2q.
func montgomeryReduce(a uint64) uint32 {
	t := uint64(uint32(a) * qInv)
	return uint32((a + t*q) >> 32)
}

// reduce32 maps a < 2^32 - 2^22 to a representative < 2^24 congruent mod q.
func reduce32(a uint32) uint32 {
	t := a & 0x7FFFFF
	a >>= 23
	t += (a << 13) - a
	return t
}

// csubq conditionally subtracts q, without branching on the value.
func csubq(a uint32) uint32 {
	a -= q
	a += uint32(int32(a)>>31) & q
	return a
}

// freeze maps any representative into [0, q).
func freeze(a uint32) uint32 {
	return csubq(reduce32(a))
}
