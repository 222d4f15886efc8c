// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kyber

// montgomeryReduce maps a in (-q*2^15, q*2^15) to a*2^-16 mod q in (-q, q).
func montgomeryReduce(a int32) int16 {
	u := int16(a * qInv)
	t := a - int32(u)*q
	return int16(t >> 16)
}

// barrettReduce maps a to a representative congruent mod q in [0, q).
func barrettReduce(a int16) int16 {
	const v = ((1 << 26) + q/2) / q
	t := int16((int32(v)*int32(a) + (1 << 25)) >> 26)
	t = a - t*q
	t += (t >> 15) & q
	return t
}

// fqMul multiplies in Montgomery form.
func fqMul(a, b int16) int16 {
	return montgomeryReduce(int32(a) * int32(b))
}

// csubq conditionally subtracts q without branching.
func csubq(a int16) int16 {
	a -= q
	a += (a >> 15) & q
	return a
}
