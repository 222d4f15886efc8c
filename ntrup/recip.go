// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ntrup

// Inversions in GF(3)[x]/(x^p-x-1) and GF(q)[x]/(x^p-x-1) by the extended
// Euclidean algorithm. x^p-x-1 is irreducible over GF(q), so there every
// nonzero element is invertible and the boolean result rejects only the zero
// polynomial. Over GF(3) it is not irreducible: the GF(3) inverse also
// reports false for nonzero inputs that share a factor with it, and key
// generation, the only caller, then draws a new g.

func deg3(a []int8) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i
		}
	}
	return -1
}

// r3Recip computes 1/g, returning false if g is zero or not invertible.
func r3Recip(out *[p]int8, g *[p]int8) bool {
	r0 := make([]int8, p+1)
	r0[0] = -1
	r0[1] = -1
	r0[p] = 1
	r1 := make([]int8, p+1)
	copy(r1, g[:])
	v0 := make([]int8, p+1)
	v1 := make([]int8, p+1)
	v1[0] = 1

	for {
		d0 := deg3(r0)
		d1 := deg3(r1)
		if d1 < 0 {
			break
		}
		if d0 < d1 {
			r0, r1 = r1, r0
			v0, v1 = v1, v0
			continue
		}
		// In GF(3) every nonzero element is its own inverse.
		c := mod3Freeze(int32(r0[d0]) * int32(r1[d1]))
		shift := d0 - d1
		for i := 0; i <= d1; i++ {
			r0[i+shift] = mod3Freeze(int32(r0[i+shift]) - int32(c)*int32(r1[i]))
		}
		for i := 0; i+shift <= p; i++ {
			v0[i+shift] = mod3Freeze(int32(v0[i+shift]) - int32(c)*int32(v1[i]))
		}
	}

	d0 := deg3(r0)
	if d0 != 0 {
		return false
	}
	// Fold a possible x^p term of v0 back using x^p = x + 1.
	if v0[p] != 0 {
		t := v0[p]
		v0[p] = 0
		v0[0] = mod3Freeze(int32(v0[0]) + int32(t))
		v0[1] = mod3Freeze(int32(v0[1]) + int32(t))
	}
	cInv := r0[0] // self-inverse in GF(3)
	for i := 0; i < p; i++ {
		out[i] = mod3Freeze(int32(v0[i]) * int32(cInv))
	}
	return true
}

func degQ(a []int16) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i
		}
	}
	return -1
}

func mulQ(a, b int16) int16 {
	return modqFreeze(int32(a) * int32(b))
}

// invQ computes a^(q-2) by square and multiply.
func invQ(a int16) int16 {
	r := int16(1)
	b := a
	for e := uint32(q - 2); e > 0; e >>= 1 {
		if e&1 == 1 {
			r = mulQ(r, b)
		}
		b = mulQ(b, b)
	}
	return r
}

// rqRecip3 computes 1/(3f) for a ternary f, returning false if f is zero.
func rqRecip3(out *[p]int16, f *[p]int8) bool {
	r0 := make([]int16, p+1)
	r0[0] = -1
	r0[1] = -1
	r0[p] = 1
	r1 := make([]int16, p+1)
	for i := 0; i < p; i++ {
		r1[i] = int16(f[i])
	}
	v0 := make([]int16, p+1)
	v1 := make([]int16, p+1)
	v1[0] = 1

	for {
		d0 := degQ(r0)
		d1 := degQ(r1)
		if d1 < 0 {
			break
		}
		if d0 < d1 {
			r0, r1 = r1, r0
			v0, v1 = v1, v0
			continue
		}
		c := mulQ(r0[d0], invQ(r1[d1]))
		shift := d0 - d1
		for i := 0; i <= d1; i++ {
			r0[i+shift] = modqFreeze(int32(r0[i+shift]) - int32(c)*int32(r1[i]))
		}
		for i := 0; i+shift <= p; i++ {
			v0[i+shift] = modqFreeze(int32(v0[i+shift]) - int32(c)*int32(v1[i]))
		}
	}

	if degQ(r0) != 0 {
		return false
	}
	if v0[p] != 0 {
		t := v0[p]
		v0[p] = 0
		v0[0] = modqFreeze(int32(v0[0]) + int32(t))
		v0[1] = modqFreeze(int32(v0[1]) + int32(t))
	}

	// 1/(3f) = 3^-1 * 1/f; 3^-1 mod q = 3061.
	scale := mulQ(invQ(r0[0]), modqFreeze(3061))
	for i := 0; i < p; i++ {
		out[i] = mulQ(v0[i], scale)
	}
	return true
}
