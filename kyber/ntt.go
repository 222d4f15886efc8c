// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kyber

// rootOfUnity is a primitive 256th root of unity mod q. x^256+1 splits into
// 128 quadratic factors, so the transform runs seven layers and products
// finish with a basemul over coefficient pairs. Twiddles are derived here at
// start-up.
const rootOfUnity = 17

var zetas [128]int16

func powModQ(base, exp uint32) uint32 {
	r := uint64(1)
	b := uint64(base) % q
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			r = r * b % q
		}
		b = b * b % q
	}
	return uint32(r)
}

func bitrev7(x uint32) uint32 {
	var r uint32
	for i := 0; i < 7; i++ {
		r = (r << 1) | ((x >> i) & 1)
	}
	return r
}

func init() {
	mont := uint32((1 << 16) % q)
	for i := uint32(0); i < 128; i++ {
		z := uint64(mont) * uint64(powModQ(rootOfUnity, bitrev7(i))) % q
		// Store centered so products stay inside the Montgomery range.
		if z > q/2 {
			zetas[i] = int16(z) - q
		} else {
			zetas[i] = int16(z)
		}
	}
}

// ntt is the in-place forward transform down to quadratic factors; output in
// bit-reversed order with coefficients bounded by 7q in absolute value.
func ntt(p *[n]int16) {
	kk := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[kk]
			kk++
			for j := start; j < start+length; j++ {
				t := fqMul(zeta, p[j+length])
				p[j+length] = p[j] - t
				p[j] = p[j] + t
			}
		}
	}
}

// invNTT is the inverse transform, including the scaling by 2^16/128 folded
// into the last pass.
func invNTT(p *[n]int16) {
	// f = mont^2/128 mod q.
	f := int16(powModQ(uint32((1<<16)%q), 2) * powModQ(128, q-2) % q)

	kk := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[kk]
			kk--
			for j := start; j < start+length; j++ {
				t := p[j]
				p[j] = barrettReduce(t + p[j+length])
				p[j+length] = p[j+length] - t
				p[j+length] = fqMul(zeta, p[j+length])
			}
		}
	}
	for j := 0; j < n; j++ {
		p[j] = fqMul(p[j], f)
	}
}

// basemul multiplies the degree-one residues (a0 + a1 x)(b0 + b1 x) modulo
// x^2 - zeta.
func basemul(r []int16, a, b []int16, zeta int16) {
	r[0] = fqMul(a[1], b[1])
	r[0] = fqMul(r[0], zeta)
	r[0] += fqMul(a[0], b[0])
	r[1] = fqMul(a[0], b[1])
	r[1] += fqMul(a[1], b[0])
}

// polyBasemul multiplies a and b pointwise in the transformed domain.
func polyBasemul(r, a, b *[n]int16) {
	for i := 0; i < n/4; i++ {
		basemul(r[4*i:], a[4*i:4*i+2], b[4*i:4*i+2], zetas[64+i])
		basemul(r[4*i+2:], a[4*i+2:4*i+4], b[4*i+2:4*i+4], -zetas[64+i])
	}
}
