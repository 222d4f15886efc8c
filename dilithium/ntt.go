// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dilithium

// rootOfUnity is a primitive 512th root of unity mod q, so the NTT runs over
// Z_q[x]/(x^256+1). The twiddle tables are derived from it at start-up
// rather than transcribed.
const rootOfUnity = 1753

var (
	// zetas[i] = 2^32 * rootOfUnity^bitrev8(i) mod q, consumed in order by
	// the forward transform.
	zetas [n]uint32
	// zetasInv[i] = -zetas[255-i] mod q for i < 255; zetasInv[255] folds the
	// Montgomery factor and 256^-1 into the final scaling pass.
	zetasInv [n]uint32
)

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

func bitrev8(x uint32) uint32 {
	var r uint32
	for i := 0; i < 8; i++ {
		r = (r << 1) | ((x >> i) & 1)
	}
	return r
}

func init() {
	mont := uint32((1 << 32) % uint64(q))
	for i := uint32(0); i < n; i++ {
		zetas[i] = uint32(uint64(mont) * uint64(powModQ(rootOfUnity, bitrev8(i))) % q)
	}
	for i := 0; i < n-1; i++ {
		zetasInv[i] = q - zetas[n-1-i]
	}
	inv256 := powModQ(n, q-2)
	zetasInv[n-1] = uint32(uint64(mont) * uint64(mont) % q * uint64(inv256) % q)
}

// ntt is the in-place forward transform, Cooley–Tukey over bit-reversed
// twiddles. No reductions after additions, so output coefficients grow up to
// 16q beyond the input; output order is bit-reversed.
func ntt(p *[n]uint32) {
	kk := 1
	for length := n / 2; length > 0; length >>= 1 {
		for start := 0; start < n; start += 2 * length {
			zeta := uint64(zetas[kk])
			kk++
			for j := start; j < start+length; j++ {
				t := montgomeryReduce(zeta * uint64(p[j+length]))
				p[j+length] = p[j] + 2*q - t
				p[j] = p[j] + t
			}
		}
	}
}

// invNTT is the in-place inverse transform (Gentleman–Sande), including the
// multiplication by 2^32 that undoes the Montgomery factor from pointwise
// products. Input coefficients must be below 2q; outputs are below 2q.
func invNTT(p *[n]uint32) {
	kk := 0
	for length := 1; length < n; length <<= 1 {
		for start := 0; start < n; start += 2 * length {
			zeta := uint64(zetasInv[kk])
			kk++
			for j := start; j < start+length; j++ {
				t := p[j]
				p[j] = t + p[j+length]
				p[j+length] = t + n*q - p[j+length]
				p[j+length] = montgomeryReduce(zeta * uint64(p[j+length]))
			}
		}
	}
	f := uint64(zetasInv[n-1])
	for j := 0; j < n; j++ {
		p[j] = montgomeryReduce(f * uint64(p[j]))
	}
}
