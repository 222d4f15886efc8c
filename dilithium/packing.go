// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dilithium

// polyEtaPack packs coefficients in [-eta, eta] as 4-bit values 2*eta - ...,
// two per byte, after mapping from the q + eta - c representative.
func polyEtaPack(r []byte, a *poly) {
	for i := 0; i < n/2; i++ {
		t0 := byte(q + eta - a.coeffs[2*i])
		t1 := byte(q + eta - a.coeffs[2*i+1])
		r[i] = t0 | t1<<4
	}
}

func polyEtaUnpack(r *poly, a []byte) {
	for i := 0; i < n/2; i++ {
		r.coeffs[2*i] = q + eta - uint32(a[i]&0x0F)
		r.coeffs[2*i+1] = q + eta - uint32(a[i]>>4)
	}
}

// polyT1Pack packs 9-bit t1 coefficients, eight per nine bytes.
func polyT1Pack(r []byte, a *poly) {
	for i := 0; i < n/8; i++ {
		c := a.coeffs[8*i : 8*i+8]
		r[9*i] = byte(c[0])
		r[9*i+1] = byte(c[0]>>8) | byte(c[1]<<1)
		r[9*i+2] = byte(c[1]>>7) | byte(c[2]<<2)
		r[9*i+3] = byte(c[2]>>6) | byte(c[3]<<3)
		r[9*i+4] = byte(c[3]>>5) | byte(c[4]<<4)
		r[9*i+5] = byte(c[4]>>4) | byte(c[5]<<5)
		r[9*i+6] = byte(c[5]>>3) | byte(c[6]<<6)
		r[9*i+7] = byte(c[6]>>2) | byte(c[7]<<7)
		r[9*i+8] = byte(c[7] >> 1)
	}
}

func polyT1Unpack(r *poly, a []byte) {
	for i := 0; i < n/8; i++ {
		b := a[9*i : 9*i+9]
		r.coeffs[8*i] = (uint32(b[0]) | uint32(b[1])<<8) & 0x1FF
		r.coeffs[8*i+1] = (uint32(b[1])>>1 | uint32(b[2])<<7) & 0x1FF
		r.coeffs[8*i+2] = (uint32(b[2])>>2 | uint32(b[3])<<6) & 0x1FF
		r.coeffs[8*i+3] = (uint32(b[3])>>3 | uint32(b[4])<<5) & 0x1FF
		r.coeffs[8*i+4] = (uint32(b[4])>>4 | uint32(b[5])<<4) & 0x1FF
		r.coeffs[8*i+5] = (uint32(b[5])>>5 | uint32(b[6])<<3) & 0x1FF
		r.coeffs[8*i+6] = (uint32(b[6])>>6 | uint32(b[7])<<2) & 0x1FF
		r.coeffs[8*i+7] = (uint32(b[7])>>7 | uint32(b[8])<<1) & 0x1FF
	}
}

// polyT0Pack packs d-bit t0 coefficients, four per seven bytes, after
// re-centering to unsigned by 2^(d-1).
func polyT0Pack(r []byte, a *poly) {
	var t [4]uint32
	for i := 0; i < n/4; i++ {
		t[0] = q + (1 << (d - 1)) - a.coeffs[4*i]
		t[1] = q + (1 << (d - 1)) - a.coeffs[4*i+1]
		t[2] = q + (1 << (d - 1)) - a.coeffs[4*i+2]
		t[3] = q + (1 << (d - 1)) - a.coeffs[4*i+3]

		r[7*i] = byte(t[0])
		r[7*i+1] = byte(t[0]>>8) | byte(t[1]<<6)
		r[7*i+2] = byte(t[1] >> 2)
		r[7*i+3] = byte(t[1]>>10) | byte(t[2]<<4)
		r[7*i+4] = byte(t[2] >> 4)
		r[7*i+5] = byte(t[2]>>12) | byte(t[3]<<2)
		r[7*i+6] = byte(t[3] >> 6)
	}
}

func polyT0Unpack(r *poly, a []byte) {
	for i := 0; i < n/4; i++ {
		b := a[7*i : 7*i+7]
		r.coeffs[4*i] = uint32(b[0]) | uint32(b[1]&0x3F)<<8
		r.coeffs[4*i+1] = uint32(b[1])>>6 | uint32(b[2])<<2 | uint32(b[3]&0x0F)<<10
		r.coeffs[4*i+2] = uint32(b[3])>>4 | uint32(b[4])<<4 | uint32(b[5]&0x03)<<12
		r.coeffs[4*i+3] = uint32(b[5])>>2 | uint32(b[6])<<6

		r.coeffs[4*i] = q + (1 << (d - 1)) - r.coeffs[4*i]
		r.coeffs[4*i+1] = q + (1 << (d - 1)) - r.coeffs[4*i+1]
		r.coeffs[4*i+2] = q + (1 << (d - 1)) - r.coeffs[4*i+2]
		r.coeffs[4*i+3] = q + (1 << (d - 1)) - r.coeffs[4*i+3]
	}
}

// polyZPack packs 20-bit z coefficients, two per five bytes, after mapping
// to {0, ..., 2*gamma1 - 2}.
func polyZPack(r []byte, a *poly) {
	var t [2]uint32
	for i := 0; i < n/2; i++ {
		t[0] = gamma1 - 1 - a.coeffs[2*i]
		t[0] += uint32(int32(t[0])>>31) & q
		t[1] = gamma1 - 1 - a.coeffs[2*i+1]
		t[1] += uint32(int32(t[1])>>31) & q

		r[5*i] = byte(t[0])
		r[5*i+1] = byte(t[0] >> 8)
		r[5*i+2] = byte(t[0]>>16) | byte(t[1]<<4)
		r[5*i+3] = byte(t[1] >> 4)
		r[5*i+4] = byte(t[1] >> 12)
	}
}

func polyZUnpack(r *poly, a []byte) {
	for i := 0; i < n/2; i++ {
		b := a[5*i : 5*i+5]
		r.coeffs[2*i] = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2]&0x0F)<<16
		r.coeffs[2*i+1] = uint32(b[2])>>4 | uint32(b[3])<<4 | uint32(b[4])<<12

		r.coeffs[2*i] = gamma1 - 1 - r.coeffs[2*i]
		r.coeffs[2*i] += uint32(int32(r.coeffs[2*i])>>31) & q
		r.coeffs[2*i+1] = gamma1 - 1 - r.coeffs[2*i+1]
		r.coeffs[2*i+1] += uint32(int32(r.coeffs[2*i+1])>>31) & q
	}
}

// polyW1Pack packs 4-bit w1 coefficients, two per byte.
func polyW1Pack(r []byte, a *poly) {
	for i := 0; i < n/2; i++ {
		r[i] = byte(a.coeffs[2*i]) | byte(a.coeffs[2*i+1]<<4)
	}
}

func packPK(pk []byte, rho []byte, t1 *vecK) {
	copy(pk, rho[:SeedSize])
	for i := 0; i < k; i++ {
		polyT1Pack(pk[SeedSize+i*polT1PackedSize:], &t1.vec[i])
	}
}

func unpackPK(rho []byte, t1 *vecK, pk []byte) {
	copy(rho, pk[:SeedSize])
	for i := 0; i < k; i++ {
		polyT1Unpack(&t1.vec[i], pk[SeedSize+i*polT1PackedSize:])
	}
}

func packSK(sk, rho, key, tr []byte, s1 *vecL, s2, t0 *vecK) {
	copy(sk, rho[:SeedSize])
	sk = sk[SeedSize:]
	copy(sk, key[:SeedSize])
	sk = sk[SeedSize:]
	copy(sk, tr[:crhSize])
	sk = sk[crhSize:]
	for i := 0; i < l; i++ {
		polyEtaPack(sk[i*polEtaPackedSize:], &s1.vec[i])
	}
	sk = sk[l*polEtaPackedSize:]
	for i := 0; i < k; i++ {
		polyEtaPack(sk[i*polEtaPackedSize:], &s2.vec[i])
	}
	sk = sk[k*polEtaPackedSize:]
	for i := 0; i < k; i++ {
		polyT0Pack(sk[i*polT0PackedSize:], &t0.vec[i])
	}
}

func unpackSK(rho, key, tr []byte, s1 *vecL, s2, t0 *vecK, sk []byte) {
	copy(rho, sk[:SeedSize])
	sk = sk[SeedSize:]
	copy(key, sk[:SeedSize])
	sk = sk[SeedSize:]
	copy(tr, sk[:crhSize])
	sk = sk[crhSize:]
	for i := 0; i < l; i++ {
		polyEtaUnpack(&s1.vec[i], sk[i*polEtaPackedSize:])
	}
	sk = sk[l*polEtaPackedSize:]
	for i := 0; i < k; i++ {
		polyEtaUnpack(&s2.vec[i], sk[i*polEtaPackedSize:])
	}
	sk = sk[k*polEtaPackedSize:]
	for i := 0; i < k; i++ {
		polyT0Unpack(&t0.vec[i], sk[i*polT0PackedSize:])
	}
}

// packSig encodes z || h || c. Hint positions are emitted in ascending order
// per polynomial with the running count at offset omega+i; both properties
// are re-verified at unpack.
func packSig(sig []byte, z *vecL, h *vecK, c *poly) {
	for i := 0; i < l; i++ {
		polyZPack(sig[i*polZPackedSize:], &z.vec[i])
	}
	sig = sig[l*polZPackedSize:]

	// Encode h.
	off := 0
	for i := 0; i < k; i++ {
		for j := 0; j < n; j++ {
			if h.vec[i].coeffs[j] != 0 {
				sig[off] = byte(j)
				off++
			}
		}
		sig[omega+i] = byte(off)
	}
	for off < omega {
		sig[off] = 0
		off++
	}
	sig = sig[omega+k:]

	// Encode c.
	var signs, mask uint64
	mask = 1
	for i := 0; i < n/8; i++ {
		sig[i] = 0
		for j := 0; j < 8; j++ {
			if c.coeffs[8*i+j] != 0 {
				sig[i] |= 1 << uint(j)
				if c.coeffs[8*i+j] == q-1 {
					signs |= mask
				}
				mask <<= 1
			}
		}
	}
	sig = sig[n/8:]
	for i := 0; i < 8; i++ {
		sig[i] = byte(signs >> (8 * uint(i)))
	}
}

// unpackSig decodes a signature, rejecting any non-canonical hint or
// challenge encoding. The checks are necessary conditions for strong
// unforgeability.
func unpackSig(z *vecL, h *vecK, c *poly, sig []byte) bool {
	for i := 0; i < l; i++ {
		polyZUnpack(&z.vec[i], sig[i*polZPackedSize:])
	}
	sig = sig[l*polZPackedSize:]

	// Decode h.
	off := 0
	for i := 0; i < k; i++ {
		for j := range h.vec[i].coeffs {
			h.vec[i].coeffs[j] = 0
		}
		cnt := int(sig[omega+i])
		if cnt < off || cnt > omega {
			return false
		}
		for j := off; j < cnt; j++ {
			// Positions are strictly increasing within each polynomial.
			if j > off && sig[j] <= sig[j-1] {
				return false
			}
			h.vec[i].coeffs[sig[j]] = 1
		}
		off = cnt
	}
	// All trailing slots up to omega are zero.
	for j := off; j < omega; j++ {
		if sig[j] != 0 {
			return false
		}
	}
	sig = sig[omega+k:]

	// Decode c.
	for i := range c.coeffs {
		c.coeffs[i] = 0
	}
	var signs uint64
	for i := 0; i < 8; i++ {
		signs |= uint64(sig[n/8+i]) << (8 * uint(i))
	}
	// Only tau sign bits may be set.
	if signs>>60 != 0 {
		return false
	}
	for i := 0; i < n/8; i++ {
		for j := 0; j < 8; j++ {
			if (sig[i]>>uint(j))&1 == 1 {
				c.coeffs[8*i+j] = 1
				c.coeffs[8*i+j] ^= uint32(-(signs & 1)) & (1 ^ (q - 1))
				signs >>= 1
			}
		}
	}
	return true
}
