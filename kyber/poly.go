// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kyber

import "github.com/luxfi/pqc/sha3"

type poly struct {
	coeffs [n]int16
}

func (r *poly) add(a, b *poly) {
	for i := range r.coeffs {
		r.coeffs[i] = a.coeffs[i] + b.coeffs[i]
	}
}

func (r *poly) sub(a, b *poly) {
	for i := range r.coeffs {
		r.coeffs[i] = a.coeffs[i] - b.coeffs[i]
	}
}

func (r *poly) reduce() {
	for i := range r.coeffs {
		r.coeffs[i] = barrettReduce(r.coeffs[i])
	}
}

// toMont multiplies every coefficient by 2^16 mod q.
func (r *poly) toMont() {
	const f = int32((uint64(1) << 32) % q)
	for i := range r.coeffs {
		r.coeffs[i] = montgomeryReduce(int32(r.coeffs[i]) * f)
	}
}

func (r *poly) ntt() {
	ntt(&r.coeffs)
	r.reduce()
}

func (r *poly) invNTT() {
	invNTT(&r.coeffs)
}

// getNoiseEta samples a centered binomial distribution with parameter 2 from
// SHAKE-256(seed || nonce).
func (r *poly) getNoiseEta(seed []byte, nonce byte) {
	buf := make([]byte, eta1*n/4)
	st := sha3.NewShake256()
	st.Absorb(seed[:symBytes])
	st.Absorb([]byte{nonce})
	st.Read(buf)
	r.cbd2(buf)
}

// cbd2 maps a byte stream to coefficients a - b where a and b are sums of
// two bits each.
func (r *poly) cbd2(buf []byte) {
	for i := 0; i < n/8; i++ {
		t := uint32(buf[4*i]) | uint32(buf[4*i+1])<<8 | uint32(buf[4*i+2])<<16 | uint32(buf[4*i+3])<<24
		d := t & 0x55555555
		d += (t >> 1) & 0x55555555
		for j := 0; j < 8; j++ {
			a := int16((d >> (4 * uint(j))) & 0x3)
			b := int16((d >> (4*uint(j) + 2)) & 0x3)
			r.coeffs[8*i+j] = a - b
		}
	}
}

// toBytes packs 12-bit standard representatives, two per three bytes.
func (a *poly) toBytes(r []byte) {
	for i := 0; i < n/2; i++ {
		t0 := uint16(csubq(barrettReduce(a.coeffs[2*i])))
		t1 := uint16(csubq(barrettReduce(a.coeffs[2*i+1])))
		r[3*i] = byte(t0)
		r[3*i+1] = byte(t0>>8) | byte(t1<<4)
		r[3*i+2] = byte(t1 >> 4)
	}
}

func (r *poly) fromBytes(a []byte) {
	for i := 0; i < n/2; i++ {
		r.coeffs[2*i] = int16(uint16(a[3*i])|uint16(a[3*i+1])<<8) & 0xFFF
		r.coeffs[2*i+1] = int16(uint16(a[3*i+1])>>4|uint16(a[3*i+2])<<4) & 0xFFF
	}
}

// fromMsg lifts message bits to q/2 multiples.
func (r *poly) fromMsg(msg []byte) {
	for i := 0; i < n/8; i++ {
		for j := 0; j < 8; j++ {
			mask := -int16((msg[i] >> uint(j)) & 1)
			r.coeffs[8*i+j] = mask & ((q + 1) / 2)
		}
	}
}

// toMsg rounds each coefficient to one bit.
func (a *poly) toMsg(msg []byte) {
	for i := 0; i < n/8; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			t := uint32(csubq(barrettReduce(a.coeffs[8*i+j])))
			t = ((t << 1) + q/2) / q & 1
			msg[i] |= byte(t << uint(j))
		}
	}
}

// compress packs each coefficient to dv bits.
func (a *poly) compress(r []byte) {
	var t [8]byte
	for i := 0; i < n/8; i++ {
		for j := 0; j < 8; j++ {
			u := uint32(csubq(barrettReduce(a.coeffs[8*i+j])))
			t[j] = byte(((u << dv) + q/2) / q & 0x0F)
		}
		r[4*i] = t[0] | t[1]<<4
		r[4*i+1] = t[2] | t[3]<<4
		r[4*i+2] = t[4] | t[5]<<4
		r[4*i+3] = t[6] | t[7]<<4
	}
}

func (r *poly) decompress(a []byte) {
	for i := 0; i < n/2; i++ {
		r.coeffs[2*i] = int16((uint32(a[i]&0x0F)*q + 8) >> 4)
		r.coeffs[2*i+1] = int16((uint32(a[i]>>4)*q + 8) >> 4)
	}
}
