// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kyber

type polyVec struct {
	vec [k]poly
}

func (r *polyVec) add(a, b *polyVec) {
	for i := range r.vec {
		r.vec[i].add(&a.vec[i], &b.vec[i])
	}
}

func (r *polyVec) reduce() {
	for i := range r.vec {
		r.vec[i].reduce()
	}
}

func (r *polyVec) ntt() {
	for i := range r.vec {
		r.vec[i].ntt()
	}
}

func (r *polyVec) invNTT() {
	for i := range r.vec {
		r.vec[i].invNTT()
	}
}

// basemulAcc sets r to the transformed-domain dot product of a and b.
func (r *poly) basemulAcc(a, b *polyVec) {
	var t poly
	polyBasemul(&r.coeffs, &a.vec[0].coeffs, &b.vec[0].coeffs)
	for i := 1; i < k; i++ {
		polyBasemul(&t.coeffs, &a.vec[i].coeffs, &b.vec[i].coeffs)
		r.add(r, &t)
	}
	r.reduce()
}

func (a *polyVec) toBytes(r []byte) {
	for i := range a.vec {
		a.vec[i].toBytes(r[i*polyBytes:])
	}
}

func (r *polyVec) fromBytes(a []byte) {
	for i := range r.vec {
		r.vec[i].fromBytes(a[i*polyBytes:])
	}
}

// compress packs each coefficient to du bits, four per five bytes.
func (a *polyVec) compress(r []byte) {
	var t [4]uint16
	for i := range a.vec {
		out := r[i*320:]
		for j := 0; j < n/4; j++ {
			for m := 0; m < 4; m++ {
				u := uint32(csubq(barrettReduce(a.vec[i].coeffs[4*j+m])))
				t[m] = uint16(((u << du) + q/2) / q & 0x3FF)
			}
			out[5*j] = byte(t[0])
			out[5*j+1] = byte(t[0]>>8) | byte(t[1]<<2)
			out[5*j+2] = byte(t[1]>>6) | byte(t[2]<<4)
			out[5*j+3] = byte(t[2]>>4) | byte(t[3]<<6)
			out[5*j+4] = byte(t[3] >> 2)
		}
	}
}

func (r *polyVec) decompress(a []byte) {
	for i := range r.vec {
		in := a[i*320:]
		for j := 0; j < n/4; j++ {
			b := in[5*j : 5*j+5]
			t := [4]uint16{
				uint16(b[0]) | uint16(b[1])<<8,
				uint16(b[1])>>2 | uint16(b[2])<<6,
				uint16(b[2])>>4 | uint16(b[3])<<4,
				uint16(b[3])>>6 | uint16(b[4])<<2,
			}
			for m := 0; m < 4; m++ {
				r.vec[i].coeffs[4*j+m] = int16((uint32(t[m]&0x3FF)*q + 512) >> 10)
			}
		}
	}
}
