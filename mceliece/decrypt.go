// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mceliece

// rootEval evaluates f at a by Horner's method.
func (ps *ParameterSet) rootEval(f []gf, a gf) gf {
	r := f[ps.sysT]
	for i := ps.sysT - 1; i >= 0; i-- {
		r = gfMul(r, a)
		r = gfAdd(r, f[i])
	}
	return r
}

// root evaluates f over the whole support.
func (ps *ParameterSet) root(out []gf, f []gf, support []gf) {
	for i := 0; i < ps.sysN; i++ {
		out[i] = ps.rootEval(f, support[i])
	}
}

// synd computes the 2t syndromes of the received word r under the Goppa
// polynomial f and support.
func (ps *ParameterSet) synd(out []gf, f []gf, support []gf, r []byte) {
	for j := 0; j < 2*ps.sysT; j++ {
		out[j] = 0
	}

	for i := 0; i < ps.sysN; i++ {
		c := gf(r[i/8] >> uint(i%8) & 1)
		e := ps.rootEval(f, support[i])
		eInv := gfInv(gfMul(e, e))

		for j := 0; j < 2*ps.sysT; j++ {
			out[j] = gfAdd(out[j], gfMul(eInv, c))
			eInv = gfMul(eInv, support[i])
		}
	}
}

// bm runs Berlekamp-Massey over the syndrome sequence, producing the error
// locator polynomial. The length/discrepancy updates are mask-selected so
// the flow is independent of the secret syndromes.
func (ps *ParameterSet) bm(out []gf, s []gf) {
	t := ps.sysT

	bigT := make([]gf, t+1)
	c := make([]gf, t+1)
	b := make([]gf, t+1)

	b[1] = 1
	c[0] = 1

	var bb gf = 1
	var ll uint16

	for nn := 0; nn < 2*t; nn++ {
		var d gf
		top := nn
		if top > t {
			top = t
		}
		for i := 0; i <= top; i++ {
			d ^= gfMul(c[i], s[nn-i])
		}

		mne := uint16(d)
		mne--
		mne >>= 15
		mne--
		mle := uint16(nn)
		mle -= 2 * ll
		mle >>= 15
		mle--
		mle &= mne

		copy(bigT, c)

		f := gfFrac(bb, d)
		for i := 0; i <= t; i++ {
			c[i] ^= gfMul(f, b[i]) & gf(mne)
		}

		ll = ll&^mle | (uint16(nn+1)-ll)&mle

		for i := 0; i <= t; i++ {
			b[i] = b[i]&^gf(mle) | bigT[i]&gf(mle)
		}

		bb = bb&^gf(mle) | d&gf(mle)

		for i := t; i > 0; i-- {
			b[i] = b[i-1]
		}
		b[0] = 0
	}

	for i := 0; i <= t; i++ {
		out[i] = c[t-i]
	}
}

// decrypt recovers the error vector from the syndrome part of a
// ciphertext. It returns 1 on success and 0 on failure, derived from masked
// comparisons only.
func (ps *ParameterSet) decrypt(e []byte, sk []byte, c []byte) uint16 {
	t := ps.sysT

	r := make([]byte, ps.sysN/8)
	copy(r, c[:ps.syndBytes])
	if tail := uint(ps.pkNRows % 8); tail != 0 {
		r[ps.syndBytes-1] &= 1<<tail - 1
	}

	g := make([]gf, t+1)
	g[t] = 1
	for i := 0; i < t; i++ {
		g[i] = gf(uint16(sk[2*i])|uint16(sk[2*i+1])<<8) & gfMask
	}

	support := make([]gf, ps.sysN)
	ps.supportGen(support, sk[ps.irrBytes:])

	s := make([]gf, 2*t)
	ps.synd(s, g, support, r)

	locator := make([]gf, t+1)
	ps.bm(locator, s)

	images := make([]gf, ps.sysN)
	ps.root(images, locator, support)

	for i := range e {
		e[i] = 0
	}
	var weight uint16
	for i := 0; i < ps.sysN; i++ {
		b := gfIsZero(images[i]) & 1
		e[i/8] |= byte(b) << uint(i%8)
		weight += uint16(b)
	}

	sCmp := make([]gf, 2*t)
	ps.synd(sCmp, g, support, e)

	check := weight ^ uint16(t)
	for i := 0; i < 2*t; i++ {
		check |= uint16(s[i] ^ sCmp[i])
	}

	check--
	check >>= 15
	return check
}
