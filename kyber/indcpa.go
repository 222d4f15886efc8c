// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kyber

import "github.com/luxfi/pqc/sha3"

// rejUniform fills a from 12-bit candidates, rejecting values >= q.
func rejUniform(a []int16, buf []byte) int {
	ctr := 0
	pos := 0
	for ctr < len(a) && pos+3 <= len(buf) {
		d1 := int16((uint16(buf[pos]) | uint16(buf[pos+1])<<8) & 0xFFF)
		d2 := int16(uint16(buf[pos+1])>>4 | uint16(buf[pos+2])<<4)
		pos += 3
		if d1 < q {
			a[ctr] = d1
			ctr++
		}
		if d2 < q && ctr < len(a) {
			a[ctr] = d2
			ctr++
		}
	}
	return ctr
}

// genMatrix expands rho into the k x k matrix A (or its transpose) with
// entries uniform in R_q, one SHAKE-128 stream per entry.
func genMatrix(a *[k]polyVec, rho []byte, transposed bool) {
	const nblocks = (12*n/8*(1<<12)/q + sha3.RateShake128) / sha3.RateShake128
	buf := make([]byte, nblocks*sha3.RateShake128+2)

	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			st := sha3.NewShake128()
			st.Absorb(rho[:symBytes])
			if transposed {
				st.Absorb([]byte{byte(i), byte(j)})
			} else {
				st.Absorb([]byte{byte(j), byte(i)})
			}
			buflen := nblocks * sha3.RateShake128
			st.SqueezeBlocks(buf, nblocks)

			ctr := rejUniform(a[i].vec[j].coeffs[:], buf[:buflen])
			for ctr < n {
				off := buflen % 3
				copy(buf, buf[buflen-off:buflen])
				buflen = sha3.RateShake128 + off
				st.SqueezeBlocks(buf[off:], 1)
				ctr += rejUniform(a[i].vec[j].coeffs[ctr:], buf[:buflen])
			}
		}
	}
}

// indcpaKeyPair derives the CPA key pair from the 32-byte seed d.
func indcpaKeyPair(pk, sk []byte, d []byte) {
	seeds := sha3.Sum512(d[:symBytes])
	rho := seeds[:symBytes]
	sigma := seeds[symBytes:]

	var a [k]polyVec
	genMatrix(&a, rho, false)

	var s, e, t polyVec
	nonce := byte(0)
	for i := 0; i < k; i++ {
		s.vec[i].getNoiseEta(sigma, nonce)
		nonce++
	}
	for i := 0; i < k; i++ {
		e.vec[i].getNoiseEta(sigma, nonce)
		nonce++
	}

	s.ntt()
	e.ntt()
	for i := 0; i < k; i++ {
		t.vec[i].basemulAcc(&a[i], &s)
		t.vec[i].toMont()
	}
	t.add(&t, &e)
	t.reduce()

	t.toBytes(pk)
	copy(pk[polyVecBytes:], rho)
	s.toBytes(sk)

	for i := range seeds {
		seeds[i] = 0
	}
}

// indcpaEnc encrypts the 32-byte message under pk with the deterministic
// coins.
func indcpaEnc(ct, msg, pk, coins []byte) {
	var at [k]polyVec
	var t, r, e1, u polyVec
	var e2, v, mp poly

	t.fromBytes(pk)
	rho := pk[polyVecBytes:indcpaPublicKeySize]
	genMatrix(&at, rho, true)

	nonce := byte(0)
	for i := 0; i < k; i++ {
		r.vec[i].getNoiseEta(coins, nonce)
		nonce++
	}
	for i := 0; i < k; i++ {
		e1.vec[i].getNoiseEta(coins, nonce)
		nonce++
	}
	e2.getNoiseEta(coins, nonce)

	r.ntt()
	for i := 0; i < k; i++ {
		u.vec[i].basemulAcc(&at[i], &r)
	}
	u.invNTT()
	u.add(&u, &e1)
	u.reduce()

	v.basemulAcc(&t, &r)
	v.invNTT()
	mp.fromMsg(msg)
	v.add(&v, &e2)
	v.add(&v, &mp)
	v.reduce()

	u.compress(ct)
	v.compress(ct[vecCompressed:])
}

// indcpaDec recovers the message candidate from ct under sk.
func indcpaDec(msg, ct, sk []byte) {
	var u polyVec
	var s polyVec
	var v, mp poly

	u.decompress(ct)
	v.decompress(ct[vecCompressed:])
	s.fromBytes(sk)

	u.ntt()
	mp.basemulAcc(&s, &u)
	mp.invNTT()
	mp.sub(&v, &mp)
	mp.reduce()
	mp.toMsg(msg)
}
