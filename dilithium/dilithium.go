// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dilithium

import (
	"errors"
	"fmt"
	"io"

	"github.com/luxfi/pqc/sha3"
)

var (
	ErrPublicKeySize  = errors.New("dilithium: invalid public key size")
	ErrPrivateKeySize = errors.New("dilithium: invalid private key size")
	ErrRandomSource   = errors.New("dilithium: reading randomness failed")
	ErrSignExhausted  = errors.New("dilithium: rejection budget exceeded")
)

// maxAttempts bounds the rejection loop; the nonce counter is 16 bits and
// every attempt consumes l nonces.
const maxAttempts = 1 << 14

// challenge samples the sparse challenge polynomial with 60 coefficients in
// {-1, 1} from SHAKE-256(mu || w1), positions chosen by inside-out
// Fisher-Yates over the squeezed byte stream.
func challenge(c *poly, mu []byte, w1 *vecK) {
	inbuf := make([]byte, crhSize+k*polW1PackedSize)
	outbuf := make([]byte, sha3.RateShake256)

	copy(inbuf, mu[:crhSize])
	for i := 0; i < k; i++ {
		polyW1Pack(inbuf[crhSize+i*polW1PackedSize:], &w1.vec[i])
	}

	state := sha3.NewShake256()
	state.Absorb(inbuf)
	state.SqueezeBlocks(outbuf, 1)

	var signs uint64
	for i := 0; i < 8; i++ {
		signs |= uint64(outbuf[i]) << (8 * uint(i))
	}
	pos := 8

	for i := range c.coeffs {
		c.coeffs[i] = 0
	}
	for i := 196; i < n; i++ {
		var b int
		for {
			if pos >= sha3.RateShake256 {
				state.SqueezeBlocks(outbuf, 1)
				pos = 0
			}
			b = int(outbuf[pos])
			pos++
			if b <= i {
				break
			}
		}
		c.coeffs[i] = c.coeffs[b]
		c.coeffs[b] = 1
		c.coeffs[b] ^= uint32(-(signs & 1)) & (1 ^ (q - 1))
		signs >>= 1
	}
}

// GenerateKey reads a 32-byte seed from rand and derives a key pair. The
// expansion of the seed into (rho, rho', key) uses SHAKE-256, so generation
// is deterministic given the seed.
func GenerateKey(rand io.Reader) (pk, sk []byte, err error) {
	var seed [SeedSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	seedbuf := make([]byte, 3*SeedSize)
	sha3.Shake256(seedbuf, seed[:])
	rho := seedbuf[:SeedSize]
	rhoPrime := seedbuf[SeedSize : 2*SeedSize]
	key := seedbuf[2*SeedSize:]

	var mat [k]vecL
	expandMat(&mat, rho)

	var s1, s1hat vecL
	var s2, t, t0, t1 vecK
	nonce := uint16(0)
	for i := 0; i < l; i++ {
		s1.vec[i].uniformEta(rhoPrime, nonce)
		nonce++
	}
	for i := 0; i < k; i++ {
		s2.vec[i].uniformEta(rhoPrime, nonce)
		nonce++
	}

	s1hat = s1
	s1hat.ntt()
	for i := 0; i < k; i++ {
		t.vec[i].pointwiseAccInvMontgomery(&mat[i], &s1hat)
		t.vec[i].reduce()
		t.vec[i].invNTT()
	}

	t.add(&t, &s2)
	t.freeze()
	t1.power2Round(&t0, &t)

	pk = make([]byte, PublicKeySize)
	packPK(pk, rho, &t1)

	tr := make([]byte, crhSize)
	sha3.Shake256(tr, pk)
	sk = make([]byte, PrivateKeySize)
	packSK(sk, rho, key, tr, &s1, &s2, &t0)

	wipe(seedbuf)
	wipe(seed[:])
	wipeVecL(&s1)
	wipeVecL(&s1hat)
	wipeVecK(&s2)
	wipeVecK(&t0)
	return pk, sk, nil
}

// Sign produces signature || message under sk. Signing is deterministic:
// no randomness is drawn, and rejected attempts advance a nonce counter.
func Sign(sk, msg []byte) ([]byte, error) {
	if len(sk) != PrivateKeySize {
		return nil, ErrPrivateKeySize
	}

	rho := make([]byte, SeedSize)
	key := make([]byte, SeedSize)
	tr := make([]byte, crhSize)
	var s1, y, yhat, z vecL
	var s2, t0, w, w0, w1, h, cs2, ct0 vecK
	var c, chat poly

	unpackSK(rho, key, tr, &s1, &s2, &t0, sk)
	defer func() {
		wipe(key)
		wipeVecL(&s1)
		wipeVecL(&y)
		wipeVecL(&yhat)
		wipeVecK(&s2)
		wipeVecK(&t0)
	}()

	signedMsg := make([]byte, SignatureSize+len(msg))
	copy(signedMsg[SignatureSize:], msg)

	// mu = CRH(tr || msg)
	mu := make([]byte, crhSize)
	st := sha3.NewShake256()
	st.Absorb(tr)
	st.Absorb(msg)
	st.Read(mu)

	// Deterministic signing seed rho' = CRH(key || mu).
	rhoPrime := make([]byte, crhSize)
	st = sha3.NewShake256()
	st.Absorb(key)
	st.Absorb(mu)
	st.Read(rhoPrime)
	defer wipe(rhoPrime)

	var mat [k]vecL
	expandMat(&mat, rho)
	s1.ntt()
	s2.ntt()
	t0.ntt()

	nonce := uint16(0)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		for i := 0; i < l; i++ {
			y.vec[i].uniformGamma1M1(rhoPrime, nonce)
			nonce++
		}

		yhat = y
		yhat.ntt()
		for i := 0; i < k; i++ {
			w.vec[i].pointwiseAccInvMontgomery(&mat[i], &yhat)
			w.vec[i].reduce()
			w.vec[i].invNTT()
		}

		w.csubq()
		w1.decompose(&w0, &w)
		challenge(&c, mu, &w1)
		chat = c
		chat.ntt()

		// Low bits of w - c*s2 must stay clear of the decomposition edge.
		for i := 0; i < k; i++ {
			cs2.vec[i].pointwiseInvMontgomery(&chat, &s2.vec[i])
			cs2.vec[i].invNTT()
		}
		w0.sub(&w0, &cs2)
		w0.freeze()
		if w0.chkNorm(gamma2 - beta) {
			continue
		}

		// z = y + c*s1 must not leak the secret.
		for i := 0; i < l; i++ {
			z.vec[i].pointwiseInvMontgomery(&chat, &s1.vec[i])
			z.vec[i].invNTT()
		}
		z.add(&z, &y)
		z.freeze()
		if z.chkNorm(gamma1 - beta) {
			continue
		}

		// Hints for the carries caused by c*t0.
		for i := 0; i < k; i++ {
			ct0.vec[i].pointwiseInvMontgomery(&chat, &t0.vec[i])
			ct0.vec[i].invNTT()
		}
		ct0.csubq()
		if ct0.chkNorm(gamma2) {
			continue
		}

		w0.add(&w0, &ct0)
		w0.csubq()
		if h.makeHint(&w0, &w1) > omega {
			continue
		}

		packSig(signedMsg, &z, &h, &c)
		return signedMsg, nil
	}
	return nil, ErrSignExhausted
}

// Open verifies signature || message under pk. On success it returns the
// message; on any failure it returns nil and false, with no further detail.
func Open(pk, signedMsg []byte) ([]byte, bool) {
	if len(pk) != PublicKeySize || len(signedMsg) < SignatureSize {
		return nil, false
	}

	rho := make([]byte, SeedSize)
	var t1, w1, h, tmp1, tmp2 vecK
	var z vecL
	var c, chat, cp poly

	unpackPK(rho, &t1, pk)
	if !unpackSig(&z, &h, &c, signedMsg) {
		return nil, false
	}
	if z.chkNorm(gamma1 - beta) {
		return nil, false
	}

	msg := signedMsg[SignatureSize:]

	// mu = CRH(CRH(pk) || msg)
	tr := make([]byte, crhSize)
	sha3.Shake256(tr, pk)
	mu := make([]byte, crhSize)
	st := sha3.NewShake256()
	st.Absorb(tr)
	st.Absorb(msg)
	st.Read(mu)

	// Az - c*2^d*t1
	var mat [k]vecL
	expandMat(&mat, rho)
	z.ntt()
	for i := 0; i < k; i++ {
		tmp1.vec[i].pointwiseAccInvMontgomery(&mat[i], &z)
	}

	chat = c
	chat.ntt()
	t1.shiftL()
	t1.ntt()
	for i := 0; i < k; i++ {
		tmp2.vec[i].pointwiseInvMontgomery(&chat, &t1.vec[i])
	}

	tmp1.sub(&tmp1, &tmp2)
	tmp1.reduce()
	tmp1.invNTT()
	tmp1.csubq()
	w1.useHint(&tmp1, &h)

	challenge(&cp, mu, &w1)
	for i := 0; i < n; i++ {
		if c.coeffs[i] != cp.coeffs[i] {
			return nil, false
		}
	}

	out := make([]byte, len(msg))
	copy(out, msg)
	return out, true
}

func wipe(p []byte) {
	for i := range p {
		p[i] = 0
	}
}

func wipeVecL(v *vecL) {
	for i := range v.vec {
		for j := range v.vec[i].coeffs {
			v.vec[i].coeffs[j] = 0
		}
	}
}

func wipeVecK(v *vecK) {
	for i := range v.vec {
		for j := range v.vec[i].coeffs {
			v.vec[i].coeffs[j] = 0
		}
	}
}
