// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ntrup

import (
	"crypto/subtle"
	"errors"
	"io"

	"github.com/luxfi/pqc/sha3"
)

var (
	ErrPublicKeySize  = errors.New("ntrup: invalid public key size")
	ErrPrivateKeySize = errors.New("ntrup: invalid private key size")
	ErrCiphertextSize = errors.New("ntrup: invalid ciphertext size")
	ErrRandomSource   = errors.New("ntrup: reading randomness failed")
	ErrKeyGenRetries  = errors.New("ntrup: key generation retry budget exceeded")
)

// maxKeyGenRetries bounds the search for an invertible g; a uniform g is
// non-invertible with probability about 2^-10 per draw, so the budget is
// never reached in practice.
const maxKeyGenRetries = 100

// GenerateKey draws randomness from rand until it finds an invertible g,
// samples the weight-w secret f and returns pk = encode(g/(3f)) and
// sk = small(f) || small(1/g) || pk.
func GenerateKey(rand io.Reader) (pk, sk []byte, err error) {
	var g, f, gRecip [p]int8

	ok := false
	for i := 0; i < maxKeyGenRetries; i++ {
		if err := smallRandom(&g, rand); err != nil {
			return nil, nil, err
		}
		if r3Recip(&gRecip, &g) {
			ok = true
			break
		}
	}
	if !ok {
		return nil, nil, ErrKeyGenRetries
	}

	if err := smallRandomWeightW(&f, rand); err != nil {
		return nil, nil, err
	}

	var fRecip3, h [p]int16
	if !rqRecip3(&fRecip3, &f) {
		// f has weight w > 0, so it is invertible; this cannot happen.
		return nil, nil, ErrKeyGenRetries
	}
	rqMultSmall(&h, &fRecip3, &g)

	pk = make([]byte, PublicKeySize)
	rqEncode(pk, &h)

	sk = make([]byte, PrivateKeySize)
	smallEncode(sk, &f)
	smallEncode(sk[smallEncodedSize:], &gRecip)
	copy(sk[2*smallEncodedSize:], pk)

	wipeSmall(&f)
	wipeSmall(&gRecip)
	for i := range fRecip3 {
		fRecip3[i] = 0
	}
	return pk, sk, nil
}

// hide is the deterministic encryption core shared by encapsulation and the
// re-encryption check: given the weight-w element r, it derives the
// confirmation and session halves from SHA3-512(small(r)) and produces the
// rounded ciphertext.
func hide(ct, ss, pk []byte, r *[p]int8) {
	var rEnc [smallEncodedSize]byte
	smallEncode(rEnc[:], r)
	hash := sha3.Sum512(rEnc[:])

	var h, c [p]int16
	rqDecode(&h, pk)
	rqMultSmall(&c, &h, r)
	rqRound3(&c, &c)

	copy(ct, hash[32:])
	rqEncodeRounded(ct[32:], &c)
	copy(ss, hash[:32])

	for i := range rEnc {
		rEnc[i] = 0
	}
	for i := range hash {
		hash[i] = 0
	}
}

// Encapsulate derives a fresh weight-w element from rand and returns the
// ciphertext and 32-byte shared secret.
func Encapsulate(pk []byte, rand io.Reader) (ct, ss []byte, err error) {
	if len(pk) != PublicKeySize {
		return nil, nil, ErrPublicKeySize
	}
	var r [p]int8
	if err := smallRandomWeightW(&r, rand); err != nil {
		return nil, nil, err
	}

	ct = make([]byte, CiphertextSize)
	ss = make([]byte, SharedKeySize)
	hide(ct, ss, pk, &r)
	wipeSmall(&r)
	return ct, ss, nil
}

// Decapsulate recovers the shared secret. Malformed ciphertexts are never
// signalled: the weight check, the re-encryption check and the confirmation
// check fold into one constant-time mask selecting either the true secret
// or a pseudorandom value bound to sk and ct.
func Decapsulate(sk, ct []byte) ([]byte, error) {
	if len(sk) != PrivateKeySize {
		return nil, ErrPrivateKeySize
	}
	if len(ct) != CiphertextSize {
		return nil, ErrCiphertextSize
	}

	var f, gRecip, r [p]int8
	smallDecode(&f, sk)
	smallDecode(&gRecip, sk[smallEncodedSize:])
	pk := sk[2*smallEncodedSize:]

	var c, t [p]int16
	rqDecodeRounded(&c, ct[32:])
	rqMultSmall(&t, &c, &f)

	var t3 [p]int8
	for i := 0; i < p; i++ {
		t3[i] = mod3Freeze(int32(modqFreeze(3 * int32(t[i]))))
	}
	r3Mult(&r, &t3, &gRecip)

	// All checks accumulate into one flag.
	weightOK := subtle.ConstantTimeEq(int32(r3Weight(&r)), w)

	checkCT := make([]byte, CiphertextSize)
	checkSS := make([]byte, SharedKeySize)
	hide(checkCT, checkSS, pk, &r)
	ctOK := subtle.ConstantTimeCompare(ct, checkCT)

	good := weightOK & ctOK

	// Implicit rejection value bound to the secret key and ciphertext.
	var fEnc [smallEncodedSize]byte
	smallEncode(fEnc[:], &f)
	rej := sha3.NewShake256()
	rej.Absorb([]byte{0x00})
	rej.Absorb(fEnc[:])
	rej.Absorb(ct)
	ss := make([]byte, SharedKeySize)
	rej.Read(ss)

	subtle.ConstantTimeCopy(good, ss, checkSS)

	wipeSmall(&f)
	wipeSmall(&gRecip)
	wipeSmall(&r)
	for i := range fEnc {
		fEnc[i] = 0
	}
	wipe(checkSS)
	return ss, nil
}
