// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mceliece

import (
	"crypto/subtle"
	"errors"
	"io"

	"github.com/luxfi/pqc/sha3"
)

var (
	ErrPublicKeySize  = errors.New("mceliece: invalid public key size")
	ErrPrivateKeySize = errors.New("mceliece: invalid private key size")
	ErrCiphertextSize = errors.New("mceliece: invalid ciphertext size")
	ErrRandomSource   = errors.New("mceliece: reading randomness failed")
	ErrKeyGenRetries  = errors.New("mceliece: key generation retry budget exceeded")
)

// GenerateKey draws randomness from rand until the public key comes out
// systematic. The full parity-check matrix (about 1 MiB) lives only for the
// duration of the call.
func (ps *ParameterSet) GenerateKey(rand io.Reader) (pk, sk []byte, err error) {
	pk = make([]byte, ps.PublicKeySize)
	sk = make([]byte, ps.PrivateKeySize)

	for i := 0; i < keyGenRetries; i++ {
		if err := ps.skGen(sk, rand); err != nil {
			return nil, nil, err
		}
		if ps.pkGen(pk, sk[ps.sysN/8:]) {
			return pk, sk, nil
		}
	}
	for i := range sk {
		sk[i] = 0
	}
	return nil, nil, ErrKeyGenRetries
}

// hashE computes SHAKE-256(prefix || e || suffix, 32), the KDF used for the
// confirmation and session hashes.
func hashE(prefix byte, e []byte, suffix []byte) [sharedKeySize]byte {
	var out [sharedKeySize]byte
	st := sha3.NewShake256()
	st.Absorb([]byte{prefix})
	st.Absorb(e)
	if suffix != nil {
		st.Absorb(suffix)
	}
	st.Read(out[:])
	return out
}

// Encapsulate samples a weight-t error vector, computes its syndrome and
// confirmation hash, and derives the session key from error and ciphertext.
func (ps *ParameterSet) Encapsulate(pk []byte, rand io.Reader) (ct, ss []byte, err error) {
	if len(pk) != ps.PublicKeySize {
		return nil, nil, ErrPublicKeySize
	}

	e := make([]byte, ps.sysN/8)
	if err := ps.genE(e, rand); err != nil {
		return nil, nil, err
	}

	ct = make([]byte, ps.CiphertextSize)
	ps.syndrome(ct, pk, e)
	conf := hashE(2, e, nil)
	copy(ct[ps.syndBytes:], conf[:])

	key := hashE(1, e, ct)
	ss = key[:]

	for i := range e {
		e[i] = 0
	}
	return ct, ss, nil
}

// Decapsulate decodes the syndrome and rebuilds the confirmation hash. A
// failed decoding or confirmation never surfaces: the session key is then
// derived from the secret string s instead of the error vector, selected in
// constant time.
func (ps *ParameterSet) Decapsulate(sk, ct []byte) ([]byte, error) {
	if len(sk) != ps.PrivateKeySize {
		return nil, ErrPrivateKeySize
	}
	if len(ct) != ps.CiphertextSize {
		return nil, ErrCiphertextSize
	}

	e := make([]byte, ps.sysN/8)
	decOK := ps.decrypt(e, sk[ps.sysN/8:], ct)

	conf := hashE(2, e, nil)
	confOK := subtle.ConstantTimeCompare(conf[:], ct[ps.syndBytes:])

	good := int(decOK) & confOK

	// Select e or the rejection string s, and the preimage domain byte.
	sel := make([]byte, ps.sysN/8)
	copy(sel, sk[:ps.sysN/8])
	subtle.ConstantTimeCopy(good, sel, e)
	prefix := byte(good)

	key := hashE(prefix, sel, ct)

	for i := range e {
		e[i] = 0
	}
	for i := range sel {
		sel[i] = 0
	}
	return key[:], nil
}
