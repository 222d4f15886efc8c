// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kyber

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"github.com/luxfi/pqc/sha3"
)

var (
	ErrPublicKeySize  = errors.New("kyber: invalid public key size")
	ErrPrivateKeySize = errors.New("kyber: invalid private key size")
	ErrCiphertextSize = errors.New("kyber: invalid ciphertext size")
	ErrRandomSource   = errors.New("kyber: reading randomness failed")
)

// GenerateKey reads 64 bytes (d || z) from rand and derives a key pair. The
// secret key carries the public key, H(pk) and the implicit-rejection seed z.
func GenerateKey(rand io.Reader) (pk, sk []byte, err error) {
	var seed [SeedSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	pk = make([]byte, PublicKeySize)
	sk = make([]byte, PrivateKeySize)
	indcpaKeyPair(pk, sk, seed[:symBytes])

	copy(sk[indcpaSecretKeySize:], pk)
	h := sha3.Sum256(pk)
	copy(sk[indcpaSecretKeySize+indcpaPublicKeySize:], h[:])
	copy(sk[PrivateKeySize-symBytes:], seed[symBytes:])

	for i := range seed {
		seed[i] = 0
	}
	return pk, sk, nil
}

// Encapsulate derives a fresh shared secret for pk, reading 32 bytes from
// rand. It returns the ciphertext and the 32-byte shared secret.
func Encapsulate(pk []byte, rand io.Reader) (ct, ss []byte, err error) {
	if len(pk) != PublicKeySize {
		return nil, nil, ErrPublicKeySize
	}
	var m [symBytes]byte
	if _, err := io.ReadFull(rand, m[:]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	ct, ss = encapsulateDerand(pk, m[:])
	for i := range m {
		m[i] = 0
	}
	return ct, ss, nil
}

// encapsulateDerand is the deterministic body of encapsulation: the message
// is the hash of the caller's randomness, coins and the pre-key come from G.
func encapsulateDerand(pk, seed []byte) (ct, ss []byte) {
	m := sha3.Sum256(seed[:symBytes])

	// (K-bar, coins) = G(m || H(pk)) with G = SHA3-512.
	hpk := sha3.Sum256(pk)
	buf := make([]byte, 2*symBytes)
	copy(buf, m[:])
	copy(buf[symBytes:], hpk[:])
	kr := sha3.Sum512(buf)

	ct = make([]byte, CiphertextSize)
	indcpaEnc(ct, m[:], pk, kr[symBytes:])

	// ss = KDF(K-bar || H(ct))
	hct := sha3.Sum256(ct)
	ss = make([]byte, SharedKeySize)
	kdf := sha3.NewShake256()
	kdf.Absorb(kr[:symBytes])
	kdf.Absorb(hct[:])
	kdf.Read(ss)

	for i := range kr {
		kr[i] = 0
	}
	return ct, ss
}

// Decapsulate recovers the shared secret from ct under sk. Malformed
// ciphertexts are never signalled: the returned secret is then the
// deterministic pseudorandom value derived from the rejection seed.
func Decapsulate(sk, ct []byte) ([]byte, error) {
	if len(sk) != PrivateKeySize {
		return nil, ErrPrivateKeySize
	}
	if len(ct) != CiphertextSize {
		return nil, ErrCiphertextSize
	}

	pk := sk[indcpaSecretKeySize : indcpaSecretKeySize+indcpaPublicKeySize]
	hpk := sk[indcpaSecretKeySize+indcpaPublicKeySize : indcpaSecretKeySize+indcpaPublicKeySize+symBytes]
	z := sk[PrivateKeySize-symBytes:]

	var m [symBytes]byte
	indcpaDec(m[:], ct, sk)

	buf := make([]byte, 2*symBytes)
	copy(buf, m[:])
	copy(buf[symBytes:], hpk)
	kr := sha3.Sum512(buf)

	cmp := make([]byte, CiphertextSize)
	indcpaEnc(cmp, m[:], pk, kr[symBytes:])
	equal := subtle.ConstantTimeCompare(ct, cmp) == 1

	// Select K-bar or z in constant time.
	var pre [symBytes]byte
	copy(pre[:], kr[:symBytes])
	subtle.ConstantTimeCopy(boolToInt(!equal), pre[:], z)

	hct := sha3.Sum256(ct)
	ss := make([]byte, SharedKeySize)
	kdf := sha3.NewShake256()
	kdf.Absorb(pre[:])
	kdf.Absorb(hct[:])
	kdf.Read(ss)

	for i := range kr {
		kr[i] = 0
	}
	for i := range pre {
		pre[i] = 0
	}
	for i := range m {
		m[i] = 0
	}
	return ss, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
