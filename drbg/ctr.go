// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package drbg

import (
	"crypto/aes"
)

// incrementNonce increments the full 16-byte nonce big-endian.
func incrementNonce(nonce []byte) {
	for i := 15; i >= 0; i-- {
		nonce[i]++
		if nonce[i] != 0 {
			break
		}
	}
}

// AES256Generate fills out with the AES-256 counter-mode keystream under key,
// starting at nonce. The nonce advances after every full block and once more
// before a partial tail block, mutating the caller's copy.
func AES256Generate(out []byte, nonce *[16]byte, key *[32]byte) {
	b, err := aes.NewCipher(key[:])
	if err != nil {
		panic("drbg: aes.NewCipher: " + err.Error())
	}

	var blk [16]byte
	off := 0
	n := len(out)
	for n >= 16 {
		b.Encrypt(out[off:off+16], nonce[:])
		incrementNonce(nonce[:])
		off += 16
		n -= 16
	}
	if n > 0 {
		incrementNonce(nonce[:])
		b.Encrypt(blk[:], nonce[:])
		copy(out[off:], blk[:n])
	}
}
