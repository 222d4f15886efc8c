// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package drbg provides the deterministic byte-stream producers the schemes
// consume: the AES-256-CTR DRBG used by the NIST known-answer programs, a
// raw AES-CTR seed expander, and a BLAKE3 XOF expander. The KAT DRBG and the
// BLAKE3 expander implement io.Reader and never fail, so a scheme entry point
// can take either of them (or crypto/rand.Reader) without caring which; the
// AES-CTR expander is the function AES256Generate, which fills a buffer from
// a key and a nonce.
package drbg

import (
	"crypto/aes"
)

// NistKat is the AES-256-CTR DRBG from the NIST KAT harness. Seeded with 48
// bytes, it reproduces the randombytes() stream of the reference rng.c, so
// feeding it to a scheme's key generation reproduces the published vectors.
//
// Each Read performs one generate call: the stream depends on how reads are
// segmented, exactly as randombytes() calls do in the C harness.
type NistKat struct {
	key [32]byte
	ctr [16]byte
}

// NewNistKat returns a DRBG seeded with the 48-byte KAT seed, optionally
// XOR-folded with a personalization string of up to 48 bytes.
func NewNistKat(seed *[48]byte, personalization []byte) *NistKat {
	var tmp [48]byte
	copy(tmp[:], seed[:])
	for i := 0; i < len(personalization) && i < 48; i++ {
		tmp[i] ^= personalization[i]
	}
	g := &NistKat{}
	g.update(tmp[:])
	return g
}

// incrementCtr increments the low four counter bytes big-endian, as the KAT
// rng does.
func (g *NistKat) incrementCtr() {
	for i := 15; i >= 12; i-- {
		if g.ctr[i] == 0xFF {
			g.ctr[i] = 0x00
		} else {
			g.ctr[i]++
			break
		}
	}
}

func (g *NistKat) block(out []byte) {
	b, err := aes.NewCipher(g.key[:])
	if err != nil {
		panic("drbg: aes.NewCipher: " + err.Error())
	}
	b.Encrypt(out, g.ctr[:])
}

// update is the CTR_DRBG update function: three counter-mode blocks XORed
// with the provided data become the next key and counter.
func (g *NistKat) update(provided []byte) {
	var tmp [48]byte
	for i := 0; i < 3; i++ {
		g.incrementCtr()
		g.block(tmp[16*i : 16*(i+1)])
	}
	for i := 0; i < len(provided) && i < 48; i++ {
		tmp[i] ^= provided[i]
	}
	copy(g.key[:], tmp[:32])
	copy(g.ctr[:], tmp[32:])
}

// Read fills p with DRBG output. It always succeeds.
func (g *NistKat) Read(p []byte) (int, error) {
	var blk [16]byte
	off := 0
	for off < len(p) {
		g.incrementCtr()
		g.block(blk[:])
		n := copy(p[off:], blk[:])
		off += n
	}
	g.update(nil)
	return len(p), nil
}
