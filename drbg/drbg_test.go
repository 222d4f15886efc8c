// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package drbg

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"testing"

	"github.com/stretchr/testify/require"
)

func katSeed() *[48]byte {
	var seed [48]byte
	for i := range seed {
		seed[i] = byte(i)
	}
	return &seed
}

func TestNistKatDeterministic(t *testing.T) {
	a := NewNistKat(katSeed(), nil)
	b := NewNistKat(katSeed(), nil)

	bufA := make([]byte, 96)
	bufB := make([]byte, 96)
	_, err := a.Read(bufA)
	require.NoError(t, err)
	_, err = b.Read(bufB)
	require.NoError(t, err)
	require.Equal(t, bufA, bufB)

	// A different seed gives a different stream.
	seed2 := katSeed()
	seed2[0] ^= 1
	c := NewNistKat(seed2, nil)
	bufC := make([]byte, 96)
	_, _ = c.Read(bufC)
	require.NotEqual(t, bufA, bufC)
}

func TestNistKatPersonalization(t *testing.T) {
	a := NewNistKat(katSeed(), nil)
	b := NewNistKat(katSeed(), []byte("diversifier"))

	bufA := make([]byte, 32)
	bufB := make([]byte, 32)
	_, _ = a.Read(bufA)
	_, _ = b.Read(bufB)
	require.NotEqual(t, bufA, bufB)
}

// The DRBG reseeds itself after every Read, so segmentation is part of the
// stream definition, exactly as separate randombytes() calls are in the KAT
// harness.
func TestNistKatReadSegmentation(t *testing.T) {
	a := NewNistKat(katSeed(), nil)
	b := NewNistKat(katSeed(), nil)

	oneShot := make([]byte, 64)
	_, _ = a.Read(oneShot)

	split := make([]byte, 64)
	_, _ = b.Read(split[:32])
	_, _ = b.Read(split[32:])

	require.Equal(t, oneShot[:32], split[:32])
	require.NotEqual(t, oneShot[32:], split[32:])
}

func TestAES256GenerateMatchesCTR(t *testing.T) {
	var key [32]byte
	var nonce [16]byte
	for i := range key {
		key[i] = byte(i * 3)
	}

	out := make([]byte, 160) // whole blocks only
	AES256Generate(out, &nonce, &key)

	blk, err := aes.NewCipher(key[:])
	require.NoError(t, err)
	want := make([]byte, 160)
	cipher.NewCTR(blk, make([]byte, 16)).XORKeyStream(want, make([]byte, 160))
	require.Equal(t, want, out)
}

// A partial tail block skips one counter value by design; the generated
// prefix must still match block-aligned output.
func TestAES256GenerateTail(t *testing.T) {
	var key [32]byte
	key[31] = 1

	var n1 [16]byte
	full := make([]byte, 64)
	AES256Generate(full, &n1, &key)

	var n2 [16]byte
	short := make([]byte, 56)
	AES256Generate(short, &n2, &key)

	require.Equal(t, full[:48], short[:48])
	require.NotEqual(t, full[48:56], short[48:56])
}

func TestBlake3Expander(t *testing.T) {
	a := NewBlake3([]byte("seed"))
	b := NewBlake3([]byte("seed"))

	bufA := make([]byte, 128)
	bufB := make([]byte, 128)
	_, err := a.Read(bufA)
	require.NoError(t, err)
	_, err = b.Read(bufB)
	require.NoError(t, err)
	require.Equal(t, bufA, bufB)

	c := NewBlake3([]byte("another seed"))
	bufC := make([]byte, 128)
	_, _ = c.Read(bufC)
	require.NotEqual(t, bufA, bufC)

	if bytes.Equal(bufA[:64], bufA[64:]) {
		t.Error("expander output repeats")
	}
}
