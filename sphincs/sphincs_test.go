// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sphincs

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/pqc/drbg"
)

func testRand(tag string) *drbg.NistKat {
	var seed [48]byte
	for i := range seed {
		seed[i] = byte(0x50 ^ i)
	}
	return drbg.NewNistKat(&seed, []byte(tag))
}

func TestSizes(t *testing.T) {
	tests := []struct {
		mode *Mode
		sig  int
	}{
		{Shake128s, 8080},
		{Shake192s, 17064},
		{Shake256s, 29792},
		{Shake128f, 16976},
		{Shake192f, 35664},
		{Shake256f, 49216},
	}
	for _, tt := range tests {
		t.Run(tt.mode.Name, func(t *testing.T) {
			require.Equal(t, tt.sig, tt.mode.SignatureSize)
			require.Equal(t, 2*tt.mode.n, tt.mode.PublicKeySize)
			require.Equal(t, 4*tt.mode.n, tt.mode.PrivateKeySize)
		})
	}
}

func TestSignOpenRoundTrip(t *testing.T) {
	mode := Shake128f
	rng := testRand(mode.Name)
	pk, sk, err := mode.GenerateKey(rng)
	require.NoError(t, err)
	require.Len(t, pk, mode.PublicKeySize)
	require.Len(t, sk, mode.PrivateKeySize)

	for _, msg := range [][]byte{
		{},
		[]byte("hash based signatures"),
		bytes.Repeat([]byte{0x5A}, 2048),
	} {
		sm, err := mode.Sign(sk, msg, nil)
		require.NoError(t, err)
		require.Len(t, sm, mode.SignatureSize+len(msg))

		got, ok := mode.Open(pk, sm)
		require.True(t, ok)
		require.Equal(t, msg, got)
	}
}

func TestAllModesRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("slow modes")
	}
	for _, mode := range []*Mode{Shake128s, Shake192f, Shake256f} {
		t.Run(mode.Name, func(t *testing.T) {
			rng := testRand(mode.Name)
			pk, sk, err := mode.GenerateKey(rng)
			require.NoError(t, err)

			msg := []byte("cross-mode message")
			sm, err := mode.Sign(sk, msg, nil)
			require.NoError(t, err)

			got, ok := mode.Open(pk, sm)
			require.True(t, ok)
			require.Equal(t, msg, got)
		})
	}
}

// With randomized signing disabled, signing twice must be byte-identical.
func TestDeterministicSigning(t *testing.T) {
	mode := Shake128f
	rng := testRand("det")
	_, sk, err := mode.GenerateKey(rng)
	require.NoError(t, err)

	msg := []byte("same message")
	a, err := mode.Sign(sk, msg, nil)
	require.NoError(t, err)
	b, err := mode.Sign(sk, msg, nil)
	require.NoError(t, err)
	require.Equal(t, a, b)

	// A randomizer changes R and thus the whole signature.
	c, err := mode.Sign(sk, msg, rng)
	require.NoError(t, err)
	require.NotEqual(t, a, c)

	pk, sk2, err := mode.GenerateKey(testRand("det"))
	require.NoError(t, err)
	require.Equal(t, sk, sk2)
	got, ok := mode.Open(pk, c)
	require.True(t, ok)
	require.Equal(t, msg, got)
}

func TestOpenRejectsMutations(t *testing.T) {
	mode := Shake128f
	rng := testRand("mut")
	pk, sk, err := mode.GenerateKey(rng)
	require.NoError(t, err)

	sm, err := mode.Sign(sk, []byte("immutable"), nil)
	require.NoError(t, err)

	prng := rand.New(rand.NewSource(41))
	for i := 0; i < 12; i++ {
		mut := make([]byte, len(sm))
		copy(mut, sm)
		pos := prng.Intn(len(mut))
		mut[pos] ^= 1 << uint(prng.Intn(8))
		if _, ok := mode.Open(pk, mut); ok {
			t.Fatalf("mutated signature accepted (byte %d)", pos)
		}
	}

	// Wrong key.
	pk2, _, err := mode.GenerateKey(testRand("other"))
	require.NoError(t, err)
	if _, ok := mode.Open(pk2, sm); ok {
		t.Error("signature verified under unrelated key")
	}

	if _, ok := mode.Open(pk, sm[:mode.SignatureSize-1]); ok {
		t.Error("truncated signature accepted")
	}
}

func TestBaseWAndChainLengths(t *testing.T) {
	out := make([]int, 4)
	baseW(out, []byte{0xAB, 0xCD})
	require.Equal(t, []int{0xA, 0xB, 0xC, 0xD}, out)

	mode := Shake128f
	lengths := make([]int, mode.wotsLen)
	msg := bytes.Repeat([]byte{0xFF}, mode.n)
	mode.chainLengths(lengths, msg)
	for i := 0; i < mode.wotsLen1; i++ {
		require.Equal(t, 15, lengths[i])
	}
	// All digits maximal: checksum is zero.
	for i := mode.wotsLen1; i < mode.wotsLen; i++ {
		require.Equal(t, 0, lengths[i])
	}
}

func TestWotsSignVerify(t *testing.T) {
	mode := Shake128f
	skSeed := bytes.Repeat([]byte{1}, mode.n)
	pubSeed := bytes.Repeat([]byte{2}, mode.n)
	msg := bytes.Repeat([]byte{0x37}, mode.n)

	var addr address
	addr.setType(addrTypeWOTS)
	addr.setKeypair(5)

	pk := make([]byte, mode.wotsBytes)
	mode.wotsGenPK(pk, skSeed, pubSeed, &addr)

	sig := make([]byte, mode.wotsBytes)
	mode.wotsSign(sig, msg, skSeed, pubSeed, &addr)

	pk2 := make([]byte, mode.wotsBytes)
	mode.wotsPKFromSig(pk2, sig, msg, pubSeed, &addr)
	require.Equal(t, pk, pk2)

	// A different message must not reproduce the public key.
	msg[0] ^= 0x10
	mode.wotsPKFromSig(pk2, sig, msg, pubSeed, &addr)
	require.NotEqual(t, pk, pk2)
}

func BenchmarkSign128f(b *testing.B) {
	mode := Shake128f
	_, sk, err := mode.GenerateKey(testRand("bench"))
	if err != nil {
		b.Fatal(err)
	}
	msg := []byte("benchmark")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mode.Sign(sk, msg, nil); err != nil {
			b.Fatal(err)
		}
	}
}
