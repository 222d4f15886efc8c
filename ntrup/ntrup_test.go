// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ntrup

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/pqc/drbg"
)

func testRand(tag string) *drbg.NistKat {
	var seed [48]byte
	for i := range seed {
		seed[i] = byte(0x30 + i)
	}
	return drbg.NewNistKat(&seed, []byte(tag))
}

func TestEncapsDecapsRoundTrip(t *testing.T) {
	rng := testRand("")
	pk, sk, err := GenerateKey(rng)
	require.NoError(t, err)
	require.Len(t, pk, PublicKeySize)
	require.Len(t, sk, PrivateKeySize)

	for i := 0; i < 4; i++ {
		ct, ss1, err := Encapsulate(pk, rng)
		require.NoError(t, err)
		require.Len(t, ct, CiphertextSize)

		ss2, err := Decapsulate(sk, ct)
		require.NoError(t, err)
		require.Equal(t, ss1, ss2)
	}
}

func TestKeyGenDeterministicFromSeed(t *testing.T) {
	pk1, sk1, err := GenerateKey(testRand(""))
	require.NoError(t, err)
	pk2, sk2, err := GenerateKey(testRand(""))
	require.NoError(t, err)
	require.Equal(t, pk1, pk2)
	require.Equal(t, sk1, sk2)
}

func TestImplicitRejection(t *testing.T) {
	rng := testRand("")
	pk, sk, err := GenerateKey(rng)
	require.NoError(t, err)
	ct, ss, err := Encapsulate(pk, rng)
	require.NoError(t, err)

	prng := rand.New(rand.NewSource(21))
	for i := 0; i < 12; i++ {
		mut := make([]byte, len(ct))
		copy(mut, ct)
		pos := prng.Intn(len(mut))
		mut[pos] ^= 1 << uint(prng.Intn(8))

		got1, err := Decapsulate(sk, mut)
		require.NoError(t, err)
		require.NotEqual(t, ss, got1, "mutated ciphertext byte %d returned the true secret", pos)

		got2, err := Decapsulate(sk, mut)
		require.NoError(t, err)
		require.Equal(t, got1, got2, "rejection output not deterministic")
	}
}

func TestSmallEncodeRoundTrip(t *testing.T) {
	prng := rand.New(rand.NewSource(22))
	var f, g [p]int8
	for i := range f {
		f[i] = int8(prng.Intn(3) - 1)
	}
	var buf [smallEncodedSize]byte
	smallEncode(buf[:], &f)
	smallDecode(&g, buf[:])
	require.Equal(t, f, g)
}

func TestRqEncodeRoundTrip(t *testing.T) {
	prng := rand.New(rand.NewSource(23))
	var f, g [p]int16
	for i := range f {
		f[i] = int16(prng.Intn(q)) - qShift
	}
	buf := make([]byte, rqEncodedSize)
	rqEncode(buf, &f)
	rqDecode(&g, buf)
	require.Equal(t, f, g)
}

func TestRoundedEncodeRoundTrip(t *testing.T) {
	prng := rand.New(rand.NewSource(24))
	var f, r, g [p]int16
	for i := range f {
		f[i] = int16(prng.Intn(q)) - qShift
	}
	rqRound3(&r, &f)
	for i := range r {
		c := int32(r[i]) + qShift
		require.Zero(t, c%3, "round3 output not a multiple of 3 at %d", i)
		diff := int32(r[i]) - int32(f[i])
		if diff < 0 {
			diff = -diff
		}
		require.LessOrEqual(t, diff, int32(1), "round3 moved a coefficient too far")
	}

	buf := make([]byte, roundedEncodedSize)
	rqEncodeRounded(buf, &r)
	rqDecodeRounded(&g, buf)
	require.Equal(t, r, g)
}

func TestModqFreeze(t *testing.T) {
	for _, a := range []int32{-9000000, -q, -1, 0, 1, q, 2295, -2295, 4591 * 33, 8999999} {
		f := int32(modqFreeze(a))
		require.LessOrEqual(t, f, int32(qShift))
		require.GreaterOrEqual(t, f, int32(-qShift))
		require.Zero(t, (a-f)%q, "modqFreeze(%d) not congruent", a)
	}
}

func TestModqFromUint32(t *testing.T) {
	prng := rand.New(rand.NewSource(25))
	for i := 0; i < 1000; i++ {
		a := prng.Uint32()
		f := int32(modqFromUint32(a))
		require.Equal(t, int32(a%q)-qShift, f, "modqFromUint32(%d)", a)
	}
}

func TestMod3Freeze(t *testing.T) {
	for a := int32(-3000); a <= 3000; a++ {
		f := int32(mod3Freeze(a))
		require.LessOrEqual(t, f, int32(1))
		require.GreaterOrEqual(t, f, int32(-1))
		require.Zero(t, (a-f)%3)
	}
}

func TestSortInt32(t *testing.T) {
	prng := rand.New(rand.NewSource(26))
	x := make([]int32, p)
	for i := range x {
		x[i] = prng.Int31() - 1<<30
	}
	sortInt32(x)
	for i := 1; i < len(x); i++ {
		require.LessOrEqual(t, x[i-1], x[i])
	}
}

func TestWeightSampling(t *testing.T) {
	var seed [32]byte
	for i := range seed {
		seed[i] = byte(i)
	}
	var f [p]int8
	smallSeededWeightW(&f, &seed)
	require.Equal(t, w, r3Weight(&f))

	// Deterministic in the seed.
	var g [p]int8
	smallSeededWeightW(&g, &seed)
	require.Equal(t, f, g)
}

func TestR3RecipInverts(t *testing.T) {
	rng := testRand("recip")
	var g, gInv, prod [p]int8
	require.NoError(t, smallRandom(&g, rng))
	if !r3Recip(&gInv, &g) {
		t.Skip("drew a non-invertible g; astronomically unlikely twice")
	}
	r3Mult(&prod, &g, &gInv)
	require.Equal(t, int8(1), prod[0])
	for i := 1; i < p; i++ {
		require.Zero(t, prod[i], "g * 1/g has nonzero coefficient %d", i)
	}
}

func TestRqRecip3Inverts(t *testing.T) {
	rng := testRand("recip3")
	var f [p]int8
	require.NoError(t, smallRandomWeightW(&f, rng))

	var fInv3 [p]int16
	require.True(t, rqRecip3(&fInv3, &f))

	// (1/(3f)) * f should be the constant 1/3.
	var prod [p]int16
	rqMultSmall(&prod, &fInv3, &f)
	third := modqFreeze(3061)
	require.Equal(t, third, prod[0])
	for i := 1; i < p; i++ {
		require.Zero(t, prod[i])
	}
}

func BenchmarkGenerateKey(b *testing.B) {
	rng := testRand("bench")
	for i := 0; i < b.N; i++ {
		if _, _, err := GenerateKey(rng); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecapsulate(b *testing.B) {
	rng := testRand("bench")
	pk, sk, err := GenerateKey(rng)
	if err != nil {
		b.Fatal(err)
	}
	ct, _, err := Encapsulate(pk, rng)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decapsulate(sk, ct); err != nil {
			b.Fatal(err)
		}
	}
}
