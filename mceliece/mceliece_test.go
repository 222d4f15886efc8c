// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mceliece

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/pqc/drbg"
)

func testRand(tag string) *drbg.NistKat {
	var seed [48]byte
	for i := range seed {
		seed[i] = byte(0x10 + i)
	}
	return drbg.NewNistKat(&seed, []byte(tag))
}

func TestGfMulProperties(t *testing.T) {
	prng := rand.New(rand.NewSource(31))
	for i := 0; i < 2000; i++ {
		a := gf(prng.Intn(1 << gfBits))
		b := gf(prng.Intn(1 << gfBits))
		c := gf(prng.Intn(1 << gfBits))

		require.Equal(t, gfMul(a, b), gfMul(b, a))
		require.Equal(t, gfMul(a, gfAdd(b, c)), gfAdd(gfMul(a, b), gfMul(a, c)))
		require.Equal(t, a, gfMul(a, 1))
		require.Equal(t, gf(0), gfMul(a, 0))
	}
}

func TestGfInv(t *testing.T) {
	prng := rand.New(rand.NewSource(32))
	for i := 0; i < 2000; i++ {
		a := gf(1 + prng.Intn(1<<gfBits-1))
		inv := gfInv(a)
		require.Equal(t, gf(1), gfMul(a, inv), "a=%d", a)
	}

	// gfFrac agrees with mul-by-inverse.
	for i := 0; i < 500; i++ {
		den := gf(1 + prng.Intn(1<<gfBits-1))
		num := gf(prng.Intn(1 << gfBits))
		require.Equal(t, gfMul(num, gfInv(den)), gfFrac(den, num))
	}
}

func TestGfSquareChains(t *testing.T) {
	prng := rand.New(rand.NewSource(33))
	for i := 0; i < 2000; i++ {
		a := gf(prng.Intn(1 << gfBits))
		m := gf(prng.Intn(1 << gfBits))
		sq := gfMul(a, a)
		sq2 := gfMul(sq, sq)
		require.Equal(t, sq2, gfSq2(a))
		require.Equal(t, gfMul(sq, m), gfSqMul(a, m))
		require.Equal(t, gfMul(sq2, m), gfSq2Mul(a, m))
	}
}

func TestPolyMulProperties(t *testing.T) {
	prng := rand.New(rand.NewSource(34))
	for _, ps := range []*ParameterSet{McEliece6960119, McEliece8192128} {
		t.Run(ps.Name, func(t *testing.T) {
			tt := ps.sysT
			a := make([]gf, tt)
			b := make([]gf, tt)
			one := make([]gf, tt)
			one[0] = 1
			for i := range a {
				a[i] = gf(prng.Intn(1 << gfBits))
				b[i] = gf(prng.Intn(1 << gfBits))
			}

			ab := make([]gf, tt)
			ba := make([]gf, tt)
			ps.polyMul(ab, a, b)
			ps.polyMul(ba, b, a)
			require.Equal(t, ab, ba)

			a1 := make([]gf, tt)
			ps.polyMul(a1, a, one)
			require.Equal(t, a, a1)
		})
	}
}

// Control-bit generation and network application must agree: the forward
// network gathers bit pi(i) into position i.
func TestBenesRealizesPermutation(t *testing.T) {
	prng := rand.New(rand.NewSource(35))

	pi := make([]int16, benesSize)
	for i := range pi {
		pi[i] = int16(i)
	}
	prng.Shuffle(len(pi), func(i, j int) { pi[i], pi[j] = pi[j], pi[i] })

	bits := make([]byte, condBytes)
	controlBits(bits, pi)

	in := make([]byte, benesSize/8)
	prng.Read(in)

	out := make([]byte, benesSize/8)
	copy(out, in)
	applyBenes(out, bits, false)

	getBit := func(b []byte, i int) byte { return b[i/8] >> uint(i%8) & 1 }
	for i := 0; i < benesSize; i++ {
		require.Equal(t, getBit(in, int(pi[i])), getBit(out, i), "position %d", i)
	}

	// Reverse application inverts.
	back := make([]byte, benesSize/8)
	copy(back, out)
	applyBenes(back, bits, true)
	require.Equal(t, in, back)
}

func TestSortUint64(t *testing.T) {
	prng := rand.New(rand.NewSource(36))
	x := make([]uint64, 1000)
	for i := range x {
		x[i] = uint64(prng.Uint32())<<31 | uint64(i)
	}
	sortUint64(x)
	for i := 1; i < len(x); i++ {
		require.LessOrEqual(t, x[i-1], x[i])
	}
}

func TestGenEWeight(t *testing.T) {
	rng := testRand("gene")
	for _, ps := range []*ParameterSet{McEliece6960119, McEliece8192128} {
		e := make([]byte, ps.sysN/8)
		require.NoError(t, ps.genE(e, rng))
		weight := 0
		for i := 0; i < ps.sysN; i++ {
			weight += int(e[i/8] >> uint(i%8) & 1)
		}
		require.Equal(t, ps.sysT, weight, ps.Name)
	}
}

func testKEMRoundTrip(t *testing.T, ps *ParameterSet) {
	rng := testRand(ps.Name)
	pk, sk, err := ps.GenerateKey(rng)
	require.NoError(t, err)
	require.Len(t, pk, ps.PublicKeySize)
	require.Len(t, sk, ps.PrivateKeySize)

	ct, ss1, err := ps.Encapsulate(pk, rng)
	require.NoError(t, err)
	require.Len(t, ct, ps.CiphertextSize)

	ss2, err := ps.Decapsulate(sk, ct)
	require.NoError(t, err)
	require.Equal(t, ss1, ss2)

	// Flipping any ciphertext byte must change the shared secret while
	// still returning a deterministic value.
	prng := rand.New(rand.NewSource(37))
	for i := 0; i < 4; i++ {
		mut := make([]byte, len(ct))
		copy(mut, ct)
		pos := prng.Intn(len(mut))
		mut[pos] ^= 1 << uint(prng.Intn(8))

		got1, err := ps.Decapsulate(sk, mut)
		require.NoError(t, err)
		require.NotEqual(t, ss1, got1)

		got2, err := ps.Decapsulate(sk, mut)
		require.NoError(t, err)
		require.Equal(t, got1, got2)
	}

	// Overwriting the rejection string changes only rejected outputs.
	mutSK := make([]byte, len(sk))
	copy(mutSK, sk)
	rng.Read(mutSK[:32])
	honest, err := ps.Decapsulate(mutSK, ct)
	require.NoError(t, err)
	require.Equal(t, ss1, honest)

	bad := make([]byte, len(ct))
	copy(bad, ct)
	bad[0] ^= 1
	r1, err := ps.Decapsulate(sk, bad)
	require.NoError(t, err)
	r2, err := ps.Decapsulate(mutSK, bad)
	require.NoError(t, err)
	require.NotEqual(t, r1, r2)
}

func TestKEMRoundTrip6960119(t *testing.T) {
	if testing.Short() {
		t.Skip("key generation is expensive")
	}
	testKEMRoundTrip(t, McEliece6960119)
}

func TestKEMRoundTrip8192128(t *testing.T) {
	if testing.Short() {
		t.Skip("key generation is expensive")
	}
	testKEMRoundTrip(t, McEliece8192128)
}

func BenchmarkGenerateKey6960119(b *testing.B) {
	rng := testRand("bench")
	for i := 0; i < b.N; i++ {
		if _, _, err := McEliece6960119.GenerateKey(rng); err != nil {
			b.Fatal(err)
		}
	}
}
