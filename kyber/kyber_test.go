// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kyber

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/cloudflare/circl/kem/kyber/kyber768"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/pqc/drbg"
)

func testKatSeed() *[48]byte {
	var seed [48]byte
	for i := range seed {
		seed[i] = byte(0x60 + i)
	}
	return &seed
}

func TestEncapsDecapsRoundTrip(t *testing.T) {
	rng := drbg.NewNistKat(testKatSeed(), nil)
	pk, sk, err := GenerateKey(rng)
	require.NoError(t, err)
	require.Len(t, pk, PublicKeySize)
	require.Len(t, sk, PrivateKeySize)

	for i := 0; i < 8; i++ {
		ct, ss1, err := Encapsulate(pk, rng)
		require.NoError(t, err)
		require.Len(t, ct, CiphertextSize)
		require.Len(t, ss1, SharedKeySize)

		ss2, err := Decapsulate(sk, ct)
		require.NoError(t, err)
		require.Equal(t, ss1, ss2)
	}
}

func TestKeyGenDeterministicFromSeed(t *testing.T) {
	pk1, sk1, err := GenerateKey(drbg.NewNistKat(testKatSeed(), nil))
	require.NoError(t, err)
	pk2, sk2, err := GenerateKey(drbg.NewNistKat(testKatSeed(), nil))
	require.NoError(t, err)
	require.Equal(t, pk1, pk2)
	require.Equal(t, sk1, sk2)
}

// Flipping any single bit of a valid ciphertext must change the shared
// secret, yet decapsulation still returns a deterministic value.
func TestImplicitRejection(t *testing.T) {
	rng := drbg.NewNistKat(testKatSeed(), nil)
	pk, sk, err := GenerateKey(rng)
	require.NoError(t, err)
	ct, ss, err := Encapsulate(pk, rng)
	require.NoError(t, err)

	prng := rand.New(rand.NewSource(11))
	for i := 0; i < 24; i++ {
		mut := make([]byte, len(ct))
		copy(mut, ct)
		pos := prng.Intn(len(mut))
		mut[pos] ^= 1 << uint(prng.Intn(8))

		got1, err := Decapsulate(sk, mut)
		require.NoError(t, err)
		require.NotEqual(t, ss, got1, "mutated ciphertext returned the true secret")

		got2, err := Decapsulate(sk, mut)
		require.NoError(t, err)
		require.Equal(t, got1, got2, "rejection output not deterministic")
	}
}

// Overwriting the rejection seed changes the decapsulation result of a
// mutated ciphertext but not of an honest one.
func TestMutatedSecretKey(t *testing.T) {
	rng := drbg.NewNistKat(testKatSeed(), nil)
	pk, sk, err := GenerateKey(rng)
	require.NoError(t, err)
	ct, ss, err := Encapsulate(pk, rng)
	require.NoError(t, err)

	mutSK := make([]byte, len(sk))
	copy(mutSK, sk)
	for i := 0; i < 32; i++ {
		mutSK[PrivateKeySize-symBytes+i] ^= 0xA5
	}

	honest, err := Decapsulate(mutSK, ct)
	require.NoError(t, err)
	require.Equal(t, ss, honest)

	bad := make([]byte, len(ct))
	copy(bad, ct)
	bad[0] ^= 1
	r1, err := Decapsulate(sk, bad)
	require.NoError(t, err)
	r2, err := Decapsulate(mutSK, bad)
	require.NoError(t, err)
	require.NotEqual(t, r1, r2)
}

// A corrupted CPA secret must not yield the honest shared secret.
func TestMutatedDecryptionKey(t *testing.T) {
	rng := drbg.NewNistKat(testKatSeed(), nil)
	pk, sk, err := GenerateKey(rng)
	require.NoError(t, err)
	ct, ss, err := Encapsulate(pk, rng)
	require.NoError(t, err)

	mutSK := make([]byte, len(sk))
	copy(mutSK, sk)
	rng.Read(mutSK[:32])

	got, err := Decapsulate(mutSK, ct)
	require.NoError(t, err)
	require.NotEqual(t, ss, got)
}

// Interop with the circl round-3 Kyber768: their encapsulation against our
// public key must decapsulate to the same secret with our private key, and
// vice versa.
func TestCirclInterop(t *testing.T) {
	scheme := kyber768.Scheme()

	t.Run("circl encapsulates to our key", func(t *testing.T) {
		rng := drbg.NewNistKat(testKatSeed(), nil)
		pk, sk, err := GenerateKey(rng)
		require.NoError(t, err)

		cpk, err := scheme.UnmarshalBinaryPublicKey(pk)
		require.NoError(t, err)

		seed := make([]byte, scheme.EncapsulationSeedSize())
		for i := range seed {
			seed[i] = byte(i * 7)
		}
		ct, ss, err := scheme.EncapsulateDeterministically(cpk, seed)
		require.NoError(t, err)

		got, err := Decapsulate(sk, ct)
		require.NoError(t, err)
		require.Equal(t, ss, got)
	})

	t.Run("we encapsulate to circl key", func(t *testing.T) {
		cpk, csk, err := scheme.GenerateKeyPair()
		require.NoError(t, err)
		pkBytes, err := cpk.MarshalBinary()
		require.NoError(t, err)

		rng := drbg.NewNistKat(testKatSeed(), []byte("interop"))
		ct, ss, err := Encapsulate(pkBytes, rng)
		require.NoError(t, err)

		got, err := scheme.Decapsulate(csk, ct)
		require.NoError(t, err)
		require.Equal(t, ss, got)
	})

	t.Run("derived key pairs agree", func(t *testing.T) {
		seed := make([]byte, SeedSize)
		for i := range seed {
			seed[i] = byte(0xC0 ^ i)
		}
		cpk, _ := scheme.DeriveKeyPair(seed)
		cpkBytes, err := cpk.MarshalBinary()
		require.NoError(t, err)

		pk, _, err := GenerateKey(bytes.NewReader(seed))
		require.NoError(t, err)
		require.Equal(t, cpkBytes, pk)
	})
}

func TestPolyCompressionRoundTrip(t *testing.T) {
	prng := rand.New(rand.NewSource(13))

	var p poly
	for i := range p.coeffs {
		p.coeffs[i] = int16(prng.Intn(q))
	}
	buf := make([]byte, polyBytes)
	p.toBytes(buf)
	var r poly
	r.fromBytes(buf)
	for i := range p.coeffs {
		require.Equal(t, csubq(barrettReduce(p.coeffs[i])), r.coeffs[i])
	}

	// Lossy compression must round-trip within the quantization error bound.
	var c poly
	for i := range c.coeffs {
		c.coeffs[i] = int16(prng.Intn(q))
	}
	cbuf := make([]byte, polyCompressed)
	c.compress(cbuf)
	var d poly
	d.decompress(cbuf)
	for i := range c.coeffs {
		diff := int32(c.coeffs[i]) - int32(d.coeffs[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > q-diff {
			diff = q - diff
		}
		if diff > (q+(1<<(dv+1)))/(1<<(dv+1)) {
			t.Fatalf("dv compression error too large at %d: %d", i, diff)
		}
	}
}

func TestNTTRoundTrip(t *testing.T) {
	prng := rand.New(rand.NewSource(14))
	var p, orig poly
	for i := range p.coeffs {
		p.coeffs[i] = int16(prng.Intn(q))
	}
	orig = p

	p.ntt()
	p.invNTT()
	// ntt followed by invNTT multiplies every coefficient by the Montgomery
	// factor 2^16 (from invNTT's final scaling); strip it.
	for i := range p.coeffs {
		got := csubq(barrettReduce(montgomeryReduce(int32(p.coeffs[i]))))
		want := csubq(barrettReduce(orig.coeffs[i]))
		require.Equal(t, want, got, "coefficient %d", i)
	}
}

func TestInputValidation(t *testing.T) {
	rng := drbg.NewNistKat(testKatSeed(), nil)
	_, _, err := Encapsulate(make([]byte, PublicKeySize-1), rng)
	require.ErrorIs(t, err, ErrPublicKeySize)

	_, err = Decapsulate(make([]byte, PrivateKeySize-1), make([]byte, CiphertextSize))
	require.ErrorIs(t, err, ErrPrivateKeySize)

	_, err = Decapsulate(make([]byte, PrivateKeySize), make([]byte, CiphertextSize+1))
	require.ErrorIs(t, err, ErrCiphertextSize)
}

func BenchmarkEncapsulate(b *testing.B) {
	rng := drbg.NewNistKat(testKatSeed(), nil)
	pk, _, err := GenerateKey(rng)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := Encapsulate(pk, rng); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecapsulate(b *testing.B) {
	rng := drbg.NewNistKat(testKatSeed(), nil)
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
