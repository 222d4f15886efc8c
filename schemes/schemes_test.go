// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schemes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/pqc/drbg"
	"github.com/luxfi/pqc/kem"
	"github.com/luxfi/pqc/sign"
)

func testRand(tag string) *drbg.NistKat {
	var seed [48]byte
	for i := range seed {
		seed[i] = byte(i ^ 0x24)
	}
	return drbg.NewNistKat(&seed, []byte(tag))
}

func TestRegistryNames(t *testing.T) {
	for _, name := range []string{
		"kyber768", "sntrup4591761", "mceliece6960119", "mceliece8192128",
	} {
		require.NotNil(t, kem.ByName(name), name)
	}
	for _, name := range []string{
		"dilithium3",
		"sphincs-shake256-128s", "sphincs-shake256-192s", "sphincs-shake256-256s",
		"sphincs-shake256-128f", "sphincs-shake256-192f", "sphincs-shake256-256f",
	} {
		require.NotNil(t, sign.ByName(name), name)
	}

	require.Nil(t, kem.ByName("unknown"))
	require.Nil(t, sign.ByName("unknown"))

	// Deterministic iteration order.
	all := kem.All()
	for i := 1; i < len(all); i++ {
		require.Less(t, all[i-1].Name(), all[i].Name())
	}
}

func TestKEMSchemesThroughInterface(t *testing.T) {
	for _, name := range []string{"kyber768", "sntrup4591761"} {
		t.Run(name, func(t *testing.T) {
			s := kem.ByName(name)
			rng := testRand(name)

			pk, sk, err := s.GenerateKey(rng)
			require.NoError(t, err)
			require.Len(t, pk, s.PublicKeySize())
			require.Len(t, sk, s.PrivateKeySize())

			ct, ss, err := s.Encapsulate(pk, rng)
			require.NoError(t, err)
			require.Len(t, ct, s.CiphertextSize())
			require.Len(t, ss, s.SharedKeySize())

			got, err := s.Decapsulate(sk, ct)
			require.NoError(t, err)
			require.Equal(t, ss, got)
		})
	}
}

func TestSignSchemesThroughInterface(t *testing.T) {
	for _, name := range []string{"dilithium3", "sphincs-shake256-128f"} {
		t.Run(name, func(t *testing.T) {
			s := sign.ByName(name)
			rng := testRand(name)

			pk, sk, err := s.GenerateKey(rng)
			require.NoError(t, err)

			msg := []byte("registry round trip")
			sm, err := s.Sign(sk, msg)
			require.NoError(t, err)
			require.Len(t, sm, s.SignatureSize()+len(msg))

			got, ok := s.Open(pk, sm)
			require.True(t, ok)
			require.Equal(t, msg, got)

			sm[len(sm)-1] ^= 1
			_, ok = s.Open(pk, sm)
			require.False(t, ok)
		})
	}
}
