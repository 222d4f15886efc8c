// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package schemes wires every KEM and signature scheme of this module into
// the kem and sign registries. Importing it gives name-based lookup over
// the full algorithm suite.
package schemes

import (
	"io"

	"github.com/luxfi/pqc/dilithium"
	"github.com/luxfi/pqc/kem"
	"github.com/luxfi/pqc/kyber"
	"github.com/luxfi/pqc/mceliece"
	"github.com/luxfi/pqc/ntrup"
	"github.com/luxfi/pqc/sign"
	"github.com/luxfi/pqc/sphincs"
)

type kyberScheme struct{}

func (kyberScheme) Name() string        { return "kyber768" }
func (kyberScheme) PublicKeySize() int  { return kyber.PublicKeySize }
func (kyberScheme) PrivateKeySize() int { return kyber.PrivateKeySize }
func (kyberScheme) CiphertextSize() int { return kyber.CiphertextSize }
func (kyberScheme) SharedKeySize() int  { return kyber.SharedKeySize }
func (kyberScheme) GenerateKey(rand io.Reader) ([]byte, []byte, error) {
	return kyber.GenerateKey(rand)
}
func (kyberScheme) Encapsulate(pk []byte, rand io.Reader) ([]byte, []byte, error) {
	return kyber.Encapsulate(pk, rand)
}
func (kyberScheme) Decapsulate(sk, ct []byte) ([]byte, error) {
	return kyber.Decapsulate(sk, ct)
}

type ntrupScheme struct{}

func (ntrupScheme) Name() string        { return "sntrup4591761" }
func (ntrupScheme) PublicKeySize() int  { return ntrup.PublicKeySize }
func (ntrupScheme) PrivateKeySize() int { return ntrup.PrivateKeySize }
func (ntrupScheme) CiphertextSize() int { return ntrup.CiphertextSize }
func (ntrupScheme) SharedKeySize() int  { return ntrup.SharedKeySize }
func (ntrupScheme) GenerateKey(rand io.Reader) ([]byte, []byte, error) {
	return ntrup.GenerateKey(rand)
}
func (ntrupScheme) Encapsulate(pk []byte, rand io.Reader) ([]byte, []byte, error) {
	return ntrup.Encapsulate(pk, rand)
}
func (ntrupScheme) Decapsulate(sk, ct []byte) ([]byte, error) {
	return ntrup.Decapsulate(sk, ct)
}

type mcelieceScheme struct {
	ps *mceliece.ParameterSet
}

func (s mcelieceScheme) Name() string        { return s.ps.Name }
func (s mcelieceScheme) PublicKeySize() int  { return s.ps.PublicKeySize }
func (s mcelieceScheme) PrivateKeySize() int { return s.ps.PrivateKeySize }
func (s mcelieceScheme) CiphertextSize() int { return s.ps.CiphertextSize }
func (s mcelieceScheme) SharedKeySize() int  { return s.ps.SharedKeySize }
func (s mcelieceScheme) GenerateKey(rand io.Reader) ([]byte, []byte, error) {
	return s.ps.GenerateKey(rand)
}
func (s mcelieceScheme) Encapsulate(pk []byte, rand io.Reader) ([]byte, []byte, error) {
	return s.ps.Encapsulate(pk, rand)
}
func (s mcelieceScheme) Decapsulate(sk, ct []byte) ([]byte, error) {
	return s.ps.Decapsulate(sk, ct)
}

type dilithiumScheme struct{}

func (dilithiumScheme) Name() string        { return "dilithium3" }
func (dilithiumScheme) PublicKeySize() int  { return dilithium.PublicKeySize }
func (dilithiumScheme) PrivateKeySize() int { return dilithium.PrivateKeySize }
func (dilithiumScheme) SignatureSize() int  { return dilithium.SignatureSize }
func (dilithiumScheme) GenerateKey(rand io.Reader) ([]byte, []byte, error) {
	return dilithium.GenerateKey(rand)
}
func (dilithiumScheme) Sign(sk, msg []byte) ([]byte, error) {
	return dilithium.Sign(sk, msg)
}
func (dilithiumScheme) Open(pk, signedMsg []byte) ([]byte, bool) {
	return dilithium.Open(pk, signedMsg)
}

type sphincsScheme struct {
	mode *sphincs.Mode
}

func (s sphincsScheme) Name() string        { return s.mode.Name }
func (s sphincsScheme) PublicKeySize() int  { return s.mode.PublicKeySize }
func (s sphincsScheme) PrivateKeySize() int { return s.mode.PrivateKeySize }
func (s sphincsScheme) SignatureSize() int  { return s.mode.SignatureSize }
func (s sphincsScheme) GenerateKey(rand io.Reader) ([]byte, []byte, error) {
	return s.mode.GenerateKey(rand)
}
func (s sphincsScheme) Sign(sk, msg []byte) ([]byte, error) {
	return s.mode.Sign(sk, msg, nil)
}
func (s sphincsScheme) Open(pk, signedMsg []byte) ([]byte, bool) {
	return s.mode.Open(pk, signedMsg)
}

func init() {
	kems := []kem.Scheme{
		kyberScheme{},
		ntrupScheme{},
		mcelieceScheme{mceliece.McEliece6960119},
		mcelieceScheme{mceliece.McEliece8192128},
	}
	for _, s := range kems {
		if err := kem.Register(s); err != nil {
			panic(err)
		}
	}

	sigs := []sign.Scheme{
		dilithiumScheme{},
		sphincsScheme{sphincs.Shake128s},
		sphincsScheme{sphincs.Shake192s},
		sphincsScheme{sphincs.Shake256s},
		sphincsScheme{sphincs.Shake128f},
		sphincsScheme{sphincs.Shake192f},
		sphincsScheme{sphincs.Shake256f},
	}
	for _, s := range sigs {
		if err := sign.Register(s); err != nil {
			panic(err)
		}
	}
}
