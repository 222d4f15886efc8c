// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kyber implements the Kyber-768 key encapsulation mechanism
// (round-3 parameter set): an IND-CCA2 KEM obtained from an LWE-style
// encryption scheme through the Fujisaki-Okamoto transform with implicit
// rejection.
package kyber

const (
	n = 256
	q = 3329
	// qInv is q^-1 mod 2^16 for Montgomery reduction.
	qInv = 62209

	k    = 3
	eta1 = 2
	eta2 = 2
	du   = 10
	dv   = 4

	symBytes       = 32
	polyBytes      = 384
	polyVecBytes   = k * polyBytes
	polyCompressed = 128
	vecCompressed  = k * 320

	indcpaPublicKeySize  = polyVecBytes + symBytes
	indcpaSecretKeySize  = polyVecBytes
	indcpaCiphertextSize = vecCompressed + polyCompressed

	// SeedSize is the number of bytes consumed from the caller's randomness
	// source during key generation (d || z).
	SeedSize = 2 * symBytes
	// EncapsSeedSize is the randomness consumed by encapsulation.
	EncapsSeedSize = symBytes

	// PublicKeySize is packed(t) || rho.
	PublicKeySize = indcpaPublicKeySize
	// PrivateKeySize is packed(s) || pk || H(pk) || z.
	PrivateKeySize = indcpaSecretKeySize + indcpaPublicKeySize + 2*symBytes
	// CiphertextSize is compressed(u) || compressed(v).
	CiphertextSize = indcpaCiphertextSize
	// SharedKeySize is the size of the derived shared secret.
	SharedKeySize = symBytes
)
