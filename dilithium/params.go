// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dilithium implements the Dilithium-III signature scheme (round-2
// parameter set): Fiat–Shamir with aborts over module lattices, with the
// hint mechanism and strong-unforgeability-preserving signature encoding.
//
// Signing is deterministic: the per-message randomness is derived from the
// key and message, so signing the same message twice yields the same bytes.
package dilithium

const (
	n = 256
	q = 8380417
	// qInv is -q^-1 mod 2^32 precomputed for Montgomery reduction.
	qInv = 4236238847
	d    = 14

	k   = 5
	l   = 4
	eta = 5
	// setaBits is the sample width used by the eta rejection sampler.
	setaBits = 4

	gamma1 = (q - 1) / 16 // 523776
	gamma2 = gamma1 / 2   // 261888
	alpha  = 2 * gamma2
	beta   = 275
	omega  = 96

	polT1PackedSize  = 288
	polT0PackedSize  = 448
	polEtaPackedSize = 128
	polZPackedSize   = 640
	polW1PackedSize  = 128

	// SeedSize is the number of bytes read from the caller's randomness
	// source during key generation.
	SeedSize = 32
	crhSize  = 48

	// PublicKeySize is rho || packed(t1).
	PublicKeySize = SeedSize + k*polT1PackedSize
	// PrivateKeySize is rho || key || tr || packed(s1) || packed(s2) || packed(t0).
	PrivateKeySize = 2*SeedSize + crhSize + (k+l)*polEtaPackedSize + k*polT0PackedSize
	// SignatureSize is packed(z) || packed(h) || packed(c).
	SignatureSize = l*polZPackedSize + omega + k + n/8 + 8
)
