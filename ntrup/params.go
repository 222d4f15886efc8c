// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ntrup implements the Streamlined NTRU Prime 4591^761 key
// encapsulation mechanism: a quotient NTRU KEM over the prime ring
// Z_q[x]/(x^p - x - 1) with fixed-weight ternary secrets, rounded
// ciphertexts and a hash confirmation.
package ntrup

const (
	p = 761
	q = 4591
	// qShift recenters representatives: coefficients live in
	// [-qShift, qShift].
	qShift = (q - 1) / 2
	// w is the Hamming weight of the ternary secrets.
	w = 286

	smallEncodedSize   = (p-1)/4 + 1 // 191
	rqEncodedSize      = (p-1)/5*8 + 2
	roundedEncodedSize = (p-1)/3*4 + 3

	// SeedSize is the randomness consumed by key generation for the
	// fixed-weight secret; additional bytes are drawn for g until it is
	// invertible.
	SeedSize = 32
	// EncapsSeedSize is the randomness consumed by encapsulation.
	EncapsSeedSize = 32

	// PublicKeySize is the full rounded-free encoding of h.
	PublicKeySize = rqEncodedSize // 1218
	// PrivateKeySize is small(f) || small(1/g) || pk.
	PrivateKeySize = 2*smallEncodedSize + PublicKeySize // 1600
	// CiphertextSize is the 32-byte confirmation followed by the rounded
	// encoding of c.
	CiphertextSize = 32 + roundedEncodedSize // 1047
	// SharedKeySize is the size of the derived shared secret.
	SharedKeySize = 32
)
