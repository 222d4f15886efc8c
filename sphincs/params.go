// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sphincs implements the SPHINCS+-SHAKE256 stateless hash-based
// signature scheme (robust variant): WOTS+ chains under a FORS few-time
// layer, stitched into a hypertree with domain-separated 32-byte addresses.
//
// All six shake parameter sets are available; the small (s) sets trade
// signing time for signature size, the fast (f) sets the reverse.
package sphincs

const (
	// Winternitz parameter, fixed at 16 across all sets.
	wotsW    = 16
	wotsLogW = 4
)

// Mode fixes one SPHINCS+ parameter set.
type Mode struct {
	Name string

	n          int // hash output bytes
	fullHeight int
	d          int // hypertree layers
	forsHeight int
	forsTrees  int

	treeHeight   int
	wotsLen1     int
	wotsLen2     int
	wotsLen      int
	wotsBytes    int
	forsMsgBytes int
	forsBytes    int

	// SeedSize is the randomness consumed by key generation
	// (SK.seed || SK.prf || PUB.seed).
	SeedSize int
	// PublicKeySize is PUB.seed || root.
	PublicKeySize int
	// PrivateKeySize is SK.seed || SK.prf || PUB.seed || root.
	PrivateKeySize int
	// SignatureSize is R || FORS || d WOTS+ signatures with auth paths.
	SignatureSize int
}

func newMode(name string, n, fullHeight, d, forsHeight, forsTrees int) *Mode {
	m := &Mode{
		Name:       name,
		n:          n,
		fullHeight: fullHeight,
		d:          d,
		forsHeight: forsHeight,
		forsTrees:  forsTrees,
	}
	m.treeHeight = fullHeight / d
	m.wotsLen1 = 8 * n / wotsLogW
	m.wotsLen2 = 3 // precomputed for w=16, 9 <= n <= 136
	m.wotsLen = m.wotsLen1 + m.wotsLen2
	m.wotsBytes = m.wotsLen * n
	m.forsMsgBytes = (forsHeight*forsTrees + 7) / 8
	m.forsBytes = (forsHeight + 1) * forsTrees * n

	m.SeedSize = 3 * n
	m.PublicKeySize = 2 * n
	m.PrivateKeySize = 4 * n
	m.SignatureSize = n + m.forsBytes + d*(m.wotsBytes+m.treeHeight*n)
	return m
}

var (
	// Small variants: 8 layers over height 64.
	Shake128s = newMode("sphincs-shake256-128s", 16, 64, 8, 15, 10)
	Shake192s = newMode("sphincs-shake256-192s", 24, 64, 8, 16, 14)
	Shake256s = newMode("sphincs-shake256-256s", 32, 64, 8, 14, 22)

	// Fast variants: shallow subtrees, many layers.
	Shake128f = newMode("sphincs-shake256-128f", 16, 60, 20, 9, 30)
	Shake192f = newMode("sphincs-shake256-192f", 24, 66, 22, 8, 33)
	Shake256f = newMode("sphincs-shake256-256f", 32, 68, 17, 10, 30)
)
