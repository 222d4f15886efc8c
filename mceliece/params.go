// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package mceliece implements the Classic McEliece KEM over binary Goppa
// codes for the 6960-119 and 8192-128 parameter sets. Both sets work in
// GF(2^13); the secret key holds the implicit-rejection string, the Goppa
// polynomial and the Beneš control bits of the support permutation, so
// decapsulation needs no further setup.
package mceliece

const (
	gfBits = 13
	gfMask = (1 << gfBits) - 1

	// The Beneš network always spans 2^13 positions.
	benesSize   = 1 << gfBits
	benesLayers = 2*gfBits - 1
	// Bits per layer, bytes per layer, total control bytes.
	layerBits  = benesSize / 2
	layerBytes = layerBits / 8
	condBytes  = benesLayers * layerBytes

	sharedKeySize = 32

	// keyGenRetries bounds restarts on a non-systematic public key or a
	// colliding permutation.
	keyGenRetries = 100
)

// ParameterSet fixes one Classic McEliece instantiation. The field
// polynomial F(y) = y^t + sum y^e over fieldExps defines reduction in
// GF((2^13)^t); it is the published polynomial for the set, re-derived
// rather than carried as opaque constants.
type ParameterSet struct {
	Name string

	sysN      int
	sysT      int
	fieldExps []int

	pkNRows    int // sysT * gfBits
	pkNCols    int // sysN - pkNRows
	pkRowBytes int
	syndBytes  int
	irrBytes   int // 2 * sysT

	PublicKeySize  int
	PrivateKeySize int
	CiphertextSize int
	SharedKeySize  int
}

func newParameterSet(name string, sysN, sysT int, fieldExps []int) *ParameterSet {
	ps := &ParameterSet{
		Name:      name,
		sysN:      sysN,
		sysT:      sysT,
		fieldExps: fieldExps,
	}
	ps.pkNRows = sysT * gfBits
	ps.pkNCols = sysN - ps.pkNRows
	ps.pkRowBytes = (ps.pkNCols + 7) / 8
	ps.syndBytes = (ps.pkNRows + 7) / 8
	ps.irrBytes = 2 * sysT

	ps.PublicKeySize = ps.pkNRows * ps.pkRowBytes
	ps.PrivateKeySize = sysN/8 + ps.irrBytes + condBytes
	ps.CiphertextSize = ps.syndBytes + sharedKeySize
	ps.SharedKeySize = sharedKeySize
	return ps
}

// McEliece6960119: n=6960, t=119, F(y) = y^119 + y^8 + 1.
var McEliece6960119 = newParameterSet("mceliece6960119", 6960, 119, []int{8, 0})

// McEliece8192128: n=8192, t=128, F(y) = y^128 + y^7 + y^2 + y + 1.
var McEliece8192128 = newParameterSet("mceliece8192128", 8192, 128, []int{7, 2, 1, 0})
