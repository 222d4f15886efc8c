// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mceliece

import (
	"fmt"
	"io"
)

// irrGen computes the minimal polynomial of a random field element of
// GF((2^13)^t), which is the monic irreducible Goppa polynomial of degree t
// when the element generates the extension. Returns false when the linear
// system is singular and the caller must redraw.
func (ps *ParameterSet) irrGen(out []gf, f []gf) bool {
	t := ps.sysT

	// mat[j] holds f^j as a column; (t+1) x t.
	mat := make([][]gf, t+1)
	for i := range mat {
		mat[i] = make([]gf, t)
	}

	mat[0][0] = 1
	copy(mat[1], f[:t])
	for j := 2; j <= t; j++ {
		ps.polyMul(mat[j], mat[j-1], f)
	}

	// Gaussian elimination on the transposed system.
	for j := 0; j < t; j++ {
		for k := j + 1; k < t; k++ {
			mask := gfIsZero(mat[j][j])
			for c := j; c < t+1; c++ {
				mat[c][j] ^= mat[c][k] & mask
			}
		}

		if mat[j][j] == 0 {
			return false
		}

		inv := gfInv(mat[j][j])
		for c := j; c < t+1; c++ {
			mat[c][j] = gfMul(mat[c][j], inv)
		}

		for k := 0; k < t; k++ {
			if k != j {
				tk := mat[j][k]
				for c := j; c < t+1; c++ {
					mat[c][k] ^= gfMul(mat[c][j], tk)
				}
			}
		}
	}

	for i := 0; i < t; i++ {
		out[i] = mat[t][i]
	}
	return true
}

// permToPi checks the 32-bit key-stream values for collisions and converts
// them to the support permutation by sorting (value, index) pairs. Returns
// false when two values collide.
func permToPi(pi []int16, perm []uint32) bool {
	var l [benesSize]uint64
	for i := 0; i < benesSize; i++ {
		l[i] = uint64(perm[i])<<31 | uint64(i)
	}

	sortUint64(l[:])

	for i := 1; i < benesSize; i++ {
		if l[i-1]>>31 == l[i]>>31 {
			return false
		}
	}

	for i := 0; i < benesSize; i++ {
		pi[i] = int16(l[i] & gfMask)
	}
	return true
}

// skGen fills sk = s || g || controlbits, drawing from rand with bounded
// retries for a non-generating field element or a colliding permutation.
func (ps *ParameterSet) skGen(sk []byte, rand io.Reader) error {
	// Implicit-rejection string s.
	if _, err := io.ReadFull(rand, sk[:ps.sysN/8]); err != nil {
		return fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	t := ps.sysT
	a := make([]gf, t)
	g := make([]gf, t)
	buf := make([]byte, 2*t)

	ok := false
	for i := 0; i < keyGenRetries; i++ {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		for j := 0; j < t; j++ {
			a[j] = gf(uint16(buf[2*j])|uint16(buf[2*j+1])<<8) & gfMask
		}
		if ps.irrGen(g, a) {
			ok = true
			break
		}
	}
	if !ok {
		return ErrKeyGenRetries
	}

	perm := make([]uint32, benesSize)
	pbuf := make([]byte, 4*benesSize)
	pi := make([]int16, benesSize)

	ok = false
	for i := 0; i < keyGenRetries; i++ {
		if _, err := io.ReadFull(rand, pbuf); err != nil {
			return fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		for j := 0; j < benesSize; j++ {
			perm[j] = uint32(pbuf[4*j]) | uint32(pbuf[4*j+1])<<8 | uint32(pbuf[4*j+2])<<16 | uint32(pbuf[4*j+3])<<24
		}
		if permToPi(pi, perm) {
			ok = true
			break
		}
	}
	if !ok {
		return ErrKeyGenRetries
	}

	irr := sk[ps.sysN/8:]
	for i := 0; i < t; i++ {
		irr[2*i] = byte(g[i])
		irr[2*i+1] = byte(g[i] >> 8)
	}

	controlBits(sk[ps.sysN/8+ps.irrBytes:], pi)

	for i := range pbuf {
		pbuf[i] = 0
	}
	for i := range buf {
		buf[i] = 0
	}
	return nil
}
