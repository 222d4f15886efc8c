// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mceliece

// pkGen builds the binary parity-check matrix of the Goppa code from the
// secret key, reduces it to systematic form with masked row operations and
// exports the right-hand block row-packed. Returns false when the left
// block is singular; the caller retries with fresh randomness. This is the
// dominant cost of key generation.
func (ps *ParameterSet) pkGen(pk []byte, sk []byte) bool {
	t := ps.sysT
	nrows := ps.pkNRows
	rowBytes := ps.sysN / 8

	g := make([]gf, t+1)
	g[t] = 1
	for i := 0; i < t; i++ {
		g[i] = gf(uint16(sk[2*i])|uint16(sk[2*i+1])<<8) & gfMask
	}

	support := make([]gf, ps.sysN)
	ps.supportGen(support, sk[ps.irrBytes:])

	inv := make([]gf, ps.sysN)
	ps.root(inv, g, support)
	for i := range inv {
		inv[i] = gfInv(inv[i])
	}

	mat := make([][]byte, nrows)
	for i := range mat {
		mat[i] = make([]byte, rowBytes)
	}

	for i := 0; i < t; i++ {
		for j := 0; j < ps.sysN; j += 8 {
			for k := 0; k < gfBits; k++ {
				var b byte
				for m := 7; m >= 0; m-- {
					b <<= 1
					b |= byte(inv[j+m] >> uint(k) & 1)
				}
				mat[i*gfBits+k][j/8] = b
			}
		}
		for j := 0; j < ps.sysN; j++ {
			inv[j] = gfMul(inv[j], support[j])
		}
	}

	// Gaussian elimination restricted to the first nrows columns.
	for i := 0; i < (nrows+7)/8; i++ {
		for j := 0; j < 8; j++ {
			row := i*8 + j
			if row >= nrows {
				break
			}

			for k := row + 1; k < nrows; k++ {
				mask := mat[row][i] ^ mat[k][i]
				mask >>= uint(j)
				mask &= 1
				mask = -mask
				for c := 0; c < rowBytes; c++ {
					mat[row][c] ^= mat[k][c] & mask
				}
			}

			// Non-systematic: fail and let the caller redraw.
			if mat[row][i]>>uint(j)&1 == 0 {
				return false
			}

			for k := 0; k < nrows; k++ {
				if k != row {
					mask := mat[k][i] >> uint(j)
					mask &= 1
					mask = -mask
					for c := 0; c < rowBytes; c++ {
						mat[k][c] ^= mat[row][c] & mask
					}
				}
			}
		}
	}

	tail := uint(nrows % 8)
	if tail == 0 {
		for i := 0; i < nrows; i++ {
			copy(pk[i*ps.pkRowBytes:(i+1)*ps.pkRowBytes], mat[i][nrows/8:])
		}
		return true
	}

	// Rows are exported starting mid-byte: shift the identity tail out.
	k := 0
	for i := 0; i < nrows; i++ {
		for j := (nrows - 1) / 8; j < rowBytes-1; j++ {
			pk[k] = mat[i][j]>>tail | mat[i][j+1]<<(8-tail)
			k++
		}
		pk[k] = mat[i][rowBytes-1] >> tail
		k++
	}
	return true
}
