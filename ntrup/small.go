// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ntrup

import (
	"fmt"
	"io"

	"github.com/luxfi/pqc/drbg"
)

// smallEncode packs ternary coefficients four to a byte; relies on
// p mod 4 = 1 for the trailing coefficient.
func smallEncode(c []byte, f *[p]int8) {
	j := 0
	for i := 0; i < p/4; i++ {
		c0 := byte(f[4*i]+1) | byte(f[4*i+1]+1)<<2 | byte(f[4*i+2]+1)<<4 | byte(f[4*i+3]+1)<<6
		c[j] = c0
		j++
	}
	c[j] = byte(f[p-1] + 1)
}

func smallDecode(f *[p]int8, c []byte) {
	j := 0
	for i := 0; i < p/4; i++ {
		c0 := c[j]
		j++
		f[4*i] = int8(c0&3) - 1
		f[4*i+1] = int8(c0>>2&3) - 1
		f[4*i+2] = int8(c0>>4&3) - 1
		f[4*i+3] = int8(c0>>6&3) - 1
	}
	f[p-1] = int8(c[j]&3) - 1
}

// smallRandom samples each coefficient nearly uniformly from {-1, 0, 1}.
func smallRandom(f *[p]int8, rand io.Reader) error {
	buf := make([]byte, 4*p)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	for i := 0; i < p; i++ {
		r := uint32(buf[4*i]) | uint32(buf[4*i+1])<<8 | uint32(buf[4*i+2])<<16 | uint32(buf[4*i+3])<<24
		f[i] = int8((r&0x3FFFFFFF)*3>>30) - 1
	}
	wipe(buf)
	return nil
}

// smallSeededWeightW derives a weight-w ternary polynomial from a 32-byte
// seed: expand with AES-256-CTR, tag the first w slots, sort, read the tags
// back out of the sorted order.
func smallSeededWeightW(f *[p]int8, seed *[32]byte) {
	var r [p]int32
	buf := make([]byte, 4*p)
	var nonce [16]byte
	drbg.AES256Generate(buf, &nonce, seed)

	for i := 0; i < p; i++ {
		u := uint32(buf[4*i]) | uint32(buf[4*i+1])<<8 | uint32(buf[4*i+2])<<16 | uint32(buf[4*i+3])<<24
		r[i] = int32(u ^ 0x80000000)
	}
	for i := 0; i < w; i++ {
		r[i] &= -2
	}
	for i := w; i < p; i++ {
		r[i] = r[i]&-3 | 1
	}

	sortInt32(r[:])

	for i := 0; i < p; i++ {
		f[i] = int8(uint8(r[i]&3)) - 1
	}
	wipe(buf)
}

// smallRandomWeightW draws a fresh seed from rand and expands it.
func smallRandomWeightW(f *[p]int8, rand io.Reader) error {
	var seed [32]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	smallSeededWeightW(f, &seed)
	for i := range seed {
		seed[i] = 0
	}
	return nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func wipeSmall(f *[p]int8) {
	for i := range f {
		f[i] = 0
	}
}
