// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sha3 implements the Keccak-f[1600] sponge together with the
// SHA3-256/512 hashes and the SHAKE-128/256, cSHAKE-128/256 and KMAC-256
// extendable-output functions the schemes in this module are built on.
//
// The permutation state is 25 64-bit lanes. Absorption XORs input into the
// rate region r bytes at a time; finalization XORs the domain-separation
// byte and the 0x80 trailer. Squeezing produces whole rate blocks; the
// io.Reader layer buffers partial reads on top.
package sha3

const (
	// RateShake128 is the SHAKE-128 rate in bytes.
	RateShake128 = 168
	// RateShake256 is the SHAKE-256 and SHA3-256 rate in bytes.
	RateShake256 = 136
	// RateSha3_512 is the SHA3-512 rate in bytes.
	RateSha3_512 = 72

	domainSHA3   = 0x06
	domainSHAKE  = 0x1F
	domainCShake = 0x04
)

// State is a Keccak sponge mid-absorption or mid-squeeze. The zero value is
// not usable; construct one with NewShake128, NewShake256, NewCShake128,
// NewCShake256 or newState.
type State struct {
	a    [25]uint64
	rate int
	ds   byte

	// pos is the byte offset into the current rate block: bytes absorbed so
	// far while absorbing, bytes already read out while squeezing.
	pos       int
	squeezing bool
}

func newState(rate int, ds byte) *State {
	return &State{rate: rate, ds: ds}
}

// NewShake128 returns a SHAKE-128 sponge.
func NewShake128() *State { return newState(RateShake128, domainSHAKE) }

// NewShake256 returns a SHAKE-256 sponge.
func NewShake256() *State { return newState(RateShake256, domainSHAKE) }

// NewShake512 returns a SHAKE-512 sponge (rate 72). This is not a NIST
// function; it extends the SHAKE family to the SHA3-512 capacity.
func NewShake512() *State { return newState(RateSha3_512, domainSHAKE) }

// Reset returns the sponge to its initial empty state.
func (s *State) Reset() {
	for i := range s.a {
		s.a[i] = 0
	}
	s.pos = 0
	s.squeezing = false
}

// Rate returns the sponge rate in bytes.
func (s *State) Rate() int { return s.rate }

func (s *State) xorIn(p []byte) {
	for i, b := range p {
		j := s.pos + i
		s.a[j/8] ^= uint64(b) << (8 * uint(j%8))
	}
}

func (s *State) extract(out []byte, off int) {
	for i := range out {
		j := off + i
		out[i] = byte(s.a[j/8] >> (8 * uint(j%8)))
	}
}

// Absorb feeds p into the sponge. It panics if called after squeezing began.
func (s *State) Absorb(p []byte) {
	if s.squeezing {
		panic("sha3: absorb after read")
	}
	for len(p) > 0 {
		n := s.rate - s.pos
		if n > len(p) {
			n = len(p)
		}
		s.xorIn(p[:n])
		s.pos += n
		p = p[n:]
		if s.pos == s.rate {
			permute(&s.a)
			s.pos = 0
		}
	}
}

// Write implements io.Writer via Absorb.
func (s *State) Write(p []byte) (int, error) {
	s.Absorb(p)
	return len(p), nil
}

// finalize pads the current block with the domain byte and the 0x80 trailer
// and switches the sponge to squeezing.
func (s *State) finalize() {
	s.a[s.pos/8] ^= uint64(s.ds) << (8 * uint(s.pos%8))
	s.a[(s.rate-1)/8] ^= uint64(0x80) << (8 * uint((s.rate-1)%8))
	permute(&s.a)
	s.pos = 0
	s.squeezing = true
}

// SqueezeBlocks writes nblocks*rate bytes of output into out. The first call
// finalizes the sponge. out must hold at least nblocks*rate bytes, and the
// sponge must be block-aligned (no partial Read since finalization).
func (s *State) SqueezeBlocks(out []byte, nblocks int) {
	if !s.squeezing {
		s.finalize()
	}
	if s.pos != 0 {
		panic("sha3: block squeeze after partial read")
	}
	for i := 0; i < nblocks; i++ {
		s.extract(out[i*s.rate:(i+1)*s.rate], 0)
		permute(&s.a)
	}
}

// Read squeezes len(p) bytes of output. The first call finalizes the sponge.
// It never fails.
func (s *State) Read(p []byte) (int, error) {
	if !s.squeezing {
		s.finalize()
	}
	read := len(p)
	for len(p) > 0 {
		n := s.rate - s.pos
		if n > len(p) {
			n = len(p)
		}
		s.extract(p[:n], s.pos)
		s.pos += n
		p = p[n:]
		if s.pos == s.rate {
			permute(&s.a)
			s.pos = 0
		}
	}
	return read, nil
}

// Sum256 computes SHA3-256 of data.
func Sum256(data []byte) [32]byte {
	var out [32]byte
	s := newState(RateShake256, domainSHA3)
	s.Absorb(data)
	s.Read(out[:])
	return out
}

// Sum512 computes SHA3-512 of data.
func Sum512(data []byte) [64]byte {
	var out [64]byte
	s := newState(RateSha3_512, domainSHA3)
	s.Absorb(data)
	s.Read(out[:])
	return out
}

// Shake128 fills out with SHAKE-128 of in.
func Shake128(out, in []byte) {
	s := NewShake128()
	s.Absorb(in)
	s.Read(out)
}

// Shake256 fills out with SHAKE-256 of in.
func Shake256(out, in []byte) {
	s := NewShake256()
	s.Absorb(in)
	s.Read(out)
}

// Shake512 fills out with SHAKE-512 of in.
func Shake512(out, in []byte) {
	s := NewShake512()
	s.Absorb(in)
	s.Read(out)
}
