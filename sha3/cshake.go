// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sha3

// SP 800-185 string encodings.

func leftEncode(x uint64) []byte {
	var b [9]byte
	n := 8
	b[8] = byte(x)
	for x >>= 8; x != 0; x >>= 8 {
		n--
		b[n] = byte(x)
	}
	b[n-1] = byte(9 - n)
	return b[n-1:]
}

func rightEncode(x uint64) []byte {
	var b [9]byte
	n := 8
	b[7] = byte(x)
	for x >>= 8; x != 0; x >>= 8 {
		n--
		b[n-1] = byte(x)
	}
	b[8] = byte(9 - n)
	return b[n-1:]
}

func encodeString(s []byte) []byte {
	return append(leftEncode(uint64(len(s))*8), s...)
}

// absorbPrefix absorbs bytepad(encode_string(name) || encode_string(custom), rate).
func (s *State) absorbPrefix(name, custom []byte) {
	s.Absorb(leftEncode(uint64(s.rate)))
	s.Absorb(encodeString(name))
	s.Absorb(encodeString(custom))
	if s.pos != 0 {
		pad := make([]byte, s.rate-s.pos)
		s.Absorb(pad)
	}
}

// NewCShake128 returns a cSHAKE-128 sponge with the given function name and
// customization string. With both empty it degrades to plain SHAKE-128 as
// SP 800-185 requires.
func NewCShake128(name, custom []byte) *State {
	if len(name) == 0 && len(custom) == 0 {
		return NewShake128()
	}
	s := newState(RateShake128, domainCShake)
	s.absorbPrefix(name, custom)
	return s
}

// NewCShake256 returns a cSHAKE-256 sponge with the given function name and
// customization string.
func NewCShake256(name, custom []byte) *State {
	if len(name) == 0 && len(custom) == 0 {
		return NewShake256()
	}
	s := newState(RateShake256, domainCShake)
	s.absorbPrefix(name, custom)
	return s
}

// NewCShake512 returns a cSHAKE sponge at the SHA3-512 capacity, following
// the same SP 800-185 prefix encoding at rate 72.
func NewCShake512(name, custom []byte) *State {
	if len(name) == 0 && len(custom) == 0 {
		return NewShake512()
	}
	s := newState(RateSha3_512, domainCShake)
	s.absorbPrefix(name, custom)
	return s
}

// CShake256 fills out with cSHAKE-256 of in under the customization string.
func CShake256(out, in, custom []byte) {
	s := NewCShake256(nil, custom)
	s.Absorb(in)
	s.Read(out)
}
