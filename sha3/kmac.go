// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sha3

var kmacName = []byte("KMAC")

// KMAC256 computes KMAC-256 per SP 800-185: cSHAKE-256 with function name
// "KMAC" over bytepad(encode_string(key), rate) || msg || right_encode(L).
func KMAC256(out, key, msg, custom []byte) {
	s := NewCShake256(kmacName, custom)
	s.Absorb(leftEncode(uint64(s.rate)))
	s.Absorb(encodeString(key))
	if s.pos != 0 {
		pad := make([]byte, s.rate-s.pos)
		s.Absorb(pad)
	}
	s.Absorb(msg)
	s.Absorb(rightEncode(uint64(len(out)) * 8))
	s.Read(out)
}

// KMAC128 computes KMAC-128 per SP 800-185.
func KMAC128(out, key, msg, custom []byte) {
	s := NewCShake128(kmacName, custom)
	s.Absorb(leftEncode(uint64(s.rate)))
	s.Absorb(encodeString(key))
	if s.pos != 0 {
		pad := make([]byte, s.rate-s.pos)
		s.Absorb(pad)
	}
	s.Absorb(msg)
	s.Absorb(rightEncode(uint64(len(out)) * 8))
	s.Read(out)
}
