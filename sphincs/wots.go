// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sphincs

// baseW converts input bytes into 4-bit digits, most significant nibble
// first.
func baseW(out []int, input []byte) {
	in := 0
	bits := 0
	var total byte
	for i := range out {
		if bits == 0 {
			total = input[in]
			in++
			bits += 8
		}
		bits -= wotsLogW
		out[i] = int(total >> uint(bits) & (wotsW - 1))
	}
}

// chainLengths computes the w-ary digits of the message plus checksum.
func (m *Mode) chainLengths(lengths []int, msg []byte) {
	baseW(lengths[:m.wotsLen1], msg)

	csum := 0
	for i := 0; i < m.wotsLen1; i++ {
		csum += wotsW - 1 - lengths[i]
	}

	// Align the checksum to the top of its byte string.
	csum <<= uint((8 - m.wotsLen2*wotsLogW%8) % 8)
	csumBytes := (m.wotsLen2*wotsLogW + 7) / 8
	buf := make([]byte, csumBytes)
	ullToBytes(buf, uint64(csum))
	baseW(lengths[m.wotsLen1:], buf)
}

// genChain walks the hash chain steps positions from start.
func (m *Mode) genChain(out, in []byte, start, steps int, pubSeed []byte, addr *address) {
	copy(out[:m.n], in[:m.n])
	for i := start; i < start+steps && i < wotsW; i++ {
		addr.setHash(uint32(i))
		m.thash(out, out, 1, pubSeed, addr)
	}
}

// wotsGenSK derives the chain start from SK.seed and the chain address.
func (m *Mode) wotsGenSK(sk, skSeed []byte, addr *address) {
	addr.setHash(0)
	m.prfAddr(sk, skSeed, addr)
}

// wotsGenPK computes the full WOTS+ public key (all chain ends).
func (m *Mode) wotsGenPK(pk, skSeed, pubSeed []byte, addr *address) {
	buf := make([]byte, m.n)
	for i := 0; i < m.wotsLen; i++ {
		addr.setChain(uint32(i))
		m.wotsGenSK(buf, skSeed, addr)
		m.genChain(pk[i*m.n:], buf, 0, wotsW-1, pubSeed, addr)
	}
}

// wotsSign walks each chain to the digit of the message digest.
func (m *Mode) wotsSign(sig, msg, skSeed, pubSeed []byte, addr *address) {
	lengths := make([]int, m.wotsLen)
	m.chainLengths(lengths, msg)

	buf := make([]byte, m.n)
	for i := 0; i < m.wotsLen; i++ {
		addr.setChain(uint32(i))
		m.wotsGenSK(buf, skSeed, addr)
		m.genChain(sig[i*m.n:], buf, 0, lengths[i], pubSeed, addr)
	}
}

// wotsPKFromSig completes the chains from a signature.
func (m *Mode) wotsPKFromSig(pk, sig, msg, pubSeed []byte, addr *address) {
	lengths := make([]int, m.wotsLen)
	m.chainLengths(lengths, msg)

	for i := 0; i < m.wotsLen; i++ {
		addr.setChain(uint32(i))
		m.genChain(pk[i*m.n:], sig[i*m.n:], lengths[i], wotsW-1-lengths[i], pubSeed, addr)
	}
}
