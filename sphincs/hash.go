// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sphincs

import "github.com/luxfi/pqc/sha3"

const addrBytes = 32

// prfAddr computes PRF(key, addr) = SHAKE-256(key || addr, n).
func (m *Mode) prfAddr(out, key []byte, addr *address) {
	var ab [addrBytes]byte
	addr.toBytes(ab[:])

	st := sha3.NewShake256()
	st.Absorb(key[:m.n])
	st.Absorb(ab[:])
	st.Read(out[:m.n])
}

// genMessageRandom derives R from SK.prf, the optional randomizer and the
// message.
func (m *Mode) genMessageRandom(r, skPrf, optRand, msg []byte) {
	st := sha3.NewShake256()
	st.Absorb(skPrf[:m.n])
	st.Absorb(optRand[:m.n])
	st.Absorb(msg)
	st.Read(r[:m.n])
}

// hashMessage maps (R, pk, msg) to the FORS digest, the hypertree index and
// the leaf index.
func (m *Mode) hashMessage(digest []byte, r, pk, msg []byte) (tree uint64, leafIdx uint32) {
	treeBits := m.fullHeight - m.treeHeight
	treeBytes := (treeBits + 7) / 8
	leafBits := m.treeHeight
	leafBytes := (leafBits + 7) / 8

	buf := make([]byte, m.forsMsgBytes+treeBytes+leafBytes)
	st := sha3.NewShake256()
	st.Absorb(r[:m.n])
	st.Absorb(pk[:m.PublicKeySize])
	st.Absorb(msg)
	st.Read(buf)

	copy(digest[:m.forsMsgBytes], buf)

	tree = bytesToULL(buf[m.forsMsgBytes:m.forsMsgBytes+treeBytes]) &
		(^uint64(0) >> uint(64-treeBits))
	leafIdx = uint32(bytesToULL(buf[m.forsMsgBytes+treeBytes:]) &
		(^uint64(0) >> uint(64-leafBits)))
	return tree, leafIdx
}

// thash is the robust tweakable hash: the input blocks are XORed with a
// bitmask squeezed from (PUB.seed || addr) before the outer hash.
func (m *Mode) thash(out, in []byte, inblocks int, pubSeed []byte, addr *address) {
	var ab [addrBytes]byte
	addr.toBytes(ab[:])

	mask := make([]byte, inblocks*m.n)
	st := sha3.NewShake256()
	st.Absorb(pubSeed[:m.n])
	st.Absorb(ab[:])
	st.Read(mask)

	for i := range mask {
		mask[i] ^= in[i]
	}

	st = sha3.NewShake256()
	st.Absorb(pubSeed[:m.n])
	st.Absorb(ab[:])
	st.Absorb(mask)
	st.Read(out[:m.n])
}

// ullToBytes stores in big-endian into out.
func ullToBytes(out []byte, in uint64) {
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = byte(in)
		in >>= 8
	}
}

func bytesToULL(in []byte) uint64 {
	var r uint64
	for _, b := range in {
		r = r<<8 | uint64(b)
	}
	return r
}
