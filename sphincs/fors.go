// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sphincs

// messageToIndices splits the digest into k tree indices of forsHeight bits
// each, least significant bit of each byte first.
func (m *Mode) messageToIndices(indices []uint32, msg []byte) {
	offset := 0
	for i := 0; i < m.forsTrees; i++ {
		indices[i] = 0
		for j := 0; j < m.forsHeight; j++ {
			indices[i] ^= uint32(msg[offset>>3]>>uint(offset&7)&1) << uint(j)
			offset++
		}
	}
}

func (m *Mode) forsGenSK(sk, skSeed []byte, addr *address) {
	m.prfAddr(sk, skSeed, addr)
}

func (m *Mode) forsSKToLeaf(leaf, sk, pubSeed []byte, addr *address) {
	m.thash(leaf, sk, 1, pubSeed, addr)
}

func (m *Mode) forsGenLeaf(leaf, skSeed, pubSeed []byte, addrIdx uint32, treeAddr *address) {
	var leafAddr address
	leafAddr.copyKeypair(treeAddr)
	leafAddr.setType(addrTypeFORSTree)
	leafAddr.setTreeHeight(0)
	leafAddr.setTreeIndex(addrIdx)

	sk := make([]byte, m.n)
	m.forsGenSK(sk, skSeed, &leafAddr)
	m.forsSKToLeaf(leaf, sk, pubSeed, &leafAddr)
}

// forsSign reveals one leaf per FORS tree with its authentication path and
// returns the FORS public key (the hash of the k roots).
func (m *Mode) forsSign(sig, pk, msg, skSeed, pubSeed []byte, forsAddr *address) {
	indices := make([]uint32, m.forsTrees)
	m.messageToIndices(indices, msg)

	roots := make([]byte, m.forsTrees*m.n)

	var treeAddr address
	treeAddr.copyKeypair(forsAddr)
	treeAddr.setType(addrTypeFORSTree)

	for i := 0; i < m.forsTrees; i++ {
		idxOffset := uint32(i) << uint(m.forsHeight)

		treeAddr.setTreeHeight(0)
		treeAddr.setTreeIndex(indices[i] + idxOffset)

		m.forsGenSK(sig, skSeed, &treeAddr)
		sig = sig[m.n:]

		m.treehash(roots[i*m.n:], sig, skSeed, pubSeed, indices[i], idxOffset,
			m.forsHeight, m.forsGenLeaf, &treeAddr)
		sig = sig[m.forsHeight*m.n:]
	}

	var pkAddr address
	pkAddr.copyKeypair(forsAddr)
	pkAddr.setType(addrTypeFORSPK)
	m.thash(pk, roots, m.forsTrees, pubSeed, &pkAddr)
}

// forsPKFromSig recomputes the FORS public key from a signature.
func (m *Mode) forsPKFromSig(pk, sig, msg, pubSeed []byte, forsAddr *address) {
	indices := make([]uint32, m.forsTrees)
	m.messageToIndices(indices, msg)

	roots := make([]byte, m.forsTrees*m.n)
	leaf := make([]byte, m.n)

	var treeAddr address
	treeAddr.copyKeypair(forsAddr)
	treeAddr.setType(addrTypeFORSTree)

	for i := 0; i < m.forsTrees; i++ {
		idxOffset := uint32(i) << uint(m.forsHeight)

		treeAddr.setTreeHeight(0)
		treeAddr.setTreeIndex(indices[i] + idxOffset)

		m.forsSKToLeaf(leaf, sig, pubSeed, &treeAddr)
		sig = sig[m.n:]

		m.computeRoot(roots[i*m.n:], leaf, indices[i], idxOffset, sig,
			m.forsHeight, pubSeed, &treeAddr)
		sig = sig[m.forsHeight*m.n:]
	}

	var pkAddr address
	pkAddr.copyKeypair(forsAddr)
	pkAddr.setType(addrTypeFORSPK)
	m.thash(pk, roots, m.forsTrees, pubSeed, &pkAddr)
}
