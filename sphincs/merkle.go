// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sphincs

// computeRoot walks an authentication path from a leaf to the root.
// addr must be complete except for tree height and index.
func (m *Mode) computeRoot(root, leaf []byte, leafIdx, idxOffset uint32, authPath []byte, treeHeight int, pubSeed []byte, addr *address) {
	buf := make([]byte, 2*m.n)

	// Position the leaf on the correct side of its sibling.
	if leafIdx&1 == 1 {
		copy(buf[m.n:], leaf[:m.n])
		copy(buf, authPath[:m.n])
	} else {
		copy(buf, leaf[:m.n])
		copy(buf[m.n:], authPath[:m.n])
	}
	authPath = authPath[m.n:]

	for i := 0; i < treeHeight-1; i++ {
		leafIdx >>= 1
		idxOffset >>= 1
		addr.setTreeHeight(uint32(i + 1))
		addr.setTreeIndex(leafIdx + idxOffset)

		if leafIdx&1 == 1 {
			m.thash(buf[m.n:], buf, 2, pubSeed, addr)
			copy(buf, authPath[:m.n])
		} else {
			m.thash(buf, buf, 2, pubSeed, addr)
			copy(buf[m.n:], authPath[:m.n])
		}
		authPath = authPath[m.n:]
	}

	leafIdx >>= 1
	idxOffset >>= 1
	addr.setTreeHeight(uint32(treeHeight))
	addr.setTreeIndex(leafIdx + idxOffset)
	m.thash(root, buf, 2, pubSeed, addr)
}

// treehash computes the root and the authentication path for leafIdx with
// the classic stack algorithm. idxOffset continues leaf numbering across
// the trees of one FORS forest.
func (m *Mode) treehash(root, authPath []byte, skSeed, pubSeed []byte, leafIdx, idxOffset uint32, treeHeight int,
	genLeaf func(leaf, skSeed, pubSeed []byte, addrIdx uint32, treeAddr *address), treeAddr *address) {

	stack := make([]byte, (treeHeight+1)*m.n)
	heights := make([]int, treeHeight+1)
	offset := 0

	for idx := uint32(0); idx < 1<<uint(treeHeight); idx++ {
		genLeaf(stack[offset*m.n:], skSeed, pubSeed, idx+idxOffset, treeAddr)
		offset++
		heights[offset-1] = 0

		if leafIdx^1 == idx {
			copy(authPath[:m.n], stack[(offset-1)*m.n:])
		}

		for offset >= 2 && heights[offset-1] == heights[offset-2] {
			treeIdx := idx >> uint(heights[offset-1]+1)

			treeAddr.setTreeHeight(uint32(heights[offset-1] + 1))
			treeAddr.setTreeIndex(treeIdx + idxOffset>>uint(heights[offset-1]+1))
			m.thash(stack[(offset-2)*m.n:], stack[(offset-2)*m.n:], 2, pubSeed, treeAddr)

			offset--
			heights[offset-1]++

			if leafIdx>>uint(heights[offset-1])^1 == treeIdx {
				copy(authPath[heights[offset-1]*m.n:(heights[offset-1]+1)*m.n], stack[(offset-1)*m.n:])
			}
		}
	}

	copy(root[:m.n], stack[:m.n])
}

// wotsGenLeaf computes one hypertree leaf: the hash of a WOTS+ public key.
func (m *Mode) wotsGenLeaf(leaf, skSeed, pubSeed []byte, addrIdx uint32, treeAddr *address) {
	var wotsAddr, pkAddr address
	wotsAddr.copySubtree(treeAddr)
	wotsAddr.setType(addrTypeWOTS)
	wotsAddr.setKeypair(addrIdx)

	pk := make([]byte, m.wotsBytes)
	m.wotsGenPK(pk, skSeed, pubSeed, &wotsAddr)

	pkAddr.copyKeypair(&wotsAddr)
	pkAddr.setType(addrTypeWOTSPK)
	m.thash(leaf, pk, m.wotsLen, pubSeed, &pkAddr)
}
