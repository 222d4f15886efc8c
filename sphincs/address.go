// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sphincs

// Address types for domain separation of every hash call.
const (
	addrTypeWOTS     = 0
	addrTypeWOTSPK   = 1
	addrTypeHashTree = 2
	addrTypeFORSTree = 3
	addrTypeFORSPK   = 4
)

// address is the 32-byte structured tweak: eight big-endian words holding
// (layer, tree, type, keypair, chain/height, hash/index).
type address [8]uint32

func (a *address) toBytes(out []byte) {
	for i := 0; i < 8; i++ {
		out[4*i] = byte(a[i] >> 24)
		out[4*i+1] = byte(a[i] >> 16)
		out[4*i+2] = byte(a[i] >> 8)
		out[4*i+3] = byte(a[i])
	}
}

func (a *address) setLayer(layer uint32) {
	a[0] = layer
}

func (a *address) setTree(tree uint64) {
	a[1] = 0
	a[2] = uint32(tree >> 32)
	a[3] = uint32(tree)
}

func (a *address) setType(t uint32) {
	a[4] = t
}

// copySubtree copies the layer and tree fields.
func (a *address) copySubtree(in *address) {
	a[0] = in[0]
	a[1] = in[1]
	a[2] = in[2]
	a[3] = in[3]
}

// copyKeypair copies the layer, tree and keypair fields.
func (a *address) copyKeypair(in *address) {
	a.copySubtree(in)
	a[5] = in[5]
}

func (a *address) setKeypair(keypair uint32) {
	a[5] = keypair
}

func (a *address) setChain(chain uint32) {
	a[6] = chain
}

func (a *address) setHash(hash uint32) {
	a[7] = hash
}

func (a *address) setTreeHeight(h uint32) {
	a[6] = h
}

func (a *address) setTreeIndex(i uint32) {
	a[7] = i
}
