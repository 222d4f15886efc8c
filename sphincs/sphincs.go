// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sphincs

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
)

var (
	ErrPublicKeySize  = errors.New("sphincs: invalid public key size")
	ErrPrivateKeySize = errors.New("sphincs: invalid private key size")
	ErrRandomSource   = errors.New("sphincs: reading randomness failed")
)

// GenerateKey reads 3n bytes (SK.seed || SK.prf || PUB.seed) from rand and
// computes the top-layer root.
func (m *Mode) GenerateKey(rand io.Reader) (pk, sk []byte, err error) {
	sk = make([]byte, m.PrivateKeySize)
	if _, err := io.ReadFull(rand, sk[:3*m.n]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	skSeed := sk[:m.n]
	pubSeed := sk[2*m.n : 3*m.n]
	root := sk[3*m.n:]

	var topAddr address
	topAddr.setLayer(uint32(m.d - 1))
	topAddr.setType(addrTypeHashTree)

	authPath := make([]byte, m.treeHeight*m.n)
	m.treehash(root, authPath, skSeed, pubSeed, 0, 0, m.treeHeight, m.wotsGenLeaf, &topAddr)

	pk = make([]byte, m.PublicKeySize)
	copy(pk, pubSeed)
	copy(pk[m.n:], root)
	return pk, sk, nil
}

// Sign produces signature || message under sk. With a nil randomizer the
// signature is deterministic; passing a reader draws an n-byte randomizer
// that hardens repeated signing of the same message.
func (m *Mode) Sign(sk, msg []byte, randomizer io.Reader) ([]byte, error) {
	if len(sk) != m.PrivateKeySize {
		return nil, ErrPrivateKeySize
	}

	skSeed := sk[:m.n]
	skPrf := sk[m.n : 2*m.n]
	pk := sk[2*m.n:] // PUB.seed || root
	pubSeed := pk[:m.n]

	optRand := make([]byte, m.n)
	if randomizer != nil {
		if _, err := io.ReadFull(randomizer, optRand); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
	}

	sigMsg := make([]byte, m.SignatureSize+len(msg))
	copy(sigMsg[m.SignatureSize:], msg)
	sig := sigMsg[:m.SignatureSize]

	// R binds the message.
	m.genMessageRandom(sig, skPrf, optRand, msg)

	digest := make([]byte, m.forsMsgBytes)
	tree, leafIdx := m.hashMessage(digest, sig, pk, msg)
	sig = sig[m.n:]

	var wotsAddr, treeAddr address
	wotsAddr.setType(addrTypeWOTS)
	wotsAddr.setTree(tree)
	wotsAddr.setKeypair(leafIdx)

	// FORS layer.
	root := make([]byte, m.n)
	m.forsSign(sig, root, digest, skSeed, pubSeed, &wotsAddr)
	sig = sig[m.forsBytes:]

	// Hypertree: each layer signs the root below it.
	for i := 0; i < m.d; i++ {
		treeAddr = address{}
		treeAddr.setLayer(uint32(i))
		treeAddr.setTree(tree)
		treeAddr.setType(addrTypeHashTree)

		wotsAddr.copySubtree(&treeAddr)
		wotsAddr.setType(addrTypeWOTS)
		wotsAddr.setKeypair(leafIdx)

		m.wotsSign(sig, root, skSeed, pubSeed, &wotsAddr)
		sig = sig[m.wotsBytes:]

		m.treehash(root, sig, skSeed, pubSeed, leafIdx, 0, m.treeHeight, m.wotsGenLeaf, &treeAddr)
		sig = sig[m.treeHeight*m.n:]

		leafIdx = uint32(tree & (1<<uint(m.treeHeight) - 1))
		tree >>= uint(m.treeHeight)
	}

	return sigMsg, nil
}

// Open verifies signature || message under pk and returns the message.
func (m *Mode) Open(pk, sigMsg []byte) ([]byte, bool) {
	if len(pk) != m.PublicKeySize || len(sigMsg) < m.SignatureSize {
		return nil, false
	}

	pubSeed := pk[:m.n]
	pubRoot := pk[m.n:]
	sig := sigMsg[:m.SignatureSize]
	msg := sigMsg[m.SignatureSize:]

	r := sig[:m.n]
	digest := make([]byte, m.forsMsgBytes)
	tree, leafIdx := m.hashMessage(digest, r, pk, msg)
	sig = sig[m.n:]

	var wotsAddr, treeAddr address
	wotsAddr.setType(addrTypeWOTS)
	wotsAddr.setTree(tree)
	wotsAddr.setKeypair(leafIdx)

	root := make([]byte, m.n)
	m.forsPKFromSig(root, sig, digest, pubSeed, &wotsAddr)
	sig = sig[m.forsBytes:]

	wotsPK := make([]byte, m.wotsBytes)
	leaf := make([]byte, m.n)

	for i := 0; i < m.d; i++ {
		treeAddr = address{}
		treeAddr.setLayer(uint32(i))
		treeAddr.setTree(tree)
		treeAddr.setType(addrTypeHashTree)

		wotsAddr.copySubtree(&treeAddr)
		wotsAddr.setType(addrTypeWOTS)
		wotsAddr.setKeypair(leafIdx)

		m.wotsPKFromSig(wotsPK, sig, root, pubSeed, &wotsAddr)
		sig = sig[m.wotsBytes:]

		var pkAddr address
		pkAddr.copyKeypair(&wotsAddr)
		pkAddr.setType(addrTypeWOTSPK)
		m.thash(leaf, wotsPK, m.wotsLen, pubSeed, &pkAddr)

		m.computeRoot(root, leaf, leafIdx, 0, sig, m.treeHeight, pubSeed, &treeAddr)
		sig = sig[m.treeHeight*m.n:]

		leafIdx = uint32(tree & (1<<uint(m.treeHeight) - 1))
		tree >>= uint(m.treeHeight)
	}

	if subtle.ConstantTimeCompare(root, pubRoot) != 1 {
		return nil, false
	}

	out := make([]byte, len(msg))
	copy(out, msg)
	return out, true
}
