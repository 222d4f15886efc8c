// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kem defines the byte-oriented interface every key encapsulation
// mechanism in this module exposes, and a registry keyed by scheme name.
package kem

import (
	"errors"
	"io"
	"sort"
	"sync"
)

// Scheme is one KEM parameter set. All operations work on raw byte arrays;
// buffers are caller-owned and no state is retained across calls.
type Scheme interface {
	// Name is the registry identifier, e.g. "kyber768".
	Name() string

	PublicKeySize() int
	PrivateKeySize() int
	CiphertextSize() int
	SharedKeySize() int

	// GenerateKey derives a key pair from the randomness source.
	GenerateKey(rand io.Reader) (pk, sk []byte, err error)
	// Encapsulate produces a ciphertext and shared secret for pk.
	Encapsulate(pk []byte, rand io.Reader) (ct, ss []byte, err error)
	// Decapsulate recovers the shared secret. Malformed ciphertexts of the
	// correct length are not signalled; the result is then pseudorandom.
	Decapsulate(sk, ct []byte) (ss []byte, err error)
}

var ErrDuplicateScheme = errors.New("kem: scheme already registered")

var (
	mu         sync.RWMutex
	registered = make(map[string]Scheme)
)

// Register adds a scheme to the registry. Registration of a duplicate name
// is a programmer error.
func Register(s Scheme) error {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := registered[s.Name()]; ok {
		return ErrDuplicateScheme
	}
	registered[s.Name()] = s
	return nil
}

// ByName returns the registered scheme, or nil.
func ByName(name string) Scheme {
	mu.RLock()
	defer mu.RUnlock()
	return registered[name]
}

// All returns the registered schemes in deterministic (name) order.
func All() []Scheme {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registered))
	for name := range registered {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Scheme, len(names))
	for i, name := range names {
		out[i] = registered[name]
	}
	return out
}
