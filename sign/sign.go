// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sign defines the byte-oriented interface of the signature schemes
// in this module, and a registry keyed by scheme name.
//
// Signing uses the historic NIST layout: Sign returns signature || message
// and Open returns the message on success.
package sign

import (
	"errors"
	"io"
	"sort"
	"sync"
)

// Scheme is one signature parameter set.
type Scheme interface {
	// Name is the registry identifier, e.g. "dilithium3".
	Name() string

	PublicKeySize() int
	PrivateKeySize() int
	SignatureSize() int

	// GenerateKey derives a key pair from the randomness source.
	GenerateKey(rand io.Reader) (pk, sk []byte, err error)
	// Sign returns signature || message.
	Sign(sk, msg []byte) ([]byte, error)
	// Open verifies signature || message and returns the message. Failure
	// carries no detail beyond the boolean.
	Open(pk, signedMsg []byte) (msg []byte, ok bool)
}

var ErrDuplicateScheme = errors.New("sign: scheme already registered")

var (
	mu         sync.RWMutex
	registered = make(map[string]Scheme)
)

// Register adds a scheme to the registry.
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
