// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package drbg

import (
	"io"

	"github.com/zeebo/blake3"
)

// NewBlake3 returns an unbounded deterministic byte stream derived from seed
// via the BLAKE3 extendable output. It is an alternative seed expander for
// callers that want deterministic key generation outside the NIST KAT flow.
func NewBlake3(seed []byte) io.Reader {
	h := blake3.New()
	h.Write(seed)
	return h.Digest()
}
