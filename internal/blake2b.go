// Package internal wraps the golang.org/x/crypto primitives used for seed
// derivation.
package internal

import (
	"golang.org/x/crypto/blake2b"
)

// Blake2b256 computes a 256-bit Blake2b hash (32 bytes).
func Blake2b256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// KeyedBlake2b256 computes a 256-bit keyed Blake2b hash.
// The key must be at most 64 bytes.
func KeyedBlake2b256(key, data []byte) ([32]byte, error) {
	var sum [32]byte

	hasher, err := blake2b.New256(key)
	if err != nil {
		return sum, err
	}

	hasher.Write(data)
	copy(sum[:], hasher.Sum(nil))
	return sum, nil
}
