// Package shishua provides a pure-Go implementation of the SHISHUA-half
// pseudorandom number generator.
//
// SHISHUA produces an unbounded, reproducible stream of bytes from a 256-bit
// seed using only 64-bit additions, shifts and XORs. It is built for
// throughput and statistical quality in simulations, tests and randomized
// algorithms. It is NOT cryptographically secure and must not be used where
// an adversary could benefit from predicting its output; use crypto/rand for
// that.
//
// Example usage:
//
//	g := shishua.New(shishua.Seed{1, 2, 3, 4})
//
//	buf := make([]byte, 1024)
//	g.Fill(buf)
//
// The stream is chunk-invariant: reading 1000 bytes at once yields the same
// bytes as reading them 1, 7 and 992 at a time.
//
// A Generator must not be used from several goroutines at once. Independent
// generators share nothing, so the usual parallel design is one generator per
// worker, each seeded from Seed.Stream.
package shishua

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrShortBuffer is returned when a destination cannot hold the requested length.
	ErrShortBuffer = errors.New("shishua: destination smaller than requested length")

	// ErrInvalidLength is returned for negative lengths.
	ErrInvalidLength = errors.New("shishua: invalid length")
)

// Generator is a buffered SHISHUA byte stream.
//
// The zero value is not usable; create generators with New or NewFromUint64.
type Generator struct {
	st  state
	buf [BlockSize]byte // last round's bytes, consumed from pos
	pos int             // BlockSize means the buffer is empty
}

var _ io.Reader = (*Generator)(nil)

// New creates a generator initialized from seed.
func New(seed Seed) *Generator {
	g := &Generator{}
	g.Reset(seed)
	return g
}

// NewFromUint64 creates a generator from a scalar seed. The scalar s is the
// seed Seed{s, 0, 0, 0}, so NewFromUint64(0) and New(Seed{}) agree.
func NewFromUint64(s uint64) *Generator {
	return New(SeedFromUint64(s))
}

// Reset reinitializes the generator from seed, discarding any buffered bytes.
func (g *Generator) Reset(seed Seed) {
	g.st = newState(seed)
	g.pos = BlockSize
}

// Fill writes the next len(dst) bytes of the stream into dst.
func (g *Generator) Fill(dst []byte) {
	// Buffered remainder first
	n := copy(dst, g.buf[g.pos:])
	g.pos += n
	dst = dst[n:]

	// Whole rounds go straight into dst
	for len(dst) >= BlockSize {
		g.st.round((*[BlockSize]byte)(dst))
		dst = dst[BlockSize:]
	}

	if len(dst) > 0 {
		g.st.round(&g.buf)
		g.pos = copy(dst, g.buf[:])
	}
}

// Generate writes the next length bytes of the stream into dst[:length].
// It fails without touching the stream when dst is shorter than length.
// A zero length is a no-op.
func (g *Generator) Generate(dst []byte, length int) error {
	if length < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if length > len(dst) {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, length, len(dst))
	}

	g.Fill(dst[:length])
	return nil
}

// Read implements io.Reader. It always fills p and never returns an error.
func (g *Generator) Read(p []byte) (int, error) {
	g.Fill(p)
	return len(p), nil
}

// buffered returns how many bytes of the current block are still unread.
func (g *Generator) buffered() int {
	return BlockSize - g.pos
}
