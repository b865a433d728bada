package shishua

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/opd-ai/go-shishua/internal"
)

// SeedSize is the size of a seed in bytes.
const SeedSize = 32

// ErrInvalidSeed is returned when a seed string cannot be parsed.
var ErrInvalidSeed = errors.New("shishua: invalid seed")

// Seed is the 256-bit generator seed, as four 64-bit words.
// Every value is valid, including the zero seed.
type Seed [4]uint64

// SeedFromUint64 widens a scalar seed to Seed{s, 0, 0, 0}.
func SeedFromUint64(s uint64) Seed {
	return Seed{s}
}

// RandomSeed returns a seed read from the operating system's entropy source.
// The generator itself stays deterministic; callers that need to reproduce a
// run should record the returned seed.
func RandomSeed() (Seed, error) {
	return readSeed(rand.Reader)
}

func readSeed(r io.Reader) (Seed, error) {
	var b [SeedSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Seed{}, fmt.Errorf("shishua: reading random seed: %w", err)
	}
	return seedFromDigest(b), nil
}

// SeedFromBytes derives a seed from an arbitrary byte string by hashing it
// with BLAKE2b-256 and reading the digest as four little-endian words.
func SeedFromBytes(b []byte) Seed {
	return seedFromDigest(internal.Blake2b256(b))
}

// Stream derives the seed of the i-th independent substream of s.
//
// The substream seed is BLAKE2b-256 keyed with s.Bytes() over i encoded as
// eight little-endian bytes. Distinct indexes give unrelated streams, which
// is the intended way to seed one generator per worker.
func (s Seed) Stream(i uint64) Seed {
	key := s.Bytes()

	var msg [8]byte
	binary.LittleEndian.PutUint64(msg[:], i)

	sum, err := internal.KeyedBlake2b256(key[:], msg[:])
	if err != nil {
		// a 32-byte key is always accepted
		panic("shishua: stream derivation: " + err.Error())
	}
	return seedFromDigest(sum)
}

// Bytes returns the seed as 32 little-endian bytes.
func (s Seed) Bytes() [SeedSize]byte {
	var b [SeedSize]byte
	for i, w := range s {
		binary.LittleEndian.PutUint64(b[i*8:], w)
	}
	return b
}

// String returns the seed as 64 hex digits, one 16-digit group per word.
// ParseSeed accepts the result.
func (s Seed) String() string {
	return fmt.Sprintf("%016x%016x%016x%016x", s[0], s[1], s[2], s[3])
}

// ParseSeed parses a seed written either as 64 hex digits (the String form)
// or as a single unsigned integer scalar in any base strconv accepts
// ("42", "0x2a", "0b101010").
func ParseSeed(text string) (Seed, error) {
	text = strings.TrimSpace(text)

	if len(text) == 2*SeedSize {
		raw, err := hex.DecodeString(text)
		if err != nil {
			return Seed{}, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
		}

		var s Seed
		for i := range s {
			s[i] = binary.BigEndian.Uint64(raw[i*8:])
		}
		return s, nil
	}

	v, err := strconv.ParseUint(text, 0, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return SeedFromUint64(v), nil
}

func seedFromDigest(sum [32]byte) Seed {
	var s Seed
	for i := range s {
		s[i] = binary.LittleEndian.Uint64(sum[i*8:])
	}
	return s
}
