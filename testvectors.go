package shishua

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// TestVector is a single seed to byte-stream test case.
// The zero-seed vector matches the reference C implementation; the others
// were published alongside this package.
type TestVector struct {
	Name     string  `json:"name"`
	Seed     string  `json:"seed,omitempty"`   // ParseSeed form
	Key      string  `json:"key,omitempty"`    // SeedFromBytes input, instead of Seed
	Stream   *uint64 `json:"stream,omitempty"` // optional Seed.Stream index
	Length   int     `json:"length"`
	Expected string  `json:"expected"` // hex-encoded first Length bytes
}

// TestVectorSuite contains all test vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Source      string       `json:"source,omitempty"`
	Vectors     []TestVector `json:"vectors"`
}

// LoadTestVectors loads test vectors from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}

	return &suite, nil
}

// GetSeed returns the seed the vector describes, with the stream applied.
func (tv *TestVector) GetSeed() (Seed, error) {
	var seed Seed

	switch {
	case tv.Key != "" && tv.Seed != "":
		return seed, errors.New("test vector has both seed and key")
	case tv.Key != "":
		seed = SeedFromBytes([]byte(tv.Key))
	default:
		var err error
		if seed, err = ParseSeed(tv.Seed); err != nil {
			return seed, err
		}
	}

	if tv.Stream != nil {
		seed = seed.Stream(*tv.Stream)
	}
	return seed, nil
}

// GetExpected returns the decoded expected bytes.
func (tv *TestVector) GetExpected() ([]byte, error) {
	expected, err := hex.DecodeString(tv.Expected)
	if err != nil {
		return nil, fmt.Errorf("invalid expected output: %w", err)
	}
	if len(expected) != tv.Length {
		return nil, fmt.Errorf("expected output must be %d bytes, got %d", tv.Length, len(expected))
	}
	return expected, nil
}
