package shishua

import (
	"errors"
	"fmt"
)

// MaxKeySize is the longest Config.Key accepted by Validate.
const MaxKeySize = 1024

// ErrDestroyed is returned when a destroyed or uninitialized handle is used.
var ErrDestroyed = errors.New("shishua: handle destroyed")

// Config specifies how a Handle derives its seed.
type Config struct {
	// Seed is used as-is when Key is empty.
	Seed Seed

	// Key, when non-empty, replaces Seed with SeedFromBytes(Key).
	// Setting both Key and a non-zero Seed is an error.
	Key []byte

	// Stream, when non-zero, selects substream Stream of the seed
	// (see Seed.Stream).
	Stream uint64
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Key) > MaxKeySize {
		return fmt.Errorf("shishua: key too long: %d bytes (max %d)", len(c.Key), MaxKeySize)
	}

	if len(c.Key) > 0 && c.Seed != (Seed{}) {
		return errors.New("shishua: seed and key are mutually exclusive")
	}

	return nil
}

// Resolve validates the configuration and returns the seed it describes.
func (c *Config) Resolve() (Seed, error) {
	if err := c.Validate(); err != nil {
		return Seed{}, err
	}

	seed := c.Seed
	if len(c.Key) > 0 {
		seed = SeedFromBytes(c.Key)
	}
	if c.Stream != 0 {
		seed = seed.Stream(c.Stream)
	}
	return seed, nil
}

// Handle is an owning reference to a generator with an explicit lifecycle,
// for wrapper layers that hand out opaque handles.
//
// A handle has exactly one owner and no internal locking. After Destroy every
// method fails with ErrDestroyed instead of touching released state.
type Handle struct {
	gen       *Generator
	destroyed bool
}

// Create allocates and initializes a new handle from seed.
// The handle should be released with Destroy.
func Create(seed Seed) *Handle {
	h := &Handle{gen: New(seed)}
	traceLog("handle created for seed %s", seed)
	return h
}

// CreateWithConfig validates config and creates a handle from the seed it
// resolves to.
func CreateWithConfig(config Config) (*Handle, error) {
	seed, err := config.Resolve()
	if err != nil {
		return nil, err
	}

	return Create(seed), nil
}

// Fill writes exactly length pseudorandom bytes to dst[:length].
// It returns ErrShortBuffer if dst is shorter than length and ErrDestroyed
// if the handle has been destroyed.
func (h *Handle) Fill(dst []byte, length int) error {
	if !h.IsValid() {
		return ErrDestroyed
	}

	return h.gen.Generate(dst, length)
}

// Read implements io.Reader on top of Fill.
func (h *Handle) Read(p []byte) (int, error) {
	if err := h.Fill(p, len(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Destroy wipes the generator state and invalidates the handle.
// Destroying a handle twice returns ErrDestroyed.
func (h *Handle) Destroy() error {
	if !h.IsValid() {
		return ErrDestroyed
	}

	*h.gen = Generator{}
	h.gen = nil
	h.destroyed = true

	traceLog("handle destroyed")
	return nil
}

// IsValid returns true if the handle can still produce bytes.
func (h *Handle) IsValid() bool {
	return h != nil && !h.destroyed && h.gen != nil
}
