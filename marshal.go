package shishua

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrInvalidState is returned by UnmarshalBinary for malformed checkpoints.
var ErrInvalidState = errors.New("shishua: invalid generator state")

const (
	stateMagic = "shishua:"

	// magic, state lanes, output lanes, counter, cursor, buffered block
	stateLen = len(stateMagic) + 2*groupCount*laneCount*8 + laneCount*8 + 1 + BlockSize
)

var (
	_ encoding.BinaryMarshaler   = (*Generator)(nil)
	_ encoding.BinaryUnmarshaler = (*Generator)(nil)
)

// MarshalBinary checkpoints the generator. The encoding holds every lane,
// the counter, the cursor and the unread block, so a generator restored with
// UnmarshalBinary continues the exact same stream.
func (g *Generator) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, stateLen)
	b = append(b, stateMagic...)
	b = appendGroups(b, g.st.s[:])
	b = appendGroups(b, g.st.out[:])
	b = appendGroups(b, []lanes{g.st.counter})
	b = append(b, byte(g.pos))
	b = append(b, g.buf[:]...)
	return b, nil
}

// UnmarshalBinary restores a checkpoint written by MarshalBinary.
func (g *Generator) UnmarshalBinary(data []byte) error {
	if len(data) != stateLen {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidState, len(data), stateLen)
	}
	if string(data[:len(stateMagic)]) != stateMagic {
		return fmt.Errorf("%w: bad magic", ErrInvalidState)
	}
	data = data[len(stateMagic):]

	var st state
	data = readGroups(data, st.s[:])
	data = readGroups(data, st.out[:])

	counter := make([]lanes, 1)
	data = readGroups(data, counter)
	st.counter = counter[0]

	pos := int(data[0])
	if pos > BlockSize {
		return fmt.Errorf("%w: cursor %d out of range", ErrInvalidState, pos)
	}

	g.st = st
	g.pos = pos
	copy(g.buf[:], data[1:])
	return nil
}

func appendGroups(b []byte, groups []lanes) []byte {
	for _, group := range groups {
		for _, lane := range group {
			b = binary.LittleEndian.AppendUint64(b, lane)
		}
	}
	return b
}

func readGroups(data []byte, groups []lanes) []byte {
	for g := range groups {
		for l := range groups[g] {
			groups[g][l] = binary.LittleEndian.Uint64(data)
			data = data[8:]
		}
	}
	return data
}
