package shishua

import (
	"encoding/binary"
	"math/rand/v2"
)

// Generator can back a math/rand/v2 Rand:
//
//	r := rand.New(shishua.New(seed))
var _ rand.Source = (*Generator)(nil)

// Uint64 returns the next eight bytes of the stream as a little-endian
// integer. It shares the stream with Fill and Read.
func (g *Generator) Uint64() uint64 {
	if g.buffered() >= 8 {
		v := binary.LittleEndian.Uint64(g.buf[g.pos:])
		g.pos += 8
		return v
	}

	var b [8]byte
	g.Fill(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Uint32 returns the next four bytes of the stream as a little-endian integer.
func (g *Generator) Uint32() uint32 {
	if g.buffered() >= 4 {
		v := binary.LittleEndian.Uint32(g.buf[g.pos:])
		g.pos += 4
		return v
	}

	var b [4]byte
	g.Fill(b[:])
	return binary.LittleEndian.Uint32(b[:])
}
