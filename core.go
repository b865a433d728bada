package shishua

import (
	"encoding/binary"
)

const (
	// BlockSize is the number of bytes produced by a single round.
	BlockSize = groupCount * laneCount * 8

	groupCount = 4 // lane groups in the state
	laneCount  = 4 // 64-bit lanes per group

	// Rounds run by newState before any output is exposed.
	warmupRounds = 13
)

// phi holds the first 1024 bits of the golden ratio, used to fill the lanes
// that the seed does not touch.
var phi = [16]uint64{
	0x9E3779B97F4A7C15, 0xF39CC0605CEDC834, 0x1082276BF3A27251, 0xF86C6A11D0C18E95,
	0x2767F0B153D27B7F, 0x0347045B5BF1827F, 0x01886F0928403002, 0xC1D64BA40F335E36,
	0xF06AD7AE9717877E, 0x85839D6EFFBD7DC6, 0x64D325D1C5371682, 0xCADD0CCCFDFFBBE1,
	0x626E33B8D04B4331, 0xBBF73C790D94F79D, 0x471C4AB3ED3D82A5, 0xFEC507705E4AE6E5,
}

// Per-lane counter increments. Odd values keep the counter's period at 2^64.
var increment = [laneCount]uint64{7, 5, 3, 1}

// lanes is one 256-bit group of the state.
type lanes = [laneCount]uint64

// state is the raw SHISHUA-half machine. Every round emits the output lanes
// computed by the previous round and computes the next ones.
type state struct {
	s       [groupCount]lanes
	out     [groupCount]lanes
	counter lanes
}

// newState expands a seed into a fully diffused state.
func newState(seed Seed) state {
	var st state
	st.s = [groupCount]lanes{
		{phi[0] ^ seed[0], phi[1], phi[2] ^ seed[1], phi[3]},
		{phi[4] ^ seed[2], phi[5], phi[6] ^ seed[3], phi[7]},
		{phi[8] ^ seed[2], phi[9], phi[10] ^ seed[3], phi[11]},
		{phi[12] ^ seed[0], phi[13], phi[14] ^ seed[1], phi[15]},
	}
	traceLanes("seeded state", st.s[:])

	var discard [BlockSize]byte
	for i := 0; i < warmupRounds; i++ {
		st.round(&discard)
		st.s[0], st.s[1], st.s[2], st.s[3] = st.out[3], st.out[2], st.out[1], st.out[0]
	}

	traceState("state after warm-up", &st)
	return st
}

// round writes the pending output block to dst and advances the state.
func (st *state) round(dst *[BlockSize]byte) {
	for g := 0; g < groupCount; g++ {
		for l := 0; l < laneCount; l++ {
			binary.LittleEndian.PutUint64(dst[(g*laneCount+l)*8:], st.out[g][l])
		}
	}

	s0, s1, s2, s3 := &st.s[0], &st.s[1], &st.s[2], &st.s[3]

	// The counter goes into s1 and s3, whose shifts lose the most entropy.
	for l := 0; l < laneCount; l++ {
		s1[l] += st.counter[l]
		s3[l] += st.counter[l]
		st.counter[l] += increment[l]
	}

	var u0, u1, u2, u3 lanes
	for l := 0; l < laneCount; l++ {
		u0[l] = s0[l] >> 1
		u1[l] = s1[l] >> 3
		u2[l] = s2[l] >> 1
		u3[l] = s3[l] >> 3
	}

	t0 := shuffle0(s0)
	t1 := shuffle1(s1)
	t2 := shuffle0(s2)
	t3 := shuffle1(s3)

	for l := 0; l < laneCount; l++ {
		s0[l] = t0[l] + u0[l]
		s1[l] = t1[l] + u1[l]
		s2[l] = t2[l] + u2[l]
		s3[l] = t3[l] + u3[l]
	}

	for l := 0; l < laneCount; l++ {
		st.out[0][l] = u0[l] ^ t1[l]
		st.out[1][l] = u2[l] ^ t3[l]
		st.out[2][l] = s0[l] ^ s3[l]
		st.out[3][l] = s2[l] ^ s1[l]
	}
}

// shuffle0 rotates the eight 32-bit words of a group down by five words.
// The low half of a lane never lands in the same lane as its high half.
func shuffle0(s *lanes) lanes {
	return lanes{
		s[2]>>32 | s[3]<<32,
		s[3]>>32 | s[0]<<32,
		s[0]>>32 | s[1]<<32,
		s[1]>>32 | s[2]<<32,
	}
}

// shuffle1 rotates the eight 32-bit words of a group down by three words.
func shuffle1(s *lanes) lanes {
	return lanes{
		s[1]>>32 | s[2]<<32,
		s[2]>>32 | s[3]<<32,
		s[3]>>32 | s[0]<<32,
		s[0]>>32 | s[1]<<32,
	}
}
