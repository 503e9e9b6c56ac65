// Package ref is a direct, unoptimized transcription of RFC 1321 used to
// check the unrolled implementation.
package ref

import (
	"encoding/binary"
	"math/bits"

	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
)

// State is the four word chaining value.
type State struct {
	A, B, C, D uint32
}

// IV is the initial chaining value.
var IV = State{consts.IV[0], consts.IV[1], consts.IV[2], consts.IV[3]}

// Round returns the nonlinear function result for step i.
func Round(i int, b, c, d uint32) uint32 {
	switch i / 16 {
	case 0:
		return (b & c) | (^b & d)
	case 1:
		return (b & d) | (c & ^d)
	case 2:
		return b ^ c ^ d
	default:
		return c ^ (b | ^d)
	}
}

// Index returns which message word step i consumes.
func Index(i int) int {
	switch i / 16 {
	case 0:
		return i
	case 1:
		return (5*i + 1) % 16
	case 2:
		return (3*i + 5) % 16
	default:
		return (7 * i) % 16
	}
}

// Step applies step i to s with message word x.
func Step(s State, i int, x uint32) State {
	temp := s.A + Round(i, s.B, s.C, s.D) + x + consts.T[i]
	return State{
		A: s.D,
		B: s.B + bits.RotateLeft32(temp, consts.S[i]),
		C: s.B,
		D: s.C,
	}
}

// Compress folds one block of words into s.
func Compress(s State, m *[16]uint32) State {
	w := s
	for i := 0; i < 64; i++ {
		w = Step(w, i, m[Index(i)])
	}
	return State{s.A + w.A, s.B + w.B, s.C + w.C, s.D + w.D}
}

// Pad returns data followed by the end marker, zero fill and the bit length.
func Pad(data []byte) []byte {
	out := append([]byte(nil), data...)
	out = append(out, 0x80)
	for len(out)%consts.BlockLen != consts.PadLen {
		out = append(out, 0)
	}
	return binary.LittleEndian.AppendUint64(out, uint64(len(data))*8)
}

// Sum returns the digest of data.
func Sum(data []byte) (out [16]byte) {
	s := IV
	padded := Pad(data)

	var m [16]uint32
	for len(padded) > 0 {
		utils.BytesToWords((*[64]byte)(padded[:consts.BlockLen]), &m)
		s = Compress(s, &m)
		padded = padded[consts.BlockLen:]
	}

	utils.WordsToBytes([]uint32{s.A, s.B, s.C, s.D}, out[:])
	return out
}
