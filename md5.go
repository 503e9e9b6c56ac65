package md5

import (
	"encoding/binary"
	"unsafe"

	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
)

// sum computes the digest of data in one pass. Every call starts from the IV
// and nothing outlives the call.
func sum(data []byte) (out [Size]byte) {
	s := iv

	n := len(data) &^ (BlockSize - 1)
	s = blocks(s, data[:n])

	// 1 byte end marker :: 0-63 zero bytes :: 8 byte bit length
	var tail [2 * BlockSize]byte
	rem := copy(tail[:], data[n:])
	tail[rem] = 0x80

	end := BlockSize
	if rem >= consts.PadLen {
		end = 2 * BlockSize
	}
	binary.LittleEndian.PutUint64(tail[end-8:end], uint64(len(data))<<3)

	s = blocks(s, tail[:end])

	utils.WordsToBytes([]uint32{s.a, s.b, s.c, s.d}, out[:])
	return out
}

// blocks compresses each full block of p into s in order. len(p) must be a
// multiple of BlockSize.
func blocks(s state, p []byte) state {
	var m [16]uint32

	for len(p) >= BlockSize {
		if consts.IsLittleEndian {
			copy((*[BlockSize]byte)(unsafe.Pointer(&m[0]))[:], p[:BlockSize])
		} else {
			utils.BytesToWords((*[BlockSize]byte)(p[:BlockSize]), &m)
		}

		s = compress(s, &m)
		p = p[BlockSize:]
	}

	return s
}
