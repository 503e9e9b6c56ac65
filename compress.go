package md5

import (
	"math/bits"

	"github.com/zeebo/md5/internal/consts"
)

// state is the running chaining value A, B, C, D.
type state struct {
	a, b, c, d uint32
}

// add folds a block's working registers back into the chaining value.
func (s state) add(o state) state {
	return state{s.a + o.a, s.b + o.b, s.c + o.c, s.d + o.d}
}

func ff(a, b, c, d, x uint32, i int) uint32 {
	return b + bits.RotateLeft32(a+(b&c|^b&d)+x+consts.T[i], consts.S[i])
}

func gg(a, b, c, d, x uint32, i int) uint32 {
	return b + bits.RotateLeft32(a+(b&d|c&^d)+x+consts.T[i], consts.S[i])
}

func hh(a, b, c, d, x uint32, i int) uint32 {
	return b + bits.RotateLeft32(a+(b^c^d)+x+consts.T[i], consts.S[i])
}

func ii(a, b, c, d, x uint32, i int) uint32 {
	return b + bits.RotateLeft32(a+(c^(b|^d))+x+consts.T[i], consts.S[i])
}

// compress runs the 64 steps over one block and returns the updated
// chaining value. Rather than shuffling a, b, c, d after every step, the
// register names rotate through the argument lists.
func compress(s state, m *[16]uint32) state {
	a, b, c, d := s.a, s.b, s.c, s.d

	a = ff(a, b, c, d, m[0], 0)
	d = ff(d, a, b, c, m[1], 1)
	c = ff(c, d, a, b, m[2], 2)
	b = ff(b, c, d, a, m[3], 3)
	a = ff(a, b, c, d, m[4], 4)
	d = ff(d, a, b, c, m[5], 5)
	c = ff(c, d, a, b, m[6], 6)
	b = ff(b, c, d, a, m[7], 7)
	a = ff(a, b, c, d, m[8], 8)
	d = ff(d, a, b, c, m[9], 9)
	c = ff(c, d, a, b, m[10], 10)
	b = ff(b, c, d, a, m[11], 11)
	a = ff(a, b, c, d, m[12], 12)
	d = ff(d, a, b, c, m[13], 13)
	c = ff(c, d, a, b, m[14], 14)
	b = ff(b, c, d, a, m[15], 15)

	a = gg(a, b, c, d, m[1], 16)
	d = gg(d, a, b, c, m[6], 17)
	c = gg(c, d, a, b, m[11], 18)
	b = gg(b, c, d, a, m[0], 19)
	a = gg(a, b, c, d, m[5], 20)
	d = gg(d, a, b, c, m[10], 21)
	c = gg(c, d, a, b, m[15], 22)
	b = gg(b, c, d, a, m[4], 23)
	a = gg(a, b, c, d, m[9], 24)
	d = gg(d, a, b, c, m[14], 25)
	c = gg(c, d, a, b, m[3], 26)
	b = gg(b, c, d, a, m[8], 27)
	a = gg(a, b, c, d, m[13], 28)
	d = gg(d, a, b, c, m[2], 29)
	c = gg(c, d, a, b, m[7], 30)
	b = gg(b, c, d, a, m[12], 31)

	a = hh(a, b, c, d, m[5], 32)
	d = hh(d, a, b, c, m[8], 33)
	c = hh(c, d, a, b, m[11], 34)
	b = hh(b, c, d, a, m[14], 35)
	a = hh(a, b, c, d, m[1], 36)
	d = hh(d, a, b, c, m[4], 37)
	c = hh(c, d, a, b, m[7], 38)
	b = hh(b, c, d, a, m[10], 39)
	a = hh(a, b, c, d, m[13], 40)
	d = hh(d, a, b, c, m[0], 41)
	c = hh(c, d, a, b, m[3], 42)
	b = hh(b, c, d, a, m[6], 43)
	a = hh(a, b, c, d, m[9], 44)
	d = hh(d, a, b, c, m[12], 45)
	c = hh(c, d, a, b, m[15], 46)
	b = hh(b, c, d, a, m[2], 47)

	a = ii(a, b, c, d, m[0], 48)
	d = ii(d, a, b, c, m[7], 49)
	c = ii(c, d, a, b, m[14], 50)
	b = ii(b, c, d, a, m[5], 51)
	a = ii(a, b, c, d, m[12], 52)
	d = ii(d, a, b, c, m[3], 53)
	c = ii(c, d, a, b, m[10], 54)
	b = ii(b, c, d, a, m[1], 55)
	a = ii(a, b, c, d, m[8], 56)
	d = ii(d, a, b, c, m[15], 57)
	c = ii(c, d, a, b, m[6], 58)
	b = ii(b, c, d, a, m[13], 59)
	a = ii(a, b, c, d, m[4], 60)
	d = ii(d, a, b, c, m[11], 61)
	c = ii(c, d, a, b, m[2], 62)
	b = ii(b, c, d, a, m[9], 63)

	return s.add(state{a, b, c, d})
}
