package ref

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/zeebo/assert"
)

func TestIndex(t *testing.T) {
	seen := make(map[int]int)
	for i := 0; i < 64; i++ {
		seen[Index(i)]++
	}
	for j := 0; j < 16; j++ {
		assert.Equal(t, seen[j], 4)
	}

	assert.Equal(t, Index(16), 1)
	assert.Equal(t, Index(17), 6)
	assert.Equal(t, Index(32), 5)
	assert.Equal(t, Index(33), 8)
	assert.Equal(t, Index(48), 0)
	assert.Equal(t, Index(49), 7)
}

func TestPad(t *testing.T) {
	for n := 0; n < 200; n++ {
		p := Pad(make([]byte, n))
		assert.Equal(t, len(p)%64, 0)
		assert.Equal(t, p[n], byte(0x80))
		assert.That(t, len(p)-n >= 9)
		assert.That(t, len(p)-n <= 72)
	}

	p := Pad([]byte("abc"))
	assert.Equal(t, len(p), 64)
	assert.Equal(t, p[56], byte(24))
}

func TestSum(t *testing.T) {
	for n := 0; n < 300; n++ {
		in := []byte(strings.Repeat("x", n))
		got := Sum(in)
		exp := md5.Sum(in)
		assert.Equal(t, hex.EncodeToString(got[:]), hex.EncodeToString(exp[:]))
	}
}
