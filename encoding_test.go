package md5

import (
	"errors"
	"testing"

	"github.com/zeebo/assert"
)

func TestLegacyBytes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  []byte
	}{
		{"Empty", "", []byte{}},
		{"ASCII", "abc", []byte("abc")},
		{"Latin1", "café", []byte{'c', 'a', 'f', 0xe9}},
		{"BMP", "€", []byte{0xac}},
		{"Astral", "\U0001F600", []byte{0x3d, 0x00}},
		{"Invalid", "\xff", []byte{0xfd}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, LegacyBytes(c.in), c.out)
		})
	}
}

func TestHexLegacy(t *testing.T) {
	assert.Equal(t, HexLegacy("abc"), HexString("abc"))
	assert.Equal(t, HexLegacy("café"), Hex([]byte{'c', 'a', 'f', 0xe9}))
	assert.That(t, HexLegacy("café") != HexString("café"))

	// the high byte is dropped, so these collide
	assert.Equal(t, HexLegacy("š"), HexLegacy("a"))
}

func TestParseEncoding(t *testing.T) {
	for name, exp := range map[string]Encoding{
		"":       UTF8,
		"utf8":   UTF8,
		"UTF-8":  UTF8,
		"legacy": Legacy,
		"Latin1": Legacy,
	} {
		e, err := ParseEncoding(name)
		assert.NoError(t, err)
		assert.Equal(t, e, exp)
	}

	_, err := ParseEncoding("ebcdic")
	assert.Error(t, err)
	assert.That(t, errors.Is(err, ErrUnknownEncoding))
}

func TestEncoding(t *testing.T) {
	assert.Equal(t, UTF8.String(), "utf8")
	assert.Equal(t, Legacy.String(), "legacy")
	assert.Equal(t, Encoding(7).String(), "Encoding(7)")

	for _, e := range []Encoding{UTF8, Legacy} {
		back, err := ParseEncoding(e.String())
		assert.NoError(t, err)
		assert.Equal(t, back, e)
	}

	assert.Equal(t, UTF8.Hex("café"), HexString("café"))
	assert.Equal(t, Legacy.Hex("café"), HexLegacy("café"))
}
