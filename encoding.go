package md5

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
)

// ErrUnknownEncoding is returned by ParseEncoding for unrecognized names.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Encoding selects how text is turned into the bytes that get hashed.
type Encoding int

const (
	// UTF8 hashes the UTF-8 bytes of the text.
	UTF8 Encoding = iota

	// Legacy hashes the low byte of every UTF-16 code unit of the text,
	// dropping the high byte of anything outside Latin-1.
	Legacy
)

// ParseEncoding returns the Encoding with the given name. Names are matched
// case-insensitively.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf8", "utf-8", "":
		return UTF8, nil
	case "legacy", "latin1":
		return Legacy, nil
	default:
		return 0, fmt.Errorf("%w: %q (supported: utf8, legacy)", ErrUnknownEncoding, name)
	}
}

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf8"
	case Legacy:
		return "legacy"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// Bytes converts s into the bytes hashed under e.
func (e Encoding) Bytes(s string) []byte {
	if e == Legacy {
		return LegacyBytes(s)
	}
	return []byte(s)
}

// Hex returns the hex digest of s under e.
func (e Encoding) Hex(s string) string {
	return Hex(e.Bytes(s))
}

// LegacyBytes returns one byte per UTF-16 code unit of s, keeping only the
// low 8 bits of each unit. Characters above U+FFFF contribute the low bytes
// of both surrogates. Invalid UTF-8 in s decodes to U+FFFD first.
func LegacyBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units))
	for i, u := range units {
		out[i] = byte(u)
	}
	return out
}
