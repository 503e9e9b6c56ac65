// Package md5 computes RFC 1321 MD5 digests and renders them as lowercase
// hex.
//
// MD5 is broken for collision resistance. Use it only as a compatibility
// checksum.
package md5

import (
	"encoding/hex"
)

// Sum returns the MD5 digest of data.
func Sum(data []byte) [Size]byte {
	return sum(data)
}

// Hex returns the MD5 digest of data as 32 lowercase hex characters.
func Hex(data []byte) string {
	return string(AppendHex(make([]byte, 0, HexSize), data))
}

// AppendHex appends the lowercase hex digest of data to dst and returns the
// extended buffer.
func AppendHex(dst, data []byte) []byte {
	d := sum(data)
	return hex.AppendEncode(dst, d[:])
}

// HexString returns the hex digest of the UTF-8 encoding of s. This matches
// every other MD5 implementation.
func HexString(s string) string {
	return Hex([]byte(s))
}

// HexLegacy returns the hex digest of LegacyBytes(s). For text outside
// Latin-1 it differs from HexString; it exists to reproduce digests produced
// by tools that hashed one byte per UTF-16 code unit.
func HexLegacy(s string) string {
	return Hex(LegacyBytes(s))
}
