package md5

import "github.com/zeebo/md5/internal/consts"

// Size is the number of bytes in an MD5 digest.
const Size = 16

// BlockSize is the number of bytes consumed by one compression.
const BlockSize = consts.BlockLen

// HexSize is the length of the lowercase hex rendering of a digest.
const HexSize = 2 * Size

var iv = state{consts.IV[0], consts.IV[1], consts.IV[2], consts.IV[3]}
