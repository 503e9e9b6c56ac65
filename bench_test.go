package md5

import (
	"fmt"
	"testing"

	"github.com/zeebo/md5/ref"
)

func BenchmarkCompress(b *testing.B) {
	var m [16]uint32
	s := iv

	b.SetBytes(BlockSize)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s = compress(s, &m)
	}
}

func BenchmarkCompress_Ref(b *testing.B) {
	var m [16]uint32
	s := ref.IV

	b.SetBytes(BlockSize)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s = ref.Compress(s, &m)
	}
}

func BenchmarkSum(b *testing.B) {
	sizes := []int64{0, 16, 55, 56, 64, 128, 256, 512, 1024, 4 * 1024, 8 * 1024}

	for _, size := range sizes {
		input := make([]byte, size)

		b.Run(fmt.Sprint(size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(size)

			for i := 0; i < b.N; i++ {
				_ = Sum(input)
			}
		})
	}
}

func BenchmarkHex(b *testing.B) {
	input := []byte("message digest")
	buf := make([]byte, 0, HexSize)

	b.ReportAllocs()
	b.SetBytes(int64(len(input)))

	for i := 0; i < b.N; i++ {
		buf = AppendHex(buf[:0], input)
	}
}
