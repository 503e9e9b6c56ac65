package md5_test

import (
	"fmt"

	"github.com/zeebo/md5"
)

func ExampleHex() {
	fmt.Println(md5.Hex([]byte("message digest")))
	//output:
	// f96b697d7cb7938d525a2f31aaf161d0
}

func ExampleSum() {
	digest := md5.Sum([]byte("abc"))

	fmt.Printf("%x\n", digest[:])
	//output:
	// 900150983cd24fb0d6963f7d28e17f72
}

func ExampleAppendHex() {
	buf := []byte("etag: ")
	buf = md5.AppendHex(buf, []byte("a"))

	fmt.Println(string(buf))
	//output:
	// etag: 0cc175b9c0f1b6a831c399e269772661
}

func ExampleHexLegacy() {
	fmt.Println(md5.HexString("abc"))
	fmt.Println(md5.HexLegacy("abc"))
	//output:
	// 900150983cd24fb0d6963f7d28e17f72
	// 900150983cd24fb0d6963f7d28e17f72
}

func ExampleParseEncoding() {
	enc, err := md5.ParseEncoding("legacy")
	if err != nil {
		panic(err)
	}

	fmt.Println(enc)
	fmt.Println(enc.Hex(""))
	//output:
	// legacy
	// d41d8cd98f00b204e9800998ecf8427e
}
