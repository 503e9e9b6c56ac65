// Command md5hex prints MD5 digests of text as lowercase hex.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
