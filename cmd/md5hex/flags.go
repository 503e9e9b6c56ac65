package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zeebo/md5"
)

// addPersistentFlags registers flags shared by every subcommand and binds the
// configurable ones into v.
func addPersistentFlags(fs *pflag.FlagSet, v *viper.Viper, opts *options) {
	fs.StringVar(&opts.cfgFile, "config", "", "config file (default is .md5hex.yml, can also use MD5HEX_CONFIG_FILE env var)")
	fs.StringP("log-level", "l", "warn", "log level (debug, info, warn, error)")
	_ = v.BindPFlag("log-level", fs.Lookup("log-level"))
}

func addDigestFlags(fs *pflag.FlagSet, v *viper.Viper, opts *options) {
	fs.StringP("encoding", "e", md5.UTF8.String(), "how text becomes bytes (utf8, legacy)")
	fs.BoolVar(&opts.stdin, "stdin", false, "read the text to hash from standard input")
	fs.StringVar(&opts.check, "check", "", "compare the digest of the single input against this hex value")
	_ = v.BindPFlag("encoding", fs.Lookup("encoding"))
}
