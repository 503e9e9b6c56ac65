package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zeebo/md5"
)

var (
	errNoInput       = errors.New("no input: pass text arguments or --stdin")
	errMismatch      = errors.New("digest mismatch")
	errInvalidDigest = errors.New("invalid digest")
	errCheckArgs     = errors.New("--check takes exactly one input")
)

type options struct {
	cfgFile string
	stdin   bool
	check   string
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	opts := new(options)

	cmd := &cobra.Command{
		Use:   "md5hex [text...]",
		Short: "Print the MD5 digest of text as lowercase hex",
		Long: `md5hex prints the RFC 1321 MD5 digest of each argument, one per line.

MD5 is not collision resistant. Use it only as a compatibility checksum.

Encodings:
  utf8     hash the UTF-8 bytes of the text (default, matches md5sum)
  legacy   hash the low byte of every UTF-16 code unit, as older
           browser tools did

Configuration is read from flags, then MD5HEX_* environment variables,
then .md5hex.yml (or the file named by --config / MD5HEX_CONFIG_FILE).

Examples:
  md5hex abc
  echo -n "message digest" | md5hex --stdin
  md5hex --encoding legacy café
  md5hex --check 900150983cd24fb0d6963f7d28e17f72 abc`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, opts.cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd, v, opts, args)
		},
	}

	addPersistentFlags(cmd.PersistentFlags(), v, opts)
	addDigestFlags(cmd.Flags(), v, opts)

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// initConfig wires the config file and MD5HEX_ environment variables into v.
// A missing default config file is not an error; a missing explicit one is.
func initConfig(v *viper.Viper, cfgFile string) error {
	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case os.Getenv("MD5HEX_CONFIG_FILE") != "":
		v.SetConfigFile(os.Getenv("MD5HEX_CONFIG_FILE"))
	default:
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".md5hex")
	}

	v.SetEnvPrefix("MD5HEX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func runDigest(cmd *cobra.Command, v *viper.Viper, opts *options, args []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString("log-level"))
	if err != nil {
		return err
	}

	enc, err := md5.ParseEncoding(v.GetString("encoding"))
	if err != nil {
		return err
	}

	if v.ConfigFileUsed() != "" {
		logger.Debug("using config file", "path", v.ConfigFileUsed())
	}

	inputs := args
	if opts.stdin {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		inputs = append(inputs, trimNewline(string(data)))
	}

	if len(inputs) == 0 {
		_ = cmd.Usage()
		return errNoInput
	}

	if opts.check != "" {
		if len(inputs) != 1 {
			return errCheckArgs
		}
		return runCheck(cmd.OutOrStdout(), logger, enc, opts.check, inputs[0])
	}

	out := cmd.OutOrStdout()
	for _, in := range inputs {
		b := enc.Bytes(in)
		logger.Debug("hashing input", "encoding", enc, "bytes", len(b))

		if _, err := fmt.Fprintln(out, md5.Hex(b)); err != nil {
			return fmt.Errorf("writing digest: %w", err)
		}
	}

	return nil
}

func runCheck(out io.Writer, logger *slog.Logger, enc md5.Encoding, want, input string) error {
	want = strings.ToLower(strings.TrimSpace(want))
	if !isHexDigest(want) {
		return fmt.Errorf("%w: %q is not %d hex characters", errInvalidDigest, want, md5.HexSize)
	}

	got := enc.Hex(input)
	logger.Debug("checking digest", "encoding", enc, "got", got, "want", want)

	if got != want {
		return fmt.Errorf("%w: got %s, want %s", errMismatch, got, want)
	}

	_, err := fmt.Fprintf(out, "%s: OK\n", got)
	return err
}

// trimNewline removes one trailing "\n" or "\r\n".
func trimNewline(s string) string {
	if t, ok := strings.CutSuffix(s, "\r\n"); ok {
		return t
	}
	return strings.TrimSuffix(s, "\n")
}

func isHexDigest(s string) bool {
	if len(s) != md5.HexSize {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
