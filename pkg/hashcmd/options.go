// Package hashcmd implements the sha256sum command line.
package hashcmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/backkem/fips256/pkg/cas"
	"github.com/pion/logging"
)

// CommandName is the program name shown in usage output.
const CommandName = "sha256sum"

// Output formats.
const (
	FormatHex       = "hex"
	FormatMultihash = "multihash"
	FormatCID       = "cid"
)

// Options holds the sha256sum command-line flags.
type Options struct {
	// Format selects how digests are printed: hex, multihash or cid.
	Format string

	// Base is the multibase used for multihash and cid output.
	Base string

	// ChunkSize is the read size when hashing stdin.
	ChunkSize int

	// LogLevel is one of disabled, error, warn, info, debug, trace.
	LogLevel string
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		Format:    FormatHex,
		Base:      cas.DefaultBase,
		ChunkSize: 4096,
		LogLevel:  "warn",
	}
}

var logLevels = map[string]logging.LogLevel{
	"disabled": logging.LogLevelDisabled,
	"error":    logging.LogLevelError,
	"warn":     logging.LogLevelWarn,
	"info":     logging.LogLevelInfo,
	"debug":    logging.LogLevelDebug,
	"trace":    logging.LogLevelTrace,
}

// ParseFlags parses args into Options and returns the remaining positional
// arguments. Flag errors wrap ErrUsage; -h returns flag.ErrHelp.
//
//	-format     hex, multihash or cid (default: hex)
//	-base       multibase for multihash/cid output (default: base32)
//	-chunk      stdin read size in bytes (default: 4096)
//	-log-level  disabled, error, warn, info, debug, trace (default: warn)
func ParseFlags(name string, args []string, errOut io.Writer) (Options, []string, error) {
	o := DefaultOptions()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: %s [options] [string ...]\n", name)
		fmt.Fprintf(errOut, "\nHashes each string argument, or stdin when none are given.\n")
		fmt.Fprintf(errOut, "\nOptions:\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&o.Format, "format", o.Format, "Output format: hex, multihash or cid")
	fs.StringVar(&o.Base, "base", o.Base, "Multibase for multihash and cid output")
	fs.IntVar(&o.ChunkSize, "chunk", o.ChunkSize, "Read size in bytes when hashing stdin")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level: disabled, error, warn, info, debug, trace")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return o, nil, err
		}
		return o, nil, fmt.Errorf("parse flags: %w: %w", err, ErrUsage)
	}

	if err := o.Validate(); err != nil {
		return o, nil, err
	}
	return o, fs.Args(), nil
}

// Validate checks option values.
func (o Options) Validate() error {
	switch o.Format {
	case FormatHex, FormatMultihash, FormatCID:
	default:
		return fmt.Errorf("unknown format %q: %w", o.Format, ErrUsage)
	}
	if o.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d: %w", o.ChunkSize, ErrUsage)
	}
	if _, ok := logLevels[strings.ToLower(o.LogLevel)]; !ok {
		return fmt.Errorf("unknown log level %q: %w", o.LogLevel, ErrUsage)
	}
	return nil
}

// LoggerFactory returns a logger factory writing to w at the configured level.
func (o Options) LoggerFactory(w io.Writer) logging.LoggerFactory {
	level, ok := logLevels[strings.ToLower(o.LogLevel)]
	if !ok {
		level = logging.LogLevelWarn
	}
	return &logging.DefaultLoggerFactory{
		Writer:          w,
		DefaultLogLevel: level,
		ScopeLevels:     map[string]logging.LogLevel{},
	}
}
