package hashcmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/backkem/fips256/pkg/cas"
	"github.com/backkem/fips256/pkg/sha256"
	"github.com/multiformats/go-multibase"
	"github.com/pion/logging"
)

// Command hashes string arguments or a stream and prints one line per input.
type Command struct {
	opts   Options
	in     io.Reader
	out    io.Writer
	digest *sha256.Digest
	log    logging.LeveledLogger
}

// NewCommand creates a Command. Logs go to errOut.
func NewCommand(opts Options, in io.Reader, out, errOut io.Writer) (*Command, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Format != FormatHex {
		if _, err := multibase.EncoderByName(opts.Base); err != nil {
			return nil, fmt.Errorf("unknown multibase %q: %w", opts.Base, ErrUsage)
		}
	}

	return &Command{
		opts:   opts,
		in:     in,
		out:    out,
		digest: sha256.New(),
		log:    opts.LoggerFactory(errOut).NewLogger("sha256sum"),
	}, nil
}

// Run hashes each argument, or the input stream when args is empty.
func (c *Command) Run(args []string) error {
	if len(args) == 0 {
		n, err := c.hashStream()
		if err != nil {
			return err
		}
		c.log.Debugf("hashed %d bytes from stdin", n)
		return c.emit(c.digest.FinalizeBytes(), "-")
	}

	for _, arg := range args {
		c.digest.UpdateString(arg)
		c.log.Debugf("hashed %d byte argument", len(arg))
		if err := c.emit(c.digest.FinalizeBytes(), strconv.Quote(arg)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Command) hashStream() (int64, error) {
	buf := make([]byte, c.opts.ChunkSize)
	var total int64
	for {
		n, err := c.in.Read(buf)
		if n > 0 {
			c.digest.Update(buf[:n])
			total += int64(n)
			c.log.Tracef("read %d bytes", n)
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			c.digest.Reset()
			return total, fmt.Errorf("read input: %w", err)
		}
	}
}

func (c *Command) emit(sum [sha256.Size]byte, label string) error {
	s, err := c.render(sum)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.out, "%s  %s\n", s, label); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (c *Command) render(sum [sha256.Size]byte) (string, error) {
	switch c.opts.Format {
	case FormatMultihash:
		mh, err := cas.MultihashFromDigest(sum)
		if err != nil {
			return "", err
		}
		return cas.EncodeMultihash(mh, c.opts.Base)
	case FormatCID:
		id, err := cas.CIDFromDigest(sum)
		if err != nil {
			return "", err
		}
		return cas.Encode(id, c.opts.Base)
	default:
		return hex.EncodeToString(sum[:]), nil
	}
}
