package hashcmd

import (
	"errors"
	"flag"
)

// ErrUsage indicates invalid flags or arguments.
var ErrUsage = errors.New("usage error")

// ExitCode maps an error returned by ParseFlags or Run to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	default:
		return 1
	}
}
