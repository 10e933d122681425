// sha256sum prints the SHA-256 digest of each string argument, or of stdin
// when no arguments are given.
//
// Usage:
//
//	sha256sum [options] [string ...]
//
// Options:
//
//	-format     hex, multihash or cid (default: hex)
//	-base       multibase for multihash/cid output (default: base32)
//	-chunk      stdin read size in bytes (default: 4096)
//	-log-level  disabled, error, warn, info, debug, trace (default: warn)
//
// Example:
//
//	sha256sum "hello world"
//	echo -n abc | sha256sum -format cid
package main

import (
	"fmt"
	"os"

	"github.com/backkem/fips256/pkg/hashcmd"
)

func main() {
	opts, args, err := hashcmd.ParseFlags(hashcmd.CommandName, os.Args[1:], os.Stderr)
	if err != nil {
		exit(err)
	}

	cmd, err := hashcmd.NewCommand(opts, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		exit(err)
	}

	if err := cmd.Run(args); err != nil {
		exit(err)
	}
}

func exit(err error) {
	code := hashcmd.ExitCode(err)
	if code != 0 {
		fmt.Fprintf(os.Stderr, "%s: %v\n", hashcmd.CommandName, err)
	}
	os.Exit(code)
}
