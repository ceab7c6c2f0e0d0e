// Command hash-generator prints a bcrypt hash for the admin password so it
// can be supplied as PORTFOLIO_AUTH_ADMIN_PASSWORD_HASH instead of the
// plaintext.
//
// Usage:
//
//	hash-generator [--cost N] <password>
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("hash-generator", pflag.ContinueOnError)
	cost := flags.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 || flags.Arg(0) == "" {
		return fmt.Errorf("usage: hash-generator [--cost N] <password>")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(flags.Arg(0)), *cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = fmt.Fprintln(out, string(hash))
	return err
}
