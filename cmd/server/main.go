// Package main implements the entry point for the portfolio API server,
// which serves the posts, projects and technologies shown on the portfolio
// site and lets the single admin edit them.
//
// Usage:
//
//	portfolio-api [serve]
//	portfolio-api migrate up|down|status
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
)

const usage = `usage:
  portfolio-api [serve] [--config-dir DIR]
  portfolio-api migrate up|down|status [--config-dir DIR]`

var errUsage = errors.New(usage)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run dispatches to a subcommand. serve is the default.
func run(ctx context.Context, args []string) error {
	command := "serve"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		command, args = args[0], args[1:]
	}

	flags := pflag.NewFlagSet(command, pflag.ContinueOnError)
	configDir := flags.String("config-dir", ".", "directory holding .env and config.yaml")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w\n%v", errUsage, err)
	}

	switch command {
	case "serve":
		if flags.NArg() != 0 {
			return errUsage
		}
		return serve(ctx, *configDir)
	case "migrate":
		if flags.NArg() != 1 {
			return errUsage
		}
		return migrate(ctx, *configDir, flags.Arg(0))
	default:
		return fmt.Errorf("%w\nunknown command %q", errUsage, command)
	}
}
