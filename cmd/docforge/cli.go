package main

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("usage error")
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteDocument      = errors.New("failed to write document file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// run dispatches to the requested subcommand.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "generate":
		flags, positional, err := parseGenerateFlags(rest, env.Stderr)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return runGenerate(ctx, positional, flags, env)
	case "extract":
		flags, positional, err := parseExtractFlags(rest, env.Stderr)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return runExtract(positional, flags, env)
	case "version":
		fmt.Fprintf(env.Stdout, "docforge %s\n", Version)
		return nil
	case "help":
		runHelp(rest, env)
		return nil
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}
