package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := notifyContext()
	defer stop()

	env := DefaultEnv()

	err := run(ctx, os.Args[1:], env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err.Error()+hintFor(err))
	}
	os.Exit(exitCodeFor(err))
}
