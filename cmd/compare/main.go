package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	// The comparison is a single bounded computation, so the background
	// context is never canceled.
	ctx := context.Background()

	// Pass in the command line arguments and output streams to the run function.
	// This allows the run function to be tested in isolation without relying
	// on the real process state.
	if err := run(ctx, os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
