// SPDX-License-Identifier: MIT

// Command lvsearch loads a state space, runs BFS, UCS or A* over it and
// optionally verifies the supplied heuristic, printing reports to stdout.
//
//	lvsearch --ss istra.txt --alg astar --h istra_h.txt
//	lvsearch --ss istra.txt --h istra_h.txt --check-optimistic --check-consistent
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes the command and maps failures to an exit status.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "lvsearch:", err)
		return 1
	}

	return 0
}
