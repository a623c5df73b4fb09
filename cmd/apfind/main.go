// Command apfind reports the longest arithmetic progression in a stream of
// non-decreasing unsigned integers, one per line.
//
// Usage:
//
//	apfind [flags] [input]
//
// The input defaults to standard input. Exit status is 0 on success and 1 on
// any error, including input that is not in non-decreasing order.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "apfind: %v\n", err)
		stop()
		os.Exit(1)
	}
}
