// SPDX-License-Identifier: MIT
// Command triest estimates triangle counts of edge streams in bounded memory.
//
// Usage:
//
//	triest estimate graph.txt --capacity 100000 --variant improved
//	triest generate wheel 1000 --shuffle --seed 7 > wheel.txt
//	triest eval wheel.txt --capacity 500 --trials 100
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
