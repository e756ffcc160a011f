// Command rbtree sorts input, dumps YAML mappings in key order, and stress
// tests the red-black tree.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amp-labs/amp-ordered/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Execute(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "rbtree:", err)
		os.Exit(1)
	}
}
