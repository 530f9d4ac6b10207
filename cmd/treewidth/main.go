package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/treewidth/internal/cli"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// trap Ctrl+C and SIGTERM and cancel the search; the best result so far is still written
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	cli.Execute(ctx, version)
}
