// Command late manages posts and accounts through the Late API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/late-go/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Run(ctx, cli.DefaultEnv(), os.Args[1:])
	cancel()
	os.Exit(code)
}
