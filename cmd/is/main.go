// Command is runs named predicates and card checks from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/is/internal/cli"
	"github.com/dmitrymomot/is/pkg/config"
)

func main() {
	var cfg cli.Config
	if err := config.Load(&cfg, config.WithPrefix("IS_")); err != nil {
		fmt.Fprintf(os.Stderr, "is: %v\n", err)
		os.Exit(cli.ExitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr, cfg)
	stop()
	os.Exit(code)
}
