// Package main is the entry point for the glot catalog tool.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/openlocale/glot/cmd/glot/commands"
	"github.com/openlocale/glot/pkg/logger"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := logger.New(os.Stderr, slog.LevelWarn)

	cli := commands.New(log)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, os.Stderr)

	if err := cli.Execute(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		return 1
	}
	return 0
}
