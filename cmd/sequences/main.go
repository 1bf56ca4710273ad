// Package main prints pairwise chains and nested sequences.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/lazyseq/internal/platform/cmd"
	"github.com/louisbranch/lazyseq/internal/platform/config"
	"github.com/louisbranch/lazyseq/internal/tools/sequences"
)

func main() {
	cfg, err := sequences.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.RunWithTelemetry(ctx, cmd.ServiceSequences, func(ctx context.Context) error {
		return sequences.Run(ctx, cfg, os.Stdout)
	}); err != nil {
		config.Exitf("Error: %v", err)
	}
}
