package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/veilnum/veilnum/internal/platform/config"
	"github.com/veilnum/veilnum/internal/tools/mapindex"
)

func main() {
	cfg, err := mapindex.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mapindex.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("map index: %v", err)
	}
}
