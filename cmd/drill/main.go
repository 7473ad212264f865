package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	drillcmd "github.com/louisbranch/mathdrill/internal/cmd/drill"
)

func main() {
	cfg, err := drillcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[DRILL] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := drillcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
