package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	practicecmd "github.com/louisbranch/mathdrill/internal/cmd/practice"
	"github.com/louisbranch/mathdrill/internal/platform/config"
)

func main() {
	cfg, err := practicecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[PRACTICE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := practicecmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		stop()
		config.Exitf("practice: %v", err)
	}
}
