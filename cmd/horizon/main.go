package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		slog.Error("unable to parse config", "error", err.Error())
		os.Exit(2)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := Run(context.Background(), cfg, os.Stdout); err != nil {
		slog.Error("horizon failed", "command", cfg.Command, "error", err.Error())
		os.Exit(1)
	}
}
