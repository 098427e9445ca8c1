// Package main is the entry point for the checklist CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"checklist/internal/board"
	"checklist/internal/cli"
	"checklist/internal/commands"
	"checklist/internal/config"
	"checklist/internal/storage"

	// Import all command packages to register them via init()
	_ "checklist/internal/commands"
)

func main() {
	// Pick up a local .env before config resolution; absence is fine
	_ = godotenv.Load()

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create board factory
	factory := func(ctx context.Context, cfg *config.Config) (*board.Board, error) {
		kv, err := storage.OpenDir(cfg.Dir)
		if err != nil {
			return nil, err
		}
		b := board.New(kv)
		if cfg.Debug {
			b.Logf = func(format string, args ...any) {
				fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
			}
		}
		return b, nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
