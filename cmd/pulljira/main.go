// Package main is the entry point for the pulljira CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pulljira/internal/backend/jiracloud"
	"pulljira/internal/cli"
	"pulljira/internal/commands"
	"pulljira/internal/config"
	"pulljira/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return jiracloud.New(), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
