package main

import (
	"ItemKeeper/internal/cli/commands"
	"ItemKeeper/internal/config"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	os.Exit(run())
}

// run разбирает конфиг и отдаёт позиционные аргументы диспетчеру команд.
func run() int {
	cfg := config.NewConfig()
	if cfg.Version {
		printVersion(cfg)
		return commands.ExitOK
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return commands.Dispatch(ctx, cfg, flag.Args())
}

func printVersion(cfg *config.Config) {
	fmt.Fprintf(commands.Out, "ItemKeeper CLI %s (built %s)\nServer: %s\nToken file: %s\n",
		version, buildDate, cfg.ServerURL, cfg.TokenFile)
}
