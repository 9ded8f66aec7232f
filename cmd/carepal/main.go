package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/carepal/backend/internal/app"
	"github.com/carepal/backend/internal/cli"
	"github.com/carepal/backend/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Logging stays off unless LOG_FILE is set, and never reaches the terminal.
	logger, closeLog, err := config.SetupFileLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	a := app.New(ctx, cfg, logger)

	root := cli.NewRootCmd(&cli.App{
		Assistant: a.Assistant,
		Personas:  a.Personas,
		Styled:    isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	})
	return root.ExecuteContext(ctx)
}
