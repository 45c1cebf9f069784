package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/rafaelcosta/taskboard/internal/cli"
	"github.com/rafaelcosta/taskboard/internal/seed"
	"github.com/rafaelcosta/taskboard/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	s := store.New()
	if err := seed.Apply(s); err != nil {
		return fmt.Errorf("seeding demo data: %w", err)
	}

	app := &cli.App{
		Store:       s,
		CurrentUser: seed.CurrentUser(),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
