package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/dochazka/internal/cli"
	"github.com/alexanderramin/dochazka/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	app := &cli.App{Config: cfg}
	defer app.Close()

	// Detect interactive terminal for the bare entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
