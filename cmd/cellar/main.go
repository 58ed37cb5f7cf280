// Package main provides the CLI entry point for Cellar.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/cellar-tui/cellar/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{}
	cmd := &cli.Command{
		Name:    "cellar",
		Usage:   "interactive dashboard for Homebrew",
		Version: app.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "override config path (optional)",
				Destination: &opts.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "prefs",
				Usage:       "override preferences path (optional)",
				Destination: &opts.PrefsPath,
			},
			&cli.BoolFlag{
				Name:        "ascii",
				Usage:       "force plain ascii glyphs",
				Destination: &opts.ForceASCII,
			},
		},
		Action: func(ctx context.Context, _ *cli.Command) error {
			return app.Run(ctx, opts)
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "cellar: %v\n", err)
		return 1
	}
	return 0
}
