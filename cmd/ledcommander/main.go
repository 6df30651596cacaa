// Package main is the entry point for the LED Commander save-file tool.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/bbernstein/ledcommander-go/internal/config"
	"github.com/bbernstein/ledcommander-go/internal/services/version"
	"github.com/bbernstein/ledcommander-go/pkg/savefile"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}
	cfg := config.Load()

	app := &cli.Command{
		Name:    "ledcommander",
		Usage:   "Inspect and edit Stairville LED Commander 16/2 save files",
		Version: version.Full(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			inspectCmd(cfg),
			validateCmd(cfg),
			exportCmd(cfg),
			applyCmd(cfg),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// layoutFlag returns the shared region-table overlay flag, defaulting to the
// configured overlay path.
func layoutFlag(cfg *config.Config, dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "layout",
		Usage:       "path to a YAML region-table overlay",
		Value:       cfg.LayoutPath,
		Destination: dest,
	}
}

// loadSaveFile reads and decodes a capture, honoring an optional region
// table overlay.
func loadSaveFile(path, layoutPath string) (*savefile.SaveFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	layout := savefile.DefaultLayout()
	if layoutPath != "" {
		raw, err := os.ReadFile(layoutPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read layout overlay: %w", err)
		}
		if layout, err = savefile.ParseLayout(raw); err != nil {
			return nil, err
		}
		log.Printf("Using region-table overlay from %s", layoutPath)
	}
	return savefile.DecodeWithLayout(data, layout)
}

// requireFileArg returns the single positional save-file argument.
func requireFileArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", fmt.Errorf("expected exactly one save-file argument")
	}
	return cmd.Args().First(), nil
}
