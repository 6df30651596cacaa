package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/bbernstein/ledcommander-go/internal/config"
	"github.com/bbernstein/ledcommander-go/internal/services/edit"
)

func applyCmd(cfg *config.Config) *cli.Command {
	var (
		layoutPath string
		editsPath  string
		outPath    string
	)

	return &cli.Command{
		Name:      "apply",
		Usage:     "Apply a JSON edit document to a save file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			layoutFlag(cfg, &layoutPath),
			&cli.StringFlag{Name: "edits", Aliases: []string{"e"}, Usage: "path to the edit document", Required: true, Destination: &editsPath},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "path for the edited save file", Required: true, Destination: &outPath},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := requireFileArg(cmd)
			if err != nil {
				return err
			}
			f, err := loadSaveFile(path, layoutPath)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(editsPath)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", editsPath, err)
			}
			doc, err := edit.ParseEditDocument(raw)
			if err != nil {
				return err
			}

			out, stats, err := edit.NewService().Apply(f, doc)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, out.Encode(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			log.Printf("Wrote %s (%d renames, %d repatches, %d dimmer changes, %d block replacements)",
				outPath, stats.ChannelsRenamed, stats.ChannelsRepatched, stats.DimmerFlagsChanged, stats.BlocksReplaced)
			return nil
		},
	}
}
