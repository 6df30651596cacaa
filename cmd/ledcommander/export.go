package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/bbernstein/ledcommander-go/internal/config"
	"github.com/bbernstein/ledcommander-go/internal/services/export"
)

func exportCmd(cfg *config.Config) *cli.Command {
	var (
		layoutPath string
		outPath    string
		withBlocks bool
		noAnomaly  bool
	)

	return &cli.Command{
		Name:      "export",
		Usage:     "Export the decoded contents of a save file as JSON",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			layoutFlag(cfg, &layoutPath),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write JSON to a file instead of stdout", Destination: &outPath},
			&cli.BoolFlag{Name: "blocks", Usage: "include the non-zero scene/chase record index", Destination: &withBlocks},
			&cli.BoolFlag{Name: "no-anomalies", Usage: "skip validation findings", Destination: &noAnomaly},
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

			exported, stats, err := export.NewService().Export(f, export.Options{
				IncludeBlockIndex: withBlocks,
				IncludeAnomalies:  !noAnomaly,
			})
			if err != nil {
				return err
			}
			jsonStr, err := exported.ToJSON(cfg.ExportIndent)
			if err != nil {
				return err
			}

			if outPath == "" {
				fmt.Println(jsonStr)
			} else {
				if err := os.WriteFile(outPath, []byte(jsonStr+"\n"), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outPath, err)
				}
				log.Printf("Exported %s (%d named channels, %d patched, %d anomalies)",
					outPath, stats.NamedChannels, stats.PatchedChannels, stats.AnomalyCount)
			}
			return nil
		},
	}
}
