package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/bbernstein/ledcommander-go/internal/config"
)

func validateCmd(cfg *config.Config) *cli.Command {
	var (
		layoutPath string
		strict     bool
	)

	return &cli.Command{
		Name:      "validate",
		Usage:     "Check a save file against everything known to be constant",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			layoutFlag(cfg, &layoutPath),
			&cli.BoolFlag{Name: "strict", Usage: "exit nonzero when anomalies are found", Value: cfg.Strict, Destination: &strict},
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

			anomalies := f.Validate()
			if len(anomalies) == 0 {
				fmt.Println("OK: no anomalies")
				return nil
			}
			for _, a := range anomalies {
				fmt.Println(a)
			}
			if strict {
				return fmt.Errorf("%d anomalies found", len(anomalies))
			}
			return nil
		},
	}
}
