package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/bbernstein/ledcommander-go/internal/config"
	"github.com/bbernstein/ledcommander-go/pkg/savefile"
)

func inspectCmd(cfg *config.Config) *cli.Command {
	var (
		layoutPath string
		showPatch  bool
	)

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print a human-readable summary of a save file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			layoutFlag(cfg, &layoutPath),
			&cli.BoolFlag{Name: "patch", Usage: "list every patched DMX channel", Destination: &showPatch},
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
			return inspect(f, showPatch)
		},
	}
}

func inspect(f *savefile.SaveFile, showPatch bool) error {
	count, err := f.BlockCount()
	if err != nil {
		return err
	}
	fmt.Printf("Scene/chase records: %d x %d bytes\n", count, savefile.BlockSize)

	fmt.Println("Controls:")
	for i := 0; i < savefile.ChannelNameCount; i++ {
		label, err := f.ChannelLabel(i)
		if err != nil {
			return err
		}
		fmt.Printf("  %2d: %s\n", i+1, label)
	}

	assignments, err := f.DMXAssignments()
	if err != nil {
		return err
	}
	patched := 0
	for dmxChannel, a := range assignments {
		if a.Unpatched {
			continue
		}
		patched++
		if showPatch {
			fmt.Printf("  DMX %3d -> %s\n", dmxChannel+1, a)
		}
	}
	fmt.Printf("DMX patch: %d of %d channels patched\n", patched, savefile.DMXChannelCount)

	modes, err := f.DimmerModes()
	if err != nil {
		return err
	}
	enabled := 0
	for _, on := range modes {
		if on {
			enabled++
		}
	}
	fmt.Printf("Virtual dimmer: enabled on %d of %d fixtures\n", enabled, savefile.FixtureCount)

	if anomalies := f.Validate(); len(anomalies) > 0 {
		fmt.Printf("Anomalies: %d (run validate for details)\n", len(anomalies))
	}
	return nil
}
