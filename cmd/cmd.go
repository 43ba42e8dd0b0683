// submodule cmd contains command definitions
package main

import (
	"fmt"
	"strings"

	"github.com/desertthunder/unitx/internal/formatter"
	"github.com/urfave/cli/v3"
)

const defaultConfigPath = "config.toml"

// configFlags are accepted by every command that renders a comparison.
func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   defaultConfigPath,
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (debug, info, warn, error)",
		},
	}
}

// compareCommand ranks offers given as arguments or read from a CSV file
func compareCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Aliases:   []string{"cmp"},
		Usage:     "Rank offers by unit price",
		ArgsUsage: `["name=Rice;price=10;amount=1;quantity=2" ...]`,
		Description: "Each offer is a list of key=value pairs separated by semicolons.\n" +
			"Keys: name, price, amount (or size), quantity (or units). Quantity defaults to 1.",
		Flags: append(configFlags(),
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "CSV file with a name,price,amount,quantity header",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		),
		Action: r.Compare,
	}
}

// exportCommand writes a ranked comparison to a file
func exportCommand(r *Runner) *cli.Command {
	formats := make([]string, len(formatter.Formats))
	for i, f := range formatter.Formats {
		formats[i] = string(f)
	}

	return &cli.Command{
		Name:      "export",
		Usage:     "Export a ranked comparison",
		ArgsUsage: `["name=Rice;price=10;amount=1;quantity=2" ...]`,
		Flags: append(configFlags(),
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "CSV file with a name,price,amount,quantity header",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: fmt.Sprintf("Export format (%s)", strings.Join(formats, ", ")),
				Value: string(formatter.FormatMarkdown),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path, or - for stdout (default: comparison.<ext>)",
			},
		),
		Action: r.Export,
	}
}

// tuiCommand returns the top-level TUI command for interactive comparison.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI to compare offers",
		Flags: append(configFlags(),
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "CSV file with offers to start from",
			},
		),
		Action: r.TUI,
	}
}

// setupCommand handles setup operations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write an example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   defaultConfigPath,
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}
