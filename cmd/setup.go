package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/unitx/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the example configuration to --config.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		return fmt.Errorf("%w: --config", shared.ErrMissingArgument)
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)

	if err := r.writePlain("✓ Configuration written to %s\n", path); err != nil {
		return err
	}
	if err := r.writePlainln("Next steps:"); err != nil {
		return err
	}
	return r.writePlain("1. Edit [display] to set your currency, locale and unit label\n" +
		"2. Run 'unitx compare \"price=10;amount=1\" \"price=18;amount=2\"' to try it\n")
}
