package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/tunedeck/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the example configuration to the given path and validates it.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		return fmt.Errorf("%w: --config must not be empty", shared.ErrMissingArgument)
	}

	r.logger.Info("creating config from template", "path", path)
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	if _, err := shared.LoadConfig(path); err != nil {
		return fmt.Errorf("created config does not load: %w", err)
	}
	r.logger.Info("config file created", "path", path)

	r.writePlain("✓ Config written to %s\n", path)
	r.writePlainln("Next steps:")
	r.writePlain("1. Set musickit.team_id and musickit.key_id (or MUSICKIT_TEAM_ID / MUSICKIT_KEY_ID in .env)\n")
	r.writePlain("2. Put your AuthKey_<KEY_ID>.p8 next to it and point musickit.private_key_file at it\n")
	r.writePlain("3. Run 'tunedeck token' to sign a developer token, or 'tunedeck tui' to open the client\n")

	return nil
}
