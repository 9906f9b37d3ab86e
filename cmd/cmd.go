// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// tuiCommand launches the interactive client
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"ui", "play"},
		Usage:   "Launch the interactive music client",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Path to the TUI log file (default: log.path from config)",
			},
		},
		Action: r.TUI,
	}
}

// tokenCommand signs a MusicKit developer token
func tokenCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Generate an Apple Music developer token from a MusicKit private key",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "team-id",
				Usage: "Apple developer team ID (overrides musickit.team_id)",
			},
			&cli.StringFlag{
				Name:  "key-id",
				Usage: "MusicKit key ID (overrides musickit.key_id)",
			},
			&cli.StringFlag{
				Name:    "key-file",
				Aliases: []string{"k"},
				Usage:   "Path to the .p8 private key (overrides musickit.private_key_file)",
			},
			&cli.StringFlag{
				Name:  "expires-in",
				Usage: "Token lifetime, e.g. 180d or 720h (max 180d)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "File to write the token to (overrides musickit.output_file)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the token and its claims as JSON",
			},
		},
		Action: r.Token,
	}
}

// catalogCommand prints the built-in catalog
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Inspect the built-in catalog",
		Commands: []*cli.Command{
			{
				Name:  "tracks",
				Usage: "List trending tracks, optionally filtered",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Case-insensitive match on title, artist, or album",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: text, csv, or md",
						Value:   "text",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CatalogTracks,
			},
			{
				Name:  "playlists",
				Usage: "List featured playlists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CatalogPlaylists,
			},
		},
	}
}

// maskCommand prints an Apple ID as the two-factor page shows it
func maskCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "mask",
		Usage: "Mask an Apple ID the way the two-factor page does",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Action: r.Mask,
	}
}

// otpCommand helps with the optional TOTP two-factor mode
func otpCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "otp",
		Usage: "Two-factor helpers for two_factor.mode = \"totp\"",
		Commands: []*cli.Command{
			{
				Name:  "code",
				Usage: "Print the current code for the configured secret",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "secret",
						Usage: "Base32 secret (default: two_factor.totp_secret)",
					},
				},
				Action: r.OTPCode,
			},
			{
				Name:  "secret",
				Usage: "Generate a new TOTP secret and provisioning URL",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "account",
						Usage: "Account name embedded in the provisioning URL",
						Value: "music.lover@icloud.com",
					},
				},
				Action: r.OTPSecret,
			},
		},
	}
}

// setupCommand handles setup operations
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write config.toml from the built-in template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}
