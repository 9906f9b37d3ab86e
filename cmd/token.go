package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/tunedeck/internal/shared"
	"github.com/desertthunder/tunedeck/internal/token"
	"github.com/urfave/cli/v3"
)

// tokenResult is the JSON shape of a signed developer token.
type tokenResult struct {
	Token     string    `json:"token"`
	TeamID    string    `json:"team_id"`
	KeyID     string    `json:"key_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	File      string    `json:"file,omitempty"`
}

// Token signs a MusicKit developer token from config, .env, and flags, and writes it to disk.
func (r *Runner) Token(ctx context.Context, cmd *cli.Command) error {
	opts, err := r.tokenOptions(cmd)
	if err != nil {
		return err
	}

	asJSON := cmd.Bool("json")
	if !asJSON {
		r.writePlainHeader("Apple Music developer token")
	}

	if err := opts.Validate(); err != nil {
		r.printRemediation(err)
		return err
	}

	r.logger.Info("signing developer token", "team_id", opts.TeamID, "key_id", opts.KeyID, "expires_in", opts.ExpiresIn)
	tok, err := token.Generate(opts, r.now())
	if err != nil {
		r.printTroubleshooting(err)
		return err
	}

	if opts.OutputFile != "" {
		if err := tok.Save(opts.OutputFile); err != nil {
			return err
		}
		r.logger.Info("token saved", "path", opts.OutputFile)
	}

	if asJSON {
		return r.writeJSON(tokenResult{
			Token:     tok.Value,
			TeamID:    tok.TeamID,
			KeyID:     tok.KeyID,
			IssuedAt:  tok.IssuedAt,
			ExpiresAt: tok.ExpiresAt,
			File:      opts.OutputFile,
		}, true)
	}

	r.writePlain("✓ Token generated\n\n")
	r.writePlain("%s\n\n", tok.Value)
	r.writePlain("Team ID:    %s\n", tok.TeamID)
	r.writePlain("Key ID:     %s\n", tok.KeyID)
	r.writePlain("Issued at:  %s\n", tok.IssuedAt.Format(time.RFC3339))
	r.writePlain("Expires at: %s (%d days)\n", tok.ExpiresAt.Format(time.RFC3339), int(opts.ExpiresIn.Hours()/24))
	if opts.OutputFile != "" {
		r.writePlain("Saved to:   %s\n", opts.OutputFile)
	}

	r.writePlainln("Usage:")
	r.writePlain("1. Configure MusicKit JS with developerToken set to the value above\n")
	r.writePlain("2. Send it as 'Authorization: Bearer <token>' to api.music.apple.com\n")
	r.writePlain("3. Re-run 'tunedeck token' before %s\n", tok.ExpiresAt.Format("2006-01-02"))
	return nil
}

// tokenOptions merges the musickit config section with command flags.
func (r *Runner) tokenOptions(cmd *cli.Command) (token.Options, error) {
	mk := r.config.MusicKit
	if v := cmd.String("team-id"); v != "" {
		mk.TeamID = v
	}
	if v := cmd.String("key-id"); v != "" {
		mk.KeyID = v
	}
	if v := cmd.String("key-file"); v != "" {
		mk.PrivateKeyFile = v
	}
	if v := cmd.String("expires-in"); v != "" {
		mk.ExpiresIn = v
	}
	if v := cmd.String("output"); v != "" {
		mk.OutputFile = v
	}
	return token.FromConfig(mk)
}

func (r *Runner) printRemediation(err error) {
	r.writePlain("✗ %v\n", err)
	r.writePlainln("To fix:")
	switch {
	case errors.Is(err, shared.ErrPlaceholderConfig):
		r.writePlain("1. Sign in to developer.apple.com and open Certificates, Identifiers & Profiles\n")
		r.writePlain("2. Copy your Team ID from Membership details\n")
		r.writePlain("3. Create a MusicKit key under Keys and note its Key ID\n")
		r.writePlain("4. Set musickit.team_id and musickit.key_id in config.toml, or MUSICKIT_TEAM_ID and MUSICKIT_KEY_ID in .env\n")
	case errors.Is(err, shared.ErrMissingKeyFile):
		r.writePlain("1. Download the key as AuthKey_<KEY_ID>.p8 (it can only be downloaded once)\n")
		r.writePlain("2. Place it in the working directory or set musickit.private_key_file / MUSICKIT_KEY_FILE\n")
	default:
		r.writePlain("1. Check musickit.expires_in: it must be positive and at most 180d\n")
	}
}

func (r *Runner) printTroubleshooting(err error) {
	r.writePlain("✗ %v\n", err)
	r.writePlainln("Troubleshooting:")
	r.writePlain("1. Make sure the .p8 file is the unmodified PKCS#8 key from Apple\n")
	r.writePlain("2. Check that the Key ID matches the key file name\n")
	r.writePlain("3. Check that the key has the MusicKit service enabled\n")
	if !errors.Is(err, shared.ErrInvalidKey) {
		r.logger.Error("signing failed", "error", fmt.Sprint(err))
	}
}
