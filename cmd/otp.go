package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/tunedeck/internal/shared"
	"github.com/pquerna/otp/totp"
	"github.com/urfave/cli/v3"
)

// OTPCode prints the current TOTP code, for signing in when two_factor.mode is "totp".
func (r *Runner) OTPCode(ctx context.Context, cmd *cli.Command) error {
	secret := cmd.String("secret")
	if secret == "" {
		secret = r.config.TwoFactor.TOTPSecret
	}
	if strings.TrimSpace(secret) == "" {
		return fmt.Errorf("%w: set two_factor.totp_secret, TUNEDECK_TOTP_SECRET, or --secret", shared.ErrMissingConfig)
	}

	now := r.now()
	code, err := totp.GenerateCode(secret, now)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	remaining := 30 - now.Unix()%30
	r.logger.Debug("generated totp code", "valid_for", remaining)
	return r.writePlain("%s (valid for %ds)\n", code, remaining)
}

// OTPSecret generates a fresh TOTP secret for two_factor.totp_secret.
func (r *Runner) OTPSecret(ctx context.Context, cmd *cli.Command) error {
	account := cmd.String("account")
	if strings.TrimSpace(account) == "" {
		return fmt.Errorf("%w: --account", shared.ErrMissingArgument)
	}

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "tunedeck", AccountName: account})
	if err != nil {
		return fmt.Errorf("failed to generate secret: %w", err)
	}

	r.writePlain("Secret: %s\n", key.Secret())
	r.writePlain("URL:    %s\n", key.URL())
	r.writePlainln("Add to config.toml:")
	r.writePlain("[two_factor]\nmode = \"totp\"\ntotp_secret = \"%s\"\n", key.Secret())
	return nil
}
