// Package token signs Apple MusicKit developer tokens offline.
//
// A developer token is an ES256 JWT with the team ID as issuer and the key ID in the kid header,
// signed with the PKCS#8 private key (.p8) downloaded from the Apple developer portal.
package token

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/tunedeck/internal/shared"
	"github.com/golang-jwt/jwt/v5"
)

const (
	PlaceholderTeamID = "YOUR_TEAM_ID_HERE"
	PlaceholderKeyID  = "YOUR_KEY_ID_HERE"

	// MaxExpiry is the longest lifetime Apple accepts for a developer token.
	MaxExpiry     = 180 * 24 * time.Hour
	DefaultExpiry = MaxExpiry
)

// Options describes one developer token.
type Options struct {
	TeamID     string
	KeyID      string
	KeyFile    string
	ExpiresIn  time.Duration
	OutputFile string
}

// Token is a signed developer token and the claims it was built from.
type Token struct {
	Value     string
	TeamID    string
	KeyID     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// FromConfig builds [Options] from the musickit config section.
func FromConfig(c shared.MusicKitConfig) (Options, error) {
	expiry, err := ParseExpiry(c.ExpiresIn)
	if err != nil {
		return Options{}, err
	}
	return Options{
		TeamID:     strings.TrimSpace(c.TeamID),
		KeyID:      strings.TrimSpace(c.KeyID),
		KeyFile:    c.PrivateKeyFile,
		ExpiresIn:  expiry,
		OutputFile: c.OutputFile,
	}, nil
}

// Validate checks that the options are filled in and the key file exists.
func (o Options) Validate() error {
	if o.TeamID == "" || o.TeamID == PlaceholderTeamID {
		return fmt.Errorf("%w: team_id is not set", shared.ErrPlaceholderConfig)
	}
	if o.KeyID == "" || o.KeyID == PlaceholderKeyID {
		return fmt.Errorf("%w: key_id is not set", shared.ErrPlaceholderConfig)
	}
	if o.KeyFile == "" {
		return fmt.Errorf("%w: private_key_file is not set", shared.ErrMissingKeyFile)
	}
	if _, err := os.Stat(o.KeyFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", shared.ErrMissingKeyFile, o.KeyFile)
		}
		return fmt.Errorf("%w: %v", shared.ErrMissingKeyFile, err)
	}
	if o.ExpiresIn <= 0 || o.ExpiresIn > MaxExpiry {
		return fmt.Errorf("%w: expiry must be between 1s and 180 days, got %s", shared.ErrInvalidConfig, o.ExpiresIn)
	}
	return nil
}

// Generate validates opts and signs a token issued at now.
func Generate(opts Options, now time.Time) (*Token, error) {
	if opts.ExpiresIn == 0 {
		opts.ExpiresIn = DefaultExpiry
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	pem, err := os.ReadFile(opts.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMissingKeyFile, err)
	}

	key, err := jwt.ParseECPrivateKeyFromPEM(pem)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", shared.ErrSigningFailed, shared.ErrInvalidKey, err)
	}

	issued := now.Truncate(time.Second)
	expires := issued.Add(opts.ExpiresIn)

	t := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.MapClaims{
		"iss": opts.TeamID,
		"iat": issued.Unix(),
		"exp": expires.Unix(),
	})
	t.Header["kid"] = opts.KeyID

	signed, err := t.SignedString(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSigningFailed, err)
	}

	return &Token{
		Value:     signed,
		TeamID:    opts.TeamID,
		KeyID:     opts.KeyID,
		IssuedAt:  issued,
		ExpiresAt: expires,
	}, nil
}

// Save writes the token to path with owner-only permissions.
func (t *Token) Save(path string) error {
	if err := os.WriteFile(path, []byte(t.Value), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// ParseExpiry parses a token lifetime. It accepts day counts such as "180d" as well as anything
// [time.ParseDuration] understands. An empty string is the default lifetime.
func ParseExpiry(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultExpiry, nil
	}

	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("%w: invalid expiry %q", shared.ErrInvalidConfig, s)
		}
		if maxDays := int(MaxExpiry / (24 * time.Hour)); n > maxDays {
			return 0, fmt.Errorf("%w: expiry %q exceeds %dd", shared.ErrInvalidConfig, s, maxDays)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: invalid expiry %q", shared.ErrInvalidConfig, s)
	}
	return d, nil
}
