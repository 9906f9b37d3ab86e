package session

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/tunedeck/internal/shared"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// Verifier decides whether a two-factor code is accepted.
type Verifier interface {
	Verify(code string) bool
}

// StaticCode accepts exactly one fixed code. Codes never expire or rotate.
type StaticCode string

// Verify implements [Verifier].
func (s StaticCode) Verify(code string) bool {
	return subtle.ConstantTimeCompare([]byte(s), []byte(code)) == 1
}

// TOTP accepts six-digit RFC 6238 codes for a base32 secret, allowing one period of clock skew.
type TOTP struct {
	Secret string
	Now    func() time.Time
}

// Verify implements [Verifier].
func (t TOTP) Verify(code string) bool {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}

	ok, err := totp.ValidateCustom(code, t.Secret, now().UTC(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

// NewVerifier builds a [Verifier] for a two_factor config mode: "static" (the default) or "totp".
func NewVerifier(mode, code, secret string) (Verifier, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "static":
		if code == "" {
			code = DefaultCode
		}
		if len(code) != 6 {
			return nil, fmt.Errorf("%w: static code must be 6 digits", shared.ErrInvalidConfig)
		}
		return StaticCode(code), nil
	case "totp":
		if strings.TrimSpace(secret) == "" {
			return nil, fmt.Errorf("%w: totp mode requires two_factor.totp_secret", shared.ErrInvalidConfig)
		}
		return TOTP{Secret: secret}, nil
	default:
		return nil, fmt.Errorf("%w: unknown two_factor mode %q", shared.ErrInvalidConfig, mode)
	}
}
