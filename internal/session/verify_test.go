package session

import (
	"errors"
	"testing"
	"time"

	"github.com/desertthunder/tunedeck/internal/shared"
	"github.com/pquerna/otp/totp"
)

const testSecret = "JBSWY3DPEHPK3PXP"

func TestStaticCode(t *testing.T) {
	v := StaticCode(DefaultCode)
	for code, want := range map[string]bool{
		"123456":  true,
		"123457":  false,
		"12345":   false,
		"1234567": false,
		"":        false,
	} {
		if got := v.Verify(code); got != want {
			t.Errorf("Verify(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestTOTP(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := TOTP{Secret: testSecret, Now: func() time.Time { return now }}

	t.Run("current code", func(t *testing.T) {
		code, err := totp.GenerateCode(testSecret, now)
		if err != nil {
			t.Fatalf("GenerateCode: %v", err)
		}
		if !v.Verify(code) {
			t.Errorf("expected %s accepted", code)
		}
	})

	t.Run("one period of skew", func(t *testing.T) {
		code, err := totp.GenerateCode(testSecret, now.Add(-30*time.Second))
		if err != nil {
			t.Fatalf("GenerateCode: %v", err)
		}
		if !v.Verify(code) {
			t.Errorf("expected previous period accepted")
		}
	})

	t.Run("stale code", func(t *testing.T) {
		code, err := totp.GenerateCode(testSecret, now.Add(-10*time.Minute))
		if err != nil {
			t.Fatalf("GenerateCode: %v", err)
		}
		current, _ := totp.GenerateCode(testSecret, now)
		if code != current && v.Verify(code) {
			t.Errorf("expected stale code %s rejected", code)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if v.Verify("abc") {
			t.Error("expected malformed code rejected")
		}
	})
}

func TestNewVerifier(t *testing.T) {
	tc := []struct {
		name    string
		mode    string
		code    string
		secret  string
		wantErr bool
		check   func(Verifier) bool
	}{
		{name: "default", check: func(v Verifier) bool { return v.Verify(DefaultCode) }},
		{name: "static custom", mode: "static", code: "000111", check: func(v Verifier) bool { return v.Verify("000111") }},
		{name: "static mode is case-insensitive", mode: " Static ", check: func(v Verifier) bool { return v.Verify(DefaultCode) }},
		{name: "static bad length", mode: "static", code: "123", wantErr: true},
		{name: "totp", mode: "totp", secret: testSecret, check: func(v Verifier) bool { _, ok := v.(TOTP); return ok }},
		{name: "totp without secret", mode: "totp", wantErr: true},
		{name: "unknown mode", mode: "sms", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewVerifier(tt.mode, tt.code, tt.secret)
			if tt.wantErr {
				if !errors.Is(err, shared.ErrInvalidConfig) {
					t.Fatalf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(v) {
				t.Error("verifier check failed")
			}
		})
	}
}
