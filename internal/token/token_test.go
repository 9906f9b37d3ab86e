package token

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/desertthunder/tunedeck/internal/shared"
	tu "github.com/desertthunder/tunedeck/internal/testing"
	"github.com/golang-jwt/jwt/v5"
)

func TestParseExpiry(t *testing.T) {
	tc := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "180d", want: 180 * 24 * time.Hour},
		{in: " 30d ", want: 30 * 24 * time.Hour},
		{in: "", want: DefaultExpiry},
		{in: "12h", want: 12 * time.Hour},
		{in: "0d", wantErr: true},
		{in: "-3d", wantErr: true},
		{in: "xd", wantErr: true},
		{in: "181d", wantErr: true},
		{in: "213504d", wantErr: true},
		{in: "soon", wantErr: true},
		{in: "-1h", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseExpiry(tt.in)
			if tt.wantErr {
				if !errors.Is(err, shared.ErrInvalidConfig) {
					t.Fatalf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseExpiry(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	keyFile, _ := tu.WriteECKey(t, dir)

	valid := Options{TeamID: "TEAM123456", KeyID: "KEY1234567", KeyFile: keyFile, ExpiresIn: DefaultExpiry}

	tc := []struct {
		name   string
		modify func(*Options)
		want   error
	}{
		{name: "valid", modify: func(*Options) {}},
		{name: "placeholder team", modify: func(o *Options) { o.TeamID = PlaceholderTeamID }, want: shared.ErrPlaceholderConfig},
		{name: "empty team", modify: func(o *Options) { o.TeamID = "" }, want: shared.ErrPlaceholderConfig},
		{name: "placeholder key id", modify: func(o *Options) { o.KeyID = PlaceholderKeyID }, want: shared.ErrPlaceholderConfig},
		{name: "missing key file", modify: func(o *Options) { o.KeyFile = filepath.Join(dir, "nope.p8") }, want: shared.ErrMissingKeyFile},
		{name: "empty key file", modify: func(o *Options) { o.KeyFile = "" }, want: shared.ErrMissingKeyFile},
		{name: "expiry too long", modify: func(o *Options) { o.ExpiresIn = MaxExpiry + time.Hour }, want: shared.ErrInvalidConfig},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.modify(&opts)
			err := opts.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	now := time.Date(2026, 10, 1, 9, 30, 15, 500, time.UTC)

	t.Run("signs an ES256 token", func(t *testing.T) {
		dir := t.TempDir()
		keyFile, key := tu.WriteECKey(t, dir)

		tok, err := Generate(Options{TeamID: "TEAM123456", KeyID: "KEY1234567", KeyFile: keyFile, ExpiresIn: 24 * time.Hour}, now)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}

		parsed, err := jwt.Parse(tok.Value, func(t *jwt.Token) (any, error) {
			return &key.PublicKey, nil
		}, jwt.WithValidMethods([]string{"ES256"}), jwt.WithTimeFunc(func() time.Time { return now }))
		if err != nil {
			t.Fatalf("token does not verify: %v", err)
		}

		if kid := parsed.Header["kid"]; kid != "KEY1234567" {
			t.Errorf("expected kid KEY1234567, got %v", kid)
		}

		claims := parsed.Claims.(jwt.MapClaims)
		if iss, _ := claims.GetIssuer(); iss != "TEAM123456" {
			t.Errorf("expected iss TEAM123456, got %s", iss)
		}
		iat, _ := claims.GetIssuedAt()
		exp, _ := claims.GetExpirationTime()
		if iat.Unix() != now.Unix() {
			t.Errorf("expected iat %d, got %d", now.Unix(), iat.Unix())
		}
		if exp.Unix()-iat.Unix() != int64((24 * time.Hour).Seconds()) {
			t.Errorf("expected 24h lifetime, got %ds", exp.Unix()-iat.Unix())
		}
		if !tok.ExpiresAt.Equal(tok.IssuedAt.Add(24 * time.Hour)) {
			t.Errorf("unexpected token times %v / %v", tok.IssuedAt, tok.ExpiresAt)
		}
	})

	t.Run("zero expiry uses the default", func(t *testing.T) {
		keyFile, _ := tu.WriteECKey(t, t.TempDir())
		tok, err := Generate(Options{TeamID: "T", KeyID: "K", KeyFile: keyFile}, now)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if tok.ExpiresAt.Sub(tok.IssuedAt) != DefaultExpiry {
			t.Errorf("expected default expiry, got %v", tok.ExpiresAt.Sub(tok.IssuedAt))
		}
	})

	t.Run("invalid key", func(t *testing.T) {
		keyFile := filepath.Join(t.TempDir(), "bad.p8")
		if err := os.WriteFile(keyFile, []byte("not a key"), 0600); err != nil {
			t.Fatal(err)
		}

		_, err := Generate(Options{TeamID: "T", KeyID: "K", KeyFile: keyFile}, now)
		if !errors.Is(err, shared.ErrSigningFailed) || !errors.Is(err, shared.ErrInvalidKey) {
			t.Errorf("expected ErrSigningFailed and ErrInvalidKey, got %v", err)
		}
	})

	t.Run("placeholder config", func(t *testing.T) {
		_, err := Generate(Options{TeamID: PlaceholderTeamID, KeyID: PlaceholderKeyID}, now)
		if !errors.Is(err, shared.ErrPlaceholderConfig) {
			t.Errorf("expected ErrPlaceholderConfig, got %v", err)
		}
	})
}

func TestFromConfig(t *testing.T) {
	cfg := shared.DefaultConfig().MusicKit
	opts, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if opts.ExpiresIn != 180*24*time.Hour || opts.OutputFile != "developer_token.txt" {
		t.Errorf("unexpected options %+v", opts)
	}
	if !errors.Is(opts.Validate(), shared.ErrPlaceholderConfig) {
		t.Error("default config should be placeholder")
	}

	cfg.ExpiresIn = "later"
	if _, err := FromConfig(cfg); !errors.Is(err, shared.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "developer_token.txt")
	tok := &Token{Value: "abc.def.ghi"}
	if err := tok.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	tu.AssertFileExists(t, path)
	if got := tu.MustReadFile(t, path); got != "abc.def.ghi" {
		t.Errorf("expected token written, got %q", got)
	}
}
