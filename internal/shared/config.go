package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Auth      AuthConfig      `toml:"auth"`
	TwoFactor TwoFactorConfig `toml:"two_factor"`
	Playback  PlaybackConfig  `toml:"playback"`
	Notice    NoticeConfig    `toml:"notice"`
	MusicKit  MusicKitConfig  `toml:"musickit"`
	Log       LogConfig       `toml:"log"`
}

// AuthConfig contains the simulated latencies of the login flow.
type AuthConfig struct {
	LoginDelayMS  int `toml:"login_delay_ms"`
	VerifyDelayMS int `toml:"verify_delay_ms"`
	SettleDelayMS int `toml:"settle_delay_ms"`
}

// TwoFactorConfig selects how verification codes are checked.
type TwoFactorConfig struct {
	Mode       string `toml:"mode"`
	Code       string `toml:"code"`
	TOTPSecret string `toml:"totp_secret"`
}

// PlaybackConfig contains simulated transport settings.
type PlaybackConfig struct {
	Duration         int     `toml:"duration"`
	UseTrackDuration bool    `toml:"use_track_duration"`
	Volume           float64 `toml:"volume"`
}

// NoticeConfig contains transient notice settings.
type NoticeConfig struct {
	TTLMS int `toml:"ttl_ms"`
}

// MusicKitConfig contains the Apple developer identifiers used to sign developer tokens.
type MusicKitConfig struct {
	TeamID         string `toml:"team_id"`
	KeyID          string `toml:"key_id"`
	PrivateKeyFile string `toml:"private_key_file"`
	ExpiresIn      string `toml:"expires_in"`
	OutputFile     string `toml:"output_file"`
}

// LogConfig contains the TUI log file settings.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays environment variables on the config.
//
// A .env file in the working directory is loaded first if present; variables already set
// in the process environment win over it. A missing file is skipped. A file that fails to parse
// is reported, but the process environment is still applied.
func (c *Config) ApplyEnv(envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	var loadErr error
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			loadErr = fmt.Errorf("%w: failed to load %s: %v", ErrInvalidConfig, file, err)
			break
		}
	}

	if v, ok := os.LookupEnv("MUSICKIT_TEAM_ID"); ok && v != "" {
		c.MusicKit.TeamID = v
	}
	if v, ok := os.LookupEnv("MUSICKIT_KEY_ID"); ok && v != "" {
		c.MusicKit.KeyID = v
	}
	if v, ok := os.LookupEnv("MUSICKIT_KEY_FILE"); ok && v != "" {
		c.MusicKit.PrivateKeyFile = v
	}
	if v, ok := os.LookupEnv("TUNEDECK_TOTP_SECRET"); ok && v != "" {
		c.TwoFactor.TOTPSecret = v
	}
	return loadErr
}

// Delay converts a millisecond setting to a [time.Duration], falling back when unset.
func Delay(ms int, fallback time.Duration) time.Duration {
	if ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
