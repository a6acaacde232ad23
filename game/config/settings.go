package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/wricardo/jungle-game/game/engine"
)

// EnvPrefix is prepended to every environment variable, e.g. JUNGLE_LOG_LEVEL
const EnvPrefix = "JUNGLE"

// Settings holds the process-wide options
type Settings struct {
	SetupsDir    string        `mapstructure:"setups_dir"`
	DefaultSetup string        `mapstructure:"default_setup"`
	LogLevel     string        `mapstructure:"log_level"`
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
	FirstSide    string        `mapstructure:"first_side"`
}

var defaults = map[string]any{
	"setups_dir":    "setups",
	"default_setup": "classic",
	"log_level":     "info",
	"session_ttl":   "24h",
	"first_side":    "black",
}

// LoadSettings reads envFile into the environment (a missing file is fine),
// then layers defaults, the optional config file and JUNGLE_* variables.
func LoadSettings(envFile, configFile string) (*Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects settings the rest of the program cannot use
func (s *Settings) Validate() error {
	if s.SetupsDir == "" {
		return fmt.Errorf("settings: setups_dir is required")
	}
	if s.SessionTTL < 0 {
		return fmt.Errorf("settings: session_ttl must not be negative")
	}
	if _, err := engine.ParseSide(s.FirstSide); err != nil {
		return fmt.Errorf("settings: first_side: %w", err)
	}
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("settings: unknown log_level %q", s.LogLevel)
	}
	return nil
}
