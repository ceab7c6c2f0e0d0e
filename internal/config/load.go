package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
	"golang.org/x/crypto/bcrypt"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "PORTFOLIO"

// legacyEnv lists the unprefixed variable names the service historically
// read. They are consulted after the PORTFOLIO_ names.
var legacyEnv = map[string]string{
	"database.url":        "DATABASE_URL",
	"auth.jwt_secret":     "JWT_SECRET_KEY",
	"auth.admin_username": "ADMIN_USERNAME",
	"auth.admin_password": "ADMIN_PASSWORD",
}

// defaults holds every known key. Registering each one is what lets
// viper.Unmarshal see values that only exist in the environment.
var defaults = map[string]any{
	"server.port":                  8000,
	"server.log_level":             "info",
	"server.read_timeout_seconds":  30,
	"server.write_timeout_seconds": 30,
	"server.idle_timeout_seconds":  5,

	"database.driver": "pgx",
	"database.url":    "",

	"auth.jwt_secret":             "",
	"auth.token_lifetime_minutes": 60,
	"auth.admin_username":         "",
	"auth.admin_password_hash":    "",
	"auth.admin_password":         "",

	"keep_alive.url":              "",
	"keep_alive.interval_seconds": 300,
}

// Load reads configuration from a .env file (if present), an optional
// config.yaml in the working directory and environment variables.
// Environment variables take precedence over values from config files.
// Returns a populated Config or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom is Load with an explicit directory for .env and config.yaml.
func LoadFrom(dir string) (*Config, error) {
	// .env only fills variables that are not already set.
	if err := gotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key := range defaults {
		names := []string{EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}
		if legacy, ok := legacyEnv[key]; ok {
			names = append(names, legacy)
		}
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Auth.AdminPasswordHash == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		cfg.Auth.AdminPasswordHash = string(hash)
	}
	// The plaintext is not needed past this point.
	cfg.Auth.AdminPassword = ""

	return &cfg, nil
}
