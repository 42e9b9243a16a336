// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when present), loads them into structured Go types, and validates
// that required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for every optional setting.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix WEBAPP_. Keys are lowercased, the
	prefix is removed and a double underscore marks nesting:

	  WEBAPP_SERVER__PORT          -> server.port          -> Config.Server.Port
	  WEBAPP_SERVER__READ_TIMEOUT  -> server.read_timeout  -> Config.Server.ReadTimeout
	  WEBAPP_PRIMARY__ENV          -> primary.env          -> Config.Primary.Env

	The bare PORT variable used by most PaaS platforms is honored as well,
	but an explicit WEBAPP_SERVER__PORT takes precedence over it.
*/

const (
	// EnvPrefix is the prefix every application variable must carry.
	EnvPrefix = "WEBAPP_"

	// ServiceName tags logs and APM data.
	ServiceName = "simple-webapp"
)

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary             `koanf:"primary" validate:"required"`
	Server        ServerConfig        `koanf:"server" validate:"required"`
	Observability ObservabilityConfig `koanf:"observability" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env     string `koanf:"env" validate:"required"`
	Version string `koanf:"version" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int    `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int    `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int    `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins string `koanf:"cors_allowed_origins" validate:"required"`
}

// AllowedOrigins splits the comma separated CORS origin list.
func (s ServerConfig) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(s.CORSAllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// Default returns the configuration used when no variable overrides a value.
func Default() *Config {
	return &Config{
		Primary: Primary{
			Env:     "development",
			Version: "1.0.0",
		},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: "*",
		},
		Observability: *DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables on top of
// Default(), validates it and returns the result. Load and validation
// failures are returned to the caller.
func LoadConfig() (*Config, error) {
	// "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	// Bare PORT first so the prefixed variable can override it below.
	err := k.Load(env.ProviderWithValue("PORT", ".", func(key, value string) (string, interface{}) {
		if key != "PORT" {
			return "", nil
		}
		return "server.port", value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load PORT variable: %w", err)
	}

	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load %s variables: %w", EnvPrefix, err)
	}

	mainConfig := Default()

	// Unmarshal only overwrites keys that were actually loaded, so
	// anything missing keeps its default.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Service name and environment always come from the primary block.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// envKey maps WEBAPP_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}
