// Package config loads the settings of the jwtgate server from a YAML file
// and JWTGATE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/uptimeventures/jwtgate"
	"github.com/uptimeventures/jwtgate/validator"
)

// ErrSecretMissing is returned by Load when no signing secret is configured.
var ErrSecretMissing = errors.New("auth.secret must be set")

type Config struct {
	Server struct {
		Addr            string        `mapstructure:"addr"`
		ReadTimeout     time.Duration `mapstructure:"read_timeout"`
		WriteTimeout    time.Duration `mapstructure:"write_timeout"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`

	Auth struct {
		Secret        string        `mapstructure:"secret"`
		Algorithms    []string      `mapstructure:"algorithms"`
		RequireExpiry bool          `mapstructure:"require_expiry"`
		Leeway        time.Duration `mapstructure:"leeway"`
		Issuer        string        `mapstructure:"issuer"`
		Audience      string        `mapstructure:"audience"`
		ExcludedPaths []string      `mapstructure:"excluded_paths"`
	} `mapstructure:"auth"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
}

// Load reads the configuration at path, if any, and overlays environment
// variables such as JWTGATE_AUTH_SECRET. Every key has a default except the
// secret, which must come from one of the two sources.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.algorithms", []string{string(validator.HS256)})
	v.SetDefault("auth.require_expiry", false)
	v.SetDefault("auth.leeway", time.Duration(0))
	v.SetDefault("auth.issuer", "")
	v.SetDefault("auth.audience", "")
	v.SetDefault("auth.excluded_paths", []string{"/healthz"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("JWTGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Auth.Secret == "" {
		return nil, ErrSecretMissing
	}

	return &cfg, nil
}

// Policy builds the validation policy described by the auth section.
func (c *Config) Policy() validator.Policy {
	policy := validator.Policy{
		RequireExpiry: c.Auth.RequireExpiry,
		Leeway:        c.Auth.Leeway,
		Issuer:        c.Auth.Issuer,
		Audience:      c.Auth.Audience,
	}
	for _, alg := range c.Auth.Algorithms {
		if alg = strings.TrimSpace(alg); alg != "" {
			policy.Algorithms = append(policy.Algorithms, validator.SignatureAlgorithm(strings.ToUpper(alg)))
		}
	}
	return policy
}

// GateOptions turns the auth section into gate options. extra is appended
// so callers can add logging, tracing and metrics.
func (c *Config) GateOptions(extra ...jwtgate.Option) []jwtgate.Option {
	opts := []jwtgate.Option{jwtgate.WithPolicy(c.Policy())}
	if len(c.Auth.ExcludedPaths) > 0 {
		opts = append(opts, jwtgate.WithExclusionUrls(c.Auth.ExcludedPaths))
	}
	return append(opts, extra...)
}
