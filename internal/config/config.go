package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	DatabaseDSN     string        `env:"DATABASE_URI"`
	MigrationsDir   string        `env:"MIGRATIONS_DIR"`
	AuthTokenSecret string        `env:"AUTH_TOKEN_SECRET"`
	TopupPendingTTL time.Duration `env:"TOPUP_PENDING_TTL"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.AuthTokenSecret == "" {
		return nil, errors.New("auth token secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.AuthTokenSecret, "s", "", "HMAC secret for identity tokens")
	flag.DurationVar(&flagConfig.TopupPendingTTL, "t", 0, "Pending topup TTL (0 disables expiration)")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	ttl := envConfig.TopupPendingTTL
	if ttl == 0 {
		ttl = flagsConfig.TopupPendingTTL
	}
	return &Config{
		RunAddress:      defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:   defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		AuthTokenSecret: defaultIfBlank(envConfig.AuthTokenSecret, flagsConfig.AuthTokenSecret),
		TopupPendingTTL: ttl,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
