package main

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`
	Version     string `mapstructure:"VERSION"`
	TLSCertFile string `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile  string `mapstructure:"TLS_KEY_FILE"`

	// Comma-separated list of origins allowed to send credentials.
	TrustedOrigins string `mapstructure:"CORS_TRUSTED_ORIGINS"`

	DBHost     string `mapstructure:"MONGO_HOST"`
	DBPort     string `mapstructure:"MONGO_PORT"`
	DBUser     string `mapstructure:"MONGO_USER"`
	DBPassword string `mapstructure:"MONGO_PASSWORD"`
	DBName     string `mapstructure:"MONGO_DB"`

	JWTSecret string `mapstructure:"JWT_SECRET"`

	LimiterEnabled bool    `mapstructure:"LIMITER_ENABLED"`
	LimiterRPS     float64 `mapstructure:"LIMITER_RPS"`
	LimiterBurst   int     `mapstructure:"LIMITER_BURST"`
}

func loadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetConfigType("env")
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) corsTrustedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.TrustedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}
