// Package config resolves runtime settings from the environment, an optional
// .env file and built-in defaults.
package config

import (
	"fmt"
	"strings"
)

const (
	DefaultPort      = 8080
	DefaultOrigin    = "*"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultRateLimit = 50.0
	DefaultRateBurst = 100
)

type Config struct {
	Port           int
	DefinitionPath string
	AllowedOrigin  string
	LogLevel       string
	LogFormat      string
	PredictRate    float64
	PredictBurst   int
}

// FromEnv reads every setting from the environment, falling back to defaults.
func FromEnv() Config {
	return Config{
		Port:           GetEnvInt("GRAPH_PORT", DefaultPort),
		DefinitionPath: GetEnvString("GRAPH_DEFINITION", ""),
		AllowedOrigin:  GetEnvString("CORS_ALLOWED_ORIGIN", DefaultOrigin),
		LogLevel:       strings.ToLower(GetEnvString("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:      strings.ToLower(GetEnvString("LOG_FORMAT", DefaultLogFormat)),
		PredictRate:    GetEnvFloat("PREDICT_RATE_LIMIT", DefaultRateLimit),
		PredictBurst:   GetEnvInt("PREDICT_RATE_BURST", DefaultRateBurst),
	}
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	if c.PredictRate <= 0 {
		return fmt.Errorf("predict rate limit must be positive, got %g", c.PredictRate)
	}
	if c.PredictBurst <= 0 {
		return fmt.Errorf("predict burst must be positive, got %d", c.PredictBurst)
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
