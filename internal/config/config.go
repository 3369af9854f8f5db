package config

import (
	"os"
	"strings"
)

const (
	defaultAddr        = ":8080"
	defaultDatabaseURL = "scheduler.db"
	defaultLogLevel    = "info"
)

// Config is the runtime configuration, read once from the environment at
// startup.
type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string
	LogLevel    string
	CORSOrigins []string
}

func Load() Config {
	cfg := Config{
		AppEnv:      getenv("APP_ENV", "development"),
		Addr:        getenv("ADDR", defaultAddr),
		DatabaseURL: getenv("DATABASE_URL", defaultDatabaseURL),
		LogLevel:    getenv("LOG_LEVEL", defaultLogLevel),
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}
	return cfg
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
