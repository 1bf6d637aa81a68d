package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	Redis RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// StoreConfig points at the hosted session/data store. The service key is
// privileged and must never leave the server; the anon key is the one browser
// clients hold.
type StoreConfig struct {
	URL        string
	ServiceKey string
	AnonKey    string
	JWTSecret  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

const defaultHTTPPort = "4000"

// Load reads configuration from the environment, after merging a local .env
// file when present. Missing store credentials log a warning but do not block
// startup: calls against the store fail at request time instead.
func Load(logger *log.Logger) (Config, error) {
	_ = godotenv.Load()

	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	first := func(keys ...string) string {
		for _, k := range keys {
			if v := opt(k); v != "" {
				return v
			}
		}
		return ""
	}

	cfg := Config{}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME"),
		Environment: opt("APP_ENV"),
		HTTPPort:    opt("PORT"),
	}
	if cfg.App.AppName == "" {
		cfg.App.AppName = "career-navigator"
	}
	if cfg.App.HTTPPort == "" {
		cfg.App.HTTPPort = defaultHTTPPort
	}

	cfg.Store = StoreConfig{
		URL:        first("SUPABASE_URL", "VITE_SUPABASE_URL"),
		ServiceKey: opt("SUPABASE_SERVICE_KEY"),
		AnonKey:    first("SUPABASE_ANON_KEY", "VITE_SUPABASE_ANON_KEY"),
		JWTSecret:  opt("SUPABASE_JWT_SECRET"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
	}

	if logger != nil {
		if cfg.Store.URL == "" || cfg.Store.ServiceKey == "" {
			logger.Printf("[Config] store service credentials missing | set SUPABASE_URL and SUPABASE_SERVICE_KEY in .env")
		}
		if cfg.Store.AnonKey == "" {
			logger.Printf("[Config] store anon key missing | set SUPABASE_ANON_KEY in .env")
		}
	}

	return cfg, nil
}
