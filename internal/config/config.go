package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

type Config struct {
	// BackendURL is the base URL of the commerce API.
	BackendURL string `yaml:"backend_url"`
	// ProfileDir holds the local profile database. Defaults to
	// ~/.storefront.
	ProfileDir string `yaml:"profile_dir"`
	// Profile names the keyspace when the Redis backend is used.
	Profile string `yaml:"profile"`
	// Storage selects the persistence medium: sqlite or redis.
	Storage string `yaml:"storage"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`

	RequestTimeout time.Duration `yaml:"request_timeout"`
}

func defaults() Config {
	home, _ := os.UserHomeDir()
	return Config{
		BackendURL:     "http://localhost:8080",
		ProfileDir:     filepath.Join(home, ".storefront"),
		Profile:        "default",
		Storage:        StorageSQLite,
		RedisAddr:      "localhost:6379",
		RequestTimeout: 10 * time.Second,
	}
}

// Load reads the optional YAML config file and applies environment
// overrides on top. A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err == nil {
			if e2 := yaml.Unmarshal(raw, &cfg); e2 != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, e2)
			}
		}
	}

	cfg.BackendURL = getEnv("STOREFRONT_BACKEND_URL", cfg.BackendURL)
	cfg.ProfileDir = getEnv("STOREFRONT_PROFILE_DIR", cfg.ProfileDir)
	cfg.Profile = getEnv("STOREFRONT_PROFILE", cfg.Profile)
	cfg.Storage = getEnv("STOREFRONT_STORAGE", cfg.Storage)
	cfg.RedisAddr = getEnv("STOREFRONT_REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnv("STOREFRONT_REDIS_PASSWORD", cfg.RedisPassword)

	if cfg.Storage != StorageSQLite && cfg.Storage != StorageRedis {
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
