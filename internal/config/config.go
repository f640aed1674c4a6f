package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultCacheTTL    = 5 * time.Minute
	defaultHTTPTimeout = 15 * time.Second
)

type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	APIBackend     string
	StorePath      string
	CacheTTL       time.Duration
	HTTPTimeout    time.Duration
	AppEnv         string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:        os.Getenv("STORE_BASE_URL"),
		ConsumerKey:    os.Getenv("STORE_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("STORE_CONSUMER_SECRET"),
		APIBackend:     os.Getenv("STORE_API_BACKEND"),
		StorePath:      os.Getenv("STORE_DATA_DIR"),
		CacheTTL:       durationEnv("STORE_CACHE_TTL", defaultCacheTTL),
		HTTPTimeout:    durationEnv("STORE_HTTP_TIMEOUT", defaultHTTPTimeout),
		AppEnv:         os.Getenv("APP_ENV"),
	}

	if cfg.APIBackend == "" {
		cfg.APIBackend = "wordpress"
	}
	if cfg.StorePath == "" {
		cfg.StorePath = ".storefront"
	}

	if cfg.APIBackend == "wordpress" && cfg.BaseURL == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
