// Package config collects all runtime configuration in one struct so
// components receive it explicitly at construction instead of reading
// process-wide environment state.
package config

import (
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the backend.
type Config struct {
	Port        string `env:"PORT,default=8080"`
	DatabaseURL string `env:"DATABASE_URL,default=product_siksha.db"`

	// SecretKey signs bearer tokens. The default matches local
	// development only; production deployments must override it.
	SecretKey string        `env:"SECRET_KEY,default=dev-secret-key-change-in-production"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,default=24h"`

	GeminiAPIKey string `env:"GEMINI_API_KEY,default="`
	GeminiModel  string `env:"GEMINI_MODEL,default=gemini-2.0-flash-exp"`

	// Comma-separated list of allowed CORS origins.
	CORSOrigins string `env:"CORS_ALLOWED_ORIGINS,default=http://localhost:5173"`

	// Attachment archive backend ("local" or "s3").
	StorageType      string `env:"STORAGE_TYPE,default=local"`
	StorageLocalPath string `env:"STORAGE_LOCAL_PATH,default=./storage/attachments"`
	S3Bucket         string `env:"AWS_S3_BUCKET,default="`
	AWSRegion        string `env:"AWS_REGION,default="`
	AWSAccessKey     string `env:"AWS_ACCESS_KEY_ID,default="`
	AWSSecretKey     string `env:"AWS_SECRET_ACCESS_KEY,default="`
}

// Load reads .env (when present) and decodes the environment into a Config.
func Load() (*Config, error) {
	// Try current directory first, then project root, mirroring how the
	// server is started both from the repo root and from cmd/server/.
	if err := godotenv.Load(); err != nil {
		_ = godotenv.Load("../../.env")
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AllowedOrigins splits the configured CORS origin list.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// GeminiConfigured reports whether an AI credential is present.
func (c *Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}
