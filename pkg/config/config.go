// Package config loads graphprep settings from the environment (optionally
// seeded from a .env file) and batch job files in TOML.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults applied when the environment is silent.
const (
	DefaultBasePath = "data/"
	DefaultRegion   = "us-east-1"
	DefaultBucket   = "graphprep-datasets"
)

// Config holds the process-wide settings.
type Config struct {
	// BasePath is the root under which dataset directories are created.
	BasePath string
	// AttrMode is the default attribute-matrix mode for archives.
	AttrMode string
	Storage  StorageConfig
}

// StorageConfig addresses the S3-compatible bucket datasets are published to.
type StorageConfig struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether an endpoint is configured.
func (c StorageConfig) Enabled() bool { return c.Endpoint != "" }

// Load reads .env from the working directory when present, then the
// process environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) *Config {
	env := func(key string) string { return strings.TrimSpace(getenv(key)) }
	return &Config{
		BasePath: firstNonEmpty(env("GRAPHPREP_BASE_PATH"), DefaultBasePath),
		AttrMode: env("GRAPHPREP_ATTR_MODE"),
		Storage: StorageConfig{
			Endpoint:  env("GRAPHPREP_S3_ENDPOINT"),
			Region:    firstNonEmpty(env("GRAPHPREP_S3_REGION"), DefaultRegion),
			AccessKey: firstNonEmpty(env("GRAPHPREP_S3_ACCESS_KEY"), env("MINIO_ROOT_USER")),
			SecretKey: firstNonEmpty(env("GRAPHPREP_S3_SECRET_KEY"), env("MINIO_ROOT_PASSWORD")),
			Bucket:    firstNonEmpty(env("GRAPHPREP_S3_BUCKET"), DefaultBucket),
			UseSSL:    parseBool(env("GRAPHPREP_S3_USE_SSL"), true),
		},
	}
}

func parseBool(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
