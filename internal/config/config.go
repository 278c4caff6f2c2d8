package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "sportsdata/internal/util/env"
	"sportsdata/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

const defaultApiKeyHashSecret = "dev-secret-change-in-production"
const defaultExcludedPathPrefixes = "/api/v1/docs,/api/v1/health"

type EnvVariables struct {
	IsTesting   bool
	DatabaseDsn string            `env:"DATABASE_DSN"               required:"true"`
	EnvMode     env_utils.EnvMode `env:"ENV_MODE"                   required:"true"`
	// cache
	ValkeyHost     string `env:"VALKEY_HOST"                required:"true"`
	ValkeyPort     string `env:"VALKEY_PORT"                required:"true"`
	ValkeyUsername string `env:"VALKEY_USERNAME"            required:"false"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"            required:"false"`
	ValkeyIsSsl    bool   `env:"VALKEY_IS_SSL"              required:"true"`
	// api keys
	ApiKeyHashSecret        string `env:"API_KEY_HASH_SECRET"        required:"false"`
	ExcludedPathPrefixesRaw string `env:"API_EXCLUDED_PATH_PREFIXES" required:"false"`
}

// ExcludedPathPrefixes lists the path prefixes that bypass the API key
// gatekeeper entirely (docs, health).
func (e EnvVariables) ExcludedPathPrefixes() []string {
	raw := e.ExcludedPathPrefixesRaw
	if raw == "" {
		raw = defaultExcludedPathPrefixes
	}

	parts := strings.Split(raw, ",")
	prefixes := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			prefixes = append(prefixes, trimmed)
		}
	}

	return prefixes
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	var loaded bool
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Successfully loaded .env", "path", path)
			loaded = true
			break
		}
	}

	if !loaded {
		log.Error("Error loading .env file: could not find .env in any location")
		os.Exit(1)
	}

	err = cleanenv.ReadEnv(&env)
	if err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if env.EnvMode == "" {
		log.Error("ENV_MODE is empty")
		os.Exit(1)
	}
	if env.EnvMode != env_utils.EnvModeDevelopment && env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	// Valkey
	if env.ValkeyHost == "" {
		log.Error("VALKEY_HOST is empty")
		os.Exit(1)
	}
	if env.ValkeyPort == "" {
		log.Error("VALKEY_PORT is empty")
		os.Exit(1)
	}

	// The hash secret keys the HMAC over raw API keys. A missing secret is
	// tolerated only outside production.
	if env.ApiKeyHashSecret == "" {
		if env.EnvMode == env_utils.EnvModeProduction {
			log.Error("API_KEY_HASH_SECRET is required in production")
			os.Exit(1)
		}

		log.Warn("API_KEY_HASH_SECRET is not set, using development fallback")
		env.ApiKeyHashSecret = defaultApiKeyHashSecret
	}

	log.Info("Environment variables loaded successfully!")
}
