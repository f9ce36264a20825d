package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server ServerConfig
	Log    LogConfig
	Redis  RedisConfig
	TTS    TTSConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"SERVER_PORT" envDefault:"8080"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"` // empty disables redis
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type TTSConfig struct {
	DefaultProvider string        `env:"TTS_DEFAULT_PROVIDER" envDefault:"gemini"`
	GeminiBaseURL   string        `env:"TTS_GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	GeminiModel     string        `env:"TTS_GEMINI_MODEL" envDefault:"gemini-2.5-flash-preview-tts"`
	OpenAIBaseURL   string        `env:"TTS_OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	CacheTTL        time.Duration `env:"TTS_CACHE_TTL" envDefault:"0s"`
	HTTPTimeout     time.Duration `env:"TTS_HTTP_TIMEOUT" envDefault:"120s"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Credentials are read per invocation, never cached in Config.
type Credentials struct {
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// LoadCredentials reads the provider credentials from the environment.
func LoadCredentials() (Credentials, error) {
	return env.ParseAs[Credentials]()
}

// APIKey returns the credential for a provider name, "" when unknown or unset.
func (c Credentials) APIKey(provider string) string {
	switch provider {
	case "gemini":
		return c.GoogleAPIKey
	case "openai":
		return c.OpenAIAPIKey
	default:
		return ""
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) Validate() error {
	var problems []string
	switch c.TTS.DefaultProvider {
	case "gemini", "openai":
	default:
		problems = append(problems, fmt.Sprintf("TTS_DEFAULT_PROVIDER %q (want gemini or openai)", c.TTS.DefaultProvider))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("SERVER_PORT %d out of range", c.Server.Port))
	}
	if c.TTS.CacheTTL < 0 {
		problems = append(problems, "TTS_CACHE_TTL must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, ", "))
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// APIKeyFromEnv re-reads the environment and returns the provider credential.
func APIKeyFromEnv(provider string) (string, error) {
	creds, err := LoadCredentials()
	if err != nil {
		return "", err
	}
	return creds.APIKey(provider), nil
}
