package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	DBPath          string
	GeminiAPIKey    string
	GeminiModel     string
	GeminiBaseURL   string
	LLMProvider     string // gemini|mock
	GenerateTimeout time.Duration
	LogLevel        string
	LogDevelopment  bool
}

// Load reads a .env file when present and then the process environment.
// The returned error only reports that no .env file was loaded; the config
// is always usable.
func Load() (AppConfig, error) {
	envErr := godotenv.Load()

	return fromEnv(os.Getenv), envErr
}

func fromEnv(getenv func(string) string) AppConfig {
	get := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}
	timeout, err := time.ParseDuration(get("GENERATE_TIMEOUT", "90s"))
	if err != nil {
		timeout = 90 * time.Second
	}
	return AppConfig{
		Port:            get("PORT", "8080"),
		DBPath:          get("DB_PATH", "masar.db"),
		GeminiAPIKey:    get("API_KEY", getenv("GEMINI_API_KEY")),
		GeminiModel:     get("GEMINI_MODEL", "gemini-3-pro-preview"),
		GeminiBaseURL:   get("GEMINI_BASE_URL", ""),
		LLMProvider:     strings.ToLower(get("LLM_PROVIDER", "gemini")),
		GenerateTimeout: timeout,
		LogLevel:        get("LOG_LEVEL", "info"),
		LogDevelopment:  get("LOG_DEVELOPMENT", "false") == "true",
	}
}

// String masks the API key so the config can be logged at start-up.
func (c AppConfig) String() string {
	key := "<unset>"
	if c.GeminiAPIKey != "" {
		key = "<set>"
	}
	return fmt.Sprintf("port=%s db=%s provider=%s model=%s base_url=%q api_key=%s timeout=%s log_level=%s",
		c.Port, c.DBPath, c.LLMProvider, c.GeminiModel, c.GeminiBaseURL, key, c.GenerateTimeout, c.LogLevel)
}
