package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all environment-driven settings, loaded once at startup.
type Config struct {
	Port           string
	AllowedOrigins []string
	LogMode        string

	DatabaseURL string
	SQLitePath  string

	GenerationProvider string
	GeminiAPIKey       string
	GeminiModel        string
	OpenAIKey          string
	OpenAIModel        string

	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
	GenTimeout      time.Duration

	AssemblyAIKey     string
	AssemblyAIBaseURL string
	PollInterval      time.Duration
	MaxPolls          int
}

// Load reads configuration from environment variables. Provider credentials
// are optional here; operations that need them fail when invoked without them.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:5174,http://localhost:5175")),
		LogMode:        getEnv("LOG_MODE", "development"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getEnv("SQLITE_PATH", "data/lectures.db"),

		GenerationProvider: strings.ToLower(getEnv("GENERATION_PROVIDER", "gemini")),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		Temperature:     getEnvFloat("GEN_TEMPERATURE", 1),
		TopP:            getEnvFloat("GEN_TOP_P", 0.95),
		TopK:            getEnvInt("GEN_TOP_K", 64),
		MaxOutputTokens: getEnvInt("GEN_MAX_OUTPUT_TOKENS", 8192),
		GenTimeout:      time.Duration(getEnvInt("GEN_TIMEOUT_SECONDS", 30)) * time.Second,

		AssemblyAIKey:     os.Getenv("ASSEMBLYAI_API_KEY"),
		AssemblyAIBaseURL: getEnv("ASSEMBLYAI_BASE_URL", "https://api.assemblyai.com/v2"),
		PollInterval:      time.Duration(getEnvInt("TRANSCRIBE_POLL_SECONDS", 5)) * time.Second,
		MaxPolls:          getEnvInt("TRANSCRIBE_MAX_POLLS", 60),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
