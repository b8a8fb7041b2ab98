package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the explicit configuration object handed to the orchestrator and
// its collaborators at construction. Nothing reads the environment after Load.
type Config struct {
	Port string

	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string

	RequestTimeout time.Duration

	// Intake limits.
	MaxUploadBytes int64
	MinDimension   int
	MaxDimension   int
	MaxPixels      int64

	// Transmission budget for the model call; images above it are re-encoded.
	TransmissionBudgetBytes int64

	CurrencyCode string

	// OCR.
	TesseractBin  string
	TesseractLang string

	// Optional Telegram front end; empty token disables it.
	TelegramToken string
}

// Load reads configuration from the environment, honoring a local .env file.
// The Groq API key is the only hard requirement.
func Load() (*Config, error) {
	_ = godotenv.Load()

	key := os.Getenv("GROQ_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("missing required env GROQ_API_KEY")
	}

	return &Config{
		Port: getEnv("API_PORT", "8000"),

		GroqAPIKey:  key,
		GroqBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:   getEnv("GROQ_MODEL", "meta-llama/llama-4-maverick-17b-128e-instruct"),

		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 90*time.Second),

		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 20<<20),
		MinDimension:   getEnvInt("MIN_IMAGE_DIMENSION", 32),
		MaxDimension:   getEnvInt("MAX_IMAGE_DIMENSION", 10000),
		MaxPixels:      getEnvInt64("MAX_IMAGE_PIXELS", 48_000_000),

		TransmissionBudgetBytes: getEnvInt64("TRANSMISSION_BUDGET_BYTES", 4<<20),

		CurrencyCode: getEnv("CURRENCY_CODE", "EUR"),

		TesseractBin:  getEnv("TESSERACT_BIN", "tesseract"),
		TesseractLang: getEnv("TESSERACT_LANG", "eng+nld+deu+fra"),

		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN_CAR_ASSESSOR"),
	}, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getEnvInt64(k string, def int64) int64 {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
