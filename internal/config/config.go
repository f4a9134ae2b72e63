package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Public fee policy endpoints.
const (
	DefaultCashInURL           = "https://developers.paysera.com/tasks/api/cash-in"
	DefaultCashOutNaturalURL   = "https://developers.paysera.com/tasks/api/cash-out-natural"
	DefaultCashOutJuridicalURL = "https://developers.paysera.com/tasks/api/cash-out-juridical"
)

// Config aggregates application configuration values.
type Config struct {
	Policy   PolicyConfig
	Log      LogConfig
	Currency string
	Port     string
}

// PolicyConfig locates the fee policy documents.
type PolicyConfig struct {
	CashInURL           string
	CashOutNaturalURL   string
	CashOutJuridicalURL string
	Timeout             time.Duration
}

// LogConfig controls structured logging settings.
type LogConfig struct {
	Level  string
	Format string // console|json
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env file: %v", err)
	}
}

// Load reads configuration from environment variables, applying defaults.
func Load() Config {
	return Config{
		Policy: PolicyConfig{
			CashInURL:           GetEnv("CASH_IN_URL", DefaultCashInURL),
			CashOutNaturalURL:   GetEnv("CASH_OUT_NATURAL_URL", DefaultCashOutNaturalURL),
			CashOutJuridicalURL: GetEnv("CASH_OUT_JURIDICAL_URL", DefaultCashOutJuridicalURL),
			Timeout:             GetDurationEnv("POLICY_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:  GetEnv("LOG_LEVEL", "info"),
			Format: GetEnv("LOG_FORMAT", "console"),
		},
		Currency: GetEnv("SUPPORTED_CURRENCY", "EUR"),
		Port:     GetEnv("PORT", "3000"),
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil && d > 0 {
			return d
		}
	}
	return defaultVal
}
