package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the service's environment-driven settings.
type Config struct {
	Port         string
	WorkbookPath string

	// default ranking sizes, overridable per request
	TopDeuda  int
	TopVentas int
}

// Load reads a .env file when present and builds the config from the
// environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8084"),
		WorkbookPath: getEnv("WORKBOOK_PATH", "./data/reporte.xlsx"),
		TopDeuda:     getEnvInt("TOP_DEUDA", 20),
		TopVentas:    getEnvInt("TOP_VENTAS", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
